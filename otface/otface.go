/*
Package otface backs font families with OpenType fonts (TTF or OTF).

The selection machinery in packages family and collection is agnostic about
where fonts come from; this package is the standard way to feed it real font
files:

▪︎ Load or Parse read a font and derive everything selection needs from its
tables: the name, a weight and slant guess, the codepoint coverage from the
character map, and variation-sequence lookups.

▪︎ Face and StyledFace wrap a loaded font into a face description for
family.New, so a family can be assembled from a handful of font files.

▪︎ ShapingFace hands out faces for text shapers. Faces carry per-face glyph
caches and are not safe for concurrent use, so every call mints a fresh one;
the read-only font tables behind them are shared.

# Status

Font collections (*.ttc) are not handled yet; collection files must be split
into single fonts before loading.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otface

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/npillmayer/fontfall"
	"github.com/npillmayer/fontfall/coverage"
	"github.com/npillmayer/fontfall/family"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer traces with key 'fontfall.otface'.
func tracer() tracing.Trace {
	return tracing.Select("fontfall.otface")
}

// Source is one parsed OpenType font. It owns the read-only font tables, the
// codepoint coverage derived from the character map, and a cached query face.
// Sources are safe for concurrent use.
type Source struct {
	name   string
	weight int
	italic bool
	otf    *font.Font
	cov    coverage.Set

	mu   sync.Mutex // guards face, which carries glyph caches
	face *font.Face
}

var _ fontfall.Font = (*Source)(nil)

// Load reads and parses an OpenType font file.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("otface: cannot read font file: %w", err)
	}
	return Parse(data)
}

// Parse parses an in-memory OpenType font. The data must contain a complete
// single-font SFNT stream and must not change after parsing.
func Parse(data []byte) (*Source, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("otface: cannot parse font: %w", err)
	}
	src := &Source{
		otf:    face.Font,
		face:   face,
		weight: fontfall.WeightNormal,
	}
	src.cov = cmapCoverage(face.Font)
	src.readNames(data)
	tracer().Infof("loaded font %s, maps %d codepoints", src.name, src.cov.Count())
	return src, nil
}

// readNames pulls the font's name and a weight/slant guess from the SFNT
// name table. Fonts without usable name records keep a placeholder name and
// count as regular.
func (s *Source) readNames(data []byte) {
	s.name = "(unnamed font)"
	sf, err := sfnt.Parse(data)
	if err != nil {
		tracer().Debugf("font has no readable name table: %v", err)
		return
	}
	if name, err := sf.Name(nil, sfnt.NameIDFull); err == nil {
		s.name = name
	} else if name, err := sf.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	if sub, err := sf.Name(nil, sfnt.NameIDSubfamily); err == nil {
		style := strings.ToLower(sub)
		if strings.Contains(style, "bold") {
			s.weight = fontfall.WeightBold
		}
		if strings.Contains(style, "italic") || strings.Contains(style, "oblique") {
			s.italic = true
		}
	}
}

// cmapCoverage collects the codepoints the character map assigns glyphs to.
func cmapCoverage(otf *font.Font) coverage.Set {
	var b coverage.Builder
	iter := otf.Cmap.Iter()
	for iter.Next() {
		r, _ := iter.Char()
		b.Add(r)
	}
	return b.Build()
}

// Fontname returns the font's full name from its name table.
func (s *Source) Fontname() string { return s.name }

// Coverage returns the set of codepoints the font maps to glyphs.
func (s *Source) Coverage() coverage.Set { return s.cov }

// HasGlyph reports whether the font maps cp to a glyph.
func (s *Source) HasGlyph(cp rune) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.queryFace().NominalGlyph(cp)
	return ok
}

// HasVariationSequence reports whether the font has a glyph for the
// variation sequence (base, sel), from the character map's format 14
// subtable.
func (s *Source) HasVariationSequence(base, sel rune) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.queryFace().VariationGlyph(base, sel)
	return ok
}

// queryFace returns the cached face for glyph queries, reviving it after a
// purge. Callers must hold mu.
func (s *Source) queryFace() *font.Face {
	if s.face == nil {
		s.face = font.NewFace(s.otf)
	}
	return s.face
}

// PurgeCaches drops the cached query face and the glyph caches it carries.
// The next query revives it.
func (s *Source) PurgeCaches() {
	s.mu.Lock()
	s.face = nil
	s.mu.Unlock()
}

// Tables returns the font's parsed tables. They are read-only and safe to
// share.
func (s *Source) Tables() *font.Font { return s.otf }

// ShapingFace mints a face for use with shaping engines. Faces are not safe
// for concurrent use, so callers keep one per goroutine; the font tables
// behind them are shared.
func (s *Source) ShapingFace() *font.Face {
	return font.NewFace(s.otf)
}

// Face wraps the font into a face description for family.New, using the
// weight and slant guessed from the name table.
func (s *Source) Face() family.Face {
	return s.StyledFace(s.weight, s.italic)
}

// StyledFace wraps the font into a face description with the given weight
// and slant, for callers that know the actual style better than the name
// table does.
func (s *Source) StyledFace(weight int, italic bool) family.Face {
	return family.Face{
		Font:       s,
		Weight:     weight,
		Italic:     italic,
		Coverage:   s.cov,
		Variations: s,
	}
}

// NewFamily assembles a font family from loaded fonts, styled as their name
// tables declare.
func NewFamily(name string, cfg family.Config, sources ...*Source) (*family.Family, error) {
	faces := make([]family.Face, 0, len(sources))
	for _, src := range sources {
		if src == nil {
			continue
		}
		faces = append(faces, src.Face())
	}
	return family.New(name, cfg, faces...)
}
