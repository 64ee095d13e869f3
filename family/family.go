/*
Package family implements font families assembled from styled faces.

A family groups faces that share coverage and fallback identity (say,
"Roboto" in regular, italic, and bold cuts) and selects, for any requested
style, the face whose weight and slant deviate least, synthesizing bold or
italic when no real face comes close enough.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package family

import (
	"errors"

	"github.com/npillmayer/fontfall"
	"github.com/npillmayer/fontfall/coverage"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer traces with key 'fontfall.family'.
func tracer() tracing.Trace {
	return tracing.Select("fontfall.family")
}

// ErrNoFaces flags an attempt to assemble a family without any face.
var ErrNoFaces = errors.New("family: a family needs at least one face")

// VariationSource answers variation-sequence queries for one face. Backends
// without a format-14 cmap subtable may leave it nil.
type VariationSource interface {
	HasVariationSequence(base, sel rune) bool
}

// Purger is implemented by fonts that cache derived rendering state and can
// drop it on demand.
type Purger interface {
	PurgeCaches()
}

// Face is one styled member of a family.
type Face struct {
	Font       fontfall.Font
	Weight     int // 100…900, 0 counts as 400
	Italic     bool
	Coverage   coverage.Set
	Variations VariationSource
}

// Config carries the family-wide declarations that font files themselves do
// not reliably express.
type Config struct {
	Language language.Tag
	Variant  fontfall.Variant
	Emoji    bool
}

// Family groups styled faces under one name. It implements fontfall.Family
// and is immutable after construction, hence safe for concurrent use (face
// fonts guard their own caches).
type Family struct {
	name    string
	lang    language.Tag
	variant fontfall.Variant
	emoji   bool
	faces   []Face
	cov     coverage.Set // union over all faces
}

var _ fontfall.Family = (*Family)(nil)

// New assembles a family from styled faces. Faces without a font are
// dropped; at least one usable face must remain.
func New(name string, cfg Config, faces ...Face) (*Family, error) {
	kept := make([]Face, 0, len(faces))
	covs := make([]coverage.Set, 0, len(faces))
	for _, face := range faces {
		if face.Font == nil {
			tracer().Debugf("family %q: dropping face without font", name)
			continue
		}
		kept = append(kept, face)
		covs = append(covs, face.Coverage)
	}
	if len(kept) == 0 {
		return nil, ErrNoFaces
	}
	fam := &Family{
		name:    name,
		lang:    cfg.Language,
		variant: cfg.Variant,
		emoji:   cfg.Emoji,
		faces:   kept,
		cov:     coverage.Union(covs...),
	}
	tracer().Debugf("family %q: %d faces, %d covered codepoints",
		name, len(fam.faces), fam.cov.Count())
	return fam, nil
}

// Name returns the family name.
func (f *Family) Name() string { return f.name }

// NumFaces returns the number of usable faces.
func (f *Family) NumFaces() int { return len(f.faces) }

func (f *Family) CoverageContains(cp rune) bool { return f.cov.Contains(cp) }

func (f *Family) CoverageUpperBound() rune { return f.cov.UpperBound() }

func (f *Family) NextCoveredCodepoint(from rune) rune { return f.cov.NextSet(from) }

// HasVariationSequence asks each face in turn for the exact sequence.
func (f *Family) HasVariationSequence(base, sel rune) bool {
	for _, face := range f.faces {
		if face.Variations != nil && face.Variations.HasVariationSequence(base, sel) {
			return true
		}
	}
	return false
}

func (f *Family) DeclaredLanguage() language.Tag { return f.lang }

func (f *Family) DeclaredVariant() fontfall.Variant { return f.variant }

func (f *Family) IsEmojiFlagged() bool { return f.emoji }

// ClosestMatch returns the face whose weight and slant deviate least from
// style. Weight counts in grades of 100, a slant mismatch counts double;
// earlier faces win ties.
func (f *Family) ClosestMatch(style fontfall.Style) (fontfall.FakedFont, bool) {
	if len(f.faces) == 0 {
		return fontfall.FakedFont{}, false
	}
	wanted := style.NormalizedWeight()
	best, bestPenalty := 0, int(^uint(0)>>1)
	for i, face := range f.faces {
		if p := matchPenalty(face, wanted, style.Italic); p < bestPenalty {
			best, bestPenalty = i, p
		}
	}
	face := f.faces[best]
	return fontfall.FakedFont{
		Font:   face.Font,
		Fakery: computeFakery(face, wanted, style.Italic),
	}, true
}

// PurgeCaches forwards to every face font that caches rendering state.
func (f *Family) PurgeCaches() {
	for _, face := range f.faces {
		if p, ok := face.Font.(Purger); ok {
			p.PurgeCaches()
		}
	}
}

func faceWeight(face Face) int {
	if face.Weight == 0 {
		return fontfall.WeightNormal
	}
	return face.Weight
}

func matchPenalty(face Face, weight int, italic bool) int {
	d := faceWeight(face) - weight
	if d < 0 {
		d = -d
	}
	p := d / 100
	if face.Italic != italic {
		p += 2
	}
	return p
}

// computeFakery fakes bold only for genuinely bold requests that undershoot
// by at least two weight grades, and fakes italic whenever slant is wanted
// but missing.
func computeFakery(face Face, weight int, italic bool) fontfall.Fakery {
	var fakery fontfall.Fakery
	if weight >= 600 && weight-faceWeight(face) >= 200 {
		fakery |= fontfall.FakeBold
	}
	if italic && !face.Italic {
		fakery |= fontfall.FakeItalic
	}
	return fakery
}
