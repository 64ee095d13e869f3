/*
Package collection implements prioritized font-family collections.

A collection is built once from families in priority order and is immutable
afterwards. It answers the question at the heart of text rendering, namely
which font each character is drawn with, through three operations:

▪︎ ResolveFamily picks the best family for a single codepoint, optionally
qualified by a variation selector, using a scoring heuristic over language
match, style variant, and presentation preference, with fallback through
selector dropping and canonical decomposition.

▪︎ Itemize walks a UTF-16 text buffer once and partitions it into contiguous
runs that each map to one resolved font, keeping trailing punctuation and
variation selectors attached to the run in progress and re-attaching
characters preceding a combining enclosing keycap.

▪︎ HasVariationSelector tests exact variation-sequence support across all
families.

Lookup speed comes from a page-indexed coverage table: the codepoint space
is bucketed into 256-codepoint pages, and each page records which families
have coverage there. The index deliberately overestimates at page
granularity; resolution re-checks exact coverage, so precision is never
lost, only a few extra candidates are scanned.

# Status

The selection heuristics are stable. Per-cluster font selection (instead of
the keycap re-attachment workaround) is an open item.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package collection

import (
	"errors"

	"github.com/npillmayer/fontfall"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontfall.collection'.
func tracer() tracing.Trace {
	return tracing.Select("fontfall.collection")
}

// ErrNoUsableFamily flags construction from a family list with no usable
// member. A collection without a fallback font cannot answer any query, so
// it must not exist.
var ErrNoUsableFamily = errors.New("collection: no usable font family")

// The codepoint space is bucketed into pages of 256 codepoints.
const (
	pageBits = 8
	pageMask = (1 << pageBits) - 1
)

// pageRange delimits one page's candidates in the flattened familyVec.
type pageRange struct {
	start, end uint32
}

// Collection is an immutable, prioritized list of font families plus the
// page-indexed coverage table over them. The family at index 0 is the
// default and overrides scoring whenever it covers a character. Collections
// are safe for concurrent use.
type Collection struct {
	id        uint32
	registry  *fontfall.Registry
	families  []fontfall.Family
	maxChar   rune
	ranges    []pageRange
	familyVec []fontfall.Family
}

// New builds a collection over families in priority order. Families without
// a matchable font are dropped silently; if none remain, New returns
// ErrNoUsableFamily. The registry supplies the collection id and resolves
// language-list ids during scoring; it must not be nil.
func New(reg *fontfall.Registry, families []fontfall.Family) (*Collection, error) {
	if reg == nil {
		panic("collection: registry must not be nil")
	}
	c := &Collection{
		id:       reg.NextCollectionID(),
		registry: reg,
		families: make([]fontfall.Family, 0, len(families)),
	}
	lastChar := make([]rune, 0, len(families))
	for _, fam := range families {
		if fam == nil {
			continue
		}
		if _, ok := fam.ClosestMatch(fontfall.Style{}); !ok {
			tracer().Debugf("collection #%d: dropping family without matchable font", c.id)
			continue
		}
		if ub := fam.CoverageUpperBound(); ub > c.maxChar {
			c.maxChar = ub
		}
		c.families = append(c.families, fam)
		lastChar = append(lastChar, fam.NextCoveredCodepoint(0))
	}
	if len(c.families) == 0 {
		return nil, ErrNoUsableFamily
	}
	nPages := (c.maxChar + pageMask) >> pageBits
	c.ranges = make([]pageRange, nPages)
	for page := rune(0); page < nPages; page++ {
		bound := (page + 1) << pageBits
		r := &c.ranges[page]
		r.start = uint32(len(c.familyVec))
		for i, fam := range c.families {
			if lastChar[i] < bound {
				c.familyVec = append(c.familyVec, fam)
				lastChar[i] = fam.NextCoveredCodepoint(bound)
			}
		}
		r.end = uint32(len(c.familyVec))
	}
	tracer().Debugf("collection #%d: %d families, %d pages, %d page entries",
		c.id, len(c.families), len(c.ranges), len(c.familyVec))
	return c, nil
}

// ID returns the collection's identifier, unique within its registry.
func (c *Collection) ID() uint32 { return c.id }

// NumFamilies returns the number of families that survived construction.
func (c *Collection) NumFamilies() int { return len(c.families) }

// Family returns the family at priority position i.
func (c *Collection) Family(i int) fontfall.Family { return c.families[i] }

// BaseFontFaked returns the closest match for style from the default
// family, with the fakery needed to approximate the style.
func (c *Collection) BaseFontFaked(style fontfall.Style) fontfall.FakedFont {
	if len(c.families) == 0 {
		return fontfall.FakedFont{}
	}
	font, _ := c.families[0].ClosestMatch(style)
	return font
}

// BaseFont returns the closest match for style from the default family.
func (c *Collection) BaseFont(style fontfall.Style) fontfall.Font {
	return c.BaseFontFaked(style).Font
}

// HasVariationSelector reports whether any family supports the exact
// variation sequence (base, sel). Unlike resolution this scans the full
// family list: the page index does not track variation sequences, and the
// sequences are rare enough that exactness wins over speed.
func (c *Collection) HasVariationSelector(base, sel rune) bool {
	if !isVariationSelector(sel) {
		return false
	}
	if base >= c.maxChar {
		return false
	}
	for _, fam := range c.families {
		if fam.HasVariationSequence(base, sel) {
			return true
		}
	}
	return false
}

// PurgeCaches drops cached rendering state in every family.
func (c *Collection) PurgeCaches() {
	tracer().Debugf("collection #%d: purging family caches", c.id)
	for _, fam := range c.families {
		fam.PurgeCaches()
	}
}
