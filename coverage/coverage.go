/*
Package coverage stores the set of codepoints a font family can render.

Coverage sets are immutable, range-compressed and sorted, which keeps the
three queries the fallback machinery needs cheap: membership, the upper
coverage bound, and "next covered codepoint at or after". Sets are built
once per font (usually from a character map) and then shared freely; all
methods are safe for concurrent use.

# Status

Stable. The representation may grow a bitmap tier for dense BMP coverage
if range lists turn out too slow for CJK fonts.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package coverage

import (
	"math"
	"sort"
)

// None is returned by NextSet when no covered codepoint remains. Its value
// compares greater than every valid codepoint, so cursors held by callers
// stay usable in ordinary less-than comparisons.
const None rune = math.MaxInt32

// Range is a half-open codepoint interval [Lo, Hi).
type Range struct {
	Lo, Hi rune
}

// Set is an immutable set of codepoints, stored as sorted non-overlapping
// ranges. The zero value is the empty set.
type Set struct {
	ranges []Range
}

// NewSet builds a set from ranges in any order. Empty and overlapping input
// ranges are normalized away.
func NewSet(ranges ...Range) Set {
	rs := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if r.Hi > r.Lo {
			rs = append(rs, r)
		}
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].Lo < rs[j].Lo })
	merged := rs[:0]
	for _, r := range rs {
		if n := len(merged); n > 0 && r.Lo <= merged[n-1].Hi {
			if r.Hi > merged[n-1].Hi {
				merged[n-1].Hi = r.Hi
			}
			continue
		}
		merged = append(merged, r)
	}
	return Set{ranges: merged}
}

// Union merges any number of sets into one.
func Union(sets ...Set) Set {
	var all []Range
	for _, s := range sets {
		all = append(all, s.ranges...)
	}
	return NewSet(all...)
}

// IsEmpty reports whether the set contains no codepoints.
func (s Set) IsEmpty() bool {
	return len(s.ranges) == 0
}

// Count returns the number of codepoints in the set.
func (s Set) Count() int {
	n := 0
	for _, r := range s.ranges {
		n += int(r.Hi - r.Lo)
	}
	return n
}

// Contains reports whether cp is in the set.
func (s Set) Contains(cp rune) bool {
	i := sort.Search(len(s.ranges), func(i int) bool { return cp < s.ranges[i].Hi })
	return i < len(s.ranges) && s.ranges[i].Lo <= cp
}

// UpperBound returns one past the highest codepoint in the set, 0 for the
// empty set.
func (s Set) UpperBound() rune {
	if len(s.ranges) == 0 {
		return 0
	}
	return s.ranges[len(s.ranges)-1].Hi
}

// NextSet returns the smallest covered codepoint at or after from, or None
// when coverage is exhausted.
func (s Set) NextSet(from rune) rune {
	i := sort.Search(len(s.ranges), func(i int) bool { return from < s.ranges[i].Hi })
	if i == len(s.ranges) {
		return None
	}
	if from >= s.ranges[i].Lo {
		return from
	}
	return s.ranges[i].Lo
}

// Builder accumulates codepoints and ranges for a Set. The zero value is
// ready to use. Builders are not safe for concurrent use.
type Builder struct {
	ranges []Range
}

// Add inserts a single codepoint. Consecutive codepoints added in ascending
// order extend the pending range in place, which keeps cmap iteration cheap.
func (b *Builder) Add(cp rune) {
	if n := len(b.ranges); n > 0 && b.ranges[n-1].Hi == cp {
		b.ranges[n-1].Hi = cp + 1
		return
	}
	b.ranges = append(b.ranges, Range{Lo: cp, Hi: cp + 1})
}

// AddRange inserts the half-open interval [lo, hi).
func (b *Builder) AddRange(lo, hi rune) {
	if hi <= lo {
		return
	}
	b.ranges = append(b.ranges, Range{Lo: lo, Hi: hi})
}

// Build normalizes the accumulated ranges into a Set. The builder may be
// reused afterwards; the Set does not alias its storage.
func (b *Builder) Build() Set {
	return NewSet(b.ranges...)
}
