package collection

import (
	"unicode"
	"unicode/utf16"

	"github.com/npillmayer/fontfall"
)

// Characters with special roles during itemization.
const (
	charNoBreakSpace       = 0x00A0
	charZeroWidthNonJoiner = 0x200C
	charZeroWidthJoiner    = 0x200D
	charHyphen             = 0x2010
	charNoBreakHyphen      = 0x2011
	charCombiningKeycap    = 0x20E3
	charTextPresentation   = 0xFE0E // variation selector 15
	charEmojiPresentation  = 0xFE0F // variation selector 16
)

// endOfText follows the last decoded codepoint as the loop sentinel.
const endOfText rune = -1

// isStickyWhitelisted lists codepoints that extend the run in progress
// instead of triggering re-resolution, provided the active family covers
// them. They are all characters that read as part of their surroundings and
// look wrong in a different font than their neighbors.
func isStickyWhitelisted(cp rune) bool {
	switch cp {
	case '!', ',', '-', '.', ':', ';', '?',
		charNoBreakSpace,
		charZeroWidthNonJoiner, charZeroWidthJoiner,
		charCombiningKeycap,
		charHyphen, charNoBreakHyphen:
		return true
	}
	return false
}

// isVariationSelector reports membership in the variation-selector blocks
// VS1…VS16 and VS17…VS256.
func isVariationSelector(cp rune) bool {
	return (0xFE00 <= cp && cp <= 0xFE0F) || (0xE0100 <= cp && cp <= 0xE01EF)
}

// Run is a maximal span of text rendered with one font. Start and End are
// UTF-16 code-unit offsets, End exclusive. A zero Font marks a span no
// family covers.
type Run struct {
	Font  fontfall.FakedFont
	Start int
	End   int
}

// decodeAt decodes the codepoint starting at code-unit offset i and returns
// it with the offset just past it. Unpaired surrogates decode leniently to
// U+FFFD, one code unit at a time.
func decodeAt(text []uint16, i int) (rune, int) {
	cp := rune(text[i])
	if utf16.IsSurrogate(cp) {
		if i+1 < len(text) {
			if r := utf16.DecodeRune(cp, rune(text[i+1])); r != unicode.ReplacementChar {
				return r, i + 2
			}
		}
		return unicode.ReplacementChar, i + 1
	}
	return cp, i + 1
}

// utf16Len returns the encoded length of cp in code units.
func utf16Len(cp rune) int {
	if cp >= 0x10000 {
		return 2
	}
	return 1
}

// Itemize partitions UTF-16 encoded text into runs, each mapping to the
// font of the family resolved for its characters under style. Runs come out
// in input order, contiguous and non-overlapping, covering all of text.
// Empty input produces no runs.
func (c *Collection) Itemize(text []uint16, style fontfall.Style) []Run {
	if len(text) == 0 {
		return nil
	}
	var (
		runs       []Run
		lastFamily fontfall.Family
		prevCh     rune
	)
	nextCh, readLen := decodeAt(text, 0)
	nextPos := 0
	for {
		ch := nextCh
		pos := nextPos
		nextPos = readLen
		if readLen < len(text) {
			nextCh, readLen = decodeAt(text, readLen)
		} else {
			nextCh = endOfText
		}

		continueRun := false
		if lastFamily != nil {
			if isStickyWhitelisted(ch) {
				continueRun = lastFamily.CoverageContains(ch)
			} else if isVariationSelector(ch) {
				// A selector modifies the character before it and must
				// never leave that character's run.
				continueRun = true
			}
		}

		if !continueRun {
			vs := rune(0)
			if isVariationSelector(nextCh) {
				vs = nextCh
			}
			family := c.ResolveFamily(ch, vs, style)
			if pos == 0 || family != lastFamily {
				start := pos
				// A keycap encloses the character before it. Until
				// selection is cluster-aware, re-attach that character to
				// the keycap's run when the keycap's family covers it.
				if ch == charCombiningKeycap && pos != 0 && family != nil &&
					family.CoverageContains(prevCh) {
					prevLen := utf16Len(prevCh)
					last := len(runs) - 1
					runs[last].End -= prevLen
					if runs[last].Start == runs[last].End {
						runs = runs[:last]
					}
					start -= prevLen
				}
				var font fontfall.FakedFont
				if family != nil {
					font, _ = family.ClosestMatch(style)
				}
				runs = append(runs, Run{Font: font, Start: start, End: start})
			}
			lastFamily = family
		}
		prevCh = ch
		runs[len(runs)-1].End = nextPos

		if nextCh == endOfText {
			break
		}
	}
	return runs
}

// ItemizeString itemizes the UTF-16 encoding of s. Run offsets count UTF-16
// code units, not bytes of s.
func (c *Collection) ItemizeString(s string, style fontfall.Style) []Run {
	return c.Itemize(utf16.Encode([]rune(s)), style)
}
