package collection

import (
	"unicode/utf8"

	"github.com/npillmayer/fontfall"
	"github.com/npillmayer/fontfall/fontlang"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Score weights. Supporting the exact variation sequence outranks every
// combination of language and presentation bonuses; matching the requested
// presentation style outranks any language match.
const (
	scoreVariationGlyph = 8
	scorePresentation   = 4
)

// ResolveFamily returns the family best suited to render cp, optionally as
// the variation sequence (cp, vs); vs == 0 means no selector. A nil result
// means no family covers the codepoint, which can only happen at or beyond
// the collection's coverage bound.
//
// Fallback is a fixed chain: the full sequence first, then the bare
// codepoint, then the first codepoint of its canonical decomposition, and
// finally the default family, which renders *something* for any character
// below the coverage bound.
func (c *Collection) ResolveFamily(cp, vs rune, style fontfall.Style) fontfall.Family {
	if cp >= c.maxChar {
		return nil
	}
	requested := c.requestedLanguage(style.LangListID)
	if vs != 0 {
		// The page index does not track variation-sequence coverage, so
		// scan the full list: a family may support the sequence without
		// plain coverage of the base character.
		if fam := c.scanFamilies(c.families, cp, vs, requested, style.Variant); fam != nil {
			return fam
		}
	}
	if fam := c.scanFamilies(c.pageFamilies(cp), cp, 0, requested, style.Variant); fam != nil {
		return fam
	}
	// One decomposition hop suffices: the first codepoint of an NFD
	// decomposition never decomposes further.
	if d := firstDecomposed(cp); d != 0 {
		if d >= c.maxChar {
			return nil
		}
		if fam := c.scanFamilies(c.pageFamilies(d), d, 0, requested, style.Variant); fam != nil {
			return fam
		}
	}
	// Every character must render as something.
	return c.families[0]
}

// pageFamilies returns the indexed candidates for cp's page. Callers ensure
// cp < maxChar.
func (c *Collection) pageFamilies(cp rune) []fontfall.Family {
	r := c.ranges[cp>>pageBits]
	return c.familyVec[r.start:r.end]
}

// scanFamilies grades each candidate covering cp (or the sequence (cp, vs))
// and returns the best one, nil if none qualifies. The default family wins
// outright; among the rest, ties keep the earliest candidate.
func (c *Collection) scanFamilies(candidates []fontfall.Family, cp, vs rune,
	requested language.Tag, variant fontfall.Variant) fontfall.Family {
	var best fontfall.Family
	bestScore := -1
	for _, fam := range candidates {
		hasVSGlyph := vs != 0 && fam.HasVariationSequence(cp, vs)
		if !hasVSGlyph && !fam.CoverageContains(cp) {
			continue
		}
		if (vs == 0 || hasVSGlyph) && fam == c.families[0] {
			return fam
		}
		score := fontlang.Match(requested, fam.DeclaredLanguage()) * 2
		if v := fam.DeclaredVariant(); v == fontfall.VariantDefault || v == variant {
			score++
		}
		if hasVSGlyph {
			score += scoreVariationGlyph
		} else if (vs == charEmojiPresentation && fam.IsEmojiFlagged()) ||
			(vs == charTextPresentation && !fam.IsEmojiFlagged()) {
			score += scorePresentation
		}
		if score > bestScore {
			bestScore = score
			best = fam
		}
	}
	return best
}

// requestedLanguage returns the first language of the requested list. Only
// the first entry takes part in scoring; additional entries are accepted
// but not consulted.
func (c *Collection) requestedLanguage(listID uint32) language.Tag {
	langs := c.registry.LanguageList(listID)
	if len(langs) == 0 {
		return language.Und
	}
	return langs[0]
}

// firstDecomposed returns the first codepoint of cp's canonical (NFD)
// decomposition, or 0 when cp does not decompose.
func firstDecomposed(cp rune) rune {
	s := string(cp)
	d := norm.NFD.String(s)
	if d == s {
		return 0
	}
	first, _ := utf8.DecodeRuneInString(d)
	return first
}
