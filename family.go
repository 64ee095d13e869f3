package fontfall

import "golang.org/x/text/language"

// Family is the capability set a font family must offer to take part in
// font selection. Implementations must be safe for concurrent use; any
// internal cache mutation (see PurgeCaches) has to be guarded by the
// implementation itself.
//
// Package family provides the standard implementation; tests and embedders
// may supply their own.
type Family interface {
	// CoverageContains reports whether the family renders cp natively.
	CoverageContains(cp rune) bool

	// CoverageUpperBound returns one past the highest covered codepoint,
	// 0 if the family covers nothing.
	CoverageUpperBound() rune

	// NextCoveredCodepoint returns the smallest covered codepoint at or
	// after from, or coverage.None when coverage is exhausted.
	NextCoveredCodepoint(from rune) rune

	// HasVariationSequence reports whether the family maps the exact
	// variation sequence (base, sel) to a glyph of its own.
	HasVariationSequence(base, sel rune) bool

	// ClosestMatch returns the family's font closest to style, together
	// with the fakery needed to approximate it. ok is false when the
	// family has no matchable font at all.
	ClosestMatch(style Style) (font FakedFont, ok bool)

	// DeclaredLanguage returns the language the family declares itself
	// for, language.Und when undeclared.
	DeclaredLanguage() language.Tag

	// DeclaredVariant returns the UI variant the family is cut for.
	DeclaredVariant() Variant

	// IsEmojiFlagged reports whether the family is an emoji font,
	// preferring emoji presentation (U+FE0F) over text presentation.
	IsEmojiFlagged() bool

	// PurgeCaches drops internal caches of derived rendering state, if
	// any. Purged state is re-created on demand.
	PurgeCaches()
}
