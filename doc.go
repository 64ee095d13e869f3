/*
Package fontfall selects fonts for characters.

Rendering a paragraph of text starts with a decision that has to be made
before any glyph shaping can happen: which font is each character drawn
with? Fontfall answers that question. Given a prioritized list of font
families and a style request (language, weight, italic, UI variant), it
resolves the best-matching family per character and partitions a text
buffer into contiguous runs that each map to a single resolved font.

The pieces:

▪︎ Package `collection` holds the core machinery: a page-indexed coverage
table built once per family list, a multi-factor scoring heuristic for
fallback (language, style variant, variation sequences, emoji
presentation), and a streaming itemizer over UTF-16 text with sticky
punctuation and emoji-keycap joining.

▪︎ Package `family` assembles font families from styled faces and picks the
face closest to a requested weight and slant, synthesizing bold or italic
when no face is close enough.

▪︎ Package `otface` backs faces with real OpenType fonts, deriving coverage
from the character map and variation-sequence support from the cmap's
format-14 subtable.

▪︎ Packages `coverage` and `fontlang` supply the codepoint-set and
language-scoring primitives.

This root package defines the types those packages share: the family
capability set, style requests, font handles with style fakery, and the
Registry that owns process-unique collection identifiers and interned
language lists. Fontfall deliberately stops short of shaping; its output
runs are meant to feed a shaper, not replace one.

# Status

The selection heuristics are stable. Per-cluster font selection (instead of
the keycap re-attachment workaround) is an open item.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontfall

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontfall'.
func tracer() tracing.Trace {
	return tracing.Select("fontfall")
}
