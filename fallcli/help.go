package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "resolve", "fallback", "score":
		pterm.Info.Println("Family Resolution")
		pterm.Println(`
	'resolve <char> [<selector>]' finds the family that will render a character.
	Candidate families are ranked by a score:

	    +2  the family declares the first requested language
	    +1  the family's variant matches the requested one (or is default)
	    +8  the family maps the exact <char, selector> variation sequence
	    +4  the selector is a presentation selector (U+FE0E text / U+FE0F
	        emoji) and the family's emoji flag agrees with it

	Ties keep the family listed first. A character no candidate covers is
	retried with its canonical decomposition, and as a last resort the
	default family (the one listed first) takes the run.
	`)
	case "itemize", "runs", "run":
		pterm.Info.Println("Itemization")
		pterm.Println(`
	'itemize <text>' splits text into runs, one per consecutive stretch
	rendered by the same family. Offsets are UTF-16 code units, so a
	character outside the BMP counts as two units.

	Spacing marks, bracket pairs and other inherited punctuation stick to
	the active run as long as the active family covers them. Variation
	selectors always stick to their base character, and U+20E3 COMBINING
	ENCLOSING KEYCAP pulls its base character into the keycap family's run.
	`)
	case "style", "lang", "weight", "italic", "variant":
		pterm.Info.Println("Selection Style")
		pterm.Println(`
	Every query runs against the current style, shown above the prompt.

	    lang <tags>      requested languages, comma separated (e.g. 'ja,en')
	    weight <n>       requested weight, 100..900 (400 normal, 700 bold)
	    italic [on|off]  toggle or set the italic request
	    variant <v>      'default', 'compact' or 'elegant'

	A family without a face close to the requested style answers with its
	closest face plus a fakery note (synthetic bold and/or italic).
	`)
	case "char", "chars", "characters":
		pterm.Info.Println("Writing Characters")
		pterm.Println(`
	Commands taking characters accept them verbatim ('A', '世') or as
	hexadecimal codepoints: 'U+1F600', '0x3042' or plain '3042'.

	Useful selectors: U+FE0E requests text presentation, U+FE0F requests
	emoji presentation, U+FE00..U+FE0F and U+E0100..U+E01EF are the
	variation selectors a font may map to dedicated glyphs.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	families             list the families of the collection
	base                 show the default family's font for the current style
	coverage <char>      show which families cover a character
	resolve <char> [vs]  run family resolution for a character
	vs <char> <sel>      check variation sequence support
	itemize <text>       split text into same-font runs
	lang <tags>          set the requested languages
	weight <n>           set the requested weight
	italic [on|off]      set the italic request
	variant <v>          set the requested variant
	purge                drop cached font data
	help [topic]         topics: resolve, itemize, style, chars
	quit                 leave (or <ctrl>D)
	`)
	}
}
