package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/pterm/pterm"
)

func familiesOp(intp *Intp, op *Op) (error, bool) {
	printFamilies(intp)
	return nil, false
}

func baseOp(intp *Intp, op *Op) (error, bool) {
	font := intp.coll.BaseFontFaked(intp.style)
	if font.IsNone() {
		return errors.New("default family has no usable font"), false
	}
	pterm.Printf("base font for style %s: %s\n", intp.style, formatFaked(font))
	return nil, false
}

func coverageOp(intp *Intp, op *Op) (err error, stop bool) {
	if op.noArg() {
		return errors.New("coverage needs a character argument"), false
	}
	var cp rune
	if cp, err = parseChar(op.arg); err != nil {
		return
	}
	printCoverage(intp, cp)
	return
}

func resolveOp(intp *Intp, op *Op) (err error, stop bool) {
	args := strings.Fields(op.arg)
	if len(args) == 0 {
		return errors.New("resolve needs a character argument"), false
	}
	var cp, vs rune
	if cp, err = parseChar(args[0]); err != nil {
		return
	}
	if len(args) > 1 {
		if vs, err = parseChar(args[1]); err != nil {
			return
		}
	}
	fam := intp.coll.ResolveFamily(cp, vs, intp.style)
	if fam == nil {
		pterm.Printf("no family found for %#U\n", cp)
		return
	}
	if vs != 0 {
		pterm.Printf("%#U with selector %#U resolves to family %s\n",
			cp, vs, intp.familyName(fam))
	} else {
		pterm.Printf("%#U resolves to family %s\n", cp, intp.familyName(fam))
	}
	if font, ok := fam.ClosestMatch(intp.style); ok {
		pterm.Printf("closest match for style %s: %s\n", intp.style, formatFaked(font))
	}
	return
}

func vsOp(intp *Intp, op *Op) (err error, stop bool) {
	args := strings.Fields(op.arg)
	if len(args) != 2 {
		return errors.New("vs needs a base character and a selector"), false
	}
	var base, sel rune
	if base, err = parseChar(args[0]); err != nil {
		return
	}
	if sel, err = parseChar(args[1]); err != nil {
		return
	}
	printVariationSupport(intp, base, sel)
	return
}

func itemizeOp(intp *Intp, op *Op) (error, bool) {
	if op.noArg() {
		return errors.New("itemize needs a text argument"), false
	}
	units := utf16.Encode([]rune(op.arg))
	runs := intp.coll.Itemize(units, intp.style)
	printRuns(intp, units, runs)
	return nil, false
}

func purgeOp(intp *Intp, op *Op) (error, bool) {
	intp.coll.PurgeCaches()
	pterm.Info.Println("purged font caches")
	return nil, false
}

// parseChar interprets s as a single character, given either verbatim or as
// a hexadecimal codepoint like 'U+1F600' or '0x3042' or '3042'.
func parseChar(s string) (rune, error) {
	hex := s
	switch {
	case strings.HasPrefix(s, "U+"), strings.HasPrefix(s, "u+"):
		hex = s[2:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		hex = s[2:]
	default:
		if r := []rune(s); len(r) == 1 {
			return r[0], nil
		}
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || n > 0x10FFFF {
		return 0, fmt.Errorf("cannot read '%s' as a character", s)
	}
	return rune(n), nil
}
