package main

import (
	"fmt"
	"strconv"
	"unicode/utf16"

	"github.com/npillmayer/fontfall"
	"github.com/npillmayer/fontfall/collection"
	"github.com/npillmayer/fontfall/coverage"
	"github.com/pterm/pterm"
	"golang.org/x/text/language"
)

func formatFaked(font fontfall.FakedFont) string {
	if font.IsNone() {
		return "<none>"
	}
	if font.Fakery == 0 {
		return font.Font.Fontname()
	}
	return fmt.Sprintf("%s (%s)", font.Font.Fontname(), font.Fakery)
}

func printFamilies(intp *Intp) {
	pterm.Printf("collection #%d has %d families\n", intp.coll.ID(), intp.coll.NumFamilies())
	data := [][]string{
		{"Index", "Family", "Faces", "Language", "Variant", "Emoji", "Bound", "Match"},
	}
	for i, fam := range intp.families {
		lang := "-"
		if fam.DeclaredLanguage() != language.Und {
			lang = fam.DeclaredLanguage().String()
		}
		emoji := "-"
		if fam.IsEmojiFlagged() {
			emoji = "yes"
		}
		match := "<none>"
		if font, ok := fam.ClosestMatch(intp.style); ok {
			match = formatFaked(font)
		}
		data = append(data, []string{
			strconv.Itoa(i),
			fam.Name(),
			strconv.Itoa(fam.NumFaces()),
			lang,
			fam.DeclaredVariant().String(),
			emoji,
			fmt.Sprintf("%#x", fam.CoverageUpperBound()),
			match,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printCoverage(intp *Intp, cp rune) {
	pterm.Printf("coverage of %#U\n", cp)
	data := [][]string{
		{"Family", "Covers", "Next covered", "Bound"},
	}
	for _, fam := range intp.families {
		covers := "no"
		if fam.CoverageContains(cp) {
			covers = "yes"
		}
		next := "-"
		if n := fam.NextCoveredCodepoint(cp); n != coverage.None {
			next = fmt.Sprintf("%#U", n)
		}
		data = append(data, []string{
			fam.Name(),
			covers,
			next,
			fmt.Sprintf("%#x", fam.CoverageUpperBound()),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printVariationSupport(intp *Intp, base, sel rune) {
	data := [][]string{
		{"Family", "Sequence"},
	}
	for _, fam := range intp.families {
		has := "no"
		if fam.HasVariationSequence(base, sel) {
			has = "yes"
		}
		data = append(data, []string{fam.Name(), has})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if intp.coll.HasVariationSelector(base, sel) {
		pterm.Printf("sequence <%#U, %#U> is supported\n", base, sel)
	} else {
		pterm.Printf("sequence <%#U, %#U> is not supported\n", base, sel)
	}
}

func printRuns(intp *Intp, units []uint16, runs []collection.Run) {
	if len(runs) == 0 {
		pterm.Println("no runs")
		return
	}
	pterm.Printf("%d runs over %d UTF-16 units\n", len(runs), len(units))
	data := [][]string{
		{"Run", "Span", "Text", "Font", "Fakery"},
	}
	for i, run := range runs {
		text := string(utf16.Decode(units[run.Start:run.End]))
		name, fakery := "<none>", "-"
		if !run.Font.IsNone() {
			name = run.Font.Font.Fontname()
			if run.Font.Fakery != 0 {
				fakery = run.Font.Fakery.String()
			}
		}
		data = append(data, []string{
			strconv.Itoa(i),
			fmt.Sprintf("[%d,%d)", run.Start, run.End),
			strconv.Quote(text),
			name,
			fakery,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
