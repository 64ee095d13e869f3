package collection

import (
	"testing"
	"unicode/utf16"

	"github.com/npillmayer/fontfall"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// runSpec is an expected run: the resolved font's name and the code-unit
// interval. An empty name expects a run without a font.
type runSpec struct {
	font  string
	start int
	end   int
}

func checkRuns(t *testing.T, runs []Run, expected []runSpec) {
	if len(runs) != len(expected) {
		t.Fatalf("expected %d runs, got %d: %v", len(expected), len(runs), runs)
	}
	for i, exp := range expected {
		run := runs[i]
		if run.Start != exp.start || run.End != exp.end {
			t.Errorf("run %d: expected [%d,%d), got [%d,%d)", i,
				exp.start, exp.end, run.Start, run.End)
		}
		switch {
		case exp.font == "" && !run.Font.IsNone():
			t.Errorf("run %d: expected no font, got %s", i, run.Font.Font.Fontname())
		case exp.font != "" && run.Font.IsNone():
			t.Errorf("run %d: expected font %s, got none", i, exp.font)
		case exp.font != "" && run.Font.Font.Fontname() != exp.font:
			t.Errorf("run %d: expected font %s, got %s", i, exp.font, run.Font.Font.Fontname())
		}
	}
}

func TestItemizeEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontfall.collection")
	defer teardown()
	//
	reg := fontfall.NewRegistry()
	coll := mustCollection(t, reg, newStubFamily("latin", span('A', 'Z')))
	if runs := coll.Itemize(nil, fontfall.Style{}); runs != nil {
		t.Errorf("expected no runs for empty input, got %v", runs)
	}
	if runs := coll.ItemizeString("", fontfall.Style{}); runs != nil {
		t.Errorf("expected no runs for the empty string, got %v", runs)
	}
}

func TestItemizeSplitsOnFamilyChange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontfall.collection")
	defer teardown()
	//
	reg := fontfall.NewRegistry()
	upper := newStubFamily("upper", span('A', 'Z'))
	lower := newStubFamily("lower", span('a', 'z'))
	coll := mustCollection(t, reg, upper, lower)

	runs := coll.ItemizeString("Ab", fontfall.Style{})
	checkRuns(t, runs, []runSpec{
		{"upper", 0, 1},
		{"lower", 1, 2},
	})
}

func TestItemizeDefaultFamilyOverrides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontfall.collection")
	defer teardown()
	//
	def := newStubFamily("default", one('A'))
	both := newStubFamily("both", span('A', 'B'))
	coll := mustCollection(t, fontfall.NewRegistry(), def, both)

	// 'A' goes to the default family even though "both" covers it too
	runs := coll.ItemizeString("AB", fontfall.Style{})
	checkRuns(t, runs, []runSpec{
		{"default", 0, 1},
		{"both", 1, 2},
	})
}

func TestItemizeStickyPunctuation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontfall.collection")
	defer teardown()
	//
	reg := fontfall.NewRegistry()
	upper := newStubFamily("upper", span('A', 'Z'), one(','))
	lower := newStubFamily("lower", span('a', 'z'), one(','))
	coll := mustCollection(t, reg, upper, lower)

	// Without stickiness the comma would re-resolve to the default family
	// and split the run after 'a'.
	runs := coll.ItemizeString("a,B", fontfall.Style{})
	checkRuns(t, runs, []runSpec{
		{"lower", 0, 2},
		{"upper", 2, 3},
	})
}

func TestItemizeStickyNeedsCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontfall.collection")
	defer teardown()
	//
	reg := fontfall.NewRegistry()
	upper := newStubFamily("upper", span('A', 'Z'), one(','))
	lower := newStubFamily("lower", span('a', 'z'))
	coll := mustCollection(t, reg, upper, lower)

	// The active family does not cover the comma, so it re-resolves.
	runs := coll.ItemizeString("a,b", fontfall.Style{})
	checkRuns(t, runs, []runSpec{
		{"lower", 0, 1},
		{"upper", 1, 2},
		{"lower", 2, 3},
	})
}

func TestItemizeSelectorNeverSplitsRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontfall.collection")
	defer teardown()
	//
	reg := fontfall.NewRegistry()
	upper := newStubFamily("upper", span('A', 'Z'))
	lower := newStubFamily("lower", span('a', 'z'))
	coll := mustCollection(t, reg, upper, lower)

	// No family covers U+FE0F, but a selector belongs to the character
	// before it unconditionally.
	runs := coll.ItemizeString("A️", fontfall.Style{})
	checkRuns(t, runs, []runSpec{
		{"upper", 0, 2},
	})
}

func TestItemizeSelectorLookahead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontfall.collection")
	defer teardown()
	//
	reg := fontfall.NewRegistry()
	heart := rune(0x2764)
	def := newStubFamily("default", one('Z'))
	plain := newStubFamily("plain", one(heart))
	sequenced := newStubFamily("sequenced", one('Z')).withSequence(heart, 0xFE0F)
	coll := mustCollection(t, reg, def, plain, sequenced)

	// The base character alone would resolve to "plain"; the selector after
	// it pulls the whole pair to the sequence-aware family.
	runs := coll.ItemizeString("❤️", fontfall.Style{})
	checkRuns(t, runs, []runSpec{
		{"sequenced", 0, 2},
	})
}

func TestItemizeKeycapMerge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontfall.collection")
	defer teardown()
	//
	reg := fontfall.NewRegistry()
	digits := newStubFamily("digits", span('0', '9'))
	keycaps := newStubFamily("keycaps", span('0', '9'), one(0x20E3))
	coll := mustCollection(t, reg, digits, keycaps)

	// "3" + combining keycap: the digit moves over to the keycap's family
	// so both render together.
	runs := coll.ItemizeString("3⃣", fontfall.Style{})
	checkRuns(t, runs, []runSpec{
		{"keycaps", 0, 2},
	})
}

func TestItemizeKeycapMergeKeepsPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontfall.collection")
	defer teardown()
	//
	reg := fontfall.NewRegistry()
	latin := newStubFamily("latin", span('A', 'Z'), span('0', '9'))
	keycaps := newStubFamily("keycaps", span('0', '9'), one(0x20E3))
	coll := mustCollection(t, reg, latin, keycaps)

	// Only the digit right before the keycap migrates, the rest of its run
	// stays behind.
	runs := coll.ItemizeString("A3⃣", fontfall.Style{})
	checkRuns(t, runs, []runSpec{
		{"latin", 0, 1},
		{"keycaps", 1, 3},
	})
}

func TestItemizeSurrogatePairOffsets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontfall.collection")
	defer teardown()
	//
	reg := fontfall.NewRegistry()
	latin := newStubFamily("latin", span('A', 'Z'))
	emoji := newStubFamily("emoji", span(0x1F600, 0x1F64F)).withEmoji()
	coll := mustCollection(t, reg, latin, emoji)

	// The emoji occupies two code units; offsets count units, not runes.
	runs := coll.ItemizeString("\U0001F600A", fontfall.Style{})
	checkRuns(t, runs, []runSpec{
		{"emoji", 0, 2},
		{"latin", 2, 3},
	})
}

func TestItemizeUnpairedSurrogate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontfall.collection")
	defer teardown()
	//
	reg := fontfall.NewRegistry()
	latin := newStubFamily("latin", span('A', 'Z'))
	coll := mustCollection(t, reg, latin)

	// A lone high surrogate decodes to U+FFFD, which nobody covers here.
	runs := coll.Itemize([]uint16{0xD800, 'A'}, fontfall.Style{})
	checkRuns(t, runs, []runSpec{
		{"", 0, 1},
		{"latin", 1, 2},
	})
}

func TestItemizeSharesFontlessRuns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontfall.collection")
	defer teardown()
	//
	reg := fontfall.NewRegistry()
	latin := newStubFamily("latin", span('A', 'Z'))
	coll := mustCollection(t, reg, latin)

	runs := coll.Itemize([]uint16{0xD800, 0xD800}, fontfall.Style{})
	checkRuns(t, runs, []runSpec{
		{"", 0, 2},
	})
}

func TestItemizeRunsAreContiguous(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontfall.collection")
	defer teardown()
	//
	reg := fontfall.NewRegistry()
	latin := newStubFamily("latin", span('A', 'Z'), span('a', 'z'), one(' '), one(','), one('!'))
	cjk := newStubFamily("cjk", span(0x4E00, 0x9FFF))
	emoji := newStubFamily("emoji", span(0x1F600, 0x1F64F)).withEmoji()
	coll := mustCollection(t, reg, latin, cjk, emoji)

	text := utf16.Encode([]rune("Hi, 世界! \U0001F600"))
	runs := coll.Itemize(text, fontfall.Style{})
	if len(runs) < 3 {
		t.Fatalf("expected at least 3 runs, got %d: %v", len(runs), runs)
	}
	if runs[0].Start != 0 {
		t.Errorf("expected the first run to start at 0, got %d", runs[0].Start)
	}
	for i, run := range runs {
		if run.Start >= run.End {
			t.Errorf("run %d is empty: [%d,%d)", i, run.Start, run.End)
		}
		if i > 0 && run.Start != runs[i-1].End {
			t.Errorf("gap or overlap before run %d: %d after %d", i, run.Start, runs[i-1].End)
		}
	}
	if last := runs[len(runs)-1].End; last != len(text) {
		t.Errorf("expected the last run to end at %d, got %d", len(text), last)
	}
}

func TestItemizeStringMatchesEncodedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontfall.collection")
	defer teardown()
	//
	reg := fontfall.NewRegistry()
	latin := newStubFamily("latin", span('A', 'Z'), span('a', 'z'))
	emoji := newStubFamily("emoji", span(0x1F600, 0x1F64F)).withEmoji()
	coll := mustCollection(t, reg, latin, emoji)

	s := "Go\U0001F600go"
	fromString := coll.ItemizeString(s, fontfall.Style{})
	fromUnits := coll.Itemize(utf16.Encode([]rune(s)), fontfall.Style{})
	if len(fromString) != len(fromUnits) {
		t.Fatalf("expected %d runs, got %d", len(fromUnits), len(fromString))
	}
	for i := range fromString {
		if fromString[i] != fromUnits[i] {
			t.Errorf("run %d differs: %v vs %v", i, fromString[i], fromUnits[i])
		}
	}
}
