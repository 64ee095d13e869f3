package family

import (
	"testing"

	"github.com/npillmayer/fontfall"
	"github.com/npillmayer/fontfall/coverage"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test fixtures -----------------------------------------------------

type stubFont struct {
	name   string
	purged int
}

func (s *stubFont) Fontname() string { return s.name }
func (s *stubFont) PurgeCaches()     { s.purged++ }

type stubVariations map[[2]rune]bool

func (v stubVariations) HasVariationSequence(base, sel rune) bool {
	return v[[2]rune{base, sel}]
}

// letters is the inclusive coverage interval [lo, hi].
func letters(lo, hi rune) coverage.Set {
	return coverage.NewSet(coverage.Range{Lo: lo, Hi: hi + 1})
}

// --- Test Suite Preparation ---------------------------------------------

type FamilyTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestFamilyFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontfall.family")
	defer teardown()
	suite.Run(t, new(FamilyTestEnviron))
}

// --- Tests ----------------------------------------------------------------

func (env *FamilyTestEnviron) TestNewRequiresFaces() {
	_, err := New("empty", Config{})
	env.Require().ErrorIs(err, ErrNoFaces)
	_, err = New("fontless", Config{}, Face{Font: nil})
	env.Require().ErrorIs(err, ErrNoFaces, "faces without fonts are dropped")
}

func (env *FamilyTestEnviron) TestUnionCoverage() {
	fam, err := New("duo", Config{},
		Face{Font: &stubFont{name: "regular"}, Coverage: letters('a', 'm')},
		Face{Font: &stubFont{name: "bold"}, Weight: 700, Coverage: letters('n', 'z')},
	)
	env.Require().NoError(err)
	env.True(fam.CoverageContains('a'))
	env.True(fam.CoverageContains('z'))
	env.False(fam.CoverageContains('A'))
	env.Equal(rune('z'+1), fam.CoverageUpperBound())
	env.Equal(rune('n'), fam.NextCoveredCodepoint('n'))
	env.Equal(coverage.None, fam.NextCoveredCodepoint('z'+1))
}

func (env *FamilyTestEnviron) TestClosestMatchPicksNearestWeight() {
	regular := &stubFont{name: "regular"}
	bold := &stubFont{name: "bold"}
	fam, err := New("weights", Config{},
		Face{Font: regular, Weight: 400},
		Face{Font: bold, Weight: 700},
	)
	env.Require().NoError(err)

	got, ok := fam.ClosestMatch(fontfall.Style{Weight: 700})
	env.Require().True(ok)
	env.Equal("bold", got.Font.Fontname())
	env.Equal(fontfall.Fakery(0), got.Fakery, "a real bold face needs no fakery")

	got, _ = fam.ClosestMatch(fontfall.Style{})
	env.Equal("regular", got.Font.Fontname(), "zero style means weight 400")

	got, _ = fam.ClosestMatch(fontfall.Style{Weight: 550})
	env.Equal("regular", got.Font.Fontname(), "equidistant weights keep the earlier face")
}

func (env *FamilyTestEnviron) TestClosestMatchFakery() {
	fam, err := New("regular-only", Config{},
		Face{Font: &stubFont{name: "regular"}, Weight: 400},
	)
	env.Require().NoError(err)

	got, _ := fam.ClosestMatch(fontfall.Style{Weight: 700})
	env.True(got.Fakery.Bold(), "missing bold two grades away gets faked")
	env.False(got.Fakery.Italic())

	got, _ = fam.ClosestMatch(fontfall.Style{Weight: 500})
	env.False(got.Fakery.Bold(), "a 500 request is not a bold request")

	got, _ = fam.ClosestMatch(fontfall.Style{Italic: true})
	env.True(got.Fakery.Italic())

	got, _ = fam.ClosestMatch(fontfall.Style{Weight: 700, Italic: true})
	env.Equal(fontfall.FakeBold|fontfall.FakeItalic, got.Fakery)
}

func (env *FamilyTestEnviron) TestClosestMatchPrefersTrueItalic() {
	fam, err := New("slants", Config{},
		Face{Font: &stubFont{name: "regular"}, Weight: 400},
		Face{Font: &stubFont{name: "italic"}, Weight: 400, Italic: true},
	)
	env.Require().NoError(err)
	got, _ := fam.ClosestMatch(fontfall.Style{Italic: true})
	env.Equal("italic", got.Font.Fontname())
	env.Equal(fontfall.Fakery(0), got.Fakery)
}

func (env *FamilyTestEnviron) TestVariationSequences() {
	seqs := stubVariations{{0x2764, 0xFE0F}: true}
	fam, err := New("emoji", Config{Emoji: true},
		Face{Font: &stubFont{name: "emoji"}, Coverage: letters('a', 'b'), Variations: seqs},
		Face{Font: &stubFont{name: "plain"}},
	)
	env.Require().NoError(err)
	env.True(fam.HasVariationSequence(0x2764, 0xFE0F))
	env.False(fam.HasVariationSequence(0x2764, 0xFE0E))
	env.True(fam.IsEmojiFlagged())
}

func (env *FamilyTestEnviron) TestPurgeCachesReachesFonts() {
	a, b := &stubFont{name: "a"}, &stubFont{name: "b"}
	fam, err := New("purgeable", Config{},
		Face{Font: a},
		Face{Font: b},
	)
	env.Require().NoError(err)
	fam.PurgeCaches()
	fam.PurgeCaches()
	env.Equal(2, a.purged)
	env.Equal(2, b.purged)
}
