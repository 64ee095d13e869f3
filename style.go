package fontfall

import "strconv"

// Variant selects between UI renditions of a family. Some families ship
// distinct compact and elegant cuts (differing in vertical metrics); most
// declare no variant at all.
type Variant uint8

const (
	VariantDefault Variant = iota
	VariantCompact
	VariantElegant
)

func (v Variant) String() string {
	switch v {
	case VariantCompact:
		return "compact"
	case VariantElegant:
		return "elegant"
	}
	return "default"
}

// Weights on the usual OpenType 100…900 scale.
const (
	WeightNormal = 400
	WeightBold   = 700
)

// Style is a font-selection request. The zero value requests normal weight,
// upright, any variant, with the empty language list (id 0).
type Style struct {
	LangListID uint32
	Variant    Variant
	Weight     int
	Italic     bool
}

// NormalizedWeight returns the requested weight with the zero value mapped
// to WeightNormal.
func (s Style) NormalizedWeight() int {
	if s.Weight == 0 {
		return WeightNormal
	}
	return s.Weight
}

func (s Style) String() string {
	str := strconv.Itoa(s.NormalizedWeight())
	if s.Italic {
		str += " italic"
	}
	if s.Variant != VariantDefault {
		str += " " + s.Variant.String()
	}
	return str
}
