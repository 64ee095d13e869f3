package fontfall

// Font is a handle to a single type face held by a family. The selection
// machinery treats it as opaque and only ever passes it through to callers;
// concrete backends (package otface, or a renderer's own face type) attach
// the actual rendering data.
type Font interface {
	Fontname() string
}

// Fakery records synthetic style adjustments a renderer must apply when a
// family has no face close enough to a requested style: emboldening and/or
// slanting the closest real face.
type Fakery uint8

const (
	FakeBold Fakery = 1 << iota
	FakeItalic
)

func (f Fakery) Bold() bool   { return f&FakeBold != 0 }
func (f Fakery) Italic() bool { return f&FakeItalic != 0 }

func (f Fakery) String() string {
	switch {
	case f.Bold() && f.Italic():
		return "fake bold+italic"
	case f.Bold():
		return "fake bold"
	case f.Italic():
		return "fake italic"
	}
	return "none"
}

// FakedFont pairs a font with the fakery needed to approximate the style it
// was selected for. The zero value means "no font".
type FakedFont struct {
	Font   Font
	Fakery Fakery
}

// IsNone reports whether the handle carries no font at all.
func (ff FakedFont) IsNone() bool {
	return ff.Font == nil
}
