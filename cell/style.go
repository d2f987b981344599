package cell

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
	AttrStrike    Attr = 1 << 6
)

// Style bundles foreground, background, and attributes for a text run.
// Unset colors inherit from the style beneath when layered via Apply.
type Style struct {
	Fg   Color
	Bg   Color
	Attr Attr
}

// StyleFg returns a style with only the foreground set.
func StyleFg(fg Color) Style {
	return Style{Fg: fg}
}

// StyleBg returns a style with only the background set.
func StyleBg(bg Color) Style {
	return Style{Bg: bg}
}

// IsZero returns true if the style has no colors or attributes set.
func (s Style) IsZero() bool {
	return !s.Fg.IsSet() && !s.Bg.IsSet() && s.Attr == AttrNone
}

// Apply layers over on top of s. Set colors in over win, unset colors
// fall back to s. Attributes are OR'd together.
func (s Style) Apply(over Style) Style {
	out := s
	if over.Fg.IsSet() {
		out.Fg = over.Fg
	}
	if over.Bg.IsSet() {
		out.Bg = over.Bg
	}
	out.Attr = s.Attr | over.Attr
	return out
}
