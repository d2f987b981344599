package cell

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB terminal color. The zero value is "unset" and
// inherits whatever is beneath it when styles are layered.
type Color struct {
	R, G, B uint8
	set     bool
}

// RGB creates a set color from components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// ParseHex parses "#rrggbb" or "#rgb" into a Color.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// IsSet returns true if the color carries a value.
func (c Color) IsSet() bool {
	return c.set
}

// Hex returns the "#rrggbb" form. Unset colors return "".
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return c.colorful().Hex()
}

// Blend interpolates toward other in RGB space. t=0 returns c, t=1
// returns other. Unset operands return the other color unchanged.
func (c Color) Blend(other Color, t float64) Color {
	if !c.set {
		return other
	}
	if !other.set {
		return c
	}
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	r, g, b := c.colorful().BlendRgb(other.colorful(), t).Clamped().RGB255()
	return RGB(r, g, b)
}

// UnmarshalText parses a hex color, so Color fields decode directly
// from TOML strings. Empty text leaves the color unset.
func (c *Color) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = Color{}
		return nil
	}
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText emits the hex form for serialization.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// Tint layers an overlay color at the given alpha on top of c.
func (c Color) Tint(overlay Color, alpha float64) Color {
	return c.Blend(overlay, alpha)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
