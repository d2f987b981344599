// Package theme defines semantic colors for rendered surfaces and
// loads user overrides from TOML files.
package theme

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/weft/cell"
)

// Theme defines semantic colors for rendered components
type Theme struct {
	Bg Color `toml:"bg"`
	Fg Color `toml:"fg"`

	Border  Color `toml:"border"`
	FocusBg Color `toml:"focus_bg"`

	HeaderBg Color `toml:"header_bg"`
	HeaderFg Color `toml:"header_fg"`
	StatusFg Color `toml:"status_fg"`
	HintFg   Color `toml:"hint_fg"`

	Accent  Color `toml:"accent"`
	Error   Color `toml:"error"`
	Warning Color `toml:"warning"`

	ScrollThumb Color `toml:"scroll_thumb"`
	ScrollTrack Color `toml:"scroll_track"`
}

// Color aliases the cell color so TOML field declarations stay short.
type Color = cell.Color

// Default provides reasonable dark-background defaults
func Default() Theme {
	return Theme{
		Bg:          cell.RGB(20, 20, 30),
		Fg:          cell.RGB(200, 200, 200),
		Border:      cell.RGB(60, 80, 100),
		FocusBg:     cell.RGB(30, 35, 45),
		HeaderBg:    cell.RGB(40, 60, 90),
		HeaderFg:    cell.RGB(255, 255, 255),
		StatusFg:    cell.RGB(140, 140, 140),
		HintFg:      cell.RGB(100, 180, 200),
		Accent:      cell.RGB(80, 160, 220),
		Error:       cell.RGB(255, 80, 80),
		Warning:     cell.RGB(220, 180, 80),
		ScrollThumb: cell.RGB(100, 100, 120),
		ScrollTrack: cell.RGB(35, 35, 45),
	}
}

// Load reads a TOML theme file over the defaults, so files only need
// to name the colors they change. Colors are "#rrggbb" strings.
func Load(path string) (Theme, error) {
	t := Default()
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}

// LoadOrDefault loads a theme file if it exists, falling back to the
// defaults for a missing path. Parse errors are still reported.
func LoadOrDefault(path string) (Theme, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// FgStyle returns the theme's base foreground style.
func (t Theme) FgStyle() cell.Style {
	return cell.Style{Fg: t.Fg}
}

// BaseStyle returns the theme's base foreground-on-background style.
func (t Theme) BaseStyle() cell.Style {
	return cell.Style{Fg: t.Fg, Bg: t.Bg}
}

// BorderStyle returns the border color on the base background.
func (t Theme) BorderStyle() cell.Style {
	return cell.Style{Fg: t.Border, Bg: t.Bg}
}
