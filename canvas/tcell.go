package canvas

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weft/cell"
)

// TcellSurface presents the framebuffer to hosts that already run a
// tcell screen instead of consuming the ANSI byte stream. The whole
// grid is handed to tcell, which performs its own damage tracking.
type TcellSurface struct {
	screen tcell.Screen
}

// NewTcellSurface wraps an initialized tcell screen.
func NewTcellSurface(screen tcell.Screen) *TcellSurface {
	return &TcellSurface{screen: screen}
}

// Present writes the canvas contents to the screen and shows them.
func (t *TcellSurface) Present(c *Canvas) {
	size := c.Size()
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			cl := c.CellAt(x, y)
			if cl.IsContinuation() {
				continue
			}
			t.screen.SetContent(x, y, cl.Rune, nil, tcellStyle(cl.Style))
		}
	}
	t.screen.Show()
}

// tcellStyle converts a cell style to its tcell equivalent.
func tcellStyle(s cell.Style) tcell.Style {
	st := tcell.StyleDefault
	if s.Fg.IsSet() {
		st = st.Foreground(tcell.NewRGBColor(int32(s.Fg.R), int32(s.Fg.G), int32(s.Fg.B)))
	}
	if s.Bg.IsSet() {
		st = st.Background(tcell.NewRGBColor(int32(s.Bg.R), int32(s.Bg.G), int32(s.Bg.B)))
	}
	if s.Attr&cell.AttrBold != 0 {
		st = st.Bold(true)
	}
	if s.Attr&cell.AttrDim != 0 {
		st = st.Dim(true)
	}
	if s.Attr&cell.AttrItalic != 0 {
		st = st.Italic(true)
	}
	if s.Attr&cell.AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if s.Attr&cell.AttrBlink != 0 {
		st = st.Blink(true)
	}
	if s.Attr&cell.AttrReverse != 0 {
		st = st.Reverse(true)
	}
	if s.Attr&cell.AttrStrike != 0 {
		st = st.StrikeThrough(true)
	}
	return st
}
