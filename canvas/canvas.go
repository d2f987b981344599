package canvas

import (
	"bufio"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/weft/cell"
)

// Canvas is the framebuffer for one terminal surface: the current
// frame's cells, the previous frame's cells for diffing, and a stack
// of clip regions. A render pass owns the canvas exclusively for the
// duration of one frame.
type Canvas struct {
	width  int
	height int
	cells  []Cell
	prev   []Cell

	clipStack []Region
	borders   borderCache
	full      bool

	writer *bufio.Writer

	// Emitter state for coalescing across one flush
	cursorX     int
	cursorY     int
	cursorValid bool
	lastStyle   cell.Style
	lastValid   bool
}

// NewCanvas creates a canvas of the given size. The first flush is a
// full redraw.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		writer: bufio.NewWriterSize(io.Discard, 65536),
	}
	c.Resize(width, height)
	return c
}

// Size returns the surface dimensions.
func (c *Canvas) Size() Size {
	return Size{Width: c.width, Height: c.height}
}

// Resize reallocates the surface and forces the next flush to be a
// full redraw.
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	c.width = width
	c.height = height
	c.cells = make([]Cell, size)
	c.prev = make([]Cell, size)
	for i := range c.cells {
		c.cells[i] = blankCell
	}
	c.clipStack = c.clipStack[:0]
	c.Invalidate()
}

// Invalidate forces the next flush to rewrite every cell.
func (c *Canvas) Invalidate() {
	c.full = true
	c.cursorValid = false
	c.lastValid = false
}

// Clear resets the current frame's cells to blanks. Clip state is
// unaffected; callers clear at the start of a paint pass.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = blankCell
	}
}

// Fill paints every cell inside the current clip with a styled blank.
func (c *Canvas) Fill(style cell.Style) {
	clip := c.clip()
	for y := clip.Y; y < clip.Y+clip.Height; y++ {
		for x := clip.X; x < clip.X+clip.Width; x++ {
			c.set(x, y, Cell{Rune: ' ', Style: style})
		}
	}
}

// --- Clipping ---

// PushClip pushes the intersection of region and the current
// effective clip. Each stack entry embeds all ancestor constraints,
// so the effective clip is always just the top entry.
func (c *Canvas) PushClip(region Region) {
	c.clipStack = append(c.clipStack, region.Intersection(c.clip()))
}

// PopClip removes the most recent clip. Popping below the base is a
// no-op.
func (c *Canvas) PopClip() {
	if len(c.clipStack) > 0 {
		c.clipStack = c.clipStack[:len(c.clipStack)-1]
	}
}

// clip returns the effective clip: top of the stack, or the full
// surface when empty.
func (c *Canvas) clip() Region {
	if len(c.clipStack) > 0 {
		return c.clipStack[len(c.clipStack)-1]
	}
	return Region{Width: c.width, Height: c.height}
}

// writable reports whether (x, y) is inside both the effective clip
// and the physical surface.
func (c *Canvas) writable(x, y int) bool {
	if !c.clip().Contains(x, y) {
		return false
	}
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

func (c *Canvas) set(x, y int, cl Cell) {
	if !c.writable(x, y) {
		return
	}
	c.cells[y*c.width+x] = cl
}

// --- Drawing ---

// PutChar writes one glyph. Writes outside the clip or surface are
// silently dropped. A wide glyph with either half clipped degrades to
// a blank in its visible half, so no half glyph and no orphan
// continuation cell is ever written.
func (c *Canvas) PutChar(x, y int, r rune, style cell.Style) {
	w := runewidth.RuneWidth(r)
	if w <= 0 {
		return
	}
	if w == 1 {
		c.set(x, y, Cell{Rune: r, Style: style})
		return
	}

	leading := c.writable(x, y)
	trailing := c.writable(x+1, y)
	switch {
	case leading && trailing:
		c.set(x, y, Cell{Rune: r, Style: style})
		c.set(x+1, y, Cell{Rune: 0, Style: style})
	case leading:
		c.set(x, y, Cell{Rune: ' ', Style: style})
	case trailing:
		// A continuation without its leading cell would be invisible
		// to Flush
		c.set(x+1, y, Cell{Rune: ' ', Style: style})
	}
}

// PutStr writes a string left to right, advancing by display width.
// Out-of-bounds portions are dropped; the in-bounds portion is drawn.
// Cells hold a single rune, so zero-width combining marks are dropped
// rather than composed; pre-composed forms render as expected.
func (c *Canvas) PutStr(x, y int, s string, style cell.Style) {
	clip := c.clip()
	if y < clip.Y || y >= clip.Y+clip.Height || y < 0 || y >= c.height {
		return
	}
	col := x
	for _, r := range s {
		if col >= clip.X+clip.Width || col >= c.width {
			break
		}
		w := runewidth.RuneWidth(r)
		if w <= 0 {
			continue
		}
		c.PutChar(col, y, r, style)
		col += w
	}
}

// RenderStrip paints a strip's segments left to right at (x, y).
func (c *Canvas) RenderStrip(strip cell.Strip, x, y int) {
	col := x
	for _, seg := range strip.Segments() {
		c.PutStr(col, y, seg.Text(), seg.Style())
		col += seg.Width()
	}
}

// RenderStrips paints strips on successive lines starting at startY.
func (c *Canvas) RenderStrips(strips []cell.Strip, x, startY int) {
	for i, strip := range strips {
		c.RenderStrip(strip, x, startY+i)
	}
}

// --- Differential output ---

// Flush writes the difference between the current frame and the
// previous one to w: for each contiguous run of changed cells, one
// cursor-position directive, style directives only when the style
// changes, and the run's text. Identical frames emit nothing. The
// current buffer becomes the comparison baseline for the next flush.
func (c *Canvas) Flush(w io.Writer) error {
	bw := c.writer
	bw.Reset(w)
	emitted := false

	for y := 0; y < c.height; y++ {
		rowStart := y * c.width
		x := 0
		for x < c.width {
			idx := rowStart + x
			if !c.full && c.cells[idx] == c.prev[idx] {
				x++
				continue
			}
			if c.cells[idx].IsContinuation() {
				// Trailing half of a wide glyph; the leading cell's
				// write already covered it
				c.prev[idx] = c.cells[idx]
				x++
				continue
			}

			emitted = true
			if !c.cursorValid || x != c.cursorX || y != c.cursorY {
				if c.cursorValid && y == c.cursorY && x > c.cursorX {
					writeCursorForward(bw, x-c.cursorX)
				} else {
					writeCursorPos(bw, x, y)
				}
				c.cursorX = x
				c.cursorY = y
				c.cursorValid = true
			}

			for x < c.width {
				cidx := rowStart + x
				cl := c.cells[cidx]
				if !c.full && cl == c.prev[cidx] {
					break
				}
				if cl.IsContinuation() {
					c.prev[cidx] = cl
					x++
					continue
				}

				c.writeStyle(bw, cl.Style)
				if cl.Rune < 0x80 {
					bw.WriteByte(byte(cl.Rune))
				} else {
					bw.WriteRune(cl.Rune)
				}
				c.prev[cidx] = cl
				adv := runewidth.RuneWidth(cl.Rune)
				if adv < 1 {
					adv = 1
				}
				c.cursorX += adv
				x++
			}
		}
	}

	c.full = false
	if emitted {
		bw.Write(csiSGR0)
		c.lastValid = false
	}
	return bw.Flush()
}

// writeStyle emits one combined SGR sequence when the style differs
// from the last emitted style.
func (c *Canvas) writeStyle(bw *bufio.Writer, s cell.Style) {
	if c.lastValid && s == c.lastStyle {
		return
	}

	bw.Write(csi)
	bw.WriteByte('0')
	for bit, code := range attrCodes {
		if s.Attr&(1<<bit) != 0 {
			bw.WriteByte(';')
			bw.WriteByte(code)
		}
	}
	if s.Fg.IsSet() {
		bw.Write([]byte(";38;2;"))
		writeInt(bw, int(s.Fg.R))
		bw.WriteByte(';')
		writeInt(bw, int(s.Fg.G))
		bw.WriteByte(';')
		writeInt(bw, int(s.Fg.B))
	} else {
		bw.Write([]byte(";39"))
	}
	if s.Bg.IsSet() {
		bw.Write([]byte(";48;2;"))
		writeInt(bw, int(s.Bg.R))
		bw.WriteByte(';')
		writeInt(bw, int(s.Bg.G))
		bw.WriteByte(';')
		writeInt(bw, int(s.Bg.B))
	} else {
		bw.Write([]byte(";49"))
	}
	bw.WriteByte('m')

	c.lastStyle = s
	c.lastValid = true
}

// --- Inspection helpers ---

// CellAt returns the cell at (x, y), or a blank for out-of-range
// coordinates.
func (c *Canvas) CellAt(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return blankCell
	}
	return c.cells[y*c.width+x]
}

// RowString returns the runes of one row as a string, with wide-glyph
// continuations elided.
func (c *Canvas) RowString(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	out := make([]rune, 0, c.width)
	for x := 0; x < c.width; x++ {
		cl := c.cells[y*c.width+x]
		if cl.IsContinuation() {
			continue
		}
		out = append(out, cl.Rune)
	}
	return string(out)
}
