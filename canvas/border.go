package canvas

import "github.com/lixenwraith/weft/cell"

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// borderCacheMax bounds the style-combined glyph cache; long-running
// sessions with many distinct border styles evict oldest entries
const borderCacheMax = 64

type borderKey struct {
	line  LineType
	style cell.Style
}

// borderCache is a canvas-owned, size-bounded lookup of pre-styled
// border cells, keyed by line type and style. Insertion order drives
// eviction.
type borderCache struct {
	entries map[borderKey][6]Cell
	order   []borderKey
}

func (bc *borderCache) get(line LineType, style cell.Style) [6]Cell {
	key := borderKey{line: line, style: style}
	if bc.entries == nil {
		bc.entries = make(map[borderKey][6]Cell)
	}
	if cells, ok := bc.entries[key]; ok {
		return cells
	}

	var cells [6]Cell
	for i, r := range boxChars[line] {
		cells[i] = Cell{Rune: r, Style: style}
	}

	if len(bc.order) >= borderCacheMax {
		oldest := bc.order[0]
		bc.order = bc.order[1:]
		delete(bc.entries, oldest)
	}
	bc.entries[key] = cells
	bc.order = append(bc.order, key)
	return cells
}

// DrawBorder draws a border around the region's edge. Regions smaller
// than 2x2 are skipped.
func (c *Canvas) DrawBorder(r Region, line LineType, style cell.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	if int(line) >= len(boxChars) {
		line = LineSingle
	}
	chars := c.borders.get(line, style)

	put := func(x, y int, cl Cell) {
		c.set(x, y, cl)
	}

	put(r.X, r.Y, chars[boxTL])
	put(r.X+r.Width-1, r.Y, chars[boxTR])
	put(r.X, r.Y+r.Height-1, chars[boxBL])
	put(r.X+r.Width-1, r.Y+r.Height-1, chars[boxBR])

	for x := r.X + 1; x < r.X+r.Width-1; x++ {
		put(x, r.Y, chars[boxH])
		put(x, r.Y+r.Height-1, chars[boxH])
	}
	for y := r.Y + 1; y < r.Y+r.Height-1; y++ {
		put(r.X, y, chars[boxV])
		put(r.X+r.Width-1, y, chars[boxV])
	}
}
