package canvas

import "github.com/lixenwraith/weft/cell"

// Cell is one framebuffer slot. The zero rune marks the continuation
// half of a wide glyph; a blank cell carries a space.
type Cell struct {
	Rune  rune
	Style cell.Style
}

// blankCell is the default content of an unpainted slot
var blankCell = Cell{Rune: ' '}

// IsContinuation reports whether this slot is the trailing half of a
// wide glyph.
func (c Cell) IsContinuation() bool {
	return c.Rune == 0
}
