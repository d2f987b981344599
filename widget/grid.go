package widget

import (
	"github.com/lixenwraith/weft/canvas"
	"github.com/lixenwraith/weft/cell"
	"github.com/lixenwraith/weft/layout"
)

// GridChild pairs a widget with its span declaration.
type GridChild struct {
	Widget Widget
	Span   layout.Span
}

// Grid arranges children on a track grid with first-fit placement.
// Children are placed in declaration order; spans claim rectangles of
// cells, and children that cannot fit are dropped from the frame.
type Grid struct {
	Children []GridChild

	// Track declarations cycle when fewer than the track count
	Columns     []layout.TrackSpec
	Rows        []layout.TrackSpec
	ColumnCount int
	RowCount    int
	GutterX     int
	GutterY     int

	Bordered    bool
	Line        canvas.LineType
	BorderStyle cell.Style

	placements []layout.GridPlacement
}

// NewGrid creates a grid with the given track counts.
func NewGrid(columns, rows int, children ...GridChild) *Grid {
	return &Grid{Children: children, ColumnCount: columns, RowCount: rows}
}

// Measure claims the available space.
func (g *Grid) Measure(avail canvas.Size) canvas.Size {
	return avail
}

func (g *Grid) spans() []layout.Span {
	spans := make([]layout.Span, len(g.Children))
	for i, c := range g.Children {
		spans[i] = c.Span
	}
	return spans
}

// Paint resolves both track axes, places the children, and paints each
// placed child clipped to its cells. Tracks resolve with a one-cell
// floor so empty tracks cannot collapse adjacent content together.
func (g *Grid) Paint(cv *canvas.Canvas, region canvas.Region) {
	if g.Bordered {
		cv.DrawBorder(region, g.Line, g.BorderStyle)
		region = region.Shrink(1)
	}

	columns := layout.ResolveMin1(g.Columns, g.ColumnCount, region.Width, g.GutterX)
	rows := layout.ResolveMin1(g.Rows, g.RowCount, region.Height, g.GutterY)

	g.placements = layout.PlaceGrid(g.spans(), columns, rows, region, g.GutterX, g.GutterY)
	for _, p := range g.placements {
		paintClipped(cv, g.Children[p.Index].Widget, p.Region)
	}
}

// HitTest maps a point to the deepest child widget painted there, or
// nil. Replays the placements from the last paint, so the answer
// always matches what is on screen.
func (g *Grid) HitTest(x, y int) Widget {
	i := layout.HitTest(g.placements, x, y)
	if i < 0 {
		return nil
	}
	return hitChild(g.Children[i].Widget, x, y)
}
