package widget

import (
	"github.com/lixenwraith/weft/canvas"
	"github.com/lixenwraith/weft/cell"
	"github.com/lixenwraith/weft/layout"
)

// Child pairs a widget with its track declaration inside a linear
// container.
type Child struct {
	Widget Widget
	Spec   layout.TrackSpec
}

// Stack is the shared state of the linear containers: children, track
// specs, gutter, optional border, and the regions assigned on the last
// paint.
type Stack struct {
	Children []Child
	Gutter   int

	Bordered    bool
	Line        canvas.LineType
	BorderStyle cell.Style

	regions []canvas.Region
}

// inner returns the paintable region, inset when a border is drawn.
func (s *Stack) inner(region canvas.Region) canvas.Region {
	if s.Bordered {
		return region.Shrink(1)
	}
	return region
}

func (s *Stack) paintBorder(cv *canvas.Canvas, region canvas.Region) {
	if s.Bordered {
		cv.DrawBorder(region, s.Line, s.BorderStyle)
	}
}

func (s *Stack) specs() []layout.TrackSpec {
	specs := make([]layout.TrackSpec, len(s.Children))
	for i, c := range s.Children {
		specs[i] = c.Spec
	}
	return specs
}

// HitTest maps a point to the deepest child widget painted there, or
// nil. Reads the regions recorded by the last paint.
func (s *Stack) HitTest(x, y int) Widget {
	for i, r := range s.regions {
		if r.Contains(x, y) {
			return hitChild(s.Children[i].Widget, x, y)
		}
	}
	return nil
}

// Vertical stacks children top to bottom along resolved row tracks.
type Vertical struct {
	Stack
}

// NewVertical creates a vertical container.
func NewVertical(children ...Child) *Vertical {
	return &Vertical{Stack: Stack{Children: children}}
}

// Measure claims the available space; linear containers are sized by
// their parent's tracks, not by content.
func (v *Vertical) Measure(avail canvas.Size) canvas.Size {
	return avail
}

// Paint resolves the children's row tracks inside the region and
// paints each child clipped to its own band.
func (v *Vertical) Paint(cv *canvas.Canvas, region canvas.Region) {
	v.paintBorder(cv, region)
	inner := v.inner(region)

	v.regions = layout.PlaceColumn(v.specs(), len(v.Children), v.Gutter, inner)
	for i, c := range v.Children {
		paintClipped(cv, c.Widget, v.regions[i])
	}
}

// Horizontal stacks children left to right along resolved column
// tracks.
type Horizontal struct {
	Stack
}

// NewHorizontal creates a horizontal container.
func NewHorizontal(children ...Child) *Horizontal {
	return &Horizontal{Stack: Stack{Children: children}}
}

// Measure claims the available space.
func (h *Horizontal) Measure(avail canvas.Size) canvas.Size {
	return avail
}

// Paint resolves the children's column tracks inside the region and
// paints each child clipped to its own band.
func (h *Horizontal) Paint(cv *canvas.Canvas, region canvas.Region) {
	h.paintBorder(cv, region)
	inner := h.inner(region)

	h.regions = layout.PlaceRow(h.specs(), len(h.Children), h.Gutter, inner)
	for i, c := range h.Children {
		paintClipped(cv, c.Widget, h.regions[i])
	}
}
