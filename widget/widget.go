// Package widget provides the paint-side widget capability and the
// built-in containers. Widgets measure against available space and
// paint into an assigned canvas region; containers resolve their
// children's regions with the layout package and record the placements
// so hit-testing replays exactly what was painted.
package widget

import (
	"github.com/lixenwraith/weft/canvas"
)

// Widget is the minimal paint capability.
type Widget interface {
	// Measure returns the widget's preferred size within avail.
	Measure(avail canvas.Size) canvas.Size
	// Paint draws the widget into region. The canvas clip already
	// confines writes to the region.
	Paint(cv *canvas.Canvas, region canvas.Region)
}

// Container is a widget that owns children and can map a point to the
// child painted there.
type Container interface {
	Widget
	// HitTest returns the deepest widget at (x, y), or nil.
	HitTest(x, y int) Widget
}

// hitChild descends into child containers so HitTest returns the
// deepest widget under the point.
func hitChild(w Widget, x, y int) Widget {
	if c, ok := w.(Container); ok {
		if inner := c.HitTest(x, y); inner != nil {
			return inner
		}
	}
	return w
}

// paintClipped paints a child under a clip push so overflow never
// escapes its region.
func paintClipped(cv *canvas.Canvas, w Widget, region canvas.Region) {
	if region.IsEmpty() {
		return
	}
	cv.PushClip(region)
	w.Paint(cv, region)
	cv.PopClip()
}
