package scroll

// Viewport manages a row-based scroll window over taller content.
type Viewport struct {
	Offset  int // Row offset from top of content
	Content int // Total content height in rows
	Window  int // Visible window height
}

// SetDimensions updates content and window heights, clamping the
// offset into range.
func (v *Viewport) SetDimensions(content, window int) {
	v.Content = content
	v.Window = window
	v.clamp()
}

// MaxOffset returns the largest valid scroll offset.
func (v *Viewport) MaxOffset() int {
	if m := v.Content - v.Window; m > 0 {
		return m
	}
	return 0
}

// CanScroll returns true if the content exceeds the window.
func (v *Viewport) CanScroll() bool {
	return v.Content > v.Window
}

// ScrollBy adjusts the offset by delta.
func (v *Viewport) ScrollBy(delta int) {
	v.Offset += delta
	v.clamp()
}

// ScrollTo sets an absolute offset.
func (v *Viewport) ScrollTo(pos int) {
	v.Offset = pos
	v.clamp()
}

// PageUp scrolls up by one window height.
func (v *Viewport) PageUp() {
	v.ScrollBy(-v.Window)
}

// PageDown scrolls down by one window height.
func (v *Viewport) PageDown() {
	v.ScrollBy(v.Window)
}

// Home scrolls to the top.
func (v *Viewport) Home() {
	v.Offset = 0
}

// End scrolls to the bottom.
func (v *Viewport) End() {
	v.Offset = v.MaxOffset()
}

func (v *Viewport) clamp() {
	if m := v.MaxOffset(); v.Offset > m {
		v.Offset = m
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}

// IsVisible returns true if the content row range intersects the
// window.
func (v *Viewport) IsVisible(y, h int) bool {
	return y+h > v.Offset && y < v.Offset+v.Window
}

// ClipToWindow maps a content row range to window coordinates.
// Returns the window-relative y, the visible height, the rows clipped
// from the top, and whether anything is visible at all.
func (v *Viewport) ClipToWindow(y, h int) (viewY, viewH, contentOffset int, visible bool) {
	if !v.IsVisible(y, h) {
		return 0, 0, 0, false
	}

	viewY = y - v.Offset
	viewH = h

	if viewY < 0 {
		contentOffset = -viewY
		viewH += viewY
		viewY = 0
	}
	if viewY+viewH > v.Window {
		viewH = v.Window - viewY
	}
	return viewY, viewH, contentOffset, viewH > 0
}
