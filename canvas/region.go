package canvas

// Size holds physical dimensions in cells.
type Size struct {
	Width  int
	Height int
}

// Region is a signed rectangle used for placement and clipping.
// Coordinates may be negative to support off-screen or scrolled
// content; width and height are clamped to zero at construction.
type Region struct {
	X, Y          int
	Width, Height int
}

// NewRegion creates a region, clamping negative dimensions to zero.
func NewRegion(x, y, width, height int) Region {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Region{X: x, Y: y, Width: width, Height: height}
}

// Intersection returns the overlap of two regions, or an empty region
// if they do not overlap.
func (r Region) Intersection(other Region) Region {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.X+r.Width, other.X+other.Width)
	y2 := min(r.Y+r.Height, other.Y+other.Height)

	if x2 > x1 && y2 > y1 {
		return Region{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
	}
	return Region{}
}

// Contains reports whether the point lies inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// IsEmpty returns true if the region has no area.
func (r Region) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Translate returns the region moved by (dx, dy).
func (r Region) Translate(dx, dy int) Region {
	r.X += dx
	r.Y += dy
	return r
}

// Shrink returns the region inset by n cells on all sides.
func (r Region) Shrink(n int) Region {
	return NewRegion(r.X+n, r.Y+n, r.Width-2*n, r.Height-2*n)
}
