package canvas

import "testing"

func TestNewRegionClampsDimensions(t *testing.T) {
	r := NewRegion(5, -3, -10, 4)
	if r.X != 5 || r.Y != -3 {
		t.Errorf("Expected position (5,-3) preserved, got (%d,%d)", r.X, r.Y)
	}
	if r.Width != 0 || r.Height != 4 {
		t.Errorf("Expected dimensions 0x4, got %dx%d", r.Width, r.Height)
	}
}

func TestRegionIntersection(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Region
		expected Region
	}{
		{
			name:     "Overlapping",
			a:        NewRegion(0, 0, 10, 10),
			b:        NewRegion(5, 5, 10, 10),
			expected: NewRegion(5, 5, 5, 5),
		},
		{
			name:     "Contained",
			a:        NewRegion(0, 0, 20, 20),
			b:        NewRegion(3, 4, 5, 6),
			expected: NewRegion(3, 4, 5, 6),
		},
		{
			name:     "Disjoint",
			a:        NewRegion(0, 0, 5, 5),
			b:        NewRegion(10, 10, 5, 5),
			expected: Region{},
		},
		{
			name:     "Touching",
			a:        NewRegion(0, 0, 5, 5),
			b:        NewRegion(5, 0, 5, 5),
			expected: Region{},
		},
		{
			name:     "NegativeOrigin",
			a:        NewRegion(-5, -5, 10, 10),
			b:        NewRegion(0, 0, 10, 10),
			expected: NewRegion(0, 0, 5, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersection(tt.b); got != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
			if got := tt.b.Intersection(tt.a); got != tt.expected {
				t.Errorf("Expected symmetric %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestRegionContains(t *testing.T) {
	r := NewRegion(2, 3, 4, 5)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"TopLeft", 2, 3, true},
		{"BottomRightInside", 5, 7, true},
		{"RightEdge", 6, 3, false},
		{"BottomEdge", 2, 8, false},
		{"Outside", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Expected Contains(%d,%d)=%v, got %v", tt.x, tt.y, tt.expected, got)
			}
		})
	}
}

func TestRegionIsEmpty(t *testing.T) {
	if !NewRegion(0, 0, 0, 5).IsEmpty() {
		t.Error("Expected zero-width region to be empty")
	}
	if !(Region{}).IsEmpty() {
		t.Error("Expected zero region to be empty")
	}
	if NewRegion(0, 0, 1, 1).IsEmpty() {
		t.Error("Expected 1x1 region to be non-empty")
	}
}

func TestRegionTranslate(t *testing.T) {
	r := NewRegion(1, 2, 3, 4).Translate(10, -5)
	if r != NewRegion(11, -3, 3, 4) {
		t.Errorf("Expected (11,-3) 3x4, got %+v", r)
	}
}

func TestRegionShrink(t *testing.T) {
	r := NewRegion(0, 0, 10, 6).Shrink(1)
	if r != NewRegion(1, 1, 8, 4) {
		t.Errorf("Expected (1,1) 8x4, got %+v", r)
	}

	collapsed := NewRegion(0, 0, 3, 3).Shrink(2)
	if !collapsed.IsEmpty() {
		t.Errorf("Expected over-shrunk region to be empty, got %+v", collapsed)
	}
}
