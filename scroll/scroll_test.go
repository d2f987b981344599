package scroll

import "testing"

func TestComputeThumb(t *testing.T) {
	tests := []struct {
		name     string
		virtual  float64
		window   float64
		track    float64
		position float64
		visible  bool
		offset   int
		size     int
	}{
		{"NoOverflow", 20, 24, 24, 0, false, 0, 0},
		{"ExactFit", 24, 24, 24, 0, false, 0, 0},
		{"TopOfContent", 100, 24, 24, 0, true, 0, 6},
		{"BottomOfContent", 100, 24, 24, 76, true, 18, 6},
		{"ZeroTrack", 100, 24, 0, 0, false, 0, 0},
		{"ZeroVirtual", 0, 24, 24, 0, false, 0, 0},
		{"HugeContent", 10000, 10, 10, 0, true, 0, 1},
		{"PositionClampedLow", 100, 24, 24, -50, true, 0, 6},
		{"PositionClampedHigh", 100, 24, 24, 500, true, 18, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := ComputeThumb(tt.virtual, tt.window, tt.track, tt.position)
			if th.Visible != tt.visible {
				t.Fatalf("Expected visible=%v, got %v", tt.visible, th.Visible)
			}
			if !tt.visible {
				return
			}
			if th.Offset != tt.offset {
				t.Errorf("Expected offset %d, got %d", tt.offset, th.Offset)
			}
			if th.Size != tt.size {
				t.Errorf("Expected size %d, got %d", tt.size, th.Size)
			}
		})
	}
}

func TestThumbNeverSmallerThanOneCell(t *testing.T) {
	for virtual := 10.0; virtual <= 100000; virtual *= 3 {
		th := ComputeThumb(virtual, 5, 5, 0)
		if !th.Visible {
			t.Fatalf("Expected visible thumb for virtual=%v", virtual)
		}
		if th.Size < 1 {
			t.Errorf("Expected thumb size >= 1 for virtual=%v, got %d", virtual, th.Size)
		}
	}
}

func TestThumbStaysOnTrack(t *testing.T) {
	track := 24
	for pos := 0.0; pos <= 176; pos += 7 {
		th := ComputeThumb(200, 24, float64(track), pos)
		if !th.Visible {
			t.Fatalf("Expected visible thumb at position %v", pos)
		}
		if th.Offset < 0 || th.Offset+th.Size > track {
			t.Errorf("Thumb [%d, %d) escapes track of length %d at position %v",
				th.Offset, th.Offset+th.Size, track, pos)
		}
	}
}

func TestViewportClamping(t *testing.T) {
	tests := []struct {
		name     string
		content  int
		window   int
		scrollTo int
		expected int
	}{
		{"WithinRange", 100, 24, 30, 30},
		{"PastEnd", 100, 24, 500, 76},
		{"Negative", 100, 24, -10, 0},
		{"NoOverflow", 10, 24, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Viewport{}
			v.SetDimensions(tt.content, tt.window)
			v.ScrollTo(tt.scrollTo)
			if v.Offset != tt.expected {
				t.Errorf("Expected offset %d, got %d", tt.expected, v.Offset)
			}
		})
	}
}

func TestViewportPaging(t *testing.T) {
	v := Viewport{}
	v.SetDimensions(100, 24)

	v.PageDown()
	if v.Offset != 24 {
		t.Errorf("Expected offset 24 after page down, got %d", v.Offset)
	}

	v.End()
	if v.Offset != 76 {
		t.Errorf("Expected offset 76 at end, got %d", v.Offset)
	}

	v.PageDown()
	if v.Offset != 76 {
		t.Errorf("Expected offset to stay 76 past end, got %d", v.Offset)
	}

	v.Home()
	if v.Offset != 0 {
		t.Errorf("Expected offset 0 at home, got %d", v.Offset)
	}

	v.PageUp()
	if v.Offset != 0 {
		t.Errorf("Expected offset to stay 0 above top, got %d", v.Offset)
	}
}

func TestViewportClipToWindow(t *testing.T) {
	v := Viewport{}
	v.SetDimensions(100, 24)
	v.ScrollTo(10)

	tests := []struct {
		name          string
		y, h          int
		viewY         int
		viewH         int
		contentOffset int
		visible       bool
	}{
		{"FullyVisible", 12, 4, 2, 4, 0, true},
		{"ClippedTop", 8, 6, 0, 4, 2, true},
		{"ClippedBottom", 32, 6, 22, 2, 0, true},
		{"AboveWindow", 0, 5, 0, 0, 0, false},
		{"BelowWindow", 40, 5, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viewY, viewH, contentOffset, visible := v.ClipToWindow(tt.y, tt.h)
			if visible != tt.visible {
				t.Fatalf("Expected visible=%v, got %v", tt.visible, visible)
			}
			if !visible {
				return
			}
			if viewY != tt.viewY || viewH != tt.viewH || contentOffset != tt.contentOffset {
				t.Errorf("Expected (%d, %d, %d), got (%d, %d, %d)",
					tt.viewY, tt.viewH, tt.contentOffset, viewY, viewH, contentOffset)
			}
		})
	}
}
