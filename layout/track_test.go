package layout

import "testing"

func sizesOf(tracks []ResolvedTrack) []int {
	sizes := make([]int, len(tracks))
	for i, t := range tracks {
		sizes[i] = t.Size
	}
	return sizes
}

func TestResolveDistribution(t *testing.T) {
	tests := []struct {
		name      string
		specs     []TrackSpec
		count     int
		available int
		gutter    int
		expected  []int
	}{
		{
			name:      "ThreeEqualFrWithGutter",
			specs:     []TrackSpec{Fr(1), Fr(1), Fr(1)},
			count:     3,
			available: 100,
			gutter:    1,
			expected:  []int{32, 33, 33},
		},
		{
			name:      "ThreeEqualFrNoGutter",
			specs:     []TrackSpec{Fr(1), Fr(1), Fr(1)},
			count:     3,
			available: 100,
			gutter:    0,
			expected:  []int{33, 33, 34},
		},
		{
			name:      "WeightedFr",
			specs:     []TrackSpec{Fr(1), Fr(2), Fr(1)},
			count:     3,
			available: 170,
			gutter:    0,
			expected:  []int{42, 85, 43},
		},
		{
			name:      "FixedAndFr",
			specs:     []TrackSpec{Cells(10), Fr(1), Fr(1)},
			count:     3,
			available: 50,
			gutter:    0,
			expected:  []int{10, 20, 20},
		},
		{
			name:      "PercentAndFr",
			specs:     []TrackSpec{Percent(25), Fr(1)},
			count:     2,
			available: 100,
			gutter:    0,
			expected:  []int{25, 75},
		},
		{
			name:      "AutoTracks",
			specs:     []TrackSpec{Auto(), Auto()},
			count:     2,
			available: 25,
			gutter:    0,
			expected:  []int{12, 13},
		},
		{
			name:      "NoSpecsDefaultsToAuto",
			specs:     nil,
			count:     4,
			available: 10,
			gutter:    0,
			expected:  []int{2, 3, 2, 3},
		},
		{
			name:      "SpecsCycle",
			specs:     []TrackSpec{Cells(10), Fr(1)},
			count:     4,
			available: 50,
			gutter:    0,
			expected:  []int{10, 15, 10, 15},
		},
		{
			name:      "FrWinsOverAuto",
			specs:     []TrackSpec{Fr(1), Auto()},
			count:     2,
			available: 40,
			gutter:    0,
			expected:  []int{40, 0},
		},
		{
			name:      "ZeroAvailable",
			specs:     []TrackSpec{Fr(1)},
			count:     3,
			available: 0,
			gutter:    1,
			expected:  []int{0, 0, 0},
		},
		{
			name:      "NegativeAvailable",
			specs:     []TrackSpec{Fr(1)},
			count:     2,
			available: -5,
			gutter:    0,
			expected:  []int{0, 0},
		},
		{
			name:      "FixedOverflowLeavesNothing",
			specs:     []TrackSpec{Cells(80), Fr(1)},
			count:     2,
			available: 50,
			gutter:    0,
			expected:  []int{80, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sizesOf(Resolve(tt.specs, tt.count, tt.available, tt.gutter))
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %d tracks, got %d", len(tt.expected), len(got))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Expected sizes %v, got %v", tt.expected, got)
					break
				}
			}
		})
	}
}

func TestResolveZeroCount(t *testing.T) {
	if got := Resolve([]TrackSpec{Fr(1)}, 0, 100, 1); got != nil {
		t.Errorf("Expected nil for zero count, got %v", got)
	}
}

func TestResolveExactSum(t *testing.T) {
	// Whenever a flexible track can absorb the remainder, the assigned
	// sizes plus gutters recover the available space exactly.
	specs := []TrackSpec{Cells(7), Percent(25), Fr(1.5), Fr(1)}
	for available := 40; available <= 200; available += 7 {
		for gutter := 0; gutter <= 2; gutter++ {
			tracks := Resolve(specs, len(specs), available, gutter)
			sum := gutter * (len(specs) - 1)
			for _, tr := range tracks {
				sum += tr.Size
			}
			if sum != available {
				t.Errorf("Expected sum %d for gutter %d, got %d (sizes %v)",
					available, gutter, sum, sizesOf(tracks))
			}
		}
	}
}

func TestResolveOffsets(t *testing.T) {
	tracks := Resolve([]TrackSpec{Fr(1), Fr(1), Fr(1)}, 3, 100, 1)
	expected := []ResolvedTrack{{0, 32}, {33, 33}, {67, 33}}
	for i, tr := range tracks {
		if tr != expected[i] {
			t.Errorf("Track %d: expected %+v, got %+v", i, expected[i], tr)
		}
	}
}

func TestResolveDeterministic(t *testing.T) {
	specs := []TrackSpec{Percent(33), Fr(2), Auto(), Cells(5)}
	first := Resolve(specs, 8, 137, 1)
	for i := 0; i < 50; i++ {
		again := Resolve(specs, 8, 137, 1)
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("Run %d diverged at track %d: %+v vs %+v", i, j, first[j], again[j])
			}
		}
	}
}

func TestResolveRoundsDeclaredValues(t *testing.T) {
	// 33.33 is not exactly representable; truncation would read it as
	// 33.329... percent and lose a cell on large budgets.
	tracks := Resolve([]TrackSpec{Percent(33.33), Fr(1)}, 2, 10000, 0)
	if tracks[0].Size != 3333 {
		t.Errorf("Expected 33.33%% of 10000 to be 3333, got %d", tracks[0].Size)
	}

	// Same for fr weights: 0.3/0.7 must behave as exact 3:7
	got := sizesOf(Resolve([]TrackSpec{Fr(0.3), Fr(0.7)}, 2, 10, 0))
	if got[0] != 3 || got[1] != 7 {
		t.Errorf("Expected [3 7] for 0.3fr/0.7fr over 10, got %v", got)
	}
}

func TestResolveViewportRelative(t *testing.T) {
	tracks := ResolveViewport([]TrackSpec{View(50), Fr(1)}, 2, 40, 0, 120)
	if tracks[0].Size != 60 {
		t.Errorf("Expected viewport track of 60, got %d", tracks[0].Size)
	}
	if tracks[1].Size != 0 {
		t.Errorf("Expected empty fr track, got %d", tracks[1].Size)
	}
}

func TestResolveMin1(t *testing.T) {
	tracks := ResolveMin1([]TrackSpec{Fr(1)}, 5, 2, 0)
	offset := 0
	for i, tr := range tracks {
		if tr.Size < 1 {
			t.Errorf("Track %d below minimum: %+v", i, tr)
		}
		if tr.Offset != offset {
			t.Errorf("Track %d: expected offset %d, got %d", i, offset, tr.Offset)
		}
		offset += tr.Size
	}
}
