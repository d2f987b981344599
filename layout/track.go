package layout

import "math"

// TrackKind selects how a track's size spec is interpreted.
type TrackKind uint8

const (
	// KindCells is a fixed size in terminal cells
	KindCells TrackKind = iota
	// KindPercent is a percentage of the track budget
	KindPercent
	// KindFr shares leftover space proportionally to its weight
	KindFr
	// KindAuto shares leftover space evenly among auto tracks
	KindAuto
	// KindView is a percentage of the viewport dimension
	KindView
)

// TrackSpec is an abstract column or row size declaration.
type TrackSpec struct {
	Kind  TrackKind
	Value float64
}

// Cells declares a fixed track of n cells.
func Cells(n int) TrackSpec {
	return TrackSpec{Kind: KindCells, Value: float64(n)}
}

// Percent declares a track sized as p percent of the budget.
func Percent(p float64) TrackSpec {
	return TrackSpec{Kind: KindPercent, Value: p}
}

// Fr declares a weighted-fraction track.
func Fr(weight float64) TrackSpec {
	return TrackSpec{Kind: KindFr, Value: weight}
}

// Auto declares a track that shares leftover space evenly.
func Auto() TrackSpec {
	return TrackSpec{Kind: KindAuto}
}

// View declares a track sized as p percent of the viewport dimension.
func View(p float64) TrackSpec {
	return TrackSpec{Kind: KindView, Value: p}
}

// ResolvedTrack is one track's concrete geometry after distribution.
// Offsets are monotonically increasing and include gutters.
type ResolvedTrack struct {
	Offset int
	Size   int
}

// frScale preserves fractional fr weights as exact integers
const frScale = 1000

// frUnits converts a declared float value to scaled integer units,
// rounding so values like 33.33 or 0.3 keep their declared precision
// instead of truncating a float artifact.
func frUnits(v float64) int64 {
	return int64(math.Round(v * frScale))
}

// Resolve distributes available space among count tracks. See
// ResolveViewport; the viewport dimension defaults to the available
// space.
func Resolve(specs []TrackSpec, count, available, gutter int) []ResolvedTrack {
	return ResolveViewport(specs, count, available, gutter, available)
}

// ResolveViewport turns abstract track specs into concrete offsets and
// sizes. The gutter is applied strictly between adjacent tracks.
//
// Fixed and percentage tracks resolve against the budget (available
// minus gutters). Leftover space goes to fr tracks by weight, else
// evenly to auto tracks, else (no specs at all) evenly to every track.
// Remainders are carried left to right in exact rational arithmetic,
// so the assigned sizes plus gutters equal the available space with no
// drift, and any single leftover unit lands on the last eligible
// track.
//
// Specs cycle when fewer than count are given. Non-positive available
// space yields all-zero sizes. The function is pure: identical inputs
// produce identical output.
func ResolveViewport(specs []TrackSpec, count, available, gutter, viewport int) []ResolvedTrack {
	if count <= 0 {
		return nil
	}

	tracks := make([]ResolvedTrack, count)
	if available <= 0 {
		return tracks
	}

	budget := available - gutter*(count-1)
	if budget < 0 {
		budget = 0
	}

	sizes := make([]int, count)
	kind := func(i int) TrackSpec {
		if len(specs) == 0 {
			return TrackSpec{Kind: KindAuto}
		}
		return specs[i%len(specs)]
	}

	// First pass: fixed, percent, and viewport-relative tracks.
	remaining := int64(budget)
	totalFr := int64(0)
	autoCount := int64(0)
	for i := 0; i < count; i++ {
		spec := kind(i)
		switch spec.Kind {
		case KindCells:
			sizes[i] = clampSize(int(spec.Value))
			remaining -= int64(sizes[i])
		case KindPercent:
			sizes[i] = clampSize(int(NewFraction(int64(budget)*frUnits(spec.Value), 100*frScale).Floor()))
			remaining -= int64(sizes[i])
		case KindView:
			sizes[i] = clampSize(int(NewFraction(int64(viewport)*frUnits(spec.Value), 100*frScale).Floor()))
			remaining -= int64(sizes[i])
		case KindFr:
			totalFr += frUnits(spec.Value)
		case KindAuto:
			autoCount++
		}
	}
	if remaining < 0 {
		remaining = 0
	}

	// Second pass: carry the remainder left to right so the sizes sum
	// exactly and the leftover unit lands on the last eligible track.
	switch {
	case totalFr > 0:
		carry := FractionZero
		for i := 0; i < count; i++ {
			spec := kind(i)
			if spec.Kind != KindFr {
				continue
			}
			weight := frUnits(spec.Value)
			raw := NewFraction(remaining*weight, totalFr).Add(carry)
			sizes[i] = int(raw.Floor())
			carry = raw.Fract()
		}
	case autoCount > 0:
		carry := FractionZero
		for i := 0; i < count; i++ {
			if kind(i).Kind != KindAuto {
				continue
			}
			raw := NewFraction(remaining, autoCount).Add(carry)
			sizes[i] = int(raw.Floor())
			carry = raw.Fract()
		}
	}

	offset := 0
	for i, size := range sizes {
		tracks[i] = ResolvedTrack{Offset: offset, Size: size}
		offset += size + gutter
	}
	return tracks
}

// ResolveMin1 is Resolve with every track bumped to at least one cell.
// Used by grid containers where zero-width tracks would collapse
// borders; the exact-sum property does not hold for this variant.
func ResolveMin1(specs []TrackSpec, count, available, gutter int) []ResolvedTrack {
	tracks := Resolve(specs, count, available, gutter)
	offset := 0
	for i := range tracks {
		if tracks[i].Size < 1 {
			tracks[i].Size = 1
		}
		tracks[i].Offset = offset
		offset += tracks[i].Size + gutter
	}
	return tracks
}

func clampSize(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
