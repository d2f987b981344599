package layout

import "github.com/lixenwraith/weft/canvas"

// PlaceColumn stacks tracks vertically inside origin: each spec
// resolves against origin's height, and every region spans the full
// width. Used by vertical containers before painting.
func PlaceColumn(specs []TrackSpec, count, gutter int, origin canvas.Region) []canvas.Region {
	tracks := Resolve(specs, count, origin.Height, gutter)
	regions := make([]canvas.Region, len(tracks))
	for i, t := range tracks {
		regions[i] = canvas.NewRegion(origin.X, origin.Y+t.Offset, origin.Width, t.Size)
	}
	return regions
}

// PlaceRow stacks tracks horizontally inside origin: each spec
// resolves against origin's width, and every region spans the full
// height. Used by horizontal containers before painting.
func PlaceRow(specs []TrackSpec, count, gutter int, origin canvas.Region) []canvas.Region {
	tracks := Resolve(specs, count, origin.Width, gutter)
	regions := make([]canvas.Region, len(tracks))
	for i, t := range tracks {
		regions[i] = canvas.NewRegion(origin.X+t.Offset, origin.Y, t.Size, origin.Height)
	}
	return regions
}
