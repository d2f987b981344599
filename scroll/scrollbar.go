// Package scroll provides scrollbar geometry and rendering plus
// viewport scroll state. Thumb geometry is a pure function of content
// size, window size, track length, and position.
package scroll

import (
	"github.com/lixenwraith/weft/canvas"
	"github.com/lixenwraith/weft/cell"
)

// subCells is the sub-cell resolution for smooth thumb edges: each
// track cell divides into this many steps, matched by the glyph ramps
const subCells = 8

// Vertical gradient glyphs, bottom-to-top fill progression
var verticalGlyphs = [subCells]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', ' '}

// Horizontal gradient glyphs, right-to-left fill progression
var horizontalGlyphs = [subCells]rune{'▉', '▊', '▋', '▌', '▍', '▎', '▏', ' '}

// Thumb is scrollbar thumb geometry in whole track cells.
type Thumb struct {
	Offset int
	Size   int
	// Visible is false when the window covers the full content and no
	// thumb should be drawn
	Visible bool
}

// ComputeThumb translates scroll state into thumb geometry. With
// windowSize >= virtualSize there is no thumb. Otherwise the thumb
// size is proportional to the visible share of the content, never
// below one cell, and the offset maps position across the remaining
// track.
func ComputeThumb(virtualSize, windowSize, trackLength, position float64) Thumb {
	start, end := thumbSpan(virtualSize, windowSize, trackLength, position)
	if start < 0 {
		return Thumb{}
	}
	offset := start / subCells
	size := (end + subCells - 1) / subCells

	return Thumb{
		Offset:  offset,
		Size:    max(size-offset, 1),
		Visible: true,
	}
}

// thumbSpan returns the thumb's extent in sub-cell units, or (-1, -1)
// when no thumb applies.
func thumbSpan(virtualSize, windowSize, trackLength, position float64) (int, int) {
	if trackLength <= 0 || virtualSize <= 0 || windowSize <= 0 || windowSize >= virtualSize {
		return -1, -1
	}

	ratio := virtualSize / trackLength
	thumbSize := windowSize / ratio
	if thumbSize < 1 {
		thumbSize = 1
	}

	maxPosition := virtualSize - windowSize
	positionRatio := position / maxPosition
	if positionRatio < 0 {
		positionRatio = 0
	}
	if positionRatio > 1 {
		positionRatio = 1
	}
	thumbOffset := (trackLength - thumbSize) * positionRatio

	start := int(thumbOffset * subCells)
	end := start + int(thumbSize*subCells+0.9999)
	if start < 0 {
		start = 0
	}
	return start, end
}

// DrawVertical paints a vertical scrollbar into the region: track
// background everywhere, thumb body cells, and gradient glyphs on the
// thumb's leading and trailing cells for sub-cell precision.
func DrawVertical(cv *canvas.Canvas, region canvas.Region, virtualSize, windowSize, position float64, thumb, track cell.Color) {
	if region.IsEmpty() {
		return
	}

	trackStyle := cell.Style{Bg: track}
	for y := 0; y < region.Height; y++ {
		for x := 0; x < region.Width; x++ {
			cv.PutChar(region.X+x, region.Y+y, ' ', trackStyle)
		}
	}

	start, end := thumbSpan(virtualSize, windowSize, float64(region.Height), position)
	if start < 0 {
		return
	}

	startIndex, startBar := start/subCells, start%subCells
	endIndex, endBar := end/subCells, end%subCells

	bodyStyle := cell.Style{Fg: thumb, Bg: thumb}
	for y := startIndex; y < min(endIndex, region.Height); y++ {
		for x := 0; x < region.Width; x++ {
			cv.PutChar(region.X+x, region.Y+y, ' ', bodyStyle)
		}
	}

	// Leading edge: partial glyph colored thumb-on-track
	if glyph := verticalGlyphs[subCells-1-startBar]; glyph != ' ' && startIndex < region.Height {
		style := cell.Style{Fg: thumb, Bg: track}
		for x := 0; x < region.Width; x++ {
			cv.PutChar(region.X+x, region.Y+startIndex, glyph, style)
		}
	}
	// Trailing edge: partial glyph colored track-on-thumb
	if glyph := verticalGlyphs[subCells-1-endBar]; glyph != ' ' && endIndex < region.Height {
		style := cell.Style{Fg: track, Bg: thumb}
		for x := 0; x < region.Width; x++ {
			cv.PutChar(region.X+x, region.Y+endIndex, glyph, style)
		}
	}
}

// DrawHorizontal paints a horizontal scrollbar into the region.
func DrawHorizontal(cv *canvas.Canvas, region canvas.Region, virtualSize, windowSize, position float64, thumb, track cell.Color) {
	if region.IsEmpty() {
		return
	}

	trackStyle := cell.Style{Bg: track}
	for y := 0; y < region.Height; y++ {
		for x := 0; x < region.Width; x++ {
			cv.PutChar(region.X+x, region.Y+y, ' ', trackStyle)
		}
	}

	start, end := thumbSpan(virtualSize, windowSize, float64(region.Width), position)
	if start < 0 {
		return
	}

	startIndex, startBar := start/subCells, start%subCells
	endIndex, endBar := end/subCells, end%subCells

	bodyStyle := cell.Style{Fg: thumb, Bg: thumb}
	for x := startIndex; x < min(endIndex, region.Width); x++ {
		for y := 0; y < region.Height; y++ {
			cv.PutChar(region.X+x, region.Y+y, ' ', bodyStyle)
		}
	}

	if glyph := horizontalGlyphs[subCells-1-startBar]; glyph != ' ' && startIndex < region.Width {
		style := cell.Style{Fg: thumb, Bg: track}
		for y := 0; y < region.Height; y++ {
			cv.PutChar(region.X+startIndex, region.Y+y, glyph, style)
		}
	}
	if glyph := horizontalGlyphs[subCells-1-endBar]; glyph != ' ' && endIndex < region.Width {
		style := cell.Style{Fg: track, Bg: thumb}
		for y := 0; y < region.Height; y++ {
			cv.PutChar(region.X+endIndex, region.Y+y, glyph, style)
		}
	}
}
