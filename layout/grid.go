package layout

import "github.com/lixenwraith/weft/canvas"

// OccupancyGrid tracks which grid cells are claimed by earlier spans.
// Created fresh per layout pass and discarded after placement.
type OccupancyGrid struct {
	cells []bool
	rows  int
	cols  int
}

// NewOccupancyGrid creates an all-free grid.
func NewOccupancyGrid(rows, cols int) *OccupancyGrid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &OccupancyGrid{
		cells: make([]bool, rows*cols),
		rows:  rows,
		cols:  cols,
	}
}

// Occupied reports whether a cell is claimed.
func (g *OccupancyGrid) Occupied(row, col int) bool {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return true
	}
	return g.cells[row*g.cols+col]
}

// FindNextFree scans row-major from (row, col) for the next free cell.
func (g *OccupancyGrid) FindNextFree(row, col int) (int, int, bool) {
	for row < g.rows {
		for col < g.cols {
			if !g.cells[row*g.cols+col] {
				return row, col, true
			}
			col++
		}
		col = 0
		row++
	}
	return 0, 0, false
}

// CanFit reports whether the span's full rectangle is free.
func (g *OccupancyGrid) CanFit(row, col, rowSpan, colSpan int) bool {
	if row+rowSpan > g.rows || col+colSpan > g.cols {
		return false
	}
	for r := row; r < row+rowSpan; r++ {
		for c := col; c < col+colSpan; c++ {
			if g.cells[r*g.cols+c] {
				return false
			}
		}
	}
	return true
}

// Occupy claims the span's cells.
func (g *OccupancyGrid) Occupy(row, col, rowSpan, colSpan int) {
	for r := row; r < min(row+rowSpan, g.rows); r++ {
		for c := col; c < min(col+colSpan, g.cols); c++ {
			g.cells[r*g.cols+c] = true
		}
	}
}

// Span declares how many grid cells a widget claims in each axis.
// Values below 1 are normalized to 1.
type Span struct {
	Cols int
	Rows int
}

// GridPlacement records where one widget landed: its anchor cell,
// effective span, and the concrete region covering the spanned tracks.
type GridPlacement struct {
	Index   int
	Row     int
	Col     int
	RowSpan int
	ColSpan int
	Region  canvas.Region
}

// PlaceGrid assigns widgets to grid cells with a first-fit scan:
// widgets are placed left to right, top to bottom, skipping cells
// already claimed by spanning widgets. Spans are clamped to remaining
// grid bounds. Widgets that cannot fit anywhere are dropped without
// error. The returned placements are the single source of truth for
// both painting and hit-testing, so the two can never diverge.
func PlaceGrid(spans []Span, columns, rows []ResolvedTrack, origin canvas.Region, gutterX, gutterY int) []GridPlacement {
	cols := len(columns)
	rowCount := len(rows)
	if cols == 0 || rowCount == 0 {
		return nil
	}

	occupancy := NewOccupancyGrid(rowCount, cols)
	placements := make([]GridPlacement, 0, len(spans))
	curRow, curCol := 0, 0

	for i, span := range spans {
		colSpan := max(span.Cols, 1)
		rowSpan := max(span.Rows, 1)

		placed := false
		for !placed {
			r, col, ok := occupancy.FindNextFree(curRow, curCol)
			if !ok {
				return placements
			}
			curRow, curCol = r, col

			effColSpan := min(colSpan, cols-curCol)
			effRowSpan := min(rowSpan, rowCount-curRow)

			if occupancy.CanFit(curRow, curCol, effRowSpan, effColSpan) {
				occupancy.Occupy(curRow, curCol, effRowSpan, effColSpan)
				placements = append(placements, GridPlacement{
					Index:   i,
					Row:     curRow,
					Col:     curCol,
					RowSpan: effRowSpan,
					ColSpan: effColSpan,
					Region:  SpanRegion(curCol, curRow, effColSpan, effRowSpan, columns, rows, origin, gutterX, gutterY),
				})
				placed = true
			}

			curCol++
			if curCol >= cols {
				curCol = 0
				curRow++
			}
		}

		if curRow >= rowCount {
			// Cursor passed the last row; the scan never backtracks
			break
		}
	}

	return placements
}

// SpanRegion derives the concrete region for a span anchored at
// (col, row): the start offsets come from the anchor tracks, and the
// extent sums the spanned tracks plus the internal gutters between
// them, so merged cells present no visible gap.
func SpanRegion(col, row, colSpan, rowSpan int, columns, rows []ResolvedTrack, origin canvas.Region, gutterX, gutterY int) canvas.Region {
	if col >= len(columns) || row >= len(rows) {
		return canvas.Region{}
	}

	x := origin.X + columns[col].Offset
	y := origin.Y + rows[row].Offset

	width := spanExtent(columns, col, colSpan, gutterX)
	height := spanExtent(rows, row, rowSpan, gutterY)

	return canvas.NewRegion(x, y, width, height)
}

func spanExtent(tracks []ResolvedTrack, start, span, gutter int) int {
	end := min(start+span, len(tracks))
	if end < len(tracks) {
		// Extent up to the next track, minus the trailing gutter
		return tracks[end].Offset - tracks[start].Offset - gutter
	}
	total := 0
	for _, t := range tracks[start:] {
		total += t.Size
	}
	if n := end - start - 1; n > 0 {
		total += n * gutter
	}
	return total
}

// HitTest maps a point to the placement containing it, returning the
// widget index or -1. Because it reads the same placements the paint
// pass used, a click always lands in the cell that was painted.
func HitTest(placements []GridPlacement, x, y int) int {
	for _, p := range placements {
		if p.Region.Contains(x, y) {
			return p.Index
		}
	}
	return -1
}
