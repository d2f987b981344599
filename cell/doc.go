// Package cell provides the styled text-run model: Segments (atomic
// styled runs with cached display widths) and Strips (single display
// lines composed of Segments). Widths are measured in terminal cells,
// accounting for wide and zero-width glyphs.
package cell
