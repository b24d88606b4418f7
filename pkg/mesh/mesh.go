// Package mesh compresses rectangle edges into a non-uniform grid and decides,
// for every cell of that grid, which rectangle covers it.
//
// Build derives the sorted, deduplicated edge coordinates on each axis and the
// Rows and Columns between them. Assign sweeps the grid row by row and column by
// column, keeping only the rectangles whose edges have been crossed open.
// Merge folds neighbouring cells with the same owner into larger spans.
//
// When several rectangles cover the same cell, the one with the lowest id wins.
package mesh

import (
	"slices"
)

// Build computes the mesh of rects.
// Coincident edges collapse into one mesh line; the two axes are independent.
// MinDimension is the shortest side among rectangles with positive area, or 0
// when there are none.
// Complexity: O(R log R) time, O(R) memory.
func Build(rects []Rectangle) Mesh {
	horizontal := make([]int, 0, 2*len(rects))
	vertical := make([]int, 0, 2*len(rects))
	minDim := 0

	for _, r := range rects {
		horizontal = append(horizontal, r.Left, r.Right)
		vertical = append(vertical, r.Top, r.Bottom)

		// Degenerate rectangles own no cells and do not set the scale.
		d := min(r.Height(), r.Width())
		if d > 0 && (minDim == 0 || d < minDim) {
			minDim = d
		}
	}

	slices.Sort(horizontal)
	horizontal = slices.Compact(horizontal)
	slices.Sort(vertical)
	vertical = slices.Compact(vertical)

	m := Mesh{
		Horizontal:   horizontal,
		Vertical:     vertical,
		MinDimension: minDim,
	}
	for k := 1; k < len(horizontal); k++ {
		m.Columns = append(m.Columns, Column{Left: horizontal[k-1], Right: horizontal[k]})
	}
	for k := 1; k < len(vertical); k++ {
		m.Rows = append(m.Rows, Row{Top: vertical[k-1], Bottom: vertical[k]})
	}

	return m
}

// Scale returns unit / MinDimension, the pixel factor that makes the smallest
// rectangle side unit pixels long. An empty mesh has no smallest side and
// scales by 1.
func (m Mesh) Scale(unit float64) float64 {
	if m.MinDimension <= 0 {
		return 1
	}
	return unit / float64(m.MinDimension)
}

// Bounds returns the bounding box covered by the mesh as top, left, bottom, right.
// ok is false for an empty mesh.
func (m Mesh) Bounds() (top, left, bottom, right int, ok bool) {
	if len(m.Rows) == 0 || len(m.Columns) == 0 {
		return 0, 0, 0, 0, false
	}
	return m.Rows[0].Top, m.Columns[0].Left, m.Rows[len(m.Rows)-1].Bottom, m.Columns[len(m.Columns)-1].Right, true
}
