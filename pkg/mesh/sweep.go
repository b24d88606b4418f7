package mesh

import (
	"cmp"
	"slices"
)

// Assign decides, for every cell of m, which rectangle covers it.
//
// Cell (i,j) is covered by R when Rows[i] and Columns[j] both lie inside R.
// Rectangles are opened when the sweep reaches their top (rows) or left
// (columns) edge and closed once their bottom or right edge has been passed.
// A rectangle joins a cell only while it is open in the current row.
// Degenerate rectangles never open and own no cells.
// Among the rectangles open in a cell the lowest id wins.
//
// rects must be the rectangles m was built from.
// Complexity: O(R log R + rows·cols·k), k = rectangles open in the band.
func Assign(m Mesh, rects []Rectangle) *Grid {
	grid := NewGrid(len(m.Rows), len(m.Columns))
	if grid.Rows == 0 || grid.Cols == 0 {
		return grid
	}

	byTop := sortedBy(rects, func(r Rectangle) int { return r.Top })
	byLeft := sortedBy(rects, func(r Rectangle) int { return r.Left })

	inRow := make([]bool, len(rects))
	rowOpen := make([]int, 0, len(rects))
	cellOpen := make([]int, 0, len(rects))

	topCursor := 0
	for i, row := range m.Rows {
		for topCursor < len(byTop) && rects[byTop[topCursor]].Top == row.Top {
			if k := byTop[topCursor]; rects[k].Height() > 0 && rects[k].Width() > 0 {
				inRow[k] = true
				rowOpen = append(rowOpen, k)
			}
			topCursor++
		}

		leftCursor := 0
		cellOpen = cellOpen[:0]
		for j, col := range m.Columns {
			for leftCursor < len(byLeft) && rects[byLeft[leftCursor]].Left == col.Left {
				if k := byLeft[leftCursor]; inRow[k] {
					cellOpen = append(cellOpen, k)
				}
				leftCursor++
			}

			if len(cellOpen) > 0 {
				grid.set(i, j, lowestID(rects, cellOpen))
			}

			cellOpen = slices.DeleteFunc(cellOpen, func(k int) bool {
				return rects[k].Right <= col.Right
			})
		}

		rowOpen = slices.DeleteFunc(rowOpen, func(k int) bool {
			if rects[k].Bottom <= row.Bottom {
				inRow[k] = false
				return true
			}
			return false
		})
	}

	return grid
}

// lowestID returns the smallest ID among the rectangles at positions open.
func lowestID(rects []Rectangle, open []int) int {
	id := rects[open[0]].ID
	for _, k := range open[1:] {
		id = min(id, rects[k].ID)
	}
	return id
}

// sortedBy returns the indices of rects stably ordered by key.
func sortedBy(rects []Rectangle, key func(Rectangle) int) []int {
	idx := make([]int, len(rects))
	for k := range idx {
		idx[k] = k
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(key(rects[a]), key(rects[b]))
	})
	return idx
}
