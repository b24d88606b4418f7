package mesh

// Merge folds neighbouring cells with the same owner into rectangular spans.
// The algorithm is greedy:
// 1. Scans cells in row-major order.
// 2. From every unvisited cell, extends the span as far right as the owner repeats.
// 3. Extends it downwards while the whole next row segment has the same owner.
// 4. Marks the covered cells as visited and continues.
//
// Empty cells are merged as well. The returned spans tile the grid exactly once
// and are ordered by their top-left cell.
func Merge(g *Grid) []Span {
	if g.Rows == 0 || g.Cols == 0 {
		return nil
	}

	visited := make([]bool, len(g.cells))
	var spans []Span

	for i := 0; i < g.Rows; i++ {
		for j := 0; j < g.Cols; j++ {
			if visited[g.index(i, j)] {
				continue
			}
			owner := g.Owner(i, j)

			// Expand width
			jLast := j
			for jLast+1 < g.Cols && !visited[g.index(i, jLast+1)] && g.Owner(i, jLast+1) == owner {
				jLast++
			}

			// Expand height
			iLast := i
			for iLast+1 < g.Rows {
				canExpand := true
				for c := j; c <= jLast; c++ {
					if visited[g.index(iLast+1, c)] || g.Owner(iLast+1, c) != owner {
						canExpand = false
						break
					}
				}
				if !canExpand {
					break
				}
				iLast++
			}

			for r := i; r <= iLast; r++ {
				for c := j; c <= jLast; c++ {
					visited[g.index(r, c)] = true
				}
			}

			spans = append(spans, Span{
				Row:     i,
				Col:     j,
				RowSpan: iLast - i + 1,
				ColSpan: jLast - j + 1,
				Owner:   owner,
			})
		}
	}
	return spans
}
