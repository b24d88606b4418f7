package mesh

// Grid holds the owner of every cell of a mesh in row-major order.
type Grid struct {
	Rows, Cols int
	cells      []int
}

// NewGrid returns a rows×cols grid with every cell Empty.
func NewGrid(rows, cols int) *Grid {
	cells := make([]int, rows*cols)
	for i := range cells {
		cells[i] = Empty
	}
	return &Grid{Rows: rows, Cols: cols, cells: cells}
}

// index maps (i,j) to a row-major index: i*Cols + j.
func (g *Grid) index(i, j int) int {
	return i*g.Cols + j
}

// InBounds reports whether (i,j) lies within the grid.
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.Rows && j >= 0 && j < g.Cols
}

// At returns the id of the rectangle owning cell (i,j), or Empty.
func (g *Grid) At(i, j int) (int, error) {
	if !g.InBounds(i, j) {
		return Empty, ErrOutOfRange
	}
	return g.cells[g.index(i, j)], nil
}

// Owner is At without the bounds check; it panics on a bad index.
func (g *Grid) Owner(i, j int) int {
	return g.cells[g.index(i, j)]
}

func (g *Grid) set(i, j, owner int) {
	g.cells[g.index(i, j)] = owner
}

// ColorIndex returns the owner id folded into paletteSize slots, or -1 for an
// empty cell. Different rectangles may share a slot.
func (g *Grid) ColorIndex(i, j, paletteSize int) (int, error) {
	if paletteSize <= 0 {
		return -1, ErrPaletteSize
	}
	owner, err := g.At(i, j)
	if err != nil || owner == Empty {
		return -1, err
	}
	return owner % paletteSize, nil
}

// Owners returns a copy of the grid as a [row][col] slice.
func (g *Grid) Owners() [][]int {
	out := make([][]int, g.Rows)
	for i := range out {
		out[i] = make([]int, g.Cols)
		copy(out[i], g.cells[g.index(i, 0):g.index(i, 0)+g.Cols])
	}
	return out
}

// Filled returns the number of non-empty cells.
func (g *Grid) Filled() int {
	n := 0
	for _, c := range g.cells {
		if c != Empty {
			n++
		}
	}
	return n
}
