package mesh

// Empty marks a grid cell that no rectangle covers.
const Empty = -1

// DefaultPaletteSize is the number of colour slots rectangle ids are folded into.
const DefaultPaletteSize = 8

// Rectangle is an axis-aligned integer rectangle.
// ID is the position of the rectangle in the input, starting at 0.
// Top < Bottom and Left < Right are assumed; the core does not check them.
type Rectangle struct {
	ID     int
	Top    int
	Left   int
	Bottom int
	Right  int
}

// Height returns Bottom - Top.
func (r Rectangle) Height() int { return r.Bottom - r.Top }

// Width returns Right - Left.
func (r Rectangle) Width() int { return r.Right - r.Left }

// Row is one interval of the vertical partition.
type Row struct {
	Top    int
	Bottom int
}

// Height returns Bottom - Top.
func (r Row) Height() int { return r.Bottom - r.Top }

// Column is one interval of the horizontal partition.
type Column struct {
	Left  int
	Right int
}

// Width returns Right - Left.
func (c Column) Width() int { return c.Right - c.Left }

// Mesh is the non-uniform grid induced by a set of rectangles.
type Mesh struct {
	// Horizontal holds the distinct Left/Right values, strictly increasing.
	Horizontal []int
	// Vertical holds the distinct Top/Bottom values, strictly increasing.
	Vertical []int
	// Rows are formed from consecutive Vertical values, top to bottom.
	Rows []Row
	// Columns are formed from consecutive Horizontal values, left to right.
	Columns []Column
	// MinDimension is the smallest height or width over all rectangles,
	// or 0 when there are no rectangles.
	MinDimension int
}

// Span is a block of grid cells sharing one owner, as produced by Merge.
type Span struct {
	Row, Col         int // top-left cell
	RowSpan, ColSpan int // always >= 1
	Owner            int // rectangle id or Empty
}
