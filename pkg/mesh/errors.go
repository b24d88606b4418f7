package mesh

import "errors"

var (
	// ErrOutOfRange indicates a cell index outside the grid.
	ErrOutOfRange = errors.New("mesh: cell index out of range")
	// ErrPaletteSize indicates a non-positive palette size.
	ErrPaletteSize = errors.New("mesh: palette size must be > 0")
)
