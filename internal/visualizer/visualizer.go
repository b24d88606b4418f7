// Package visualizer runs the rectangle pipeline: load, build the mesh,
// assign cells and render.
package visualizer

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/xll-gen/rectviz/internal/loader"
	"github.com/xll-gen/rectviz/internal/render"
	"github.com/xll-gen/rectviz/pkg/mesh"
)

var (
	// ErrRead wraps every failure to read or parse the input file.
	ErrRead = errors.New("unable to read input file")
	// ErrWrite wraps every failure to write the output file.
	ErrWrite = errors.New("unable to write to output file")
)

// Visualizer holds an immutable list of rectangles.
type Visualizer struct {
	rects []mesh.Rectangle
}

// New returns a Visualizer over a copy of rects.
func New(rects []mesh.Rectangle) *Visualizer {
	return &Visualizer{rects: append([]mesh.Rectangle(nil), rects...)}
}

// LoadFromFile reads the rectangles at path. Errors wrap ErrRead.
func LoadFromFile(path string, opts loader.Options) (*Visualizer, error) {
	rects, err := loader.LoadFile(path, opts)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}
	return New(rects), nil
}

// Rectangles returns the rectangles in input order.
func (v *Visualizer) Rectangles() []mesh.Rectangle {
	return append([]mesh.Rectangle(nil), v.rects...)
}

// Layout builds the mesh and assigns every cell its owner.
func (v *Visualizer) Layout() (mesh.Mesh, *mesh.Grid) {
	m := mesh.Build(v.rects)
	g := mesh.Assign(m, v.rects)
	top, left, bottom, right, _ := m.Bounds()
	slog.Debug("Layout computed",
		"rectangles", len(v.rects),
		"bounds", []int{top, left, bottom, right},
		"rows", len(m.Rows),
		"columns", len(m.Columns),
		"min_dimension", m.MinDimension,
		"filled", g.Filled(),
	)
	if len(v.rects) == 0 {
		slog.Warn("No rectangles in input, the table will be empty")
	}
	return m, g
}

// ProcessToFile lays out the rectangles and writes the HTML document to path.
// Errors wrap ErrWrite.
func (v *Visualizer) ProcessToFile(path string, opts render.Options) error {
	m, g := v.Layout()
	if err := render.WriteFile(path, m, g, opts); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	slog.Info("Wrote table", "path", path, "rows", len(m.Rows), "columns", len(m.Columns))
	return nil
}
