// Package render writes a mesh and its cell owners as an HTML table.
//
// Every Row becomes a <tr> and every Column a <td>, sized in pixels as the
// interval length times the mesh scale, rounded to the nearest integer.
// Owned cells carry the CSS class "filled{k}" with k = owner mod len(palette).
package render

import (
	"bufio"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/xll-gen/rectviz/internal/config"
	"github.com/xll-gen/rectviz/internal/templates"
	"github.com/xll-gen/rectviz/pkg/mesh"
)

// ErrGridMismatch indicates a grid whose shape differs from the mesh.
var ErrGridMismatch = errors.New("render: grid shape does not match mesh")

// Options controls the generated document.
type Options struct {
	// UnitDimension is the pixel length of the smallest rectangle side.
	UnitDimension float64
	// Palette lists CSS hex colours; it must not be empty.
	Palette []string
	// MergeCells emits rowspan/colspan cells for runs with the same owner.
	MergeCells bool
	// Title is the document title.
	Title string
}

// OptionsFromConfig extracts render options from a loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		UnitDimension: cfg.Render.UnitDimension,
		Palette:       cfg.Render.Palette,
		MergeCells:    cfg.Render.MergeCells,
		Title:         cfg.Render.Title,
	}
}

type swatch struct {
	Index int
	Color template.CSS
}

type cell struct {
	Width   int
	Class   string
	RowSpan int
	ColSpan int
}

type row struct {
	Height int
	Cells  []cell
}

type page struct {
	Title   string
	Palette []swatch
	Rows    []row
}

// Render writes the HTML document for m and g to w.
// The output depends only on its inputs, so equal inputs give equal bytes.
func Render(w io.Writer, m mesh.Mesh, g *mesh.Grid, opts Options) error {
	if g.Rows != len(m.Rows) || g.Cols != len(m.Columns) {
		return fmt.Errorf("%w: grid %dx%d, mesh %dx%d", ErrGridMismatch, g.Rows, g.Cols, len(m.Rows), len(m.Columns))
	}

	colors, err := config.ParsePalette(opts.Palette)
	if err != nil {
		return err
	}
	data := page{Title: opts.Title}
	for k, c := range colors {
		// Hex() always yields "#rrggbb", which is safe inside the stylesheet.
		data.Palette = append(data.Palette, swatch{Index: k, Color: template.CSS(c.Hex())})
	}

	scale := m.Scale(opts.UnitDimension)
	slog.Debug("Rendering table", "rows", len(m.Rows), "columns", len(m.Columns), "scale", scale, "merge", opts.MergeCells)

	if opts.MergeCells {
		data.Rows, err = mergedRows(m, g, scale, len(colors))
	} else {
		data.Rows, err = plainRows(m, g, scale, len(colors))
	}
	if err != nil {
		return err
	}

	t, err := templates.HTML(templates.Page)
	if err != nil {
		return err
	}
	return t.Execute(w, data)
}

// WriteFile renders into path, creating or truncating it.
// The file is closed on every path and a failed close is reported.
func WriteFile(path string, m mesh.Mesh, g *mesh.Grid, opts Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err := Render(bw, m, g, opts); err != nil {
		return err
	}
	return bw.Flush()
}

func plainRows(m mesh.Mesh, g *mesh.Grid, scale float64, paletteSize int) ([]row, error) {
	rows := make([]row, len(m.Rows))
	for i, r := range m.Rows {
		rows[i] = row{Height: pixels(r.Height(), scale), Cells: make([]cell, len(m.Columns))}
		for j, c := range m.Columns {
			k, err := g.ColorIndex(i, j, paletteSize)
			if err != nil {
				return nil, err
			}
			rows[i].Cells[j] = cell{
				Width:   pixels(c.Width(), scale),
				Class:   class(k),
				RowSpan: 1,
				ColSpan: 1,
			}
		}
	}
	return rows, nil
}

func mergedRows(m mesh.Mesh, g *mesh.Grid, scale float64, paletteSize int) ([]row, error) {
	rows := make([]row, len(m.Rows))
	for i, r := range m.Rows {
		rows[i].Height = pixels(r.Height(), scale)
	}
	// Merge returns spans in row-major order of their top-left cell, which is
	// the order the cells must appear in their <tr>.
	for _, s := range mesh.Merge(g) {
		k, err := g.ColorIndex(s.Row, s.Col, paletteSize)
		if err != nil {
			return nil, err
		}
		width := m.Columns[s.Col+s.ColSpan-1].Right - m.Columns[s.Col].Left
		rows[s.Row].Cells = append(rows[s.Row].Cells, cell{
			Width:   pixels(width, scale),
			Class:   class(k),
			RowSpan: s.RowSpan,
			ColSpan: s.ColSpan,
		})
	}
	return rows, nil
}

func pixels(length int, scale float64) int {
	return int(math.Round(float64(length) * scale))
}

// class names the stylesheet rule for palette slot k; empty cells have none.
func class(k int) string {
	if k < 0 {
		return ""
	}
	return fmt.Sprintf("filled%d", k)
}
