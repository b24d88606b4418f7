// Package preview paints a cell grid onto a terminal screen.
package preview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/xll-gen/rectviz/pkg/mesh"
)

// EmptyRune is drawn in cells no rectangle covers.
const EmptyRune = '·'

// Painter draws every grid cell as a block CellWidth columns wide and one line tall.
type Painter struct {
	colors    []tcell.Color
	cellWidth int
}

// NewPainter maps palette into terminal colours. cellWidth below 1 is treated as 1.
func NewPainter(palette []colorful.Color, cellWidth int) *Painter {
	colors := make([]tcell.Color, len(palette))
	for i, c := range palette {
		r, g, b := c.RGB255()
		colors[i] = tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return &Painter{colors: colors, cellWidth: max(cellWidth, 1)}
}

// Style returns the style of palette slot k. Negative or out-of-palette
// slots get the default style.
func (p *Painter) Style(k int) tcell.Style {
	if k < 0 || k >= len(p.colors) {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Background(p.colors[k])
}

// Paint draws g with its top-left cell at the screen origin, clipped to the screen size.
func (p *Painter) Paint(s tcell.Screen, g *mesh.Grid) {
	width, height := s.Size()
	for i := 0; i < g.Rows && i < height; i++ {
		for j := 0; j < g.Cols; j++ {
			k, err := g.ColorIndex(i, j, len(p.colors))
			if err != nil {
				k = -1
			}
			ch := ' '
			if g.Owner(i, j) == mesh.Empty {
				ch = EmptyRune
			}
			style := p.Style(k)
			for c := 0; c < p.cellWidth; c++ {
				x := j*p.cellWidth + c
				if x >= width {
					break
				}
				s.SetContent(x, i, ch, nil, style)
			}
		}
	}
}

// Run paints g on an initialized screen and redraws on resize until a key is
// pressed or the screen is finalized. The caller owns s and must call Fini.
func Run(s tcell.Screen, g *mesh.Grid, p *Painter) {
	for {
		s.Clear()
		p.Paint(s, g)
		s.Show()

		switch s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey, nil:
			return
		}
	}
}
