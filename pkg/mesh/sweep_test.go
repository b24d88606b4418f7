package mesh_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xll-gen/rectviz/pkg/mesh"
)

func assign(in []mesh.Rectangle) (mesh.Mesh, *mesh.Grid) {
	m := mesh.Build(in)
	return m, mesh.Assign(m, in)
}

// bruteForce picks the lowest id among the rectangles containing each cell.
func bruteForce(m mesh.Mesh, in []mesh.Rectangle) [][]int {
	out := make([][]int, len(m.Rows))
	for i, row := range m.Rows {
		out[i] = make([]int, len(m.Columns))
		for j, col := range m.Columns {
			out[i][j] = mesh.Empty
			for _, r := range in {
				if r.Top <= row.Top && row.Bottom <= r.Bottom && r.Left <= col.Left && col.Right <= r.Right {
					out[i][j] = r.ID
					break
				}
			}
		}
	}
	return out
}

func TestAssign_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		in   []mesh.Rectangle
		want [][]int
	}{
		{
			name: "single square",
			in:   rects([4]int{0, 0, 10, 10}),
			want: [][]int{{0}},
		},
		{
			name: "side by side",
			in:   rects([4]int{0, 0, 10, 10}, [4]int{0, 10, 10, 20}),
			want: [][]int{{0, 1}},
		},
		{
			name: "identical bounds resolve to lowest id",
			in:   rects([4]int{0, 0, 10, 10}, [4]int{0, 0, 10, 10}),
			want: [][]int{{0}},
		},
		{
			name: "partial overlap",
			in:   rects([4]int{0, 0, 10, 10}, [4]int{5, 5, 15, 15}),
			want: [][]int{
				{0, 0, -1},
				{0, 0, 1},
				{-1, 1, 1},
			},
		},
		{
			name: "lower id wins even when it starts later",
			in:   rects([4]int{5, 5, 15, 15}, [4]int{0, 0, 10, 10}),
			want: [][]int{
				{1, 1, -1},
				{1, 0, 0},
				{-1, 0, 0},
			},
		},
		{
			name: "disjoint rectangles leave a gap",
			in:   rects([4]int{0, 0, 10, 10}, [4]int{20, 20, 30, 30}),
			want: [][]int{
				{0, -1, -1},
				{-1, -1, -1},
				{-1, -1, 1},
			},
		},
		{
			name: "tall rectangle spans several rows",
			in:   rects([4]int{0, 0, 30, 10}, [4]int{10, 10, 20, 20}),
			want: [][]int{
				{0, -1},
				{0, 1},
				{0, -1},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, g := assign(tc.in)
			assert.Equal(t, tc.want, g.Owners())
		})
	}
}

// TestAssign_Empty checks zero rectangles give an empty grid.
func TestAssign_Empty(t *testing.T) {
	_, g := assign(nil)
	assert.Equal(t, 0, g.Rows)
	assert.Equal(t, 0, g.Cols)
	assert.Empty(t, g.Owners())
	assert.Equal(t, 0, g.Filled())
}

func TestAssign_DegenerateOwnsNothing(t *testing.T) {
	// id 0 has zero height on the row boundary at 2.
	_, g := assign(rects([4]int{2, 1, 2, 3}, [4]int{0, 0, 4, 4}))

	for _, row := range g.Owners() {
		for _, owner := range row {
			assert.Equal(t, 1, owner)
		}
	}
}

// TestAssign_ColorIndex checks ids fold into the palette.
func TestAssign_ColorIndex(t *testing.T) {
	in := make([]mesh.Rectangle, 10)
	for k := range in {
		in[k] = mesh.Rectangle{ID: k, Top: 0, Left: 10 * k, Bottom: 10, Right: 10*k + 10}
	}
	_, g := assign(in)
	require.Equal(t, 10, g.Cols)

	for j := 0; j < g.Cols; j++ {
		c, err := g.ColorIndex(0, j, mesh.DefaultPaletteSize)
		require.NoError(t, err)
		assert.Equal(t, j%8, c)
	}

	_, err := g.ColorIndex(0, 0, 0)
	assert.ErrorIs(t, err, mesh.ErrPaletteSize)
	_, err = g.ColorIndex(1, 0, 8)
	assert.ErrorIs(t, err, mesh.ErrOutOfRange)
	_, err = g.At(0, -1)
	assert.ErrorIs(t, err, mesh.ErrOutOfRange)
}

// TestAssign_EmptyCellColorIndex checks uncovered cells report -1.
func TestAssign_EmptyCellColorIndex(t *testing.T) {
	_, g := assign(rects([4]int{0, 0, 10, 10}, [4]int{20, 20, 30, 30}))
	c, err := g.ColorIndex(1, 1, 8)
	require.NoError(t, err)
	assert.Equal(t, -1, c)
}

// TestAssign_MatchesBruteForce compares the sweep against direct containment
// on random inputs with many shared edges and overlaps.
func TestAssign_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		n := rng.Intn(12)
		in := make([]mesh.Rectangle, n)
		for k := range in {
			top, left := rng.Intn(8), rng.Intn(8)
			in[k] = mesh.Rectangle{
				ID:     k,
				Top:    top,
				Left:   left,
				Bottom: top + 1 + rng.Intn(6),
				Right:  left + 1 + rng.Intn(6),
			}
		}
		m, g := assign(in)
		require.Equal(t, bruteForce(m, in), g.Owners(), "round %d: %v", round, in)
	}
}

// TestAssign_Idempotent runs the pipeline twice on the same input.
func TestAssign_Idempotent(t *testing.T) {
	in := rects([4]int{0, 0, 10, 10}, [4]int{5, 5, 15, 15}, [4]int{0, 0, 10, 10})
	_, g1 := assign(in)
	_, g2 := assign(in)
	assert.Equal(t, g1.Owners(), g2.Owners())
}
