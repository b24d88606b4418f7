package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/xll-gen/rectviz/internal/config"
	"github.com/xll-gen/rectviz/internal/visualizer"
)

func TestRunMesh(t *testing.T) {
	cfg = config.Default()
	defer func() { cfg = nil }()

	input := writeFile(t, t.TempDir(), "in.txt", "2\n0 0 10 10\n5 5 15 15\n")
	var out bytes.Buffer
	require.NoError(t, runMesh(&out, input))

	assert.Contains(t, out.String(), "horizontal: [0, 5, 10, 15]")

	var got meshDump
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 2, got.Rectangles)
	assert.Equal(t, 10, got.MinDimension)
	assert.Equal(t, 10.0, got.Scale)
	assert.Len(t, got.Rows, 3)
	assert.Len(t, got.Columns, 3)
	assert.Equal(t, [][]int{{0, 0, -1}, {0, 0, 1}, {-1, 1, 1}}, got.Cells)
}

func TestRunMesh_ReadError(t *testing.T) {
	cfg = config.Default()
	defer func() { cfg = nil }()

	err := runMesh(&bytes.Buffer{}, filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, visualizer.ErrRead)
}

func TestRunPreview_ReadError(t *testing.T) {
	cfg = config.Default()
	defer func() { cfg = nil }()

	err := runPreview(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, visualizer.ErrRead)
}
