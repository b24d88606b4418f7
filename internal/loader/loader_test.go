package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xll-gen/rectviz/pkg/mesh"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		strict  bool
		want    []mesh.Rectangle
		wantErr error
	}{
		{
			name:  "single",
			input: "1\n0 0 10 10\n",
			want:  []mesh.Rectangle{{ID: 0, Top: 0, Left: 0, Bottom: 10, Right: 10}},
		},
		{
			name:  "ids follow input order",
			input: "2\n0 0 10 10\n0 10 10 20",
			want: []mesh.Rectangle{
				{ID: 0, Top: 0, Left: 0, Bottom: 10, Right: 10},
				{ID: 1, Top: 0, Left: 10, Bottom: 10, Right: 20},
			},
		},
		{
			name:  "any whitespace separates",
			input: "  1\t-5\n\n-5   0\r\n0 ",
			want:  []mesh.Rectangle{{ID: 0, Top: -5, Left: -5, Bottom: 0, Right: 0}},
		},
		{
			name:  "zero rectangles",
			input: "0",
			want:  []mesh.Rectangle{},
		},
		{
			name:  "trailing tokens ignored",
			input: "1 0 0 1 1 junk",
			want:  []mesh.Rectangle{{ID: 0, Top: 0, Left: 0, Bottom: 1, Right: 1}},
		},
		{
			name:  "degenerate allowed when not strict",
			input: "1 0 0 0 5",
			want:  []mesh.Rectangle{{ID: 0, Top: 0, Left: 0, Bottom: 0, Right: 5}},
		},
		{name: "empty input", input: "", wantErr: ErrMissingCount},
		{name: "blank input", input: " \n\t", wantErr: ErrMissingCount},
		{name: "bad count", input: "two", wantErr: ErrBadInteger},
		{name: "negative count", input: "-1", wantErr: ErrNegativeCount},
		{name: "truncated", input: "2\n0 0 10 10\n0 10", wantErr: ErrTruncated},
		{name: "bad coordinate", input: "1\n0 0 1.5 10", wantErr: ErrBadInteger},
		{name: "degenerate strict", input: "1 0 0 10 0", strict: true, wantErr: ErrDegenerate},
		{name: "inverted strict", input: "1 10 0 0 10", strict: true, wantErr: ErrDegenerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input), Options{Strict: tt.strict})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("2\n0 0 10 10\n0 10 10 20\n"), 0644))

	got, err := LoadFile(path, Options{Strict: true})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = LoadFile(filepath.Join(dir, "missing.txt"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("3\n0 0 1 1"), 0644))
	_, err = LoadFile(bad, Options{})
	assert.ErrorIs(t, err, ErrTruncated)
	assert.Contains(t, err.Error(), "bad.txt")
}
