// Package loader reads rectangle lists in the plain-text input format:
// a count N followed by N groups of "top left bottom right", all separated
// by arbitrary whitespace.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/xll-gen/rectviz/pkg/mesh"
)

var (
	// ErrMissingCount indicates the input has no leading rectangle count.
	ErrMissingCount = errors.New("loader: missing rectangle count")
	// ErrNegativeCount indicates a rectangle count below zero.
	ErrNegativeCount = errors.New("loader: negative rectangle count")
	// ErrBadInteger indicates a token that is not a base-10 integer.
	ErrBadInteger = errors.New("loader: invalid integer")
	// ErrTruncated indicates the input ends before all rectangles are read.
	ErrTruncated = errors.New("loader: input ends before all rectangles are read")
	// ErrDegenerate indicates a rectangle with top >= bottom or left >= right.
	ErrDegenerate = errors.New("loader: degenerate rectangle")
)

// Options controls input validation.
type Options struct {
	// Strict rejects degenerate rectangles with ErrDegenerate.
	Strict bool
}

// LoadFile opens path and parses it with Parse. The file is always closed.
func LoadFile(path string, opts Options) ([]mesh.Rectangle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rects, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("Loaded rectangles", "path", path, "count", len(rects))
	return rects, nil
}

// Parse reads a rectangle list from r. Ids are assigned in input order.
// Tokens after the last rectangle are ignored.
func Parse(r io.Reader, opts Options) ([]mesh.Rectangle, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n, err := nextInt(sc)
	if errors.Is(err, io.EOF) {
		return nil, ErrMissingCount
	}
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}

	rects := make([]mesh.Rectangle, 0, min(n, 1<<16))
	for id := 0; id < n; id++ {
		var v [4]int
		for k := range v {
			v[k], err = nextInt(sc)
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: got %d of %d rectangles", ErrTruncated, id, n)
			}
			if err != nil {
				return nil, fmt.Errorf("rectangle %d: %w", id, err)
			}
		}
		rect := mesh.Rectangle{ID: id, Top: v[0], Left: v[1], Bottom: v[2], Right: v[3]}
		if opts.Strict && (rect.Top >= rect.Bottom || rect.Left >= rect.Right) {
			return nil, fmt.Errorf("%w: rectangle %d is %d %d %d %d", ErrDegenerate, id, v[0], v[1], v[2], v[3])
		}
		rects = append(rects, rect)
	}
	return rects, nil
}

// nextInt returns the next token as an int, or io.EOF when the input is exhausted.
func nextInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	v, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadInteger, sc.Text())
	}
	return v, nil
}
