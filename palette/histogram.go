// Package palette maps escape-time iteration counts to colors.
//
// The histogram chooser spreads colors by how often each iteration count
// occurs, so sparse counts get narrow bands and dense counts get wide ones.
// It is built in three passes: BuildHistogram, Allocate and Synthesize.
// New runs all three and wraps the result in a Chooser.
package palette

import (
	"sort"

	"github.com/pkg/errors"
)

// Grid holds iteration counts indexed as grid[x][y].
type Grid [][]int

// Dims returns width and height of a rectangular grid.
func (g Grid) Dims() (int, int) {
	if len(g) == 0 {
		return 0, 0
	}
	return len(g), len(g[0])
}

// Histogram is the frequency table of iteration counts in a Grid.
type Histogram struct {
	keys   []int
	counts map[int]int
	total  int
}

// BuildHistogram counts every cell of grid once.
func BuildHistogram(grid Grid) (*Histogram, error) {
	width, height := grid.Dims()
	if width == 0 || height == 0 {
		return nil, ErrEmptyGrid
	}

	h := &Histogram{counts: make(map[int]int)}
	for x := 0; x < width; x++ {
		if len(grid[x]) != height {
			return nil, errors.Wrapf(ErrRaggedGrid, "column %d has %d cells, want %d", x, len(grid[x]), height)
		}
		for y := 0; y < height; y++ {
			v := grid[x][y]
			if v < 0 {
				return nil, errors.Wrapf(ErrNegativeCount, "cell (%d,%d) = %d", x, y, v)
			}
			if _, ok := h.counts[v]; !ok {
				h.keys = append(h.keys, v)
			}
			h.counts[v]++
		}
	}
	sort.Ints(h.keys)
	h.total = width * height
	return h, nil
}

// Keys returns the distinct iteration counts in ascending order.
func (h *Histogram) Keys() []int {
	return append([]int(nil), h.keys...)
}

// Count returns how many cells held iter.
func (h *Histogram) Count(iter int) int {
	return h.counts[iter]
}

// Len returns the number of distinct iteration counts.
func (h *Histogram) Len() int {
	return len(h.keys)
}

// Total returns the number of cells counted.
func (h *Histogram) Total() int {
	return h.total
}

// Max returns the largest iteration count seen.
func (h *Histogram) Max() int {
	if len(h.keys) == 0 {
		return 0
	}
	return h.keys[len(h.keys)-1]
}
