package dtw

import (
	"fmt"
	"math"

	"github.com/katalvlaran/timewarp/matrix"
)

// Window is a search region over an n×m grid, stored as one contiguous
// column range [Lo[i], Hi[i]] per row.
//
// Windows produced by FullWindow and ExpandWindow satisfy:
//   - Lo[0] == 0 and Hi[n-1] == m-1;
//   - Lo is non-decreasing;
//   - Lo[i+1] ≤ Hi[i]+1 (each row is reachable from the previous one).
//
// Under these rules every cell of the window is reachable from (0,0) by
// monotone steps, so the windowed recurrence never strands (n-1, m-1).
type Window struct {
	n, m int
	lo   []int
	hi   []int
}

// FullWindow covers the whole n×m grid.
func FullWindow(n, m int) Window {
	w := Window{n: n, m: m, lo: make([]int, n), hi: make([]int, n)}
	for i := 0; i < n; i++ {
		w.hi[i] = m - 1
	}

	return w
}

// Rows returns n.
func (w Window) Rows() int { return w.n }

// Cols returns m.
func (w Window) Cols() int { return w.m }

// Range returns the column range of row i.
func (w Window) Range(i int) (lo, hi int) { return w.lo[i], w.hi[i] }

// Contains reports whether (i,j) lies inside the window.
func (w Window) Contains(i, j int) bool {
	if i < 0 || i >= w.n {
		return false
	}

	return j >= w.lo[i] && j <= w.hi[i]
}

// Cells returns the number of cells inside the window.
func (w Window) Cells() int {
	total := 0
	for i := 0; i < w.n; i++ {
		total += w.hi[i] - w.lo[i] + 1
	}

	return total
}

// ExpandWindow projects a coarse path onto an n×m grid and widens it.
//
// Implementation:
//   - Stage 1: every coarse cell (ci,cj) covers the full-resolution block
//     rows [2ci-radius, 2ci+1+radius] × cols [2cj-radius, 2cj+1+radius],
//     clipped to the grid.
//   - Stage 2: rows left uncovered inherit the previous row's range.
//   - Stage 3: enforce the Window rules (see Window) by widening only.
//
// Complexity: O(K·radius + n) for a coarse path of length K.
func ExpandWindow(coarse Path, n, m, radius int) Window {
	w := Window{n: n, m: m, lo: make([]int, n), hi: make([]int, n)}
	for i := 0; i < n; i++ {
		w.lo[i], w.hi[i] = m, -1
	}

	var i, r0, r1, c0, c1 int
	for _, c := range coarse {
		r0, r1 = clamp(2*c.I-radius, 0, n-1), clamp(2*c.I+1+radius, 0, n-1)
		c0, c1 = clamp(2*c.J-radius, 0, m-1), clamp(2*c.J+1+radius, 0, m-1)
		for i = r0; i <= r1; i++ {
			w.lo[i] = min(w.lo[i], c0)
			w.hi[i] = max(w.hi[i], c1)
		}
	}

	for i = 0; i < n; i++ {
		if w.lo[i] <= w.hi[i] {
			continue
		}
		if i == 0 {
			w.lo[0], w.hi[0] = 0, 0
			continue
		}
		w.lo[i], w.hi[i] = w.lo[i-1], w.hi[i-1]
	}

	w.lo[0] = 0
	w.hi[n-1] = m - 1
	for i = n - 2; i >= 0; i-- {
		w.lo[i] = min(w.lo[i], w.lo[i+1])
	}
	for i = 0; i+1 < n; i++ {
		w.hi[i] = max(w.hi[i], w.lo[i+1]-1)
	}

	return w
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// bandMatrix is a matrix.Matrix that stores only the cells of a Window.
// Cells outside the window read as +Inf and reject writes.
type bandMatrix struct {
	w    Window
	offs []int     // offs[i] = index of (i, lo[i]) in data
	data []float64 // window cells, row by row
}

var _ matrix.Matrix = (*bandMatrix)(nil)

// newBandMatrix allocates zeroed storage for the cells of w.
func newBandMatrix(w Window) *bandMatrix {
	offs := make([]int, w.n)
	total := 0
	for i := 0; i < w.n; i++ {
		offs[i] = total
		total += w.hi[i] - w.lo[i] + 1
	}

	return &bandMatrix{w: w, offs: offs, data: make([]float64, total)}
}

func (b *bandMatrix) Rows() int { return b.w.n }
func (b *bandMatrix) Cols() int { return b.w.m }

func (b *bandMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= b.w.n || j < 0 || j >= b.w.m {
		return 0, fmt.Errorf("bandMatrix.At(%d,%d): %w", i, j, matrix.ErrOutOfRange)
	}
	if !b.w.Contains(i, j) {
		return math.Inf(1), nil
	}

	return b.data[b.offs[i]+j-b.w.lo[i]], nil
}

func (b *bandMatrix) Set(i, j int, v float64) error {
	if !b.w.Contains(i, j) {
		return fmt.Errorf("bandMatrix.Set(%d,%d): %w", i, j, matrix.ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, -1) {
		return fmt.Errorf("bandMatrix.Set(%d,%d): %w", i, j, matrix.ErrNaNInf)
	}
	b.data[b.offs[i]+j-b.w.lo[i]] = v

	return nil
}

func (b *bandMatrix) Clone() matrix.Matrix {
	cp := make([]float64, len(b.data))
	copy(cp, b.data)

	return &bandMatrix{w: b.w, offs: b.offs, data: cp}
}

// WindowedCompute runs the DTW recurrence and backtrace restricted to w.
// Cells outside w count as unreachable (+Inf). With FullWindow it returns
// the same result as Compute.
//
// Errors: input validation sentinels, ErrInvalidCost, and
// matrix.ErrDimensionMismatch when w does not match the input lengths.
// Complexity: O(w.Cells()) time and memory.
func WindowedCompute(sample, template *Sequence, w Window, dist DistanceFunc) (Result, error) {
	const op = "WindowedCompute"
	if err := validatePair(sample, template); err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}
	if w.n != sample.Len() || w.m != template.Len() {
		return Result{}, fmt.Errorf("%s: window %dx%d for %dx%d grid: %w",
			op, w.n, w.m, sample.Len(), template.Len(), matrix.ErrDimensionMismatch)
	}
	if dist == nil {
		dist = DistanceBetween
	}
	xs, ys := sample.Elements(), template.Elements()

	band := newBandMatrix(w)
	g := &grid{m: band}
	var i, j, lo, hi int
	var c, best float64
	for i = 0; i < w.n; i++ {
		lo, hi = w.lo[i], w.hi[i]
		for j = lo; j <= hi; j++ {
			c = dist(xs[i], ys[j])
			if !checkCost(c) {
				return Result{}, fmt.Errorf("%s: cell (%d,%d) = %g: %w", op, i, j, c, ErrInvalidCost)
			}
			switch {
			case i == 0 && j == 0:
				best = 0
			case i == 0:
				best = g.at(0, j-1)
			case j == 0:
				best = g.at(i-1, 0)
			default:
				best = min3(g.at(i-1, j), g.at(i-1, j-1), g.at(i, j-1))
			}
			g.set(i, j, c+best)
		}
	}
	if g.err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, g.err)
	}

	return resultFrom(band)
}
