package dtw

import (
	"fmt"
	"math"

	"github.com/katalvlaran/timewarp/matrix"
)

// DTW — Dynamic Time Warping
//
// Description:
//
//	DTW measures similarity between two sequences that may vary in time or
//	speed by finding an optimal monotone "warping path" through the grid of
//	pairwise costs.
//
// Algorithm Outline:
//  1. Let n = sample length, m = template length.
//     local(i,j) = dist(sample[i], template[j]) for all cells (n×m).
//  2. Forward pass on the cumulative matrix C:
//     C(0,0) = local(0,0)
//     C(i,0) = local(i,0) + C(i-1,0)          i = 1..n-1
//     C(0,j) = local(0,j) + C(0,j-1)          j = 1..m-1
//     C(i,j) = local(i,j) + min(C(i-1,j), C(i-1,j-1), C(i,j-1))
//  3. Backtrace from (n-1,m-1) to (0,0):
//     i==0 → j--, j==0 → i--, otherwise step to the cheapest of
//     (i-1,j), (i,j-1), (i-1,j-1), evaluated in that order; the first
//     minimum wins (down, then left, then diagonal on exact ties).
//  4. Reverse the walked path; distance = C(n-1,m-1) / len(path).
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) for local and cumulative matrices, O(n+m) for the path.

const (
	opCompute    = "Compute"
	opLocalCost  = "LocalCost"
	opCumulative = "CumulativeCost"
	opBacktrace  = "Backtrace"
)

// Candidate order used by the backtrace. The numeric values are the
// positions in the evaluation order.
const (
	stepDown     = iota // (i-1, j)
	stepLeft            // (i, j-1)
	stepDiagonal        // (i-1, j-1)
)

// Compute runs the exact DTW pipeline on sample and template.
// A nil dist selects DistanceBetween.
//
// Compute is a pure function of its inputs: repeated calls with the same
// arguments return bit-identical results.
//
// Errors:
//   - ErrNilSequence, ErrEmptySequence, ErrDimensionMismatch (input validation).
//   - ErrInvalidCost (dist returned a negative, NaN or infinite cost).
func Compute(sample, template *Sequence, dist DistanceFunc) (Result, error) {
	if err := validatePair(sample, template); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opCompute, err)
	}
	local, err := LocalCost(sample, template, dist)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opCompute, err)
	}
	cum, err := CumulativeCost(local)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opCompute, err)
	}

	return resultFrom(cum)
}

// resultFrom backtracks cum and normalizes its final cell by the path length.
func resultFrom(cum matrix.Matrix) (Result, error) {
	path, err := Backtrace(cum)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opCompute, err)
	}
	cost, err := cum.At(cum.Rows()-1, cum.Cols()-1)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opCompute, err)
	}

	return Result{
		Path:     path,
		Cost:     cost,
		Distance: cost / float64(len(path)),
	}, nil
}

// validatePair enforces the input contract shared by every engine.
func validatePair(sample, template *Sequence) error {
	if sample == nil {
		return fmt.Errorf("sample: %w", ErrNilSequence)
	}
	if template == nil {
		return fmt.Errorf("template: %w", ErrNilSequence)
	}
	if sample.Len() == 0 {
		return fmt.Errorf("sample: %w", ErrEmptySequence)
	}
	if template.Len() == 0 {
		return fmt.Errorf("template: %w", ErrEmptySequence)
	}
	if err := matrix.ValidateSameRows(sample.m, template.m); err != nil {
		return fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}

	return nil
}

// checkCost reports whether c is usable as a local cost.
func checkCost(c float64) bool {
	return c >= 0 && !math.IsInf(c, 1) // NaN fails c >= 0
}

// LocalCost builds the n×m local-cost matrix, cell (i,j) = dist(sample[i], template[j]).
// A nil dist selects DistanceBetween.
//
// Errors:
//   - input validation sentinels (see Compute);
//   - ErrInvalidCost wrapped with the first offending cell.
//
// Complexity: O(n·m) distance evaluations, O(n·m) memory.
func LocalCost(sample, template *Sequence, dist DistanceFunc) (*matrix.Dense, error) {
	if err := validatePair(sample, template); err != nil {
		return nil, fmt.Errorf("%s: %w", opLocalCost, err)
	}
	if dist == nil {
		dist = DistanceBetween
	}
	xs, ys := sample.Elements(), template.Elements()

	var bad error
	local, err := matrix.Build(len(xs), len(ys), func(i, j int) float64 {
		c := dist(xs[i], ys[j])
		if !checkCost(c) {
			if bad == nil {
				bad = fmt.Errorf("cell (%d,%d) = %g: %w", i, j, c, ErrInvalidCost)
			}
			return 0
		}
		return c
	})
	if bad != nil {
		return nil, fmt.Errorf("%s: %w", opLocalCost, bad)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLocalCost, err)
	}

	return local, nil
}

// grid is a sticky-error accessor over a Matrix: after the first failing
// At/Set every later call is a no-op and err keeps the first failure.
type grid struct {
	m   matrix.Matrix
	err error
}

func (g *grid) at(i, j int) float64 {
	if g.err != nil {
		return 0
	}
	v, err := g.m.At(i, j)
	if err != nil {
		g.err = err
	}

	return v
}

func (g *grid) set(i, j int, v float64) {
	if g.err != nil {
		return
	}
	g.err = g.m.Set(i, j, v)
}

// CumulativeCost runs the forward pass over a local-cost matrix.
//
// Invariants of the result:
//   - first column / first row are prefix sums of the local first column / row;
//   - every interior cell equals local(i,j) + min of its three predecessors.
//
// Errors: matrix.ErrNilMatrix / matrix.ErrInvalidDimensions for unusable input.
// Complexity: O(n·m).
func CumulativeCost(local matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNonEmpty(local); err != nil {
		return nil, fmt.Errorf("%s: %w", opCumulative, err)
	}
	n, m := local.Rows(), local.Cols()
	cum, err := matrix.NewZeros(n, m, matrix.WithAllowInfDistances())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCumulative, err)
	}

	src := &grid{m: local}
	dst := &grid{m: cum}
	var i, j int

	dst.set(0, 0, src.at(0, 0))
	for i = 1; i < n; i++ {
		dst.set(i, 0, src.at(i, 0)+dst.at(i-1, 0))
	}
	for j = 1; j < m; j++ {
		dst.set(0, j, src.at(0, j)+dst.at(0, j-1))
	}
	for i = 1; i < n; i++ {
		for j = 1; j < m; j++ {
			dst.set(i, j, src.at(i, j)+min3(dst.at(i-1, j), dst.at(i-1, j-1), dst.at(i, j-1)))
		}
	}

	if src.err != nil {
		return nil, fmt.Errorf("%s: %w", opCumulative, src.err)
	}
	if dst.err != nil {
		return nil, fmt.Errorf("%s: %w", opCumulative, dst.err)
	}

	return cum, nil
}

// Backtrace recovers the optimal warping path from a cumulative-cost matrix.
//
// Implementation:
//   - Stage 1: start at (n-1, m-1).
//   - Stage 2: walk back to (0,0); forced moves on the first row/column,
//     otherwise argminStep over (i-1,j), (i,j-1), (i-1,j-1).
//   - Stage 3: reverse into forward order.
//
// Behavior highlights:
//   - Ties resolve down, then left, then diagonal.
//   - Terminates for any n,m ≥ 1; each step decreases i+j.
//
// Complexity: O(n+m) time and space.
func Backtrace(cum matrix.Matrix) (Path, error) {
	if err := matrix.ValidateNonEmpty(cum); err != nil {
		return nil, fmt.Errorf("%s: %w", opBacktrace, err)
	}
	g := &grid{m: cum}
	i, j := cum.Rows()-1, cum.Cols()-1

	path := make(Path, 0, i+j+1)
	path = append(path, Coord{I: i, J: j})
	for i+j != 0 {
		switch {
		case i == 0:
			j--
		case j == 0:
			i--
		default:
			switch argminStep(g.at(i-1, j), g.at(i, j-1), g.at(i-1, j-1)) {
			case stepDown:
				i--
			case stepLeft:
				j--
			default:
				i--
				j--
			}
		}
		path = append(path, Coord{I: i, J: j})
	}
	if g.err != nil {
		return nil, fmt.Errorf("%s: %w", opBacktrace, g.err)
	}

	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, nil
}

// argminStep returns the position of the first minimum among
// (down, left, diagonal).
func argminStep(down, left, diagonal float64) int {
	best, idx := down, stepDown
	if left < best {
		best, idx = left, stepLeft
	}
	if diagonal < best {
		idx = stepDiagonal
	}

	return idx
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
