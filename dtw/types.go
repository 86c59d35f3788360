package dtw

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/timewarp/matrix"
)

// DistanceFunc maps one sample element and one template element to a
// non-negative local cost. It must be pure: the same inputs always yield the
// same cost.
type DistanceFunc func(x, y Element) float64

// Element is one observation of a Sequence: either a scalar or a
// fixed-dimension vector.
//
//   - Scalar elements carry their value directly and also expose it as a
//     1-component Vector.
//   - Vector elements are taken from a column of the backing matrix.
type Element struct {
	val    float64       // scalar value (valid when scalar)
	vec    matrix.Vector // vector form (always set)
	scalar bool          // variant tag
}

// Scalar returns a scalar Element.
func Scalar(v float64) Element {
	return Element{val: v, vec: matrix.NewVector(v), scalar: true}
}

// VectorOf returns a vector Element holding a copy of values.
func VectorOf(values ...float64) Element {
	return Element{vec: matrix.NewVector(values...)}
}

// IsScalar reports whether e is the scalar variant.
func (e Element) IsScalar() bool { return e.scalar }

// Value returns the scalar value. For vector elements it returns the first
// component (0 when empty).
func (e Element) Value() float64 {
	if e.scalar {
		return e.val
	}
	v, err := e.vec.At(0)
	if err != nil {
		return 0
	}

	return v
}

// Vector returns the vector form (1 component for scalars).
func (e Element) Vector() matrix.Vector { return e.vec }

// Dim returns the number of components (1 for scalars).
func (e Element) Dim() int { return e.vec.Len() }

// String renders scalars as numbers and vectors as "[a, b]".
func (e Element) String() string {
	if e.scalar {
		return fmt.Sprintf("%g", e.val)
	}

	return e.vec.String()
}

// Coord is one point of a warping path: I indexes the sample, J the template.
type Coord struct {
	I int
	J int
}

// String renders the point as "(i,j)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.I, c.J) }

// Path is a warping path in forward order, from (0,0) to (N-1,M-1).
type Path []Coord

// Len returns the number of points K.
func (p Path) Len() int { return len(p) }

// String renders the path as space-separated "(i,j)" pairs.
func (p Path) String() string {
	parts := make([]string, len(p))
	for k, c := range p {
		parts[k] = c.String()
	}

	return strings.Join(parts, " ")
}

// Clone returns an independent copy (nil stays nil).
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	cp := make(Path, len(p))
	copy(cp, p)

	return cp
}

// Validate checks that p is a legal warping path over an n×m grid:
//   - starts at (0,0) and ends at (n-1,m-1);
//   - every step is (0,+1), (+1,0) or (+1,+1);
//   - max(n,m) ≤ K ≤ n+m-1 (implied by the two rules above, checked anyway).
//
// Errors: ErrInvalidPath wrapped with the first violation found.
// Complexity: O(K).
func (p Path) Validate(n, m int) error {
	if len(p) == 0 {
		return fmt.Errorf("empty path: %w", ErrInvalidPath)
	}
	if p[0] != (Coord{0, 0}) {
		return fmt.Errorf("starts at %v: %w", p[0], ErrInvalidPath)
	}
	if last := p[len(p)-1]; last != (Coord{n - 1, m - 1}) {
		return fmt.Errorf("ends at %v, want (%d,%d): %w", last, n-1, m-1, ErrInvalidPath)
	}
	var di, dj int
	for k := 1; k < len(p); k++ {
		di, dj = p[k].I-p[k-1].I, p[k].J-p[k-1].J
		if di < 0 || dj < 0 || di > 1 || dj > 1 || di+dj == 0 {
			return fmt.Errorf("step %v→%v: %w", p[k-1], p[k], ErrInvalidPath)
		}
	}
	if len(p) < max(n, m) || len(p) > n+m-1 {
		return fmt.Errorf("length %d outside [%d,%d]: %w", len(p), max(n, m), n+m-1, ErrInvalidPath)
	}

	return nil
}

// Result is the outcome of one computation pass.
//
//   - Path:     optimal warping path, forward order.
//   - Cost:     cumulative cost at (N-1, M-1).
//   - Distance: warping distance, Cost / Path.Len().
type Result struct {
	Path     Path
	Distance float64
	Cost     float64
}

// clone returns a Result whose Path does not alias r.Path.
func (r Result) clone() Result {
	r.Path = r.Path.Clone()

	return r
}
