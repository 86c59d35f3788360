package dtw

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/timewarp/matrix"
)

// Sequence is an ordered, immutable list of observations.
//
// Storage follows the column-observation convention: a d×N matrix.Dense
// whose column k is element k. A scalar series is a 1×N row vector.
// The zero value and a nil *Sequence are both treated as empty.
type Sequence struct {
	m      *matrix.Dense
	scalar bool
}

// NewSequence builds a scalar sequence from values (copied).
// Errors: ErrEmptySequence when no values are given; matrix.ErrNaNInf for non-finite values.
func NewSequence(values ...float64) (*Sequence, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("NewSequence: %w", ErrEmptySequence)
	}
	m, err := matrix.NewRowVector(values)
	if err != nil {
		return nil, fmt.Errorf("NewSequence: %w", err)
	}

	return &Sequence{m: m, scalar: true}, nil
}

// NewVectorSequence builds a vector sequence; observations[k] is element k.
// All observations must have the same, positive dimension.
// Errors: ErrEmptySequence, ErrRaggedSequence, matrix.ErrNaNInf.
func NewVectorSequence(observations [][]float64) (*Sequence, error) {
	if len(observations) == 0 {
		return nil, fmt.Errorf("NewVectorSequence: %w", ErrEmptySequence)
	}
	dim := len(observations[0])
	for k := range observations {
		if len(observations[k]) == 0 || len(observations[k]) != dim {
			return nil, fmt.Errorf("NewVectorSequence: observation %d has dim %d, want %d: %w",
				k, len(observations[k]), dim, ErrRaggedSequence)
		}
	}
	m, err := matrix.FromColumns(observations)
	if err != nil {
		return nil, fmt.Errorf("NewVectorSequence: %w", err)
	}

	return &Sequence{m: m}, nil
}

// SequenceFromMatrix copies m into a Sequence, reading each column as one
// observation. A single-row matrix becomes a scalar sequence.
// Errors: ErrNilSequence for nil m, ErrEmptySequence for a zero-sized m.
func SequenceFromMatrix(m matrix.Matrix) (*Sequence, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("SequenceFromMatrix: %w: %w", ErrNilSequence, err)
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return nil, fmt.Errorf("SequenceFromMatrix: %w", ErrEmptySequence)
	}
	var readErr error
	d, err := matrix.Build(m.Rows(), m.Cols(), func(i, j int) float64 {
		v, err := m.At(i, j)
		if err != nil && readErr == nil {
			readErr = err
		}
		return v
	})
	if err != nil {
		return nil, fmt.Errorf("SequenceFromMatrix: %w", err)
	}
	if readErr != nil {
		return nil, fmt.Errorf("SequenceFromMatrix: %w", readErr)
	}

	return &Sequence{m: d, scalar: d.Rows() == 1}, nil
}

// Len returns the number of observations N (0 for nil or zero-value sequences).
func (s *Sequence) Len() int {
	if s == nil || s.m == nil {
		return 0
	}

	return s.m.Cols()
}

// Dim returns the observation dimension d (0 when empty).
func (s *Sequence) Dim() int {
	if s == nil || s.m == nil {
		return 0
	}

	return s.m.Rows()
}

// IsScalar reports whether elements are scalars.
func (s *Sequence) IsScalar() bool { return s != nil && s.scalar }

// At returns element k.
// Errors: matrix.ErrOutOfRange when k is outside [0, Len()).
func (s *Sequence) At(k int) (Element, error) {
	if k < 0 || k >= s.Len() {
		return Element{}, fmt.Errorf("Sequence.At(%d): %w", k, matrix.ErrOutOfRange)
	}
	col, err := s.m.Column(k)
	if err != nil {
		return Element{}, fmt.Errorf("Sequence.At(%d): %w", k, err)
	}

	return s.element(col), nil
}

// Elements returns all observations in order.
// Complexity: O(d·N).
func (s *Sequence) Elements() []Element {
	if s.Len() == 0 {
		return nil
	}
	cols := s.m.ColumnVectors()
	out := make([]Element, len(cols))
	for k, col := range cols {
		out[k] = s.element(col)
	}

	return out
}

// element wraps one column with the sequence's variant tag.
func (s *Sequence) element(col matrix.Vector) Element {
	if s.scalar {
		v, _ := col.At(0) // d==1 for scalar sequences
		return Scalar(v)
	}

	return Element{vec: col}
}

// Values returns a copy of a scalar sequence's values; nil for vector sequences.
func (s *Sequence) Values() []float64 {
	if !s.IsScalar() || s.Len() == 0 {
		return nil
	}

	return s.m.RowVectors()[0].Values()
}

// Matrix returns a copy of the backing d×N matrix (nil when empty).
func (s *Sequence) Matrix() *matrix.Dense {
	if s.Len() == 0 {
		return nil
	}

	return s.m.Clone().(*matrix.Dense)
}

// Reverse returns a new sequence with the observations in reverse order.
func (s *Sequence) Reverse() *Sequence {
	n := s.Len()
	if n == 0 {
		return s
	}
	src := s.m
	d, _ := matrix.Build(src.Rows(), n, func(i, j int) float64 {
		v, _ := src.At(i, n-1-j) // indices stay within src's shape
		return v
	})

	return &Sequence{m: d, scalar: s.scalar}
}

// Coarsen halves the resolution by averaging adjacent pairs of observations.
// An odd trailing observation is carried over unchanged, so the result has
// ceil(N/2) elements. Sequences of length 1 are returned as-is.
// Complexity: O(d·N).
func (s *Sequence) Coarsen() *Sequence {
	n := s.Len()
	if n <= 1 {
		return s
	}
	src := s.m
	d, _ := matrix.Build(src.Rows(), (n+1)/2, func(i, j int) float64 {
		a, _ := src.At(i, 2*j)
		if 2*j+1 >= n {
			return a
		}
		b, _ := src.At(i, 2*j+1)
		return (a + b) / 2
	})

	return &Sequence{m: d, scalar: s.scalar}
}

// ZNormalize returns a copy where every feature has mean 0 and unit standard
// deviation across time. Constant features become all zeros.
// Errors: ErrEmptySequence for an empty sequence.
func (s *Sequence) ZNormalize() (*Sequence, error) {
	if s.Len() == 0 {
		return nil, fmt.Errorf("Sequence.ZNormalize: %w", ErrEmptySequence)
	}
	z, err := matrix.ZNormalizeRows(s.m)
	if err != nil {
		return nil, fmt.Errorf("Sequence.ZNormalize: %w", err)
	}

	return &Sequence{m: z, scalar: s.scalar}, nil
}

// String renders a scalar sequence as "[a, b, c]" and a vector sequence as
// "[[a, b], [c, d]]".
func (s *Sequence) String() string {
	if s.Len() == 0 {
		return "[]"
	}
	if s.scalar {
		return s.m.RowVectors()[0].String()
	}
	parts := make([]string, 0, s.Len())
	for _, col := range s.m.ColumnVectors() {
		parts = append(parts, col.String())
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
