// SPDX-License-Identifier: MIT

// Package matrix - Vector: a read-only row or column taken out of a Dense.
//
// Purpose:
//   - Elementwise subtraction and inner product for vector-valued observations.
//   - Value semantics: every operation returns a fresh Vector; inputs are never mutated.

package matrix

import (
	"fmt"
	"strings"
)

const (
	opVecSub = "Vector.Sub"
	opVecAdd = "Vector.Add"
	opVecDot = "Vector.Dot"
	opVecAt  = "Vector.At"
)

// Vector is an immutable-by-convention dense vector.
// The zero value is an empty vector (Len()==0).
type Vector struct {
	data []float64
}

// NewVector copies values into a Vector.
func NewVector(values ...float64) Vector {
	cp := make([]float64, len(values))
	copy(cp, values)

	return Vector{data: cp}
}

// Len returns the number of components.
func (v Vector) Len() int { return len(v.data) }

// At returns component k or ErrOutOfRange.
func (v Vector) At(k int) (float64, error) {
	if k < 0 || k >= len(v.data) {
		return 0, matrixErrorf(opVecAt, fmt.Errorf("index %d: %w", k, ErrOutOfRange))
	}

	return v.data[k], nil
}

// Values returns a copy of the components.
func (v Vector) Values() []float64 {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return cp
}

// Sub returns v - w. Errors with ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func (v Vector) Sub(w Vector) (Vector, error) {
	if len(v.data) != len(w.data) {
		return Vector{}, matrixErrorf(opVecSub, ErrDimensionMismatch)
	}
	out := make([]float64, len(v.data))
	for k := range v.data {
		out[k] = v.data[k] - w.data[k]
	}

	return Vector{data: out}, nil
}

// Add returns v + w. Errors with ErrDimensionMismatch when lengths differ.
func (v Vector) Add(w Vector) (Vector, error) {
	if len(v.data) != len(w.data) {
		return Vector{}, matrixErrorf(opVecAdd, ErrDimensionMismatch)
	}
	out := make([]float64, len(v.data))
	for k := range v.data {
		out[k] = v.data[k] + w.data[k]
	}

	return Vector{data: out}, nil
}

// Scale returns alpha*v.
func (v Vector) Scale(alpha float64) Vector {
	out := make([]float64, len(v.data))
	for k := range v.data {
		out[k] = alpha * v.data[k]
	}

	return Vector{data: out}
}

// Dot returns the inner product Σ v[k]*w[k], accumulated in index order.
// Errors with ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func (v Vector) Dot(w Vector) (float64, error) {
	if len(v.data) != len(w.data) {
		return 0, matrixErrorf(opVecDot, ErrDimensionMismatch)
	}
	var acc float64
	for k := range v.data {
		acc += v.data[k] * w.data[k]
	}

	return acc, nil
}

// Norm1 returns Σ |v[k]|.
func (v Vector) Norm1() float64 {
	var acc float64
	for _, x := range v.data {
		if x < 0 {
			acc -= x
		} else {
			acc += x
		}
	}

	return acc
}

// String renders the vector as "[a, b, c]".
func (v Vector) String() string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	for k, x := range v.data {
		if k > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(fmt.Sprintf("%g", x))
	}
	b.WriteString("]")

	return b.String()
}
