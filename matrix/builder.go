// SPDX-License-Identifier: MIT

// Package matrix - generator-driven and slice-driven constructors.
//
// Purpose:
//   - Build(rows, cols, fn): the "filled by a generator of (row, col)" contract.
//   - FromRows / FromColumns / NewRowVector: lift plain slices into *Dense.
//
// Determinism:
//   - Generators are called exactly once per cell in fixed i→j order.

package matrix

import "fmt"

const (
	opBuild       = "Build"
	opFromRows    = "FromRows"
	opFromColumns = "FromColumns"
	opRowVector   = "NewRowVector"
)

// Build constructs a rows×cols Dense whose cell (i,j) = fn(i, j).
// MAIN DESCRIPTION:
//   - Allocate once, then fill by calling fn in row-major order.
//
// Implementation:
//   - Stage 1: validate fn != nil and shape via NewDense.
//   - Stage 2: i→j loop; every value passes through the numeric policy.
//
// Errors:
//   - ErrNilGenerator, ErrInvalidDimensions, ErrNaNInf (wrapped with coordinates).
//
// Complexity:
//   - Time O(r*c) plus the cost of fn, Space O(r*c).
//
// AI-Hints:
//   - fn must be pure with respect to (i,j) for reproducible results.
func Build(rows, cols int, fn func(i, j int) float64, opts ...Option) (*Dense, error) {
	if fn == nil {
		return nil, matrixErrorf(opBuild, ErrNilGenerator)
	}
	res, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opBuild, err)
	}

	var i, j, base int
	var v float64
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			v = fn(i, j)
			if res.pol.rejects(v) {
				return nil, matrixErrorf(opBuild, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			res.data[base+j] = v
		}
	}

	return res, nil
}

// FromRows copies a rectangular [][]float64 into a new Dense.
// Errors: ErrInvalidDimensions on empty input, ErrDimensionMismatch on ragged rows,
// ErrNaNInf when a value violates the default policy.
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i := range rows {
		if len(rows[i]) != cols {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d cols, want %d: %w",
				i, len(rows[i]), cols, ErrDimensionMismatch))
		}
	}

	return Build(len(rows), cols, func(i, j int) float64 { return rows[i][j] }, opts...)
}

// FromColumns is the column-major twin of FromRows: cols[j] becomes column j.
// Useful to store a sequence of d-dimensional observations as a d×N matrix.
func FromColumns(cols [][]float64, opts ...Option) (*Dense, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, matrixErrorf(opFromColumns, ErrInvalidDimensions)
	}
	rows := len(cols[0])
	for j := range cols {
		if len(cols[j]) != rows {
			return nil, matrixErrorf(opFromColumns, fmt.Errorf("column %d has %d rows, want %d: %w",
				j, len(cols[j]), rows, ErrDimensionMismatch))
		}
	}

	return Build(rows, len(cols), func(i, j int) float64 { return cols[j][i] }, opts...)
}

// NewRowVector returns a 1×N Dense holding values (copied).
func NewRowVector(values []float64, opts ...Option) (*Dense, error) {
	if len(values) == 0 {
		return nil, matrixErrorf(opRowVector, ErrInvalidDimensions)
	}

	return Build(1, len(values), func(_, j int) float64 { return values[j] }, opts...)
}
