// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Per-row statistics over column-observation matrices (rows are features,
//     columns are time steps): means, population standard deviations and
//     z-normalization.
//   - Tolerance comparison of two matrices (AllClose).
//
// Determinism & Performance:
//   - Fixed i→j traversal for all loops.
//   - Dense fast-paths operate on the row-major flat buffer.

package matrix

import "math"

const (
	opRowMeans       = "RowMeans"
	opRowStdDevs     = "RowStdDevs"
	opZNormalizeRows = "ZNormalizeRows"
	opAllClose       = "AllClose"
)

// RowMeans returns Σ_j X[i,j] / c for every row i.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions for zero-sized X.
// Complexity: O(r*c).
func RowMeans(X Matrix) ([]float64, error) {
	if err := ValidateNonEmpty(X); err != nil {
		return nil, matrixErrorf(opRowMeans, err)
	}
	r, c := X.Rows(), X.Cols()
	means := make([]float64, r)

	var i, j int
	var s, v float64
	var err error
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			s = 0.0
			base := i * c
			for j = 0; j < c; j++ {
				s += d.data[base+j]
			}
			means[i] = s / float64(c)
		}

		return means, nil
	}
	for i = 0; i < r; i++ {
		s = 0.0
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opRowMeans, err)
			}
			s += v
		}
		means[i] = s / float64(c)
	}

	return means, nil
}

// RowStdDevs returns the population standard deviation of every row,
// sqrt(Σ_j (X[i,j]-mean_i)² / c), together with the row means.
//
// Errors: as RowMeans.
// Complexity: O(r*c).
func RowStdDevs(X Matrix) (stds, means []float64, err error) {
	if means, err = RowMeans(X); err != nil {
		return nil, nil, matrixErrorf(opRowStdDevs, err)
	}
	r, c := X.Rows(), X.Cols()
	stds = make([]float64, r)

	var i, j int
	var s, v, dv float64
	for i = 0; i < r; i++ {
		s = 0.0
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opRowStdDevs, err)
			}
			dv = v - means[i]
			s += dv * dv
		}
		stds[i] = math.Sqrt(s / float64(c))
	}

	return stds, means, nil
}

// ZNormalizeRows returns a copy of X where each row has mean 0 and unit
// population standard deviation.
// Implementation:
//   - Stage 1: RowStdDevs gives means and stds in one validated pass.
//   - Stage 2: Build writes (x - mean_i) / std_i in i→j order.
//
// Behavior highlights:
//   - Degenerate rows (std == 0) are centered only, so they become all zeros.
//   - The copy keeps the default numeric policy.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions.
// Complexity: Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Apply before DTW when offset and amplitude should not count as distance.
func ZNormalizeRows(X Matrix) (*Dense, error) {
	stds, means, err := RowStdDevs(X)
	if err != nil {
		return nil, matrixErrorf(opZNormalizeRows, err)
	}

	var readErr error
	out, err := Build(X.Rows(), X.Cols(), func(i, j int) float64 {
		v, err := X.At(i, j)
		if err != nil && readErr == nil {
			readErr = err
		}
		if stds[i] == 0 {
			return v - means[i]
		}
		return (v - means[i]) / stds[i]
	})
	if readErr != nil {
		return nil, matrixErrorf(opZNormalizeRows, readErr)
	}
	if err != nil {
		return nil, matrixErrorf(opZNormalizeRows, err)
	}

	return out, nil
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - Negative tolerances are taken by absolute value; NaN/Inf tolerances
//     are rejected with ErrNaNInf.
//
// Complexity: O(r*c), early exit on the first violation.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
