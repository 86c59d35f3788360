// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/timewarp/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowMeansAndStdDevs(t *testing.T) {
	X, err := matrix.FromRows([][]float64{
		{1, 2, 3, 4},
		{5, 5, 5, 5},
	})
	require.NoError(t, err)

	means, err := matrix.RowMeans(X)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 5}, means)

	stds, means2, err := matrix.RowStdDevs(X)
	require.NoError(t, err)
	assert.Equal(t, means, means2)
	assert.InDelta(t, math.Sqrt(1.25), stds[0], 1e-12)
	assert.Equal(t, 0.0, stds[1])

	_, err = matrix.RowMeans(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestZNormalizeRows(t *testing.T) {
	X, err := matrix.FromRows([][]float64{
		{2, 4, 4, 4, 5, 5, 7, 9},
		{3, 3, 3, 3, 3, 3, 3, 3},
	})
	require.NoError(t, err)

	Z, err := matrix.ZNormalizeRows(X)
	require.NoError(t, err)

	// Row 0: mean 5, population std 2.
	want, err := matrix.FromRows([][]float64{
		{-1.5, -0.5, -0.5, -0.5, 0, 0, 1, 2},
		{0, 0, 0, 0, 0, 0, 0, 0},
	})
	require.NoError(t, err)
	ok, err := matrix.AllClose(Z, want, 0, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok, "got:\n%s", Z)

	// Input untouched.
	v, err := X.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestAllClose(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.FromRows([][]float64{{1, 2.001}, {3, 4}})
	require.NoError(t, err)

	ok, err := matrix.AllClose(a, b, 0, 1e-2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-6)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = matrix.AllClose(a, b, -1e-2, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	c, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	_, err = matrix.AllClose(a, c, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
