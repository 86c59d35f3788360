package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/timewarp/matrix"
	"github.com/stretchr/testify/require"
)

// TestBuildGeneratorOrder verifies Build fills every cell from fn in row-major order.
func TestBuildGeneratorOrder(t *testing.T) {
	var visited [][2]int
	m, err := matrix.Build(2, 3, func(i, j int) float64 {
		visited = append(visited, [2]int{i, j})
		return float64(10*i + j)
	})
	require.NoError(t, err)

	require.Equal(t, [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, visited)
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 12.0, v)
}

// TestBuildErrors covers the nil generator, bad shape and numeric policy paths.
func TestBuildErrors(t *testing.T) {
	_, err := matrix.Build(1, 1, nil)
	require.ErrorIs(t, err, matrix.ErrNilGenerator)

	_, err = matrix.Build(0, 1, func(_, _ int) float64 { return 0 })
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Build(1, 2, func(_, j int) float64 {
		if j == 1 {
			return math.Inf(1)
		}
		return 0
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.Build(1, 1, func(_, _ int) float64 { return math.Inf(1) }, matrix.WithAllowInfDistances())
	require.NoError(t, err)
	v, _ := m.At(0, 0)
	require.True(t, math.IsInf(v, 1))
}

// TestFromRowsAndColumns checks both slice lifts and the ragged-input guard.
func TestFromRowsAndColumns(t *testing.T) {
	byRows, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	require.Equal(t, 3, byRows.Rows())
	require.Equal(t, 2, byRows.Cols())

	byCols, err := matrix.FromColumns([][]float64{{1, 3, 5}, {2, 4, 6}})
	require.NoError(t, err)
	require.Equal(t, byRows.String(), byCols.String())

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromColumns([][]float64{{1}, {2, 3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewRowVector lifts a scalar series into a 1×N matrix.
func TestNewRowVector(t *testing.T) {
	values := []float64{2.1, 2.45, 3.673}
	m, err := matrix.NewRowVector(values)
	require.NoError(t, err)
	require.Equal(t, 1, m.Rows())
	require.Equal(t, 3, m.Cols())

	cols := m.ColumnVectors()
	require.Len(t, cols, 3)
	require.Equal(t, []float64{3.673}, cols[2].Values())

	_, err = matrix.NewRowVector(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
