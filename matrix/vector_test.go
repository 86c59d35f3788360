package matrix_test

import (
	"testing"

	"github.com/katalvlaran/timewarp/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVectorSubDot checks the difference/inner-product pair used for squared distances.
func TestVectorSubDot(t *testing.T) {
	a := matrix.NewVector(1, 2, 3)
	b := matrix.NewVector(4, 6, 3)

	d, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, -4, 0}, d.Values())

	sq, err := d.Dot(d)
	require.NoError(t, err)
	assert.Equal(t, 25.0, sq)
	assert.Equal(t, 7.0, d.Norm1())

	s, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 8, 6}, s.Values())
	assert.Equal(t, []float64{2.5, 4, 3}, s.Scale(0.5).Values())
}

// TestVectorMismatch ensures length mismatches surface ErrDimensionMismatch.
func TestVectorMismatch(t *testing.T) {
	a := matrix.NewVector(1, 2)
	b := matrix.NewVector(1)

	_, err := a.Sub(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Add(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Dot(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestVectorAccessors covers At bounds, copy semantics and formatting.
func TestVectorAccessors(t *testing.T) {
	src := []float64{1.5, -2}
	v := matrix.NewVector(src...)
	src[0] = 99

	x, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1.5, x)
	_, err = v.At(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	assert.Equal(t, 2, v.Len())
	assert.Equal(t, "[1.5, -2]", v.String())
	assert.Equal(t, 0, matrix.Vector{}.Len())
}
