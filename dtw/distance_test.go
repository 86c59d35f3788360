package dtw_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/timewarp/dtw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceBetween(t *testing.T) {
	assert.Equal(t, 4.0, dtw.DistanceBetween(dtw.Scalar(3), dtw.Scalar(5)))
	assert.Equal(t, 0.0, dtw.DistanceBetween(dtw.Scalar(-1.25), dtw.Scalar(-1.25)))

	// ⟨x−y, x−y⟩ with no square root.
	assert.Equal(t, 25.0, dtw.DistanceBetween(dtw.VectorOf(0, 0), dtw.VectorOf(3, 4)))

	// A scalar is a 1-component vector when mixed with vectors.
	assert.Equal(t, 4.0, dtw.DistanceBetween(dtw.Scalar(3), dtw.VectorOf(1)))

	assert.True(t, math.IsNaN(dtw.DistanceBetween(dtw.Scalar(1), dtw.VectorOf(1, 2))))
}

func TestAbsoluteAndEuclidean(t *testing.T) {
	assert.Equal(t, 2.0, dtw.AbsoluteDistance(dtw.Scalar(3), dtw.Scalar(5)))
	assert.Equal(t, 7.0, dtw.AbsoluteDistance(dtw.VectorOf(0, 0), dtw.VectorOf(3, -4)))
	assert.Equal(t, 5.0, dtw.EuclideanDistance(dtw.VectorOf(0, 0), dtw.VectorOf(3, 4)))
	assert.True(t, math.IsNaN(dtw.AbsoluteDistance(dtw.VectorOf(1), dtw.VectorOf(1, 2))))
}

func TestDistanceByName(t *testing.T) {
	x, y := dtw.Scalar(1), dtw.Scalar(4)
	cases := map[string]float64{
		"":           9,
		"squared":    9,
		"Absolute":   3,
		" euclidean": 3,
	}
	for name, want := range cases {
		fn, err := dtw.DistanceByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, fn(x, y), name)
	}

	_, err := dtw.DistanceByName("cosine")
	assert.ErrorIs(t, err, dtw.ErrUnknownDistance)
}

func TestElement(t *testing.T) {
	s := dtw.Scalar(2.5)
	assert.True(t, s.IsScalar())
	assert.Equal(t, 1, s.Dim())
	assert.Equal(t, "2.5", s.String())

	v := dtw.VectorOf(1, 2)
	assert.False(t, v.IsScalar())
	assert.Equal(t, 2, v.Dim())
	assert.Equal(t, 1.0, v.Value())
	assert.Equal(t, "[1, 2]", v.String())
}
