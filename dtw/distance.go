package dtw

import (
	"fmt"
	"math"
	"strings"
)

// Names accepted by DistanceByName.
const (
	DistanceSquared   = "squared"
	DistanceAbsolute  = "absolute"
	DistanceEuclidean = "euclidean"
)

// DistanceBetween is the default pointwise distance.
//
//   - scalar × scalar: (x − y)².
//   - otherwise: ⟨x − y, x − y⟩, the squared Euclidean norm of the
//     difference. No square root is taken, so this is a squared distance and
//     not a metric.
//
// Dimension mismatch yields NaN, which the engines reject with ErrInvalidCost.
func DistanceBetween(x, y Element) float64 {
	if x.scalar && y.scalar {
		d := x.val - y.val
		return d * d
	}
	diff, err := x.vec.Sub(y.vec)
	if err != nil {
		return math.NaN()
	}
	sq, _ := diff.Dot(diff) // same length after Sub

	return sq
}

// AbsoluteDistance is |x − y| for scalars and the L1 norm of x − y for vectors.
func AbsoluteDistance(x, y Element) float64 {
	if x.scalar && y.scalar {
		return math.Abs(x.val - y.val)
	}
	diff, err := x.vec.Sub(y.vec)
	if err != nil {
		return math.NaN()
	}

	return diff.Norm1()
}

// EuclideanDistance is the square root of DistanceBetween.
func EuclideanDistance(x, y Element) float64 {
	return math.Sqrt(DistanceBetween(x, y))
}

// DistanceByName resolves a configured distance name (case-insensitive).
// The empty string selects DistanceBetween.
// Errors: ErrUnknownDistance.
func DistanceByName(name string) (DistanceFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", DistanceSquared:
		return DistanceBetween, nil
	case DistanceAbsolute:
		return AbsoluteDistance, nil
	case DistanceEuclidean:
		return EuclideanDistance, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownDistance)
	}
}
