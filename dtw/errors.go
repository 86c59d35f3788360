package dtw

import "errors"

// Sentinel errors. Every error returned by this package wraps one of these,
// so callers can match with errors.Is.
var (
	// ErrNilSequence indicates a sample or template was not provided.
	ErrNilSequence = errors.New("dtw: sequence is nil")

	// ErrEmptySequence indicates one or both inputs have zero length.
	ErrEmptySequence = errors.New("dtw: input sequences must be non-empty")

	// ErrRaggedSequence indicates vector observations of unequal dimension.
	ErrRaggedSequence = errors.New("dtw: observations must share one dimension")

	// ErrDimensionMismatch indicates sample and template observations differ in dimension.
	ErrDimensionMismatch = errors.New("dtw: sample and template dimensions differ")

	// ErrInvalidCost indicates the distance function produced a negative, NaN or infinite cost.
	ErrInvalidCost = errors.New("dtw: distance must be finite and non-negative")

	// ErrInvalidPath indicates a warping path violating the monotone, contiguous step rules.
	ErrInvalidPath = errors.New("dtw: invalid warping path")

	// ErrBadRadius indicates a negative radius for the accelerated variant.
	ErrBadRadius = errors.New("dtw: radius must be >= 0")

	// ErrUnknownDistance indicates DistanceByName was given an unsupported name.
	ErrUnknownDistance = errors.New("dtw: unknown distance function")

	// ErrNoResult is returned (wrapping the cause) when an engine could not
	// produce a warping path and distance for its current inputs.
	ErrNoResult = errors.New("dtw: no result, check input data")
)
