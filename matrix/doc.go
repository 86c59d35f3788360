// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra surface that the
// time-warping kernels are written against.
//
// What's inside:
//
//   - Matrix interface and Dense, a row-major float64 matrix with safe
//     accessors (At/Set return errors instead of panicking).
//   - Constructors: NewDense / NewZeros (zero-filled), Build (filled by a
//     generator of (row, col)), FromRows and NewRowVector.
//   - Vector, a read-only view of one row or column with Sub / Dot / Add /
//     Scale, obtained via (*Dense).ColumnVectors and (*Dense).RowVectors.
//   - A per-instance numeric policy: NaN/±Inf are rejected by Set unless the
//     matrix was created with WithAllowInfDistances (accepts +Inf only) or
//     WithNoValidateNaNInf.
//
// Sequences are stored column-wise: a d×N matrix holds N observations of
// dimension d, so ColumnVectors() yields the observations in order. A scalar
// series is simply a 1×N row vector.
//
// Determinism:
//
//	Every loop runs in fixed row-major order (i outer, j inner). Build calls
//	its generator exactly once per cell in that order.
//
// Complexity:
//
//	At/Set O(1); NewDense/Build/Clone O(r·c); ColumnVectors O(r·c).
package matrix
