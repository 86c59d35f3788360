// Package dtw computes Dynamic Time Warping (DTW) alignments between a
// sample and a template sequence: the optimal warping path and the
// path-length-normalized warping distance.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative pointwise cost.  It's widely used in:
//	  • Speech recognition & audio alignment
//	  • Gesture / motion matching
//	  • Signature & handwriting verification
//	  • Time-series clustering & anomaly detection
//
// ✨ Key features:
//   - exact O(N·M) engine: local cost → cumulative cost → backtrace
//   - deterministic tie-break on the backtrace: down, then left, then diagonal
//   - scalar or vector observations (Sequence stores them column-wise in a matrix.Dense)
//   - pluggable pointwise distance (default: squared difference / squared Euclidean)
//   - Engine keeps sample/template and recomputes on replacement, atomically
//   - FastEngine: coarsen → project → windowed refinement controlled by a radius
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/timewarp/dtw"
//
//	sample, _ := dtw.NewSequence(2.1, 2.45, 3.673, 4.32)
//	template, _ := dtw.NewSequence(1.5, 3.9, 4.1)
//
//	eng, err := dtw.New(sample, template)
//	if err != nil {
//	  // errors.Is(err, dtw.ErrNoResult)
//	}
//	fmt.Println(eng.WarpingDistance(), eng.WarpingPath())
//
//	// replace the template and recompute in one step
//	_ = eng.SetTemplate(other, true)
//
// Warping distance:
//
//	distance = cumulative(N-1, M-1) / K, where K is the path length and
//	max(N, M) ≤ K ≤ N+M-1. With the default distance this is a mean squared
//	cost along the path, not a metric.
//
// Performance:
//
//   - Exact:  Time O(N·M), Memory O(N·M)
//   - Fast:   Time/Memory O((N+M)·radius) per resolution level
//
// See example_test.go for runnable walkthroughs.
package dtw
