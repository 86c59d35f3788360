// Package timewarp is a small toolkit for aligning time series with
// Dynamic Time Warping (DTW).
//
// 🚀 What is inside?
//
//	• dtw/          exact DTW engine, FastDTW approximation, warping paths
//	• matrix/       dense float64 matrices and vectors backing the engines
//	• cmd/timewarp  CLI: demo, align and pairwise over YAML signal files
//
// ✨ Highlights
//
//   - Deterministic results: fixed loop order and tie-break rules
//   - Engines are safe for concurrent use; path and distance commit together
//   - Scalar and fixed-dimension vector observations
//
// Quick example:
//
//	sample, _ := dtw.NewSequence(2.1, 2.45, 3.673, 4.32)
//	template, _ := dtw.NewSequence(1.5, 3.9, 4.1)
//	eng, err := dtw.New(sample, template)
//	fmt.Println(eng) // Warping Distance / Warping Path
//
//	go get github.com/katalvlaran/timewarp/dtw
package timewarp
