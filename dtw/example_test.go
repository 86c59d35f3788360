package dtw_test

import (
	"fmt"

	"github.com/katalvlaran/timewarp/dtw"
)

// ExampleNew aligns a sample against a template and then swaps the template.
func ExampleNew() {
	sample, _ := dtw.NewSequence(2.1, 2.45, 3.673, 4.32, 2.05, 1.93, 5.67, 6.01)
	template, _ := dtw.NewSequence(1.5, 3.9, 4.1, 3.3)

	eng, err := dtw.New(sample, template)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("distance: %.4f\n", eng.WarpingDistance())
	fmt.Println("path:", eng.WarpingPath())

	longer, _ := dtw.NewSequence(1.5, 3.9, 4.1, 3.3, 2.0)
	_ = eng.SetTemplate(longer, true)
	fmt.Printf("distance: %.4f\n", eng.WarpingDistance())
	fmt.Println("path:", eng.WarpingPath())

	// Output:
	// distance: 2.2204
	// path: (0,0) (1,0) (2,1) (3,2) (4,3) (5,3) (6,3) (7,3)
	// distance: 3.3124
	// path: (0,0) (1,0) (2,1) (3,2) (4,3) (5,3) (6,3) (7,4)
}

// ExampleCompute shows that repeating an element costs nothing.
func ExampleCompute() {
	a, _ := dtw.NewSequence(1, 2, 3)
	b, _ := dtw.NewSequence(1, 2, 2, 3)

	res, _ := dtw.Compute(a, b, nil)
	fmt.Println(res.Path, res.Distance)

	// Output:
	// (0,0) (1,1) (1,2) (2,3) 0
}

// ExampleNew_emptyInput shows the error reported for empty input.
func ExampleNew_emptyInput() {
	template, _ := dtw.NewSequence(1, 2)
	_, err := dtw.New(&dtw.Sequence{}, template)
	fmt.Println(err)

	// Output:
	// dtw: no result, check input data: Compute: sample: dtw: input sequences must be non-empty
}
