package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/timewarp/dtw"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	demoSignal1 = []float64{2.1, 2.45, 3.673, 4.32, 2.05, 1.93, 5.67, 6.01}
	demoSignal2 = []float64{1.5, 3.9, 4.1, 3.3}
	demoSignal3 = []float64{1.5, 3.9, 4.1, 3.3, 2.0}
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Align three built-in signals against each other",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

// runDemo swaps one input at a time and prints the engine after each step.
func runDemo(w io.Writer) error {
	s1, err := dtw.NewSequence(demoSignal1...)
	if err != nil {
		return err
	}
	s2, err := dtw.NewSequence(demoSignal2...)
	if err != nil {
		return err
	}
	s3, err := dtw.NewSequence(demoSignal3...)
	if err != nil {
		return err
	}

	eng, err := dtw.New(s1, s2, dtw.WithLogger(log.Logger))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "OUTPUT: ")
	fmt.Fprintln(w)
	printEngine(w, eng)

	steps := []struct {
		set func(*dtw.Sequence, bool) error
		seq *dtw.Sequence
	}{
		{eng.SetTemplate, s3},
		{eng.SetSample, s2},
		{eng.SetTemplate, s1},
		{eng.SetSample, s3},
		{eng.SetTemplate, s2},
	}
	for _, st := range steps {
		if err = st.set(st.seq, true); err != nil {
			return err
		}
		printEngine(w, eng)
	}

	return nil
}

func printEngine(w io.Writer, eng *dtw.Engine) {
	fmt.Fprintf(w, "sample = %s\n", eng.Sample())
	fmt.Fprintf(w, "template = %s\n", eng.Template())
	fmt.Fprintln(w, eng)
	fmt.Fprintln(w)
}
