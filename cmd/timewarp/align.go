package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/timewarp/dtw"
	"github.com/spf13/cobra"
)

type alignFlags struct {
	file     string
	sample   string
	template string
	distance string
	fast     bool
	radius   int
	znorm    bool
}

func alignCmd() *cobra.Command {
	var f alignFlags
	cmd := &cobra.Command{
		Use:   "align",
		Short: "Align two signals from a signal file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadSignals(f.file)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("radius") {
				f.radius = set.radius
			}

			return runAlign(cmd.OutOrStdout(), set, f)
		},
	}
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "YAML signal file")
	cmd.Flags().StringVar(&f.sample, "sample", "", "name of the sample signal")
	cmd.Flags().StringVar(&f.template, "template", "", "name of the template signal")
	cmd.Flags().StringVar(&f.distance, "distance", "", "squared | absolute | euclidean (default from file)")
	cmd.Flags().BoolVar(&f.fast, "fast", false, "use the accelerated approximation")
	cmd.Flags().IntVar(&f.radius, "radius", 1, "search radius for --fast")
	cmd.Flags().BoolVar(&f.znorm, "znorm", false, "z-normalize both signals before aligning")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("sample")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}

func runAlign(w io.Writer, set *signalSet, f alignFlags) error {
	if f.znorm {
		var err error
		if set, err = set.zNormalized(); err != nil {
			return err
		}
	}
	sample, err := set.lookup(f.sample)
	if err != nil {
		return err
	}
	template, err := set.lookup(f.template)
	if err != nil {
		return err
	}
	opts, err := engineOptions(f.distance, set.distance)
	if err != nil {
		return err
	}

	var out fmt.Stringer
	if f.fast {
		out, err = dtw.NewFast(sample, template, f.radius, opts...)
	} else {
		out, err = dtw.New(sample, template, opts...)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "sample = %s\n", sample)
	fmt.Fprintf(w, "template = %s\n", template)
	fmt.Fprintln(w, out)

	return nil
}
