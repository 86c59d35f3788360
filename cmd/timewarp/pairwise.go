package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/katalvlaran/timewarp/dtw"
	"github.com/katalvlaran/timewarp/matrix"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type pairwiseFlags struct {
	file     string
	distance string
	fast     bool
	radius   int
	znorm    bool
}

func pairwiseCmd() *cobra.Command {
	var f pairwiseFlags
	cmd := &cobra.Command{
		Use:   "pairwise",
		Short: "Print the warping distance between every pair of signals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadSignals(f.file)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("radius") {
				f.radius = set.radius
			}
			if f.znorm {
				if set, err = set.zNormalized(); err != nil {
					return err
				}
			}
			dist, err := dtw.DistanceByName(pick(f.distance, set.distance))
			if err != nil {
				return err
			}
			m, err := pairwiseDistances(cmd.Context(), set, dist, f.fast, f.radius)
			if err != nil {
				return err
			}
			writeMatrix(cmd.OutOrStdout(), set.names, m)

			return nil
		},
	}
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "YAML signal file")
	cmd.Flags().StringVar(&f.distance, "distance", "", "squared | absolute | euclidean (default from file)")
	cmd.Flags().BoolVar(&f.fast, "fast", false, "use the accelerated approximation")
	cmd.Flags().IntVar(&f.radius, "radius", 1, "search radius for --fast")
	cmd.Flags().BoolVar(&f.znorm, "znorm", false, "z-normalize every signal first")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// pairwiseDistances fills an N×N matrix, cell (i,j) = warping distance of
// signal i (sample) against signal j (template). Rows run concurrently.
func pairwiseDistances(ctx context.Context, set *signalSet, dist dtw.DistanceFunc, fast bool, radius int) (*matrix.Dense, error) {
	n := len(set.names)
	cells := make([]float64, n*n)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		i := i // per-iteration copy (Go <1.22 loop-variable semantics)
		g.Go(func() error {
			sample := set.seqs[set.names[i]]
			for j := 0; j < n; j++ {
				if err := gCtx.Err(); err != nil {
					return err
				}
				template := set.seqs[set.names[j]]
				var res dtw.Result
				var err error
				if fast {
					res, err = dtw.FastCompute(sample, template, radius, dist)
				} else {
					res, err = dtw.Compute(sample, template, dist)
				}
				if err != nil {
					return fmt.Errorf("%s vs %s: %w", set.names[i], set.names[j], err)
				}
				cells[i*n+j] = res.Distance
			}
			log.Debug().Str("sample", set.names[i]).Int("templates", n).Msg("pairwise row done")

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return matrix.Build(n, n, func(i, j int) float64 { return cells[i*n+j] })
}

func writeMatrix(w io.Writer, names []string, m *matrix.Dense) {
	fmt.Fprintf(w, "# rows/cols: %s\n", strings.Join(names, ", "))
	fmt.Fprint(w, m.String())
}

// pick returns flag when set, otherwise fallback.
func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}

	return fallback
}
