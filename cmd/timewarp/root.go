package main

import (
	"github.com/katalvlaran/timewarp/dtw"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "timewarp",
		Short:         "Dynamic time warping alignment of time series",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every committed alignment")

	root.AddCommand(demoCmd(), alignCmd(), pairwiseCmd())

	return root
}

// engineOptions resolves the distance name (flag wins over file) into engine options.
func engineOptions(flagName, fileName string) ([]dtw.Option, error) {
	dist, err := dtw.DistanceByName(pick(flagName, fileName))
	if err != nil {
		return nil, err
	}

	return []dtw.Option{dtw.WithDistance(dist), dtw.WithLogger(log.Logger)}, nil
}
