package main

import (
	"fmt"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kyleyasumiishi/geocluster/closestpair"
	"github.com/kyleyasumiishi/geocluster/internal/report"
)

func newTimingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timing",
		Short: "Chart slow vs fast closest-pair running times",
		Long: `Times both closest-pair finders on random point sets of 2..max-n points
and writes timing.png to the output directory.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			maxN, err := cmd.Flags().GetInt("max-n")
			if err != nil {
				return eris.Wrap(err, "flag --max-n")
			}
			if maxN < 2 {
				return eris.Errorf("timing: max-n %d is below 2", maxN)
			}

			sizes := make([]int, 0, maxN-1)
			for n := 2; n <= maxN; n++ {
				sizes = append(sizes, n)
			}
			series, err := report.Timing(sizes, cfg.Random.Seed, map[string]closestpair.Finder{
				closestpair.NameSlow: closestpair.Slow,
				closestpair.NameFast: closestpair.Fast,
			})
			if err != nil {
				return err
			}

			path := filepath.Join(cfg.Report.OutputDir, "timing.png")
			if err := report.PlotTiming(path, "Closest pair running time", series...); err != nil {
				return err
			}
			zap.L().Info("wrote chart", zap.String("path", path), zap.Int("max_n", maxN))

			w := cmd.OutOrStdout()
			for _, s := range series {
				fmt.Fprintf(w, "%s: %d sizes, %.1fµs at n=%d\n", s.Name, len(s.X), s.Y[len(s.Y)-1], maxN)
			}

			return nil
		},
	}
	cmd.Flags().Int("max-n", 200, "largest number of points")
	cmd.Flags().Int64("seed", 1, "random point seed")
	cmd.Flags().String("out", "plots", "chart output directory")

	return cmd
}
