package main

import (
	"fmt"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kyleyasumiishi/geocluster/closestpair"
	"github.com/kyleyasumiishi/geocluster/cluster"
	"github.com/kyleyasumiishi/geocluster/distortion"
	"github.com/kyleyasumiishi/geocluster/hierarchical"
	"github.com/kyleyasumiishi/geocluster/internal/report"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Chart distortion over a range of k for both engines",
		Long: `Computes the distortion of hierarchical and k-means clustering for every k
in [min-k, max-k] and writes distortion.png to the output directory.

Hierarchical runs start from the max-k clustering, since every smaller k only
merges further; k-means runs start from the individual points.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			points, tbl, err := loadPoints(cmd)
			if err != nil {
				return err
			}
			minK, maxK := cfg.Sweep.MinK, cfg.Sweep.MaxK
			if maxK > len(points) {
				return eris.Errorf("sweep: max-k %d exceeds %d points", maxK, len(points))
			}

			finder, err := closestpair.FinderByName(cfg.Cluster.Finder)
			if err != nil {
				return eris.Wrap(err, "sweep")
			}
			singletons := cluster.Singletons(points)

			var hier, km []distortion.Sample
			g, _ := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				seed, err := hierarchical.Cluster(cluster.CloneAll(singletons), maxK, hierarchical.WithFinder(finder))
				if err != nil {
					return err
				}
				hier, err = distortion.Sweep(seed, tbl, minK, maxK, distortion.Hierarchical(hierarchical.WithFinder(finder)))

				return err
			})
			g.Go(func() error {
				var err error
				km, err = distortion.Sweep(singletons, tbl, minK, maxK, distortion.KMeans(cfg.Cluster.Iterations))

				return err
			})
			if err := g.Wait(); err != nil {
				return eris.Wrap(err, "sweep")
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%4s  %14s  %14s\n", "k", "hierarchical", "kmeans")
			for i := range hier {
				fmt.Fprintf(w, "%4d  %14.6g  %14.6g\n", hier[i].K, hier[i].Distortion, km[i].Distortion)
			}

			path := filepath.Join(cfg.Report.OutputDir, "distortion.png")
			title := fmt.Sprintf("Distortion of %d points", len(points))
			if err := report.PlotDistortion(path, title,
				report.DistortionSeries("hierarchical", hier),
				report.DistortionSeries(fmt.Sprintf("k-means (%d rounds)", cfg.Cluster.Iterations), km),
			); err != nil {
				return err
			}
			zap.L().Info("wrote chart", zap.String("path", path), zap.Int("min_k", minK), zap.Int("max_k", maxK))

			return nil
		},
	}
	addDataFlags(cmd)
	cmd.Flags().Int("min-k", 6, "smallest k")
	cmd.Flags().Int("max-k", 20, "largest k")
	cmd.Flags().Int("iterations", 5, "number of k-means rounds")
	cmd.Flags().String("finder", closestpair.NameFast, "closest-pair finder: slow or fast")
	cmd.Flags().String("out", "plots", "chart output directory")

	return cmd
}
