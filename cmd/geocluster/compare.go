package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kyleyasumiishi/geocluster/closestpair"
	"github.com/kyleyasumiishi/geocluster/cluster"
	"github.com/kyleyasumiishi/geocluster/distortion"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run hierarchical and k-means clustering side by side",
		Long: `Runs both engines concurrently, each on its own copy of the input, and
prints the distortion of each clustering.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			points, tbl, err := loadPoints(cmd)
			if err != nil {
				return err
			}
			singletons := cluster.Singletons(points)

			var hier, km []cluster.Cluster
			g, _ := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				out, err := runHierarchical(cluster.CloneAll(singletons), cfg.Cluster.K, cfg.Cluster.Finder)
				hier = out

				return err
			})
			g.Go(func() error {
				out, err := runKMeans(cluster.CloneAll(singletons), cfg.Cluster.K, cfg.Cluster.Iterations)
				km = out

				return err
			})
			if err := g.Wait(); err != nil {
				return eris.Wrap(err, "compare")
			}

			hd, err := distortion.Compute(hier, tbl)
			if err != nil {
				return eris.Wrap(err, "compare: hierarchical distortion")
			}
			kd, err := distortion.Compute(km, tbl)
			if err != nil {
				return eris.Wrap(err, "compare: kmeans distortion")
			}
			zap.L().Info("compared",
				zap.Int("k", cfg.Cluster.K),
				zap.Float64("hierarchical", hd),
				zap.Float64("kmeans", kd),
			)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "k=%d\n", cfg.Cluster.K)
			fmt.Fprintf(w, "hierarchical distortion: %.6g\n", hd)
			fmt.Fprintf(w, "kmeans distortion:       %.6g\n", kd)

			return nil
		},
	}
	addDataFlags(cmd)
	cmd.Flags().Int("k", 9, "number of clusters")
	cmd.Flags().Int("iterations", 5, "number of k-means rounds")
	cmd.Flags().String("finder", closestpair.NameFast, "closest-pair finder: slow or fast")

	return cmd
}
