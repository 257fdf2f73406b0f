package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kyleyasumiishi/geocluster/closestpair"
	"github.com/kyleyasumiishi/geocluster/cluster"
	"github.com/kyleyasumiishi/geocluster/distortion"
	"github.com/kyleyasumiishi/geocluster/hierarchical"
	"github.com/kyleyasumiishi/geocluster/kmeans"
)

func newHierarchicalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hierarchical",
		Short: "Merge closest clusters until k remain",
		RunE: func(cmd *cobra.Command, _ []string) error {
			points, tbl, err := loadPoints(cmd)
			if err != nil {
				return err
			}

			out, err := runHierarchical(cluster.Singletons(points), cfg.Cluster.K, cfg.Cluster.Finder)
			if err != nil {
				return err
			}

			d, err := distortion.Compute(out, tbl)
			if err != nil {
				return eris.Wrap(err, "hierarchical: distortion")
			}
			zap.L().Info("clustered", zap.String("method", "hierarchical"), zap.Int("k", len(out)), zap.Float64("distortion", d))
			printClusters(cmd.OutOrStdout(), "hierarchical", out, d)

			return nil
		},
	}
	addDataFlags(cmd)
	cmd.Flags().Int("k", 9, "number of clusters")
	cmd.Flags().String("finder", closestpair.NameFast, "closest-pair finder: slow or fast")

	return cmd
}

func newKMeansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kmeans",
		Short: "Run k-means seeded at the k most populous points",
		RunE: func(cmd *cobra.Command, _ []string) error {
			points, tbl, err := loadPoints(cmd)
			if err != nil {
				return err
			}

			out, err := runKMeans(cluster.Singletons(points), cfg.Cluster.K, cfg.Cluster.Iterations)
			if err != nil {
				return err
			}

			d, err := distortion.Compute(out, tbl)
			if err != nil {
				return eris.Wrap(err, "kmeans: distortion")
			}
			zap.L().Info("clustered", zap.String("method", "kmeans"), zap.Int("k", len(out)), zap.Float64("distortion", d))
			printClusters(cmd.OutOrStdout(), "kmeans", out, d)

			return nil
		},
	}
	addDataFlags(cmd)
	cmd.Flags().Int("k", 9, "number of clusters")
	cmd.Flags().Int("iterations", 5, "number of k-means rounds")

	return cmd
}

// runHierarchical clusters with the named finder and logs every merge at debug.
func runHierarchical(clusters []cluster.Cluster, k int, finderName string) ([]cluster.Cluster, error) {
	finder, err := closestpair.FinderByName(finderName)
	if err != nil {
		return nil, eris.Wrap(err, "hierarchical")
	}

	out, err := hierarchical.Cluster(clusters, k,
		hierarchical.WithFinder(finder),
		hierarchical.WithOnMerge(logMerge),
	)
	if err != nil {
		return nil, eris.Wrap(err, "hierarchical")
	}

	return out, nil
}

// runKMeans clusters and logs every round at debug.
func runKMeans(clusters []cluster.Cluster, k, iterations int) ([]cluster.Cluster, error) {
	out, err := kmeans.Cluster(clusters, k, iterations, kmeans.WithOnIteration(logIteration))
	if err != nil {
		return nil, eris.Wrap(err, "kmeans")
	}

	return out, nil
}

func logMerge(ev hierarchical.MergeEvent) {
	zap.L().Debug("merge",
		zap.Int("step", ev.Step),
		zap.Float64("dist", ev.Dist),
		zap.Stringer("left", ev.Left),
		zap.Stringer("right", ev.Right),
		zap.Float64("population", ev.Merged.Population()),
	)
}

func logIteration(st kmeans.State) {
	var empty int
	for _, c := range st.Clusters {
		if c.IsEmpty() {
			empty++
		}
	}
	zap.L().Debug("kmeans round",
		zap.Int("round", st.Round),
		zap.Int("centers", len(st.Centers)),
		zap.Int("empty", empty),
	)
}
