package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kyleyasumiishi/geocluster/cluster"
	"github.com/kyleyasumiishi/geocluster/internal/config"
	"github.com/kyleyasumiishi/geocluster/internal/dataset"
)

var cfg *config.Config

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "geocluster",
		Short: "Cluster weighted geographic points",
		Long: `Groups weighted points (e.g. counties with a population) into k clusters
with hierarchical or k-means clustering, scores the result by distortion and
charts distortion curves and closest-pair running times.

Points come from a header-less CSV (id,horiz,vert,population,risk) given with
--data, or are generated at random when --data is omitted.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := config.Load()
			if err != nil {
				return eris.Wrap(err, "load config")
			}
			if err := applyFlagOverrides(cmd, c); err != nil {
				return err
			}
			if err := c.Validate(); err != nil {
				return err
			}
			cfg = c

			if err := config.InitLogger(cfg.Log); err != nil {
				return eris.Wrap(err, "init logger")
			}

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = zap.L().Sync()
		},
	}

	root.AddCommand(
		newHierarchicalCmd(),
		newKMeansCmd(),
		newCompareCmd(),
		newSweepCmd(),
		newTimingCmd(),
	)

	return root
}

// applyFlagOverrides copies every explicitly set flag over its config value.
func applyFlagOverrides(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()
	for name, dst := range map[string]*int{
		"k":          &c.Cluster.K,
		"iterations": &c.Cluster.Iterations,
		"min-k":      &c.Sweep.MinK,
		"max-k":      &c.Sweep.MaxK,
		"count":      &c.Random.Count,
	} {
		if err := overrideFlag(flags.Changed, flags.GetInt, name, dst); err != nil {
			return err
		}
	}
	if err := overrideFlag(flags.Changed, flags.GetString, "finder", &c.Cluster.Finder); err != nil {
		return err
	}
	if err := overrideFlag(flags.Changed, flags.GetString, "out", &c.Report.OutputDir); err != nil {
		return err
	}

	return overrideFlag(flags.Changed, flags.GetInt64, "seed", &c.Random.Seed)
}

// overrideFlag stores the value of flag name in dst when the flag was set.
func overrideFlag[T any](changed func(string) bool, get func(string) (T, error), name string, dst *T) error {
	if !changed(name) {
		return nil
	}
	v, err := get(name)
	if err != nil {
		return eris.Wrapf(err, "flag --%s", name)
	}
	*dst = v

	return nil
}

// addDataFlags registers the point-source flags shared by the clustering commands.
func addDataFlags(cmd *cobra.Command) {
	cmd.Flags().String("data", "", "point table CSV (id,horiz,vert,population,risk); random points when empty")
	cmd.Flags().Int("count", 100, "number of random points when --data is empty")
	cmd.Flags().Int64("seed", 1, "random point seed when --data is empty")
}

// loadPoints reads the --data table or generates random points, and indexes them.
func loadPoints(cmd *cobra.Command) ([]cluster.Point, *cluster.Table, error) {
	path, err := cmd.Flags().GetString("data")
	if err != nil {
		return nil, nil, eris.Wrap(err, "flag --data")
	}

	var points []cluster.Point
	if path != "" {
		p, err := dataset.LoadCSV(path)
		if err != nil {
			return nil, nil, err
		}
		points = p
	} else {
		points = dataset.Random(cfg.Random.Count, cfg.Random.Seed)
	}

	tbl, err := cluster.NewTable(points)
	if err != nil {
		return nil, nil, eris.Wrap(err, "index points")
	}

	s := dataset.Summarize(points)
	zap.L().Info("loaded points",
		zap.String("source", sourceName(path)),
		zap.Int("count", s.Count),
		zap.Float64("population", s.Population),
		zap.Float64("centroid_x", s.Centroid.X),
		zap.Float64("centroid_y", s.Centroid.Y),
	)

	return points, tbl, nil
}

func sourceName(path string) string {
	if path == "" {
		return "random"
	}

	return path
}

func printClusters(w io.Writer, method string, clusters []cluster.Cluster, dist float64) {
	fmt.Fprintf(w, "%s: %d clusters\n", method, len(clusters))
	for i, c := range clusters {
		fmt.Fprintf(w, "  %3d  %s\n", i, c)
	}
	fmt.Fprintf(w, "%s distortion: %.6g\n", method, dist)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
