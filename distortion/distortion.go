package distortion

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/kyleyasumiishi/geocluster/cluster"
)

// Compute returns the sum of ClusterError over clusters.
//
// Errors:
//   - cluster.ErrUnknownID: wrapped with the offending cluster index.
//
// Complexity: O(total members).
func Compute(clusters []cluster.Cluster, tbl *cluster.Table) (float64, error) {
	errs := make([]float64, len(clusters))
	for i, c := range clusters {
		e, err := c.ClusterError(tbl)
		if err != nil {
			return 0, fmt.Errorf("distortion: cluster %d: %w", i, err)
		}
		errs[i] = e
	}

	return floats.SumCompensated(errs), nil
}

// Incremental returns the sum of the error each cluster tracked while merging.
// It needs no table but is only as exact as the merge history.
func Incremental(clusters []cluster.Cluster) float64 {
	errs := make([]float64, len(clusters))
	for i, c := range clusters {
		errs[i] = c.Error()
	}

	return floats.SumCompensated(errs)
}

// Sweep runs fn on a fresh deep copy of seed for every k in [minK, maxK]
// and returns one Sample per k in ascending order.
//
// Errors:
//   - ErrInvalidRange: minK < 1 or maxK < minK.
//   - ErrNilClusterer: fn is nil.
//   - any error from fn or Compute, wrapped with k.
//
// Example:
//
//	curve, err := distortion.Sweep(cluster.Singletons(points), tbl, 6, 20, distortion.KMeans(5))
func Sweep(seed []cluster.Cluster, tbl *cluster.Table, minK, maxK int, fn Clusterer) ([]Sample, error) {
	if minK < 1 || maxK < minK {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, minK, maxK)
	}
	if fn == nil {
		return nil, ErrNilClusterer
	}

	out := make([]Sample, 0, maxK-minK+1)
	for k := minK; k <= maxK; k++ {
		clusters, err := fn(cluster.CloneAll(seed), k)
		if err != nil {
			return nil, fmt.Errorf("distortion: k=%d: %w", k, err)
		}
		d, err := Compute(clusters, tbl)
		if err != nil {
			return nil, fmt.Errorf("distortion: k=%d: %w", k, err)
		}
		out = append(out, Sample{K: k, Distortion: d})
	}

	return out, nil
}
