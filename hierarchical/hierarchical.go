package hierarchical

import (
	"fmt"
	"slices"

	"github.com/kyleyasumiishi/geocluster/cluster"
)

// Cluster merges the closest pair of clusters until k remain and returns the
// surviving clusters in working-list order (sorted by horizontal centre
// before the last merge). When k == len(clusters) the input is returned
// untouched.
//
// The slice is consumed: its contents are reordered and overwritten.
//
// Example:
//
//	cs := cluster.Singletons(points)
//	out, err := hierarchical.Cluster(cluster.CloneAll(cs), 9)
func Cluster(clusters []cluster.Cluster, k int, opts ...Option) ([]cluster.Cluster, error) {
	if k < 1 || k > len(clusters) {
		return nil, fmt.Errorf("%w: k=%d, clusters=%d", ErrInvalidK, k, len(clusters))
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	for step := 1; len(clusters) > k; step++ {
		cluster.SortByHoriz(clusters)

		p, err := o.Finder(clusters)
		if err != nil {
			return nil, fmt.Errorf("hierarchical: merge step %d: %w", step, err)
		}

		left, right := clusters[p.I], clusters[p.J]
		merged := left.Merge(right)
		clusters[p.I] = merged
		clusters = slices.Delete(clusters, p.J, p.J+1)

		o.OnMerge(MergeEvent{
			Step:   step,
			Dist:   p.Dist,
			Left:   left,
			Right:  right,
			Merged: merged,
		})
	}

	return clusters, nil
}
