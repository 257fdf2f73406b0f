package kmeans

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/kyleyasumiishi/geocluster/cluster"
)

// Cluster runs `iterations` rounds of Lloyd's algorithm with k centres and
// returns the k clusters of the final round. clusters is not modified.
//
// Example:
//
//	out, err := kmeans.Cluster(cluster.Singletons(points), 9, 5)
func Cluster(clusters []cluster.Cluster, k, iterations int, opts ...Option) ([]cluster.Cluster, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, iterations)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	st, err := Seed(clusters, k)
	if err != nil {
		return nil, err
	}
	for i := 0; i < iterations; i++ {
		st = Step(st, clusters)
		o.OnIteration(st)
	}

	return st.Clusters, nil
}

// Seed builds the initial State: k centres at the centroids of the k most
// populous clusters, each paired with an empty accumulator.
//
// Errors:
//   - ErrInvalidK:        k < 1.
//   - ErrDegenerateInput: k > len(clusters).
//
// Complexity: O(n log n).
func Seed(clusters []cluster.Cluster, k int) (State, error) {
	if k < 1 {
		return State{}, fmt.Errorf("%w: %d", ErrInvalidK, k)
	}
	if k > len(clusters) {
		return State{}, fmt.Errorf("%w: k=%d, clusters=%d", ErrDegenerateInput, k, len(clusters))
	}

	order := make([]int, len(clusters))
	for i := range order {
		order[i] = i
	}
	// Descending population; the stable sort keeps input order among ties.
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(clusters[b].Population(), clusters[a].Population())
	})

	centers := make([]r2.Vec, k)
	for j := range centers {
		centers[j] = clusters[order[j]].Center()
	}

	return State{Centers: centers, Clusters: emptyAt(centers)}, nil
}

// Step performs one assign-and-recentre round over clusters and returns the
// next State. st is not modified. Accumulators start empty at the origin, so
// a centre that attracts no cluster moves to (0, 0) for the next round.
//
// Complexity: O(n · k) distance evaluations plus the member unions.
func Step(st State, clusters []cluster.Cluster) State {
	acc := emptyAt(make([]r2.Vec, len(st.Centers)))
	assign := make([]int, len(clusters))
	for i, c := range clusters {
		j := nearest(st.Centers, c.Center())
		assign[i] = j
		acc[j] = acc[j].Merge(c)
	}

	centers := make([]r2.Vec, len(acc))
	for j, a := range acc {
		centers[j] = a.Center()
	}

	return State{
		Round:    st.Round + 1,
		Centers:  centers,
		Clusters: acc,
		Assign:   assign,
	}
}

// emptyAt returns one empty cluster per centre.
func emptyAt(centers []r2.Vec) []cluster.Cluster {
	out := make([]cluster.Cluster, len(centers))
	for j, c := range centers {
		out[j] = cluster.Empty(c)
	}

	return out
}

// nearest returns the index of the centre closest to p; the first wins ties.
func nearest(centers []r2.Vec, p r2.Vec) int {
	best, bestDist := 0, math.Inf(1)
	for j, c := range centers {
		if d := r2.Norm(r2.Sub(p, c)); d < bestDist {
			best, bestDist = j, d
		}
	}

	return best
}
