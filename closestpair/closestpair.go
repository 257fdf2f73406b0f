package closestpair

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/kyleyasumiishi/geocluster/cluster"
)

// Slow returns the closest pair by comparing every pair i < j.
//
// Errors:
//   - ErrTooFewClusters: len(clusters) < 2.
//
// Complexity: O(n²) time, O(1) memory.
func Slow(clusters []cluster.Cluster) (Pair, error) {
	if len(clusters) < 2 {
		return none, fmt.Errorf("%w: got %d", ErrTooFewClusters, len(clusters))
	}

	return slowRange(clusters, 0, len(clusters)), nil
}

// Fast returns the closest pair using divide and conquer.
// clusters must be sorted by ascending horizontal centre (see cluster.SortByHoriz).
//
// Errors:
//   - ErrTooFewClusters: len(clusters) < 2.
//   - ErrNotSorted:      clusters are not in horizontal order.
//
// Complexity: O(n log² n) time, O(n) memory.
func Fast(clusters []cluster.Cluster) (Pair, error) {
	n := len(clusters)
	if n < 2 {
		return none, fmt.Errorf("%w: got %d", ErrTooFewClusters, n)
	}
	if !cluster.IsSortedByHoriz(clusters) {
		return none, ErrNotSorted
	}
	buf := make([]int, 0, n)

	return fastRange(clusters, 0, n, buf), nil
}

// Strip returns the closest pair among clusters whose horizontal centre lies
// strictly within halfWidth of centerX. Each cluster in the strip is compared
// with the next stripLookahead clusters in vertical order. When fewer than
// two clusters fall in the strip, the returned Pair reports Found() == false
// and Dist = +Inf.
//
// Complexity: O(m log m) for m clusters in the strip.
func Strip(clusters []cluster.Cluster, centerX, halfWidth float64) Pair {
	buf := make([]int, 0, len(clusters))

	return stripRange(clusters, 0, len(clusters), centerX, halfWidth, buf)
}

// pairAt builds the Pair for positions i and j, normalising I < J.
func pairAt(clusters []cluster.Cluster, i, j int) Pair {
	if j < i {
		i, j = j, i
	}

	return Pair{Dist: clusters[i].Distance(clusters[j]), I: i, J: j}
}

// slowRange scans every pair inside [lo, hi).
func slowRange(clusters []cluster.Cluster, lo, hi int) Pair {
	best := none
	for i := lo; i < hi; i++ {
		for j := i + 1; j < hi; j++ {
			if p := pairAt(clusters, i, j); p.Less(best) {
				best = p
			}
		}
	}

	return best
}

// fastRange solves [lo, hi). buf is scratch space for the strip; it is only
// touched after both recursive calls return, so one buffer serves all levels.
func fastRange(clusters []cluster.Cluster, lo, hi int, buf []int) Pair {
	n := hi - lo
	if n <= 3 {
		return slowRange(clusters, lo, hi)
	}

	mid := lo + n/2
	best := fastRange(clusters, lo, mid, buf)
	if right := fastRange(clusters, mid, hi, buf); right.Less(best) {
		best = right
	}

	centerX := 0.5 * (clusters[mid-1].Horiz() + clusters[mid].Horiz())
	if s := stripRange(clusters, lo, hi, centerX, best.Dist, buf); s.Less(best) {
		best = s
	}

	return best
}

// stripLookahead is how many successors in vertical order each strip entry
// is compared with. Seven covers every packing of points that are pairwise at
// least d apart on each side of the dividing line.
const stripLookahead = 7

// stripRange finds the closest pair among [lo, hi) within the vertical strip.
func stripRange(clusters []cluster.Cluster, lo, hi int, centerX, halfWidth float64, buf []int) Pair {
	idx := buf[:0]
	for i := lo; i < hi; i++ {
		if math.Abs(clusters[i].Horiz()-centerX) < halfWidth {
			idx = append(idx, i)
		}
	}
	// idx is collected in index order, so the stable sort keeps index order
	// among equal vertical centres.
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(clusters[a].Vert(), clusters[b].Vert())
	})

	best := none
	for u := 0; u < len(idx)-1; u++ {
		for v := u + 1; v < min(u+1+stripLookahead, len(idx)); v++ {
			if p := pairAt(clusters, idx[u], idx[v]); p.Less(best) {
				best = p
			}
		}
	}

	return best
}
