// Package closestpair finds the two clusters whose centroids are nearest to
// each other.
//
// 🚀 Algorithms:
//
//	Slow: exhaustive scan over every index pair i < j.
//	       Time O(n²), Memory O(1).
//
//	Fast: planar divide and conquer over a list sorted by horizontal centre:
//	  1. n ≤ 3: delegate to the exhaustive scan.
//	  2. Split [lo, hi) at mid = lo + n/2 and solve both halves.
//	  3. Keep the closer of the two half results (distance d).
//	  4. Scan the vertical strip |x − xₘ| < d around the dividing line,
//	     ordered by vertical centre, comparing each cluster with the next 7.
//	Time O(n log² n) as written (the strip is re-sorted per level),
//	Memory O(n) for one shared strip buffer, recursion depth O(log n).
//
// ✨ Contract:
//   - Indices in a Pair always refer to the caller's slice and satisfy I < J.
//   - Pairs are ordered by (Dist, I, J); among equal distances the pair with
//     the lowest indices that the algorithm examines wins, so results are
//     deterministic for identical inputs.
//   - Identity is positional: two entries with identical fields are still a
//     valid pair at distance 0.
//   - Fast verifies its sort precondition on every call (one O(n) pass,
//     small next to the recursion) and fails with ErrNotSorted instead of
//     returning a wrong pair.
//   - Recursion works on index ranges of one backing slice; no sub-slices are
//     materialised and no reverse index lookup is needed.
//
// Errors:
//   - ErrTooFewClusters: fewer than two clusters.
//   - ErrNotSorted:      Fast called on a list not sorted by horizontal centre.
package closestpair
