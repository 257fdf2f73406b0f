// Package hierarchical implements agglomerative clustering driven by a
// closest-pair search.
//
// What:
//
//	Starting from n clusters, repeatedly merge the two clusters whose
//	centroids are closest until exactly k remain.
//
// Algorithm:
//  1. Stable-sort the working list by horizontal centre.
//  2. Find the closest pair (I, J) with the configured Finder
//     (closestpair.Fast by default).
//  3. Replace entry I with clusters[I].Merge(clusters[J]) and delete entry J.
//  4. Repeat while len > k.
//
// Ownership:
//
//	Cluster takes ownership of the slice it is given and returns a shorter
//	slice over the same backing array. Keep a cluster.CloneAll copy if the
//	original clustering must survive the call.
//
// Complexity:
//
//   - Time:   O((n−k) · n log² n) with the fast finder.
//   - Memory: O(n) scratch for the closest-pair strip.
//
// Errors:
//
//   - ErrInvalidK: k outside [1, len(clusters)].
//   - Finder errors are returned wrapped with the merge step.
package hierarchical
