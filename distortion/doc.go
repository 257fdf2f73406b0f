// Package distortion scores a clustering by its total weighted squared error.
//
// 🚀 Quantities:
//
//	distortion = Σ_clusters Σ_members pᵢ · |xᵢ − centre|²
//
// Compute evaluates it from the point table (authoritative). Incremental sums
// the error each cluster carried through its merges; for clusters built only
// by Merge from singletons the two agree up to rounding.
//
// Sweep runs a clustering engine for every k in a range and records the
// distortion curve. For hierarchical clustering the curve is non-increasing
// in k because the partitions are nested; k-means makes no such promise.
//
// Errors:
//   - cluster.ErrUnknownID: a member id is missing from the table.
//   - ErrInvalidRange:      minK < 1 or maxK < minK.
//   - ErrNilClusterer:      Sweep was given a nil Clusterer.
package distortion
