// Package cluster defines the weighted 2-D cluster used by every clustering
// engine in geocluster, together with the point table that holds the
// original input rows.
//
// 🚀 What is a Cluster?
//
//	A Cluster is a weighted point with identity:
//	  • members:    sorted, unique set of input IDs (e.g. county FIPS codes)
//	  • center:     population-weighted centroid (gonum r2.Vec)
//	  • population: total weight of all members
//	  • error:      Σ pᵢ·|xᵢ − center|², tracked incrementally on Merge
//
// ✨ Key properties:
//   - Value semantics: Merge returns a NEW cluster and never mutates its
//     operands, so a []Cluster behaves as an arena of values.
//   - An empty cluster (no members, zero population) is the identity of Merge.
//   - ClusterError recomputes the squared error from the point Table and is
//     the authoritative figure; the incremental Error field is a fast path.
//
// ⚙️ Usage:
//
//	tbl, err := cluster.NewTable(points)
//	cs := cluster.Singletons(points)
//	m := cs[0].Merge(cs[1])
//	e, err := m.ClusterError(tbl)
//
// Complexity:
//
//   - Distance: O(1)
//   - Merge:    O(|a| + |b|) for the member union
//   - ClusterError: O(|members|) table lookups
package cluster
