// Package geocluster groups weighted geographic points into clusters and
// measures how well a grouping fits.
//
// 🚀 What is geocluster?
//
//	A small, deterministic clustering engine for points that carry a weight
//	(e.g. county centroids with a population):
//		• Clusters as values: merge by population-weighted centroid
//		• Closest pair: O(n²) scan and divide-and-conquer with a strip check
//		• Hierarchical (agglomerative) clustering down to k clusters
//		• K-means seeded at the k most populous points
//		• Distortion: total weighted squared error, and curves over k
//
// Layout:
//
//	cluster/         Point, Table and the Cluster value type
//	closestpair/     Slow, Fast and Strip closest-pair finders
//	hierarchical/    merge-until-k clustering with a pluggable finder
//	kmeans/          Lloyd's rounds over an explicit State
//	distortion/      Compute, Incremental and k sweeps
//	internal/        config, CSV and random datasets, charts
//	cmd/geocluster   the CLI
//
// Quick ASCII example:
//
//	a ●          ● c
//	b ●          ● d
//
//	four points of equal weight; k=2 groups {a,b} and {c,d}
//	with distortion 1.
//
// The engine packages are synchronous and never log; callers observe
// progress through hooks (hierarchical.WithOnMerge, kmeans.WithOnIteration).
package geocluster
