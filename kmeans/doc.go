// Package kmeans implements Lloyd's k-means clustering over weighted clusters.
//
// 🚀 Algorithm:
//
//  1. Seed k centres at the centroids of the k most populous input clusters
//     (descending population, ties broken by input order).
//  2. Each round:
//     a. place k empty accumulators at the origin;
//     b. assign every input cluster to its nearest centre (first centre wins
//     ties) and merge it into that centre's accumulator;
//     c. the accumulators' centroids become the next centres.
//  3. Return the accumulators of the final round.
//
// ✨ Properties:
//   - The input slice is never modified.
//   - Rounds are pure: Step maps one State to the next, no hidden state.
//   - An accumulator that receives nothing stays at the origin, which becomes
//     its centre for the next round.
//   - iterations == 0 returns k empty clusters positioned at the seeds.
//
// Complexity: O(iterations · n · k) time, O(n + k) memory.
//
// Errors:
//   - ErrInvalidK:           k < 1.
//   - ErrDegenerateInput:    k > len(clusters).
//   - ErrInvalidIterations:  iterations < 0.
package kmeans
