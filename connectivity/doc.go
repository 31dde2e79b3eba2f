// SPDX-License-Identifier: MIT

// Package connectivity measures pairwise regulon similarity and groups
// regulons into modules.
//
// 🚀 The three steps:
//
//	1. Correlation — Pearson correlation of each regulon pair's continuous
//	   activity across all cells (gonum's correlation kernel).
//	2. CSI — the connection specificity index: for a pair (A, B), the
//	   fraction of all other regulons C for which both corr(A, C) and
//	   corr(B, C) fall below corr(A, B). Two regulons are similar when
//	   they are concordant neighbors of third parties, not merely when
//	   their raw correlation is high.
//	3. Modules — agglomerative hierarchical clustering (Euclidean distance
//	   between CSI rows, average linkage) cut at a caller-supplied module
//	   count, then mean raw activity per module × cell type.
//
// ✨ Guarantees:
//
//   - CSI is symmetric: CSI(A, B) == CSI(B, A); self-pairs are excluded
//     from the concordance count and the diagonal is fixed at 1
//   - CSI ∈ [0, 1] for every pair
//   - Clustering yields exactly K non-empty modules (1-based ids) whenever
//     the regulon count allows it; K out of range fails loudly
//   - Deterministic throughout: stable merge order, no RNG
//
// ⚙️ Usage:
//
//	corr, err := connectivity.Correlation(m)
//	sim, err := connectivity.CSI(corr)
//	modules, err := connectivity.Cluster(sim, 4)
//	summary, err := connectivity.Summarize(m, modules, ann)
//
// Complexity: CSI is O(n³) in the regulon count n, clustering O(n³) worst
// case — regulon counts are hundreds at most, so both stay cheap.
package connectivity
