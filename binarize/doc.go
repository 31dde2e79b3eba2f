// Package binarize converts continuous per-cell regulon activity into
// binary active/inactive calls using a per-regulon threshold.
//
// 🚀 How does it work?
//
//	For each regulon (row of the activity matrix) the scores are split
//	into two groups with a deterministic 1-D 2-means: centroids start at
//	the row minimum and maximum and are iterated to convergence. The
//	threshold is the midpoint between the two final centroids, and a cell
//	is called active when its score is greater than or equal to it.
//
// ✨ Key properties:
//
//   - Deterministic — centroid initialization uses the row extremes, so
//     there is no RNG and no seed to manage
//   - Bounded — every threshold lies within the observed score range of
//     its regulon
//   - Honest about degenerate rows — a unimodal or near-constant
//     distribution yields a degenerate threshold at the row's value
//     range without error; inspect such regulons manually (known
//     limitation, documented rather than papered over)
//
// ⚙️ Usage:
//
//	thr, err := binarize.Thresholds(m)
//	bin, err := binarize.Binarize(m, thr)
//
// Complexity: O(regulons × cells × iterations), O(cells) extra memory.
package binarize
