// SPDX-License-Identifier: MIT

// Package specificity scores how concentrated a regulon's binary activity
// is within one cell type — the regulon specificity score (RSS).
//
// 🚀 How is a score computed?
//
//	For a regulon r and a cell type t, two discrete distributions over the
//	cell population are compared:
//	  p — r's active/inactive indicator, normalized to sum to 1
//	  q — t's membership indicator, normalized to sum to 1
//	Their Jensen–Shannon divergence (natural log, normalized by ln 2 into
//	[0,1]) is converted to a similarity:
//
//	  RSS(r, t) = 1 − sqrt(JSD(p, q))
//
// ✨ Guarantees:
//
//   - RSS ∈ [0, 1] for every pair
//   - RSS = 1 exactly when r is active in precisely the cells of t
//   - RSS = 0 when the active set and the cell type share no cell
//   - Pairs are scored independently — no shared mutable state
//
// A regulon active in no cell is compared as the uniform distribution over
// all cells; the resulting scores are flat and low, which is the honest
// answer for an uninformative regulon.
//
// ⚙️ Usage:
//
//	table, err := specificity.ScoreAll(bin, ann)
//	top := table.TopPerType(5)
//
// The divergence-to-similarity conversion lives in its own pure function so
// it can be reused independently of any table plumbing.
package specificity
