// Package scFunctions is a toolbox for downstream analysis of SCENIC
// single-cell regulatory-network output: regulon activity binarization,
// cell-type specificity scoring, and regulon-module discovery.
//
// 🚀 What is scFunctions?
//
//	A small, deterministic library that takes the continuous per-cell
//	regulon activity (AUC) matrix produced by a SCENIC run and turns it
//	into interpretable summaries:
//	  • Binarization: per-regulon activity thresholds via 1-D 2-means
//	  • Specificity: Jensen–Shannon-based regulon specificity scores (RSS)
//	  • Connectivity: Pearson correlation → connection specificity index
//	    (CSI) → hierarchical regulon modules → module × cell-type activity
//
// ✨ Why choose scFunctions?
//
//   - Pure functions – every stage maps an input table to an output table,
//     no state survives a run
//   - Labeled matrices – regulons and cells travel with the numbers, and
//     identifier mismatches fail loudly instead of silently reordering
//   - Predictable numerics – no RNG anywhere; same input, same output
//
// Everything is organized under five subpackages:
//
//	activity/     — labeled activity matrices, cell annotations, CSV/TSV I/O
//	binarize/     — per-regulon thresholds and the binary activity matrix
//	specificity/  — regulon specificity scores per (regulon, cell type)
//	connectivity/ — correlation, CSI, module clustering and aggregation
//	pipeline/     — YAML-configured end-to-end run
//
// A command-line front-end lives in cmd/scfunctions.
//
// Quick sketch of the flow:
//
//	AUC matrix ──► binarize ──► specificity ──► ranked RSS table
//	     │
//	     └──────► connectivity ──► CSI ──► modules ──► module activity
//
// Dive into the examples/ directory for complete runnable walkthroughs.
package scFunctions
