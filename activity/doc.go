// SPDX-License-Identifier: MIT

// Package activity provides the labeled data model shared by every pipeline
// stage: the regulon × cell activity matrix, per-cell type annotations, and
// the CSV/TSV readers and writers that ingest SCENIC output.
//
// 🚀 What lives here?
//
//	• Matrix      — regulons (rows) × cells (columns), continuous
//	  non-negative AUC scores, immutable by convention, backed by a
//	  gonum dense matrix with a label index on both axes
//	• Annotations — cell → cell-type mapping with a stable type order
//	• ReadMatrixCSV / ReadMatrixTSV / ReadAnnotationsCSV — streaming
//	  readers with transparent gzip handling
//
// ✨ Design rules:
//
//   - Labels travel with the numbers. Every downstream stage addresses
//     rows and columns by regulon and cell identifier, never by position.
//   - Alignment is explicit. Annotations.AlignTo matches annotation cells
//     against matrix columns and fails with ErrCellMismatch on any
//     discrepancy; nothing is ever silently dropped or reordered.
//   - Finite values only. NaN and ±Inf are rejected at ingestion
//     (ErrNaNInf); downstream numerics may assume clean input.
//
// ⚙️ Usage:
//
//	m, err := activity.ReadMatrixCSV("auc_mtx.csv")
//	ann, err := activity.ReadAnnotationsCSV("cell_types.csv")
//	ann, err = ann.AlignTo(m.Cells())
//
// See example_test.go for complete walkthroughs.
package activity
