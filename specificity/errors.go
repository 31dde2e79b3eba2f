// SPDX-License-Identifier: MIT
// Package specificity: sentinel error set.

package specificity

import "errors"

var (
	// ErrNilInput indicates a nil binary matrix or nil annotations argument.
	ErrNilInput = errors.New("specificity: nil binary matrix or annotations")

	// ErrUnknownRegulon indicates a regulon absent from the binary matrix.
	ErrUnknownRegulon = errors.New("specificity: unknown regulon")

	// ErrUnknownCellType indicates a cell-type label absent from the
	// annotations.
	ErrUnknownCellType = errors.New("specificity: unknown cell type")

	// ErrCellMismatch indicates the binary matrix's cells and the
	// annotations' cells are not the same set in the same order.
	ErrCellMismatch = errors.New("specificity: binary matrix cells do not match annotations")
)
