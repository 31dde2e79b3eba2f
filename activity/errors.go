// SPDX-License-Identifier: MIT
// Package activity: sentinel error set.
// All readers and constructors return these sentinels (optionally wrapped
// with fmt.Errorf("...: %w") for context) and tests match them with
// errors.Is. No function in this package panics on user input.

package activity

import "errors"

var (
	// ErrEmptyMatrix indicates a matrix with zero regulons or zero cells.
	ErrEmptyMatrix = errors.New("activity: matrix must have at least one regulon and one cell")

	// ErrBadShape indicates the data slice length does not match
	// len(regulons) × len(cells).
	ErrBadShape = errors.New("activity: data length does not match label dimensions")

	// ErrDuplicateLabel indicates a repeated regulon or cell identifier.
	ErrDuplicateLabel = errors.New("activity: duplicate label")

	// ErrNaNInf indicates a NaN or ±Inf score where finite values are required.
	ErrNaNInf = errors.New("activity: NaN or Inf score encountered")

	// ErrUnknownRegulon indicates a regulon identifier absent from the matrix.
	ErrUnknownRegulon = errors.New("activity: unknown regulon")

	// ErrUnknownCell indicates a cell identifier absent from the matrix.
	ErrUnknownCell = errors.New("activity: unknown cell")

	// ErrCellMismatch indicates annotation cells and matrix columns disagree:
	// a matrix cell without an annotation, or an annotated cell absent from
	// the matrix.
	ErrCellMismatch = errors.New("activity: cell identifiers do not match annotations")

	// ErrMalformedTable indicates a CSV/TSV input that does not follow the
	// expected layout (header row of cell ids, one labeled row per regulon,
	// or a two-column cell,type table for annotations).
	ErrMalformedTable = errors.New("activity: malformed input table")
)
