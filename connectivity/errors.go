// SPDX-License-Identifier: MIT
// Package connectivity: sentinel error set. All exported functions return
// these sentinels (wrapped with context where useful); tests match them via
// errors.Is. No user-triggered condition panics.

package connectivity

import "errors"

var (
	// ErrNilInput indicates a nil matrix, similarity, assignment or
	// annotations argument.
	ErrNilInput = errors.New("connectivity: nil input")

	// ErrConstantRow indicates a regulon whose activity is constant across
	// all cells; Pearson correlation is undefined for it.
	ErrConstantRow = errors.New("connectivity: regulon activity is constant, correlation undefined")

	// ErrTooFewRegulons indicates fewer regulons than an operation needs
	// (CSI needs at least three so that "other regulons" is non-empty).
	ErrTooFewRegulons = errors.New("connectivity: too few regulons")

	// ErrTooFewCells indicates fewer than two cells; correlation across a
	// single observation is undefined.
	ErrTooFewCells = errors.New("connectivity: need at least two cells")

	// ErrBadClusterCount indicates a requested module count below one or
	// above the regulon count.
	ErrBadClusterCount = errors.New("connectivity: cluster count out of range")

	// ErrUnknownRegulon indicates a regulon absent from a similarity matrix
	// or module assignment.
	ErrUnknownRegulon = errors.New("connectivity: unknown regulon")

	// ErrUnknownModule indicates a module id outside 1..K.
	ErrUnknownModule = errors.New("connectivity: unknown module id")

	// ErrRegulonMismatch indicates two stages were fed tables built from
	// different regulon sets.
	ErrRegulonMismatch = errors.New("connectivity: regulon sets do not match")

	// ErrCellMismatch indicates activity matrix cells and annotations
	// disagree.
	ErrCellMismatch = errors.New("connectivity: cell identifiers do not match annotations")
)
