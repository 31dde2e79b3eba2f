package binarize

import "errors"

var (
	// ErrNilMatrix indicates a nil activity matrix argument.
	ErrNilMatrix = errors.New("binarize: nil activity matrix")

	// ErrNilThresholds indicates a nil threshold map argument.
	ErrNilThresholds = errors.New("binarize: nil threshold map")

	// ErrBadOption indicates a nonsensical option value
	// (MaxIterations < 1 or Tolerance < 0).
	ErrBadOption = errors.New("binarize: invalid option value")

	// ErrRegulonMismatch indicates the threshold map does not cover the
	// matrix's regulons.
	ErrRegulonMismatch = errors.New("binarize: thresholds do not cover matrix regulons")

	// ErrUnknownRegulon indicates a regulon absent from a threshold map or
	// binary matrix.
	ErrUnknownRegulon = errors.New("binarize: unknown regulon")
)
