package pipeline

import "errors"

var (
	// ErrNoActivity indicates a config without an activity matrix path.
	ErrNoActivity = errors.New("pipeline: activity path is required")

	// ErrNoAnnotations indicates a config without an annotations path.
	ErrNoAnnotations = errors.New("pipeline: annotations path is required")

	// ErrBadModules indicates a module count below one.
	ErrBadModules = errors.New("pipeline: modules must be at least 1")

	// ErrBadBinarize indicates negative binarization settings.
	ErrBadBinarize = errors.New("pipeline: binarize settings must be non-negative")

	// ErrNilInput indicates nil matrices passed to RunMatrices.
	ErrNilInput = errors.New("pipeline: nil activity matrix or annotations")
)
