// Package binarize: functional configuration for the 2-means threshold
// search. Defaults are constants (single source of truth); WithX
// constructors validate eagerly and surface ErrBadOption through
// Thresholds rather than panicking.

package binarize

// Defaults for the 2-means iteration.
const (
	// DefaultMaxIterations bounds the centroid refinement loop. 2-means in
	// one dimension converges in a handful of steps; the bound exists so a
	// pathological row can never spin.
	DefaultMaxIterations = 100

	// DefaultTolerance stops iteration once neither centroid moved by more
	// than this amount.
	DefaultTolerance = 1e-6
)

// options carries the resolved configuration. Fields are unexported; public
// APIs consume ...Option.
type options struct {
	maxIterations int
	tolerance     float64
	err           error // first invalid option, reported by Thresholds
}

// Option configures the threshold search.
type Option func(*options)

// WithMaxIterations caps the centroid refinement loop. n must be ≥ 1.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = ErrBadOption
			return
		}
		o.maxIterations = n
	}
}

// WithTolerance sets the convergence tolerance. tol must be ≥ 0.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol < 0 {
			o.err = ErrBadOption
			return
		}
		o.tolerance = tol
	}
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts []Option) options {
	o := options{
		maxIterations: DefaultMaxIterations,
		tolerance:     DefaultTolerance,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
