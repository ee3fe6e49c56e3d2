package traverse

import "math"

// DefaultDegenerateTolerance is the perimeter at or below which a closed
// traverse is treated as degenerate. Zero means only an exactly coincident
// traverse is degenerate.
const DefaultDegenerateTolerance = 0.0

const panicToleranceInvalid = "traverse: WithDegenerateTolerance: tol must be finite, non-negative"

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options holds the effective adjustment configuration.
type Options struct {
	degenerateTol float64
}

// DefaultOptions returns the options Adjust uses when none are given.
func DefaultOptions() Options {
	return Options{degenerateTol: DefaultDegenerateTolerance}
}

// WithDegenerateTolerance treats closed traverses with perimeter ≤ tol as degenerate.
func WithDegenerateTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}
	return func(o *Options) { o.degenerateTol = tol }
}

// gatherOptions applies opts on top of the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
