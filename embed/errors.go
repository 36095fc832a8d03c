package embed

import "errors"

var (
	// ErrInvalidConfig is returned when a Config violates a constraint.
	// Validate aggregates every violation into one error.
	ErrInvalidConfig = errors.New("embed: invalid config")

	// ErrNotFitted is returned when results are requested before a successful Fit.
	ErrNotFitted = errors.New("embed: estimator not fitted")

	// ErrMissingVector indicates that the trainer produced no vector for a node.
	ErrMissingVector = errors.New("embed: missing vector for node")

	// ErrNilGenerator is returned by New when no sequence generator is given.
	ErrNilGenerator = errors.New("embed: generator is nil")

	// ErrUnknownNode indicates a node ID outside 0..N-1 of the fitted graph.
	ErrUnknownNode = errors.New("embed: unknown node")

	// ErrInvalidArgument is returned for out-of-range query arguments.
	ErrInvalidArgument = errors.New("embed: invalid argument")
)
