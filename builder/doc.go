// Package builder assembles deterministic graph fixtures for embedding
// pipelines, tests and benchmarks.
//
// Every topology is a Constructor: a closure that appends its nodes after the
// nodes already present in the target graph and then emits its edges in a
// fixed order. BuildGraph applies constructors left to right, so composing
// several of them yields their disjoint union:
//
//	g, err := builder.BuildGraph(nil, nil,
//	    builder.Cycle(5),  // nodes 0..4
//	    builder.Star(3),   // centre 5, leaves 6..7
//	    builder.Empty(1),  // isolated node 8
//	)
//
// Stochastic constructors (RandomSparse) and Permutation need a *rand.Rand,
// supplied through WithSeed or WithRand. Same seed, same call order ⇒ same graph.
//
// Errors (use errors.Is):
//
//	ErrTooFewVertices     - size parameter below the constructor minimum.
//	ErrInvalidProbability - p outside [0,1].
//	ErrNeedRandSource     - stochastic constructor without an RNG.
//	ErrConstructFailed    - nil constructor or a core mutation failed.
package builder
