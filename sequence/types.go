package sequence

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/nodevec/core"
)

var (
	// ErrInvalidParameter is returned when a count, length or cover is not positive.
	ErrInvalidParameter = errors.New("sequence: invalid parameter")

	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("sequence: graph is nil")

	// ErrEmptyGraph indicates a graph with zero nodes.
	ErrEmptyGraph = errors.New("sequence: graph has no nodes")

	// ErrNilRand indicates a missing random source.
	ErrNilRand = errors.New("sequence: random source is nil")

	// ErrBadToken is returned by ParseToken for strings that are not node tokens.
	ErrBadToken = errors.New("sequence: malformed token")
)

// Sequence is one ordered run of node tokens, the unit a trainer treats as a sentence.
type Sequence []string

// Corpus is the full set of sequences produced by one generator run.
type Corpus []Sequence

// Generator produces a Corpus from a graph.
//
// Implementations carry their own count/length parameters and must draw all
// randomness from rng.
type Generator interface {
	Generate(g *core.Graph, rng *rand.Rand) (Corpus, error)
}

// GeneratorFunc adapts an ordinary function to the Generator interface.
type GeneratorFunc func(g *core.Graph, rng *rand.Rand) (Corpus, error)

// Generate calls f(g, rng).
func (f GeneratorFunc) Generate(g *core.Graph, rng *rand.Rand) (Corpus, error) {
	return f(g, rng)
}

// CheckInputs validates the arguments every Generator receives. method is
// used as the error prefix.
func CheckInputs(method string, g *core.Graph, rng *rand.Rand) error {
	if g == nil {
		return fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	if g.NodeCount() == 0 {
		return fmt.Errorf("%s: %w", method, ErrEmptyGraph)
	}
	if rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNilRand)
	}

	return nil
}

// CheckPositive returns ErrInvalidParameter naming field when v <= 0.
func CheckPositive(method, field string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%s: %s=%d must be > 0: %w", method, field, v, ErrInvalidParameter)
	}

	return nil
}
