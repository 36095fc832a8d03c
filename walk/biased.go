package walk

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/nodevec/core"
	"github.com/katalvlaran/nodevec/sequence"
)

const methodBiased = "BiasedWalker"

// BiasedWalker generates node2vec second-order walks.
type BiasedWalker struct {
	Number int
	Length int
	// P is the return parameter; small P keeps the walk local.
	P float64
	// Q is the in-out parameter; small Q pushes the walk outward.
	Q float64
}

var _ sequence.Generator = BiasedWalker{}

// Validate checks Number, Length, P and Q.
func (w BiasedWalker) Validate() error {
	if err := sequence.CheckPositive(methodBiased, "number", w.Number); err != nil {
		return err
	}
	if err := sequence.CheckPositive(methodBiased, "length", w.Length); err != nil {
		return err
	}
	for _, p := range []struct {
		name string
		v    float64
	}{{"p", w.P}, {"q", w.Q}} {
		if !(p.v > 0) || math.IsInf(p.v, 1) {
			return fmt.Errorf("%s: %s=%v must be finite and > 0: %w", methodBiased, p.name, p.v, sequence.ErrInvalidParameter)
		}
	}

	return nil
}

// Generate implements sequence.Generator. The first step of every walk is
// uniform; later steps are weighted by P and Q.
//
// Complexity: O(Number × V × Length × (d_max + log d_max)).
func (w BiasedWalker) Generate(g *core.Graph, rng *rand.Rand) (sequence.Corpus, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if err := sequence.CheckInputs(methodBiased, g, rng); err != nil {
		return nil, err
	}

	adj := g.AdjacencyList()
	starts := walkable(adj)
	corpus := make(sequence.Corpus, 0, w.Number*len(starts))
	path := make([]int, 0, w.Length)
	var weights, cum []float64
	for r := 0; r < w.Number; r++ {
		for _, start := range starts {
			path = append(path[:0], start)
			for len(path) < w.Length {
				cur := path[len(path)-1]
				nbrs := adj[cur]
				if len(path) == 1 {
					path = append(path, nbrs[rng.Intn(len(nbrs))])
					continue
				}
				prev := path[len(path)-2]
				weights = w.transition(weights[:0], adj, prev, nbrs)
				cum = append(cum[:0], weights...)
				floats.CumSum(cum, weights)
				x := rng.Float64() * cum[len(cum)-1]
				i := sort.SearchFloat64s(cum, x)
				// rounding can push x onto the total
				if i == len(nbrs) {
					i--
				}
				path = append(path, nbrs[i])
			}
			corpus = append(corpus, sequence.FromIDs(path))
		}
	}

	return corpus, nil
}

// transition appends the unnormalised weight of every neighbor of the
// current node to dst, given the previous node prev.
func (w BiasedWalker) transition(dst []float64, adj [][]int, prev int, nbrs []int) []float64 {
	back := adj[prev]
	for _, x := range nbrs {
		switch {
		case x == prev:
			dst = append(dst, 1/w.P)
		case contains(back, x):
			dst = append(dst, 1)
		default:
			dst = append(dst, 1/w.Q)
		}
	}

	return dst
}

// contains reports whether sorted s holds x.
func contains(s []int, x int) bool {
	i := sort.SearchInts(s, x)
	return i < len(s) && s[i] == x
}
