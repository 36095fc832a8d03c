package walk

import (
	"math/rand"

	"github.com/katalvlaran/nodevec/core"
	"github.com/katalvlaran/nodevec/sequence"
)

const methodRandom = "RandomWalker"

// RandomWalker generates uniform random walks.
type RandomWalker struct {
	// Number is the count of walks started at every node.
	Number int
	// Length is the number of tokens per walk, start node included.
	Length int
}

var _ sequence.Generator = RandomWalker{}

// Validate checks Number and Length.
func (w RandomWalker) Validate() error {
	if err := sequence.CheckPositive(methodRandom, "number", w.Number); err != nil {
		return err
	}

	return sequence.CheckPositive(methodRandom, "length", w.Length)
}

// Generate implements sequence.Generator.
//
// Complexity: O(Number × V × Length).
func (w RandomWalker) Generate(g *core.Graph, rng *rand.Rand) (sequence.Corpus, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if err := sequence.CheckInputs(methodRandom, g, rng); err != nil {
		return nil, err
	}

	adj := g.AdjacencyList()
	starts := walkable(adj)
	corpus := make(sequence.Corpus, 0, w.Number*len(starts))
	path := make([]int, 0, w.Length)
	for r := 0; r < w.Number; r++ {
		for _, start := range starts {
			path = path[:0]
			path = append(path, start)
			cur := start
			for len(path) < w.Length {
				nbrs := adj[cur]
				cur = nbrs[rng.Intn(len(nbrs))]
				path = append(path, cur)
			}
			corpus = append(corpus, sequence.FromIDs(path))
		}
	}

	return corpus, nil
}

// walkable returns, in ascending order, the nodes that have at least one neighbor.
func walkable(adj [][]int) []int {
	out := make([]int, 0, len(adj))
	for id, nbrs := range adj {
		if len(nbrs) > 0 {
			out = append(out, id)
		}
	}

	return out
}
