package diffusion

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/nodevec/bfs"
	"github.com/katalvlaran/nodevec/core"
	"github.com/katalvlaran/nodevec/dfs"
	"github.com/katalvlaran/nodevec/sequence"
)

const methodTree = "DiffusionTree"

// Tree generates Euler-traversed diffusion trees.
type Tree struct {
	// Number is the count of diffusions started at every node.
	Number int
	// Cover is the target number of infected nodes per diffusion.
	Cover int
}

var _ sequence.Generator = Tree{}

// Validate checks Number and Cover.
func (t Tree) Validate() error {
	if err := sequence.CheckPositive(methodTree, "number", t.Number); err != nil {
		return err
	}

	return sequence.CheckPositive(methodTree, "cover", t.Cover)
}

// Generate implements sequence.Generator.
func (t Tree) Generate(g *core.Graph, rng *rand.Rand) (sequence.Corpus, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := sequence.CheckInputs(methodTree, g, rng); err != nil {
		return nil, err
	}

	d, err := newDiffuser(g)
	if err != nil {
		return nil, err
	}

	var seeds []int
	for id, nbrs := range d.adj {
		if len(nbrs) > 0 {
			seeds = append(seeds, id)
		}
	}

	corpus := make(sequence.Corpus, 0, t.Number*len(seeds))
	for r := 0; r < t.Number; r++ {
		for _, seed := range seeds {
			s, err := d.sequence(seed, t.Cover, rng)
			if err != nil {
				return nil, err
			}
			corpus = append(corpus, s)
		}
	}

	return corpus, nil
}

// Diffuse grows one diffusion tree from seed and returns its Euler sequence.
// Unlike Generate it accepts isolated seeds, which yield [seed].
func (t Tree) Diffuse(g *core.Graph, seed int, rng *rand.Rand) (sequence.Sequence, error) {
	if err := sequence.CheckPositive(methodTree, "cover", t.Cover); err != nil {
		return nil, err
	}
	if err := sequence.CheckInputs(methodTree, g, rng); err != nil {
		return nil, err
	}
	if !g.HasNode(seed) {
		return nil, fmt.Errorf("%s: seed %d: %w", methodTree, seed, core.ErrNodeNotFound)
	}
	d, err := newDiffuser(g)
	if err != nil {
		return nil, err
	}

	return d.sequence(seed, t.Cover, rng)
}

// diffuser holds per-graph state reused across diffusions.
type diffuser struct {
	adj    [][]int
	labels []int
	sizes  []int
	// local maps a graph node to its index in the current tree, -1 if absent.
	local    []int
	infected []int
}

func newDiffuser(g *core.Graph) (*diffuser, error) {
	labels, sizes, err := bfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("%s: components: %w", methodTree, err)
	}
	adj := g.AdjacencyList()
	local := make([]int, len(adj))
	for i := range local {
		local[i] = -1
	}

	return &diffuser{adj: adj, labels: labels, sizes: sizes, local: local}, nil
}

// grow infects nodes starting from seed and returns the tree over local
// indices (0 is the seed) plus the infection order mapping locals back to IDs.
func (d *diffuser) grow(seed, cover int, rng *rand.Rand) (*core.Graph, []int, error) {
	target := cover
	if size := d.sizes[d.labels[seed]]; size < target {
		target = size
	}

	tree := core.NewGraph(core.WithNodes(target))
	d.infected = append(d.infected[:0], seed)
	d.local[seed] = 0
	defer func() {
		for _, id := range d.infected {
			d.local[id] = -1
		}
	}()

	for len(d.infected) < target {
		u := d.infected[rng.Intn(len(d.infected))]
		nbrs := d.adj[u]
		v := nbrs[rng.Intn(len(nbrs))]
		if d.local[v] >= 0 {
			continue
		}
		d.local[v] = len(d.infected)
		d.infected = append(d.infected, v)
		if err := tree.AddEdge(d.local[u], d.local[v]); err != nil {
			return nil, nil, fmt.Errorf("%s: tree edge %d-%d: %w", methodTree, u, v, err)
		}
	}

	order := make([]int, len(d.infected))
	copy(order, d.infected)

	return tree, order, nil
}

// sequence grows a tree from seed and linearises it.
func (d *diffuser) sequence(seed, cover int, rng *rand.Rand) (sequence.Sequence, error) {
	tree, order, err := d.grow(seed, cover, rng)
	if err != nil {
		return nil, err
	}
	tour, err := dfs.EulerTour(tree, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: euler tour from %d: %w", methodTree, seed, err)
	}
	if len(tour) > 1 {
		tour = tour[:len(tour)-1]
	}
	for i, l := range tour {
		tour[i] = order[l]
	}

	return sequence.FromIDs(tour), nil
}
