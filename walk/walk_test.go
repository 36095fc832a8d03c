package walk_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nodevec/builder"
	"github.com/katalvlaran/nodevec/core"
	"github.com/katalvlaran/nodevec/sequence"
	"github.com/katalvlaran/nodevec/walk"
)

func seeded(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

func mustBuild(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)

	return g
}

// requireWalks checks that every consecutive token pair is an edge of g.
func requireWalks(t *testing.T, g *core.Graph, c sequence.Corpus) {
	t.Helper()
	for _, s := range c {
		ids, err := s.IDs()
		require.NoError(t, err)
		for i := 1; i < len(ids); i++ {
			require.True(t, g.HasEdge(ids[i-1], ids[i]), "step %v→%v", ids[i-1], ids[i])
		}
	}
}

func generators(number, length int) map[string]sequence.Generator {
	return map[string]sequence.Generator{
		"random": walk.RandomWalker{Number: number, Length: length},
		"biased": walk.BiasedWalker{Number: number, Length: length, P: 0.5, Q: 2},
	}
}

func TestGenerators_Errors(t *testing.T) {
	g := mustBuild(t, builder.Cycle(4))
	bad := map[string]sequence.Generator{
		"random zero number": walk.RandomWalker{Number: 0, Length: 3},
		"random zero length": walk.RandomWalker{Number: 1, Length: 0},
		"biased zero number": walk.BiasedWalker{Number: 0, Length: 3, P: 1, Q: 1},
		"biased neg length":  walk.BiasedWalker{Number: 1, Length: -1, P: 1, Q: 1},
		"biased zero p":      walk.BiasedWalker{Number: 1, Length: 3, P: 0, Q: 1},
		"biased neg q":       walk.BiasedWalker{Number: 1, Length: 3, P: 1, Q: -2},
	}
	for name, gen := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := gen.Generate(g, seeded(1))
			assert.ErrorIs(t, err, sequence.ErrInvalidParameter)
		})
	}

	for name, gen := range generators(1, 3) {
		t.Run(name, func(t *testing.T) {
			_, err := gen.Generate(nil, seeded(1))
			assert.ErrorIs(t, err, sequence.ErrNilGraph)
			_, err = gen.Generate(core.NewGraph(), seeded(1))
			assert.ErrorIs(t, err, sequence.ErrEmptyGraph)
			_, err = gen.Generate(g, nil)
			assert.ErrorIs(t, err, sequence.ErrNilRand)
		})
	}
}

func TestGenerators_Shape(t *testing.T) {
	g := mustBuild(t, builder.Cycle(5))
	for name, gen := range generators(3, 7) {
		t.Run(name, func(t *testing.T) {
			c, err := gen.Generate(g, seeded(42))
			require.NoError(t, err)
			require.Len(t, c, 15)
			for i, s := range c {
				require.Len(t, s, 7)
				assert.Equal(t, sequence.Token(i%5), s[0], "round-major, node-ascending starts")
			}
			requireWalks(t, g, c)
		})
	}
}

func TestGenerators_SkipIsolated(t *testing.T) {
	g := mustBuild(t, builder.Path(2), builder.Empty(1), builder.Path(2))
	for name, gen := range generators(2, 4) {
		t.Run(name, func(t *testing.T) {
			c, err := gen.Generate(g, seeded(7))
			require.NoError(t, err)
			assert.Len(t, c, 8)
			assert.Equal(t, []bool{true, true, false, true, true}, c.Covers(5))
		})
	}
}

func TestGenerators_LengthOne(t *testing.T) {
	g := mustBuild(t, builder.Star(4))
	for name, gen := range generators(1, 1) {
		t.Run(name, func(t *testing.T) {
			c, err := gen.Generate(g, seeded(3))
			require.NoError(t, err)
			assert.Equal(t, sequence.Corpus{{"0"}, {"1"}, {"2"}, {"3"}}, c)
		})
	}
}

func TestGenerators_Deterministic(t *testing.T) {
	g := mustBuild(t, builder.Grid(4, 4))
	for name, gen := range generators(5, 10) {
		t.Run(name, func(t *testing.T) {
			a, err := gen.Generate(g, seeded(99))
			require.NoError(t, err)
			b, err := gen.Generate(g, seeded(99))
			require.NoError(t, err)
			assert.Equal(t, a, b)
		})
	}
}

func TestBiasedWalker_ReturnBias(t *testing.T) {
	g := mustBuild(t, builder.Cycle(6))
	gen := walk.BiasedWalker{Number: 5, Length: 12, P: 1e-12, Q: 1}
	c, err := gen.Generate(g, seeded(5))
	require.NoError(t, err)
	for _, s := range c {
		for i := 2; i < len(s); i++ {
			require.Equal(t, s[i-2], s[i], "tiny P must bounce back")
		}
	}
}

func TestBiasedWalker_OutwardBias(t *testing.T) {
	g := mustBuild(t, builder.Cycle(6))
	gen := walk.BiasedWalker{Number: 5, Length: 12, P: 1, Q: 1e-12}
	c, err := gen.Generate(g, seeded(5))
	require.NoError(t, err)
	for _, s := range c {
		for i := 2; i < len(s); i++ {
			require.NotEqual(t, s[i-2], s[i], "tiny Q must keep moving")
		}
	}
}

func TestBiasedWalker_TriangleNeighbor(t *testing.T) {
	// On K4 every non-return neighbor is adjacent to the previous node, so
	// Q has no effect and a huge P forbids returning.
	g := mustBuild(t, builder.Complete(4))
	gen := walk.BiasedWalker{Number: 3, Length: 10, P: 1e12, Q: 1e-12}
	c, err := gen.Generate(g, seeded(11))
	require.NoError(t, err)
	requireWalks(t, g, c)
	for _, s := range c {
		for i := 2; i < len(s); i++ {
			require.NotEqual(t, s[i-2], s[i])
		}
	}
}
