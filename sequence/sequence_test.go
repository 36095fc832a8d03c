package sequence_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nodevec/core"
	"github.com/katalvlaran/nodevec/sequence"
)

func TestToken_RoundTrip(t *testing.T) {
	for _, id := range []int{0, 1, 9, 10, 12345} {
		got, err := sequence.ParseToken(sequence.Token(id))
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestParseToken_Rejects(t *testing.T) {
	for _, tok := range []string{"", "-1", "07", "a", "1.0", " 1"} {
		_, err := sequence.ParseToken(tok)
		assert.ErrorIs(t, err, sequence.ErrBadToken, tok)
	}
}

func TestSequence_IDs(t *testing.T) {
	s := sequence.FromIDs([]int{3, 1, 4})
	assert.Equal(t, sequence.Sequence{"3", "1", "4"}, s)
	ids, err := s.IDs()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 4}, ids)

	_, err = sequence.Sequence{"1", "x"}.IDs()
	assert.ErrorIs(t, err, sequence.ErrBadToken)
}

func TestCorpus_StatsCountsCovers(t *testing.T) {
	c := sequence.Corpus{
		{"0", "1", "0"},
		{"2"},
		{"9", "junk"},
	}
	st := c.Stats()
	assert.Equal(t, sequence.Stats{Sequences: 3, Tokens: 6, Distinct: 5, MaxLength: 3}, st)
	assert.Equal(t, 2, c.Counts()["0"])
	assert.Equal(t, []bool{true, true, true, false}, c.Covers(4))
}

func TestCheckInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.ErrorIs(t, sequence.CheckInputs("X", nil, rng), sequence.ErrNilGraph)
	assert.ErrorIs(t, sequence.CheckInputs("X", core.NewGraph(), rng), sequence.ErrEmptyGraph)
	g := core.NewGraph(core.WithNodes(1))
	assert.ErrorIs(t, sequence.CheckInputs("X", g, nil), sequence.ErrNilRand)
	assert.NoError(t, sequence.CheckInputs("X", g, rng))

	assert.ErrorIs(t, sequence.CheckPositive("X", "count", 0), sequence.ErrInvalidParameter)
	assert.NoError(t, sequence.CheckPositive("X", "count", 1))
}

func TestGeneratorFunc(t *testing.T) {
	var gen sequence.Generator = sequence.GeneratorFunc(func(g *core.Graph, _ *rand.Rand) (sequence.Corpus, error) {
		return sequence.Corpus{sequence.FromIDs(g.Nodes())}, nil
	})
	c, err := gen.Generate(core.NewGraph(core.WithNodes(2)), nil)
	require.NoError(t, err)
	assert.Equal(t, sequence.Corpus{{"0", "1"}}, c)
}
