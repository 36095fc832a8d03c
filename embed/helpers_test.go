package embed_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nodevec/builder"
	"github.com/katalvlaran/nodevec/core"
	"github.com/katalvlaran/nodevec/embed"
	"github.com/katalvlaran/nodevec/sequence"
)

// mapVectors is a fixed token → vector table.
type mapVectors struct {
	dim int
	m   map[string][]float64
}

func (v mapVectors) Dim() int { return v.dim }
func (v mapVectors) Len() int { return len(v.m) }
func (v mapVectors) Vector(tok string) ([]float64, bool) {
	x, ok := v.m[tok]
	return x, ok
}

// degreeTrainer gives every token that occurs in the corpus the vector
// [degree, 1] in g, independent of the corpus order.
func degreeTrainer(g *core.Graph) embed.Trainer {
	return embed.TrainerFunc(func(_ context.Context, corpus sequence.Corpus, _ embed.TrainParams) (embed.Vectors, error) {
		out := mapVectors{dim: 2, m: map[string][]float64{}}
		for tok := range corpus.Counts() {
			id, err := sequence.ParseToken(tok)
			if err != nil {
				return nil, err
			}
			d, err := g.Degree(id)
			if err != nil {
				return nil, err
			}
			out.m[tok] = []float64{float64(d), 1}
		}
		return out, nil
	})
}

// tableTrainer returns the given table whatever the corpus.
func tableTrainer(v mapVectors) embed.Trainer {
	return embed.TrainerFunc(func(context.Context, sequence.Corpus, embed.TrainParams) (embed.Vectors, error) {
		return v, nil
	})
}

func mustBuild(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)

	return g
}

func quiet() logrus.FieldLogger {
	l, _ := logtest.NewNullLogger()
	return l
}

// smallDeepWalk is a fast DeepWalk config for unit tests.
func smallDeepWalk() embed.Config {
	c := embed.DefaultDeepWalkConfig()
	c.Number, c.Length = 10, 20
	c.Dimensions = 8
	c.Workers = 1
	c.Seed = 1

	return c
}

// smallDiff2Vec is a fast Diff2Vec config for unit tests.
func smallDiff2Vec() embed.Config {
	c := embed.DefaultDiff2VecConfig()
	c.Number, c.Cover = 5, 4
	c.Dimensions = 8
	c.Workers = 1
	c.Seed = 1

	return c
}
