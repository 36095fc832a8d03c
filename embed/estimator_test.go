package embed_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nodevec/builder"
	"github.com/katalvlaran/nodevec/core"
	"github.com/katalvlaran/nodevec/embed"
	"github.com/katalvlaran/nodevec/matrix"
	"github.com/katalvlaran/nodevec/sequence"
)

func TestNew_Errors(t *testing.T) {
	_, err := embed.New(smallDeepWalk(), nil)
	assert.ErrorIs(t, err, embed.ErrNilGenerator)

	bad := smallDiff2Vec()
	bad.Dimensions = 0
	_, err = embed.NewDiff2Vec(bad)
	assert.ErrorIs(t, err, embed.ErrInvalidConfig)

	// a DeepWalk config has no cover, so forcing Diff2Vec must fail
	_, err = embed.NewDiff2Vec(smallDeepWalk())
	assert.ErrorIs(t, err, embed.ErrInvalidConfig)
}

func TestFit_FiveCycle(t *testing.T) {
	g := mustBuild(t, builder.Cycle(5))
	for name, cfg := range map[string]embed.Config{"deepwalk": smallDeepWalk(), "diff2vec": smallDiff2Vec()} {
		t.Run(name, func(t *testing.T) {
			est, err := embed.FromConfig(cfg, embed.WithLogger(quiet()))
			require.NoError(t, err)
			res, err := est.Fit(g)
			require.NoError(t, err)

			emb, err := est.Embedding()
			require.NoError(t, err)
			r, c := emb.Shape()
			assert.Equal(t, [2]int{5, 8}, [2]int{r, c})
			assert.True(t, emb.AllFinite())
			assert.Empty(t, res.Missing)
			assert.Equal(t, 5, res.VocabularySize)
			assert.Positive(t, res.NumSequences)
			assert.Positive(t, res.NumTokens)
		})
	}
}

func TestFit_Node2Vec(t *testing.T) {
	cfg := smallDeepWalk()
	cfg.P, cfg.Q = 0.5, 2
	est, err := embed.NewNode2Vec(cfg, embed.WithLogger(quiet()))
	require.NoError(t, err)
	res, err := est.Fit(mustBuild(t, builder.Grid(3, 3)))
	require.NoError(t, err)
	assert.Equal(t, 9, res.Nodes())
	assert.Equal(t, 90, res.NumSequences)
	assert.Equal(t, 1800, res.NumTokens)
}

func TestFit_Deterministic(t *testing.T) {
	g := mustBuild(t, builder.Grid(3, 4))
	for _, workers := range []int{1, 3} {
		cfg := smallDiff2Vec()
		cfg.Workers = workers
		fit := func() *matrix.Dense {
			est, err := embed.NewDiff2Vec(cfg, embed.WithLogger(quiet()))
			require.NoError(t, err)
			_, err = est.Fit(g)
			require.NoError(t, err)
			m, err := est.Embedding()
			require.NoError(t, err)
			return m
		}
		assert.True(t, fit().Equal(fit()), "workers=%d", workers)
	}
}

func TestFit_RowsFollowNodeIDs(t *testing.T) {
	g := mustBuild(t, builder.Star(4), builder.Path(3), builder.Cycle(3))
	perm, err := builder.Permutation(g.NodeCount(), builder.WithSeed(5))
	require.NoError(t, err)
	h, err := g.Relabel(perm)
	require.NoError(t, err)

	cfg := smallDeepWalk()
	cfg.Dimensions = 2
	fit := func(g *core.Graph) *embed.Result {
		est, err := embed.NewDeepWalk(cfg, embed.WithTrainer(degreeTrainer(g)), embed.WithLogger(quiet()))
		require.NoError(t, err)
		res, err := est.Fit(g)
		require.NoError(t, err)
		return res
	}
	orig, relabelled := fit(g), fit(h)
	for i, p := range perm {
		want, err := orig.Vector(i)
		require.NoError(t, err)
		got, err := relabelled.Vector(p)
		require.NoError(t, err)
		assert.Equal(t, want, got, "node %d → %d", i, p)
	}
}

func TestFit_IsolatedNode(t *testing.T) {
	g := mustBuild(t, builder.Cycle(3), builder.Empty(1))

	est, err := embed.NewDeepWalk(smallDeepWalk(), embed.WithLogger(quiet()))
	require.NoError(t, err)
	_, err = est.Fit(g)
	require.ErrorIs(t, err, embed.ErrMissingVector)
	assert.Contains(t, err.Error(), "node 3")
	_, err = est.Embedding()
	assert.ErrorIs(t, err, embed.ErrNotFitted)

	cfg := smallDeepWalk()
	cfg.MissingVector = embed.MissingZero
	est, err = embed.NewDeepWalk(cfg, embed.WithLogger(quiet()))
	require.NoError(t, err)
	res, err := est.Fit(g)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, res.Missing)
	row, err := res.Vector(3)
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 8), row)
}

func TestFit_AllIsolated(t *testing.T) {
	g := core.NewGraph(core.WithNodes(3))
	cfg := smallDiff2Vec()
	cfg.MissingVector = embed.MissingZero
	est, err := embed.NewDiff2Vec(cfg, embed.WithLogger(quiet()))
	require.NoError(t, err)
	res, err := est.Fit(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Missing)
	assert.Zero(t, res.NumSequences)
	assert.Zero(t, res.VocabularySize)
}

func TestFit_MinCountDropsNode(t *testing.T) {
	// one walk of two tokens per node on a 3-star: the centre occurs three
	// times, one leaf twice and the other leaf once
	g := mustBuild(t, builder.Star(3))
	cfg := smallDeepWalk()
	cfg.Number, cfg.Length = 1, 2
	cfg.MinCount = 2
	est, err := embed.NewDeepWalk(cfg, embed.WithLogger(quiet()))
	require.NoError(t, err)
	_, err = est.Fit(g)
	assert.ErrorIs(t, err, embed.ErrMissingVector)

	cfg.MissingVector = embed.MissingZero
	est, err = embed.NewDeepWalk(cfg, embed.WithLogger(quiet()))
	require.NoError(t, err)
	res, err := est.Fit(g)
	require.NoError(t, err)
	assert.Len(t, res.Missing, 1)
	assert.Equal(t, 2, res.VocabularySize)
}

func TestFit_MinimalParameters(t *testing.T) {
	g := mustBuild(t, builder.Cycle(5))

	walkCfg := smallDeepWalk()
	walkCfg.Number, walkCfg.Length = 1, 1
	est, err := embed.NewDeepWalk(walkCfg, embed.WithLogger(quiet()))
	require.NoError(t, err)
	res, err := est.Fit(g)
	require.NoError(t, err)
	assert.Equal(t, 5, res.NumTokens)
	assert.True(t, res.Embedding().AllFinite())

	diffCfg := smallDiff2Vec()
	diffCfg.Number, diffCfg.Cover = 1, 1
	est, err = embed.NewDiff2Vec(diffCfg, embed.WithLogger(quiet()))
	require.NoError(t, err)
	res, err = est.Fit(g)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Nodes())
}

func TestFit_InputErrors(t *testing.T) {
	est, err := embed.NewDeepWalk(smallDeepWalk(), embed.WithLogger(quiet()))
	require.NoError(t, err)
	_, err = est.Fit(nil)
	assert.ErrorIs(t, err, sequence.ErrNilGraph)
	_, err = est.Fit(core.NewGraph())
	assert.ErrorIs(t, err, sequence.ErrEmptyGraph)

	_, err = est.Result()
	assert.ErrorIs(t, err, embed.ErrNotFitted)
}

func TestFit_TrainerErrors(t *testing.T) {
	g := mustBuild(t, builder.Cycle(4))
	boom := errors.New("boom")
	failing := embed.TrainerFunc(func(context.Context, sequence.Corpus, embed.TrainParams) (embed.Vectors, error) {
		return nil, boom
	})
	est, err := embed.NewDeepWalk(smallDeepWalk(), embed.WithTrainer(failing), embed.WithLogger(quiet()))
	require.NoError(t, err)
	_, err = est.Fit(g)
	assert.ErrorIs(t, err, boom)

	wrongDim := tableTrainer(mapVectors{dim: 3, m: map[string][]float64{}})
	est, err = embed.NewDeepWalk(smallDeepWalk(), embed.WithTrainer(wrongDim), embed.WithLogger(quiet()))
	require.NoError(t, err)
	_, err = est.Fit(g)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	cfg := smallDeepWalk()
	cfg.Dimensions = 1
	partial := tableTrainer(mapVectors{dim: 1, m: map[string][]float64{"0": {1}, "1": {1}, "3": {1}}})
	est, err = embed.NewDeepWalk(cfg, embed.WithTrainer(partial), embed.WithLogger(quiet()))
	require.NoError(t, err)
	_, err = est.Fit(g)
	require.ErrorIs(t, err, embed.ErrMissingVector)
	assert.Contains(t, err.Error(), "node 2")
}

func TestFit_FailureKeepsPreviousState(t *testing.T) {
	est, err := embed.NewDeepWalk(smallDeepWalk(), embed.WithLogger(quiet()))
	require.NoError(t, err)
	first, err := est.Fit(mustBuild(t, builder.Cycle(4)))
	require.NoError(t, err)

	_, err = est.Fit(mustBuild(t, builder.Cycle(4), builder.Empty(1)))
	require.ErrorIs(t, err, embed.ErrMissingVector)

	got, err := est.Result()
	require.NoError(t, err)
	assert.Equal(t, first.RunID, got.RunID)

	// a successful re-fit replaces the state
	second, err := est.Fit(mustBuild(t, builder.Path(6)))
	require.NoError(t, err)
	emb, err := est.Embedding()
	require.NoError(t, err)
	assert.Equal(t, 6, emb.Rows())
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestEmbedding_ReturnsCopy(t *testing.T) {
	est, err := embed.NewDeepWalk(smallDeepWalk(), embed.WithLogger(quiet()))
	require.NoError(t, err)
	_, err = est.Fit(mustBuild(t, builder.Cycle(4)))
	require.NoError(t, err)

	a, err := est.Embedding()
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 0, 42))
	b, err := est.Embedding()
	require.NoError(t, err)
	v, _ := b.At(0, 0)
	assert.NotEqual(t, 42.0, v)
}

func TestFitContext_Cancelled(t *testing.T) {
	est, err := embed.NewDeepWalk(smallDeepWalk(), embed.WithLogger(quiet()))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = est.FitContext(ctx, mustBuild(t, builder.Cycle(4)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFit_Concurrent(t *testing.T) {
	est, err := embed.NewDiff2Vec(smallDiff2Vec(), embed.WithLogger(quiet()))
	require.NoError(t, err)
	g := mustBuild(t, builder.Grid(3, 3))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := est.Fit(g)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			if m, err := est.Embedding(); err == nil {
				assert.Equal(t, 9, m.Rows())
			} else {
				assert.ErrorIs(t, err, embed.ErrNotFitted)
			}
		}()
	}
	wg.Wait()

	_, err = est.Embedding()
	assert.NoError(t, err)
}

func TestFit_Logging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	est, err := embed.NewDiff2Vec(smallDiff2Vec(), embed.WithLogger(logger))
	require.NoError(t, err)
	res, err := est.Fit(mustBuild(t, builder.Cycle(5)))
	require.NoError(t, err)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, logrus.InfoLevel, last.Level)
	assert.Equal(t, "embed: fit finished", last.Message)
	assert.Equal(t, res.RunID, last.Data["run_id"])
	assert.Equal(t, 5, last.Data["nodes"])

	var runTagged int
	for _, e := range hook.AllEntries() {
		if e.Data["run_id"] == res.RunID {
			runTagged++
		}
	}
	assert.Equal(t, 3, runTagged, "started, corpus generated, finished")
}
