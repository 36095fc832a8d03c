package word2vec

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/nodevec/sequence"
)

// weights bundles the three trainable matrices, all row-major.
type weights struct {
	syn0    []float64 // input vectors, V × dim
	syn1    []float64 // hierarchical-softmax inner nodes, (V-1) × dim
	syn1neg []float64 // negative-sampling output vectors, V × dim
}

func (w weights) clone() weights {
	return weights{
		syn0:    append([]float64(nil), w.syn0...),
		syn1:    append([]float64(nil), w.syn1...),
		syn1neg: append([]float64(nil), w.syn1neg...),
	}
}

// addDelta adds (w - base) to dst for every matrix.
func (w weights) addDelta(dst, base weights) {
	for _, m := range [][3][]float64{
		{dst.syn0, w.syn0, base.syn0},
		{dst.syn1, w.syn1, base.syn1},
		{dst.syn1neg, w.syn1neg, base.syn1neg},
	} {
		if len(m[0]) == 0 {
			continue
		}
		floats.AddScaled(m[0], 1, m[1])
		floats.AddScaled(m[0], -1, m[2])
	}
}

// trainer carries the immutable state of one Train call.
type trainer struct {
	opts   Options
	vocab  *Vocabulary
	sents  [][]int
	total  int // tokens per epoch before down-sampling
	keep   []float64
	table  *unigram
	log    logrus.FieldLogger
	shards []shard
}

// shard is a contiguous slice of sentences and the number of tokens before it.
type shard struct {
	sents  [][]int
	offset int
}

// Train builds a vocabulary from corpus and fits skip-gram vectors.
func Train(ctx context.Context, corpus sequence.Corpus, opts ...Option) (*Model, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("Train: %w", err)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	vocab, err := BuildVocabulary(corpus, o.MinCount)
	if err != nil {
		return nil, fmt.Errorf("Train: %w", err)
	}

	t := &trainer{opts: o, vocab: vocab, log: o.Logger}
	t.sents = vocab.encode(corpus)
	for _, s := range t.sents {
		t.total += len(s)
	}
	t.keep = keepProbabilities(vocab.words, vocab.total, o.Sample)
	if o.Negative > 0 {
		t.table = newUnigram(vocab.words)
	}
	t.shards = split(t.sents, o.Workers)

	w := t.initWeights()
	t.log.WithFields(logrus.Fields{
		"vocab":   vocab.Len(),
		"tokens":  t.total,
		"workers": len(t.shards),
		"epochs":  o.Epochs,
	}).Debug("word2vec: training started")

	for epoch := 0; epoch < o.Epochs; epoch++ {
		start := time.Now()
		if err := t.epoch(ctx, w, epoch); err != nil {
			return nil, fmt.Errorf("Train: epoch %d: %w", epoch, err)
		}
		t.log.WithFields(logrus.Fields{
			"epoch":   epoch + 1,
			"alpha":   t.alpha(epoch+1, 0),
			"elapsed": time.Since(start),
		}).Debug("word2vec: epoch finished")
	}

	return &Model{vocab: vocab, dim: o.Dimensions, syn0: w.syn0}, nil
}

// split cuts sents into at most n contiguous, non-empty shards.
func split(sents [][]int, n int) []shard {
	if n > len(sents) {
		n = len(sents)
	}
	out := make([]shard, 0, n)
	offset := 0
	for k := 0; k < n; k++ {
		part := sents[k*len(sents)/n : (k+1)*len(sents)/n]
		out = append(out, shard{sents: part, offset: offset})
		for _, s := range part {
			offset += len(s)
		}
	}

	return out
}

// initWeights draws input vectors uniformly from [-0.5/dim, 0.5/dim); output
// weights start at zero.
func (t *trainer) initWeights() weights {
	d, v := t.opts.Dimensions, t.vocab.Len()
	rng := rand.New(rand.NewSource(t.opts.Seed))
	w := weights{syn0: make([]float64, v*d)}
	for i := range w.syn0 {
		w.syn0[i] = (rng.Float64() - 0.5) / float64(d)
	}
	if t.opts.HierarchicalSoftmax && v > 1 {
		w.syn1 = make([]float64, (v-1)*d)
	}
	if t.opts.Negative > 0 {
		w.syn1neg = make([]float64, v*d)
	}

	return w
}

// epoch runs one pass over all shards and merges the results into w.
func (t *trainer) epoch(ctx context.Context, w weights, epoch int) error {
	if len(t.shards) == 1 {
		return t.runShard(ctx, w, t.shards[0], epoch, workerRNG(t.opts.Seed, epoch, 0))
	}

	base := w.clone()
	local := make([]weights, len(t.shards))
	g, gctx := errgroup.WithContext(ctx)
	for k := range t.shards {
		k := k
		local[k] = base.clone()
		g.Go(func() error {
			return t.runShard(gctx, local[k], t.shards[k], epoch, workerRNG(t.opts.Seed, epoch, k))
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, l := range local {
		l.addDelta(w, base)
	}

	return nil
}

// alpha returns the learning rate after done tokens of the given epoch.
func (t *trainer) alpha(epoch, done int) float64 {
	o := t.opts
	progress := float64(epoch*t.total+done) / float64(o.Epochs*t.total)
	a := o.Alpha - (o.Alpha-o.MinAlpha)*progress
	if a < o.MinAlpha {
		a = o.MinAlpha
	}

	return a
}

// runShard trains w on one shard.
func (t *trainer) runShard(ctx context.Context, w weights, sh shard, epoch int, rng *rand.Rand) error {
	neu1e := make([]float64, t.opts.Dimensions)
	var buf []int
	done := sh.offset
	for _, s := range sh.sents {
		if err := ctx.Err(); err != nil {
			return err
		}
		alpha := t.alpha(epoch, done)
		buf = t.subsample(buf[:0], s, rng)
		for pos, word := range buf {
			b := rng.Intn(t.opts.Window)
			for c := pos - t.opts.Window + b; c <= pos+t.opts.Window-b; c++ {
				if c < 0 || c >= len(buf) || c == pos {
					continue
				}
				t.trainPair(w, buf[c], word, alpha, neu1e, rng)
			}
		}
		done += len(s)
	}

	return nil
}

// subsample appends the kept tokens of s to dst.
func (t *trainer) subsample(dst, s []int, rng *rand.Rand) []int {
	if t.opts.Sample <= 0 {
		return append(dst, s...)
	}
	for _, word := range s {
		if p := t.keep[word]; p >= 1 || rng.Float64() < p {
			dst = append(dst, word)
		}
	}

	return dst
}

// trainPair updates w so that the input vector of in predicts out.
func (t *trainer) trainPair(w weights, in, out int, alpha float64, neu1e []float64, rng *rand.Rand) {
	d := t.opts.Dimensions
	l1 := w.syn0[in*d : (in+1)*d]
	for i := range neu1e {
		neu1e[i] = 0
	}

	if t.opts.HierarchicalSoftmax {
		word := t.vocab.words[out]
		for j, p := range word.Point {
			l2 := w.syn1[p*d : (p+1)*d]
			f := sigmoid(floats.Dot(l1, l2))
			g := (1 - float64(word.Code[j]) - f) * alpha
			floats.AddScaled(neu1e, g, l2)
			floats.AddScaled(l2, g, l1)
		}
	}

	for j := 0; j <= t.opts.Negative && t.opts.Negative > 0; j++ {
		target, label := out, 1.0
		if j > 0 {
			target = t.table.sample(rng)
			if target == out {
				continue
			}
			label = 0
		}
		l2 := w.syn1neg[target*d : (target+1)*d]
		f := sigmoid(floats.Dot(l1, l2))
		g := (label - f) * alpha
		floats.AddScaled(neu1e, g, l2)
		floats.AddScaled(l2, g, l1)
	}

	floats.Add(l1, neu1e)
}
