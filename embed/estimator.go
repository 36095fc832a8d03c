package embed

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/nodevec/core"
	"github.com/katalvlaran/nodevec/matrix"
	"github.com/katalvlaran/nodevec/sequence"
)

// Option customises an Estimator.
type Option func(*Estimator)

// WithLogger routes estimator and default-trainer logs to l. nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Estimator) {
		if l != nil {
			e.log = l
		}
	}
}

// WithTrainer replaces the default Word2VecTrainer. nil is ignored.
func WithTrainer(t Trainer) Option {
	return func(e *Estimator) {
		if t != nil {
			e.trainer = t
		}
	}
}

// Estimator fits node embeddings with a fixed Config, generator and trainer.
type Estimator struct {
	cfg     Config
	gen     sequence.Generator
	trainer Trainer
	log     logrus.FieldLogger

	mu     sync.RWMutex
	fitted *Result
}

// New returns an Estimator for an arbitrary generator. cfg.Method may be
// empty; the sequence fields of cfg are then ignored.
func New(cfg Config, gen sequence.Generator, opts ...Option) (*Estimator, error) {
	if gen == nil {
		return nil, fmt.Errorf("New: %w", ErrNilGenerator)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	e := &Estimator{cfg: cfg, gen: gen, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(e)
	}
	if e.trainer == nil {
		e.trainer = Word2VecTrainer{Logger: e.log}
	}

	return e, nil
}

// FromConfig builds the Estimator that cfg.Method names.
func FromConfig(cfg Config, opts ...Option) (*Estimator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("FromConfig: %w", err)
	}
	gen, err := cfg.Generator()
	if err != nil {
		return nil, fmt.Errorf("FromConfig: %w", err)
	}

	return New(cfg, gen, opts...)
}

// NewDiff2Vec returns a Diff2Vec estimator; cfg.Method is forced to MethodDiff2Vec.
func NewDiff2Vec(cfg Config, opts ...Option) (*Estimator, error) {
	cfg.Method = MethodDiff2Vec
	return FromConfig(cfg, opts...)
}

// NewDeepWalk returns a DeepWalk estimator; cfg.Method is forced to MethodDeepWalk.
func NewDeepWalk(cfg Config, opts ...Option) (*Estimator, error) {
	cfg.Method = MethodDeepWalk
	return FromConfig(cfg, opts...)
}

// NewNode2Vec returns a Node2Vec estimator; cfg.Method is forced to MethodNode2Vec.
func NewNode2Vec(cfg Config, opts ...Option) (*Estimator, error) {
	cfg.Method = MethodNode2Vec
	return FromConfig(cfg, opts...)
}

// Config returns the estimator's configuration.
func (e *Estimator) Config() Config { return e.cfg }

// Fit is FitContext with context.Background().
func (e *Estimator) Fit(g *core.Graph) (*Result, error) {
	return e.FitContext(context.Background(), g)
}

// FitContext generates sequences from g, trains vectors and assembles the
// embedding. On success the Result also becomes the fitted state; on error
// the previous fitted state is kept.
func (e *Estimator) FitContext(ctx context.Context, g *core.Graph) (*Result, error) {
	start := time.Now()
	if err := e.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("Fit: %w", sequence.ErrNilGraph)
	}
	n := g.NodeCount()
	if n == 0 {
		return nil, fmt.Errorf("Fit: %w", sequence.ErrEmptyGraph)
	}

	res := &Result{RunID: uuid.New()}
	log := e.log.WithFields(logrus.Fields{"run_id": res.RunID, "method": e.cfg.Method, "nodes": n})
	log.Debug("embed: fit started")

	rng := rand.New(rand.NewSource(e.cfg.Seed))
	corpus, err := e.gen.Generate(g, rng)
	if err != nil {
		return nil, fmt.Errorf("Fit: generate: %w", err)
	}
	st := corpus.Stats()
	res.NumSequences, res.NumTokens = st.Sequences, st.Tokens
	log.WithFields(logrus.Fields{"sequences": st.Sequences, "tokens": st.Tokens}).Debug("embed: corpus generated")

	var vecs Vectors
	// an all-isolated graph yields no corpus; every row is then missing
	if st.Tokens > 0 {
		if vecs, err = e.trainer.Train(ctx, corpus, e.cfg.trainParams()); err != nil {
			return nil, fmt.Errorf("Fit: train: %w", err)
		}
		if vecs != nil {
			res.VocabularySize = vecs.Len()
		}
	}

	if res.embedding, res.Missing, err = e.assemble(n, vecs); err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}
	res.Elapsed = time.Since(start)

	e.mu.Lock()
	e.fitted = res
	e.mu.Unlock()

	log.WithFields(logrus.Fields{
		"vocab":   res.VocabularySize,
		"missing": len(res.Missing),
		"elapsed": res.Elapsed,
	}).Info("embed: fit finished")

	return res, nil
}

// assemble builds the n × Dimensions matrix, row i holding the vector of
// token i.
func (e *Estimator) assemble(n int, vecs Vectors) (*matrix.Dense, []int, error) {
	if vecs != nil && vecs.Dim() != e.cfg.Dimensions {
		return nil, nil, fmt.Errorf("assemble: trainer returned %d-dimensional vectors, want %d: %w",
			vecs.Dim(), e.cfg.Dimensions, matrix.ErrDimensionMismatch)
	}
	m, err := matrix.NewDense(n, e.cfg.Dimensions)
	if err != nil {
		return nil, nil, fmt.Errorf("assemble: %w", err)
	}

	var missing []int
	for id := 0; id < n; id++ {
		var (
			v  []float64
			ok bool
		)
		if vecs != nil {
			v, ok = vecs.Vector(sequence.Token(id))
		}
		if !ok {
			if e.cfg.MissingVector != MissingZero {
				return nil, nil, fmt.Errorf("assemble: node %d: %w", id, ErrMissingVector)
			}
			missing = append(missing, id)
			continue
		}
		if err = m.SetRow(id, v); err != nil {
			return nil, nil, fmt.Errorf("assemble: node %d: %w", id, err)
		}
	}

	return m, missing, nil
}

// Result returns the fitted Result, or ErrNotFitted.
func (e *Estimator) Result() (*Result, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.fitted == nil {
		return nil, ErrNotFitted
	}

	return e.fitted, nil
}

// Embedding returns a copy of the fitted embedding matrix, or ErrNotFitted.
func (e *Estimator) Embedding() (*matrix.Dense, error) {
	res, err := e.Result()
	if err != nil {
		return nil, fmt.Errorf("Embedding: %w", err)
	}

	return res.Embedding(), nil
}
