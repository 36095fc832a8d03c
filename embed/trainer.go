package embed

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/nodevec/sequence"
	"github.com/katalvlaran/nodevec/word2vec"
)

// TrainParams is the training half of a Config.
type TrainParams struct {
	Dimensions   int
	Window       int
	Epochs       int
	LearningRate float64
	MinCount     int
	Workers      int
	Seed         int64
}

// Vectors maps tokens to learned vectors.
type Vectors interface {
	// Dim is the length of every vector.
	Dim() int
	// Len is the number of tokens with a vector.
	Len() int
	// Vector returns the vector of tok, or false when tok has none.
	Vector(tok string) ([]float64, bool)
}

// Trainer learns token vectors from a corpus.
type Trainer interface {
	Train(ctx context.Context, corpus sequence.Corpus, p TrainParams) (Vectors, error)
}

// TrainerFunc adapts a function to the Trainer interface.
type TrainerFunc func(ctx context.Context, corpus sequence.Corpus, p TrainParams) (Vectors, error)

// Train calls f.
func (f TrainerFunc) Train(ctx context.Context, corpus sequence.Corpus, p TrainParams) (Vectors, error) {
	return f(ctx, corpus, p)
}

// Word2VecTrainer is the default Trainer: skip-gram with hierarchical
// softmax, optionally combined with negative sampling and down-sampling.
type Word2VecTrainer struct {
	// Negative adds negative sampling with this many samples per pair.
	Negative int
	// Sample is the down-sampling threshold; 0 disables it.
	Sample float64
	// Logger receives per-epoch progress; nil uses logrus.StandardLogger().
	Logger logrus.FieldLogger
}

var _ Trainer = Word2VecTrainer{}

// Train implements Trainer.
func (w Word2VecTrainer) Train(ctx context.Context, corpus sequence.Corpus, p TrainParams) (Vectors, error) {
	m, err := word2vec.Train(ctx, corpus,
		word2vec.WithDimensions(p.Dimensions),
		word2vec.WithWindow(p.Window),
		word2vec.WithEpochs(p.Epochs),
		word2vec.WithAlpha(p.LearningRate),
		word2vec.WithMinCount(p.MinCount),
		word2vec.WithWorkers(p.Workers),
		word2vec.WithSeed(p.Seed),
		word2vec.WithHierarchicalSoftmax(true),
		word2vec.WithNegative(w.Negative),
		word2vec.WithSample(w.Sample),
		word2vec.WithLogger(w.Logger),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}
