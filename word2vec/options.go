package word2vec

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

var (
	// ErrEmptyCorpus is returned when the corpus holds no tokens at all.
	ErrEmptyCorpus = errors.New("word2vec: empty corpus")

	// ErrEmptyVocabulary is returned when no token survives MinCount.
	ErrEmptyVocabulary = errors.New("word2vec: empty vocabulary")

	// ErrInvalidOption is returned for out-of-range training options.
	ErrInvalidOption = errors.New("word2vec: invalid option")

	// ErrUnknownToken is returned by lookups for tokens outside the vocabulary.
	ErrUnknownToken = errors.New("word2vec: unknown token")
)

// Option mutates Options before training.
type Option func(*Options)

// Options holds every training knob.
type Options struct {
	Dimensions int     // vector size
	Window     int     // maximum distance between a token and its context
	Epochs     int     // passes over the corpus
	Alpha      float64 // initial learning rate
	MinAlpha   float64 // final learning rate
	MinCount   int     // tokens rarer than this are dropped; 0 keeps all
	Workers    int     // parallel shards per epoch
	Negative   int     // negative samples per pair; 0 disables
	Sample     float64 // down-sampling threshold; 0 disables
	Seed       int64

	// HierarchicalSoftmax enables the Huffman-tree objective.
	HierarchicalSoftmax bool

	Logger logrus.FieldLogger
}

// DefaultOptions returns skip-gram with hierarchical softmax, 100 dimensions,
// window 5, one epoch, Alpha 0.025 and a single worker.
func DefaultOptions() Options {
	return Options{
		Dimensions:          100,
		Window:              5,
		Epochs:              1,
		Alpha:               0.025,
		MinAlpha:            0.0001,
		MinCount:            1,
		Workers:             1,
		HierarchicalSoftmax: true,
		Logger:              logrus.StandardLogger(),
	}
}

// WithDimensions sets the vector size.
func WithDimensions(n int) Option { return func(o *Options) { o.Dimensions = n } }

// WithWindow sets the context window.
func WithWindow(n int) Option { return func(o *Options) { o.Window = n } }

// WithEpochs sets the number of passes.
func WithEpochs(n int) Option { return func(o *Options) { o.Epochs = n } }

// WithAlpha sets the initial learning rate. MinAlpha is lowered to alpha when
// it would exceed it.
func WithAlpha(a float64) Option {
	return func(o *Options) {
		o.Alpha = a
		if o.MinAlpha > a {
			o.MinAlpha = a
		}
	}
}

// WithMinAlpha sets the final learning rate.
func WithMinAlpha(a float64) Option { return func(o *Options) { o.MinAlpha = a } }

// WithMinCount sets the vocabulary frequency threshold.
func WithMinCount(n int) Option { return func(o *Options) { o.MinCount = n } }

// WithWorkers sets the number of parallel shards.
func WithWorkers(n int) Option { return func(o *Options) { o.Workers = n } }

// WithNegative enables negative sampling with n samples per pair.
func WithNegative(n int) Option { return func(o *Options) { o.Negative = n } }

// WithHierarchicalSoftmax toggles the Huffman-tree objective.
func WithHierarchicalSoftmax(on bool) Option {
	return func(o *Options) { o.HierarchicalSoftmax = on }
}

// WithSample sets the down-sampling threshold, typically 1e-3..1e-5.
func WithSample(t float64) Option { return func(o *Options) { o.Sample = t } }

// WithSeed fixes the random seed for initialisation and sampling.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithLogger routes training logs to l. nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Validate reports every out-of-range field at once.
func (o Options) Validate() error {
	var result *multierror.Error
	bad := func(msg string) {
		result = multierror.Append(result, fmt.Errorf("%w: %s", ErrInvalidOption, msg))
	}

	if o.Dimensions <= 0 {
		bad(fmt.Sprintf("dimensions=%d must be > 0", o.Dimensions))
	}
	if o.Window <= 0 {
		bad(fmt.Sprintf("window=%d must be > 0", o.Window))
	}
	if o.Epochs <= 0 {
		bad(fmt.Sprintf("epochs=%d must be > 0", o.Epochs))
	}
	if !(o.Alpha > 0) {
		bad(fmt.Sprintf("alpha=%v must be > 0", o.Alpha))
	}
	if o.MinAlpha < 0 || o.MinAlpha > o.Alpha {
		bad(fmt.Sprintf("min alpha=%v must be in [0, alpha]", o.MinAlpha))
	}
	if o.MinCount < 0 {
		bad(fmt.Sprintf("min count=%d must be >= 0", o.MinCount))
	}
	if o.Workers <= 0 {
		bad(fmt.Sprintf("workers=%d must be > 0", o.Workers))
	}
	if o.Negative < 0 {
		bad(fmt.Sprintf("negative=%d must be >= 0", o.Negative))
	}
	if o.Sample < 0 {
		bad(fmt.Sprintf("sample=%v must be >= 0", o.Sample))
	}
	if !o.HierarchicalSoftmax && o.Negative == 0 {
		bad("either hierarchical softmax or negative sampling must be enabled")
	}

	return result.ErrorOrNil()
}
