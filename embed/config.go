package embed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nodevec/diffusion"
	"github.com/katalvlaran/nodevec/sequence"
	"github.com/katalvlaran/nodevec/walk"
)

// Estimator methods understood by DefaultConfig and FromConfig.
const (
	MethodDiff2Vec = "diff2vec"
	MethodDeepWalk = "deepwalk"
	MethodNode2Vec = "node2vec"
)

// Missing-vector policies.
const (
	MissingError = "error"
	MissingZero  = "zero"
)

// Config holds every hyperparameter of one estimator.
type Config struct {
	Method string `yaml:"method"`

	// Number is the count of sequences started at every node.
	Number int `yaml:"number"`
	// Length is the walk length (DeepWalk, Node2Vec).
	Length int `yaml:"length,omitempty"`
	// Cover is the diffusion tree size (Diff2Vec).
	Cover int `yaml:"cover,omitempty"`
	// P and Q are the node2vec return and in-out parameters.
	P float64 `yaml:"p,omitempty"`
	Q float64 `yaml:"q,omitempty"`

	Dimensions   int     `yaml:"dimensions"`
	Workers      int     `yaml:"workers"`
	Window       int     `yaml:"window"`
	Epochs       int     `yaml:"epochs"`
	LearningRate float64 `yaml:"learning_rate"`
	MinCount     int     `yaml:"min_count"`
	Seed         int64   `yaml:"seed"`

	// MissingVector is MissingError (default when empty) or MissingZero.
	MissingVector string `yaml:"missing_vector,omitempty"`
}

// DefaultDiff2VecConfig returns the Diff2Vec preset: 10 diffusions of 80
// nodes per node, 128 dimensions, 4 workers, window 5, one epoch, learning
// rate 0.05, min count 1, seed 42.
func DefaultDiff2VecConfig() Config {
	return Config{
		Method:       MethodDiff2Vec,
		Number:       10,
		Cover:        80,
		Dimensions:   128,
		Workers:      4,
		Window:       5,
		Epochs:       1,
		LearningRate: 0.05,
		MinCount:     1,
		Seed:         42,
	}
}

// DefaultDeepWalkConfig returns the DeepWalk preset: 10 walks of length 80
// per node and the same training defaults as Diff2Vec.
func DefaultDeepWalkConfig() Config {
	c := DefaultDiff2VecConfig()
	c.Method = MethodDeepWalk
	c.Cover = 0
	c.Length = 80

	return c
}

// DefaultNode2VecConfig returns the DeepWalk preset with P = Q = 1.
func DefaultNode2VecConfig() Config {
	c := DefaultDeepWalkConfig()
	c.Method = MethodNode2Vec
	c.P, c.Q = 1, 1

	return c
}

// DefaultConfig returns the preset for method; "" means MethodDiff2Vec.
func DefaultConfig(method string) (Config, error) {
	switch method {
	case MethodDiff2Vec, "":
		return DefaultDiff2VecConfig(), nil
	case MethodDeepWalk:
		return DefaultDeepWalkConfig(), nil
	case MethodNode2Vec:
		return DefaultNode2VecConfig(), nil
	}

	return Config{}, fmt.Errorf("DefaultConfig: unknown method %q: %w", method, ErrInvalidConfig)
}

// Validate checks every field and reports all violations at once. Each
// violation wraps ErrInvalidConfig.
func (c Config) Validate() error {
	var result *multierror.Error
	bad := func(msg string) {
		result = multierror.Append(result, fmt.Errorf("%w: %s", ErrInvalidConfig, msg))
	}

	if c.Number <= 0 {
		bad(fmt.Sprintf("number=%d must be > 0", c.Number))
	}
	switch c.Method {
	case MethodDiff2Vec:
		if c.Cover <= 0 {
			bad(fmt.Sprintf("cover=%d must be > 0", c.Cover))
		}
	case MethodDeepWalk, MethodNode2Vec:
		if c.Length <= 0 {
			bad(fmt.Sprintf("length=%d must be > 0", c.Length))
		}
		if c.Method == MethodNode2Vec {
			if !positiveFinite(c.P) {
				bad(fmt.Sprintf("p=%v must be finite and > 0", c.P))
			}
			if !positiveFinite(c.Q) {
				bad(fmt.Sprintf("q=%v must be finite and > 0", c.Q))
			}
		}
	case "":
		// custom generator: sequence parameters belong to it
	default:
		bad(fmt.Sprintf("unknown method %q", c.Method))
	}
	if c.Dimensions <= 0 {
		bad(fmt.Sprintf("dimensions=%d must be > 0", c.Dimensions))
	}
	if c.Workers < 1 {
		bad(fmt.Sprintf("workers=%d must be >= 1", c.Workers))
	}
	if c.Window <= 0 {
		bad(fmt.Sprintf("window=%d must be > 0", c.Window))
	}
	if c.Epochs <= 0 {
		bad(fmt.Sprintf("epochs=%d must be > 0", c.Epochs))
	}
	if !positiveFinite(c.LearningRate) {
		bad(fmt.Sprintf("learning rate=%v must be finite and > 0", c.LearningRate))
	}
	if c.MinCount < 0 {
		bad(fmt.Sprintf("min count=%d must be >= 0", c.MinCount))
	}
	switch c.MissingVector {
	case "", MissingError, MissingZero:
	default:
		bad(fmt.Sprintf("missing vector policy %q must be %q or %q", c.MissingVector, MissingError, MissingZero))
	}

	return result.ErrorOrNil()
}

func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// Generator returns the sequence generator that Method names.
func (c Config) Generator() (sequence.Generator, error) {
	switch c.Method {
	case MethodDiff2Vec:
		return diffusion.Tree{Number: c.Number, Cover: c.Cover}, nil
	case MethodDeepWalk:
		return walk.RandomWalker{Number: c.Number, Length: c.Length}, nil
	case MethodNode2Vec:
		return walk.BiasedWalker{Number: c.Number, Length: c.Length, P: c.P, Q: c.Q}, nil
	}

	return nil, fmt.Errorf("Generator: method %q: %w", c.Method, ErrInvalidConfig)
}

// trainParams projects the training half of c.
func (c Config) trainParams() TrainParams {
	return TrainParams{
		Dimensions:   c.Dimensions,
		Window:       c.Window,
		Epochs:       c.Epochs,
		LearningRate: c.LearningRate,
		MinCount:     c.MinCount,
		Workers:      c.Workers,
		Seed:         c.Seed,
	}
}

// LoadConfig reads a YAML config from path. Fields absent from the file keep
// the preset values of the file's method; unknown fields are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}

	var head struct {
		Method string `yaml:"method"`
	}
	if err = yaml.Unmarshal(data, &head); err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %s: %w", path, err)
	}
	cfg, err := DefaultConfig(head.Method)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("LoadConfig: %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes c to path as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	return nil
}
