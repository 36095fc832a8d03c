// Package embed turns a core.Graph into one vector per node.
//
// An Estimator couples three pieces:
//
//   - a Config with every hyperparameter (fixed for the duration of a fit);
//   - a sequence.Generator that linearises the graph into a corpus
//     (diffusion.Tree for Diff2Vec, walk.RandomWalker for DeepWalk,
//     walk.BiasedWalker for Node2Vec);
//   - a Trainer that learns one vector per token (Word2VecTrainer by default:
//     skip-gram with hierarchical softmax).
//
// Fit runs the pipeline
//
//	validate → generate(seed) → train → rows 0..N-1 → Result
//
// and publishes the Result as the estimator's fitted state. Row i of the
// embedding always belongs to node i, whatever order the corpus visited the
// nodes in. A failed Fit returns no partial result and leaves any earlier
// fitted state in place.
//
// Missing vectors
//
//	Isolated nodes never appear in a corpus, and MinCount > 1 can drop rare
//	nodes from the vocabulary. By default Fit fails with ErrMissingVector
//	naming the first such node; Config.MissingVector = "zero" assigns a zero
//	row instead and lists the affected nodes in Result.Missing.
//
// Configuration
//
//	Config carries yaml tags; LoadConfig and Config.Save read and write it.
//	DefaultConfig(method) returns the preset for "diff2vec", "deepwalk" or
//	"node2vec", and FromConfig builds the matching Estimator.
//
// Logging
//
//	Estimators log through a logrus.FieldLogger (WithLogger), tagging every
//	entry of a fit with its run_id.
//
// Concurrency
//
//	An Estimator is safe for concurrent use. Fit computes outside the lock
//	and swaps the fitted state in under a sync.RWMutex; concurrent fits
//	publish in completion order.
package embed
