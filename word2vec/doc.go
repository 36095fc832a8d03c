// Package word2vec trains skip-gram word embeddings over a sequence.Corpus.
// The estimators in package embed use it to turn node sequences into node
// vectors, but nothing here knows about graphs: tokens are opaque strings.
//
// Model
//
//   - Vocabulary: tokens with count >= MinCount, sorted by count descending
//     and then by token, so indices are stable across runs.
//   - Hierarchical softmax over a Huffman tree of the vocabulary (default).
//     Frequent tokens get short codes.
//   - Optional negative sampling (Negative > 0) from the unigram
//     distribution raised to 0.75. Both objectives may be combined.
//   - Optional down-sampling of frequent tokens (Sample > 0).
//   - The learning rate decays linearly from Alpha to MinAlpha over all
//     epochs, driven by the number of tokens processed.
//
// Parallelism
//
//	Each epoch splits the corpus into Workers contiguous shards. Every worker
//	trains its own copy of the weights and the per-worker deltas are summed
//	into the shared weights in worker order once all shards finish. Training
//	is therefore free of data races and bit-for-bit reproducible for a fixed
//	Seed and Workers. Workers=1 trains the weights in place.
//
// Cancellation
//
//	Train checks ctx before every sentence and returns ctx.Err() once it is
//	done; no partial model is returned.
//
// Complexity: O(Epochs × Tokens × Window × (log V + Negative) × Dimensions).
package word2vec
