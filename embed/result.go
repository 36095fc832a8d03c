package embed

import (
	"fmt"
	"sort"
	"time"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/nodevec/matrix"
)

// Result is the immutable outcome of one successful Fit.
type Result struct {
	// RunID tags every log entry of the fit that produced this result.
	RunID uuid.UUID

	NumSequences   int // sequences generated
	NumTokens      int // tokens across all sequences
	VocabularySize int // tokens the trainer returned vectors for

	// Missing lists the nodes that received a zero row under MissingZero.
	Missing []int

	Elapsed time.Duration

	embedding *matrix.Dense
}

// Embedding returns a copy of the N × Dimensions matrix.
func (r *Result) Embedding() *matrix.Dense {
	return r.embedding.Clone()
}

// Nodes returns the number of embedded nodes.
func (r *Result) Nodes() int { return r.embedding.Rows() }

// Vector returns a copy of the row of node.
func (r *Result) Vector(node int) ([]float64, error) {
	row, err := r.embedding.Row(node)
	if err != nil {
		return nil, fmt.Errorf("Vector: node %d: %w", node, ErrUnknownNode)
	}

	return row, nil
}

// Neighbor is one entry of a similarity query.
type Neighbor struct {
	Node       int
	Similarity float64
}

// worstFirst orders neighbors so the heap root is the one to evict: lowest
// similarity, and among equals the highest node ID.
func worstFirst(a, b interface{}) int {
	x, y := a.(Neighbor), b.(Neighbor)
	switch {
	case x.Similarity < y.Similarity:
		return -1
	case x.Similarity > y.Similarity:
		return 1
	case x.Node > y.Node:
		return -1
	case x.Node < y.Node:
		return 1
	}

	return 0
}

// MostSimilar returns up to k other nodes ranked by cosine similarity to
// node, most similar first, ties broken by ascending node ID. Zero rows have
// similarity 0 with every node.
//
// Complexity: O(N × (Dimensions + log k)).
func (r *Result) MostSimilar(node, k int) ([]Neighbor, error) {
	if k <= 0 {
		return nil, fmt.Errorf("MostSimilar: k=%d must be > 0: %w", k, ErrInvalidArgument)
	}
	query, err := r.embedding.RawRow(node)
	if err != nil {
		return nil, fmt.Errorf("MostSimilar: node %d: %w", node, ErrUnknownNode)
	}

	norms := r.embedding.RowNorms()
	h := binaryheap.NewWith(worstFirst)
	for other := 0; other < r.embedding.Rows(); other++ {
		if other == node {
			continue
		}
		row, _ := r.embedding.RawRow(other)
		sim := 0.0
		if norms[node] > 0 && norms[other] > 0 {
			sim = floats.Dot(query, row) / (norms[node] * norms[other])
		}
		h.Push(Neighbor{Node: other, Similarity: sim})
		if h.Size() > k {
			h.Pop()
		}
	}

	out := make([]Neighbor, 0, h.Size())
	for !h.Empty() {
		v, _ := h.Pop()
		out = append(out, v.(Neighbor))
	}
	sort.SliceStable(out, func(i, j int) bool { return worstFirst(out[i], out[j]) > 0 })

	return out, nil
}
