package word2vec

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Model holds trained input vectors keyed by vocabulary token.
// A Model is read-only after Train returns and safe for concurrent use.
type Model struct {
	vocab *Vocabulary
	dim   int
	syn0  []float64
}

// Dim returns the vector size.
func (m *Model) Dim() int { return m.dim }

// Len returns the number of tokens with a vector.
func (m *Model) Len() int { return m.vocab.Len() }

// Vocabulary returns the vocabulary the model was trained on.
func (m *Model) Vocabulary() *Vocabulary { return m.vocab }

// Vector returns a copy of the vector for tok.
func (m *Model) Vector(tok string) ([]float64, bool) {
	i, ok := m.vocab.Index(tok)
	if !ok {
		return nil, false
	}
	out := make([]float64, m.dim)
	copy(out, m.row(i))

	return out, true
}

// Similarity returns the cosine similarity of two tokens. A zero vector has
// similarity 0 with everything.
func (m *Model) Similarity(a, b string) (float64, error) {
	i, ok := m.vocab.Index(a)
	if !ok {
		return 0, fmt.Errorf("Similarity: %q: %w", a, ErrUnknownToken)
	}
	j, ok := m.vocab.Index(b)
	if !ok {
		return 0, fmt.Errorf("Similarity: %q: %w", b, ErrUnknownToken)
	}

	return Cosine(m.row(i), m.row(j)), nil
}

func (m *Model) row(i int) []float64 { return m.syn0[i*m.dim : (i+1)*m.dim] }

// Cosine returns the cosine similarity of equal-length vectors x and y, or 0
// when either has zero norm.
func Cosine(x, y []float64) float64 {
	nx, ny := floats.Norm(x, 2), floats.Norm(y, 2)
	if nx == 0 || ny == 0 {
		return 0
	}

	return floats.Dot(x, y) / (nx * ny)
}
