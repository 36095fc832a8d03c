package word2vec

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/nodevec/sequence"
)

// Word is one vocabulary entry.
type Word struct {
	Token string
	Count int

	// Code is the Huffman path from the root, one bit per inner node.
	Code []byte
	// Point lists the inner nodes on that path, aligned with Code.
	Point []int
}

// Vocabulary maps tokens to dense indices.
type Vocabulary struct {
	words []Word
	index map[string]int
	total int
}

// BuildVocabulary counts the tokens of corpus, keeps those with
// count >= minCount and orders them by count descending, token ascending.
// The Huffman codes of the kept words are filled in.
func BuildVocabulary(corpus sequence.Corpus, minCount int) (*Vocabulary, error) {
	if minCount < 0 {
		return nil, fmt.Errorf("BuildVocabulary: min count=%d: %w", minCount, ErrInvalidOption)
	}
	counts := corpus.Counts()
	if len(counts) == 0 {
		return nil, fmt.Errorf("BuildVocabulary: %w", ErrEmptyCorpus)
	}

	words := make([]Word, 0, len(counts))
	for tok, c := range counts {
		if c >= minCount {
			words = append(words, Word{Token: tok, Count: c})
		}
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("BuildVocabulary: min count=%d drops all %d tokens: %w",
			minCount, len(counts), ErrEmptyVocabulary)
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Token < words[j].Token
	})

	v := &Vocabulary{words: words, index: make(map[string]int, len(words))}
	for i, w := range words {
		v.index[w.Token] = i
		v.total += w.Count
	}
	buildHuffman(v.words)

	return v, nil
}

// Len returns the number of words.
func (v *Vocabulary) Len() int { return len(v.words) }

// TotalCount returns the summed count of all kept words.
func (v *Vocabulary) TotalCount() int { return v.total }

// Index returns the dense index of tok.
func (v *Vocabulary) Index(tok string) (int, bool) {
	i, ok := v.index[tok]
	return i, ok
}

// Word returns entry i. It panics when i is out of range.
func (v *Vocabulary) Word(i int) Word { return v.words[i] }

// Tokens returns the tokens in index order.
func (v *Vocabulary) Tokens() []string {
	out := make([]string, len(v.words))
	for i, w := range v.words {
		out[i] = w.Token
	}

	return out
}

// encode maps every sentence to word indices, dropping unknown tokens and
// sentences that end up empty.
func (v *Vocabulary) encode(corpus sequence.Corpus) [][]int {
	out := make([][]int, 0, len(corpus))
	for _, s := range corpus {
		ids := make([]int, 0, len(s))
		for _, tok := range s {
			if i, ok := v.index[tok]; ok {
				ids = append(ids, i)
			}
		}
		if len(ids) > 0 {
			out = append(out, ids)
		}
	}

	return out
}
