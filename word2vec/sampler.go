package word2vec

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// unigramPower flattens the unigram distribution for negative sampling.
const unigramPower = 0.75

// unigram draws word indices with probability proportional to count^0.75.
type unigram struct {
	cum []float64
}

func newUnigram(words []Word) *unigram {
	w := make([]float64, len(words))
	for i, word := range words {
		w[i] = math.Pow(float64(word.Count), unigramPower)
	}
	cum := make([]float64, len(w))
	floats.CumSum(cum, w)

	return &unigram{cum: cum}
}

func (u *unigram) sample(rng *rand.Rand) int {
	x := rng.Float64() * u.cum[len(u.cum)-1]
	i := sort.SearchFloat64s(u.cum, x)
	if i == len(u.cum) {
		i--
	}

	return i
}

// keepProbabilities returns, per word, the probability of keeping one
// occurrence under down-sampling threshold t. t <= 0 keeps everything.
func keepProbabilities(words []Word, total int, t float64) []float64 {
	keep := make([]float64, len(words))
	for i, w := range words {
		if t <= 0 {
			keep[i] = 1
			continue
		}
		th := t * float64(total)
		c := float64(w.Count)
		keep[i] = math.Min(1, (math.Sqrt(c/th)+1)*th/c)
	}

	return keep
}

// sigmoid is the logistic function clamped away from exp overflow.
func sigmoid(x float64) float64 {
	const limit = 30
	switch {
	case x > limit:
		return 1
	case x < -limit:
		return 0
	}

	return 1 / (1 + math.Exp(-x))
}
