package word2vec

import (
	"github.com/emirpasic/gods/trees/binaryheap"
)

// huffNode is a heap entry: leaves use ids 0..n-1, inner nodes n..2n-2.
type huffNode struct {
	count int
	id    int
}

// byCountThenID orders nodes by count, breaking ties by id so the tree is
// identical on every run.
func byCountThenID(a, b interface{}) int {
	x, y := a.(huffNode), b.(huffNode)
	switch {
	case x.count < y.count:
		return -1
	case x.count > y.count:
		return 1
	case x.id < y.id:
		return -1
	case x.id > y.id:
		return 1
	}

	return 0
}

// buildHuffman fills Code and Point of every word. Inner node k (0-based)
// owns row k of the hierarchical-softmax weights; the root is n-2.
// A single-word vocabulary gets empty codes.
func buildHuffman(words []Word) {
	n := len(words)
	if n < 2 {
		return
	}

	parent := make([]int, 2*n-1)
	branch := make([]byte, 2*n-1)
	h := binaryheap.NewWith(byCountThenID)
	for i, w := range words {
		h.Push(huffNode{count: w.Count, id: i})
	}

	next := n
	for h.Size() > 1 {
		a, _ := h.Pop()
		b, _ := h.Pop()
		lo, hi := a.(huffNode), b.(huffNode)
		parent[lo.id], parent[hi.id] = next, next
		branch[hi.id] = 1
		h.Push(huffNode{count: lo.count + hi.count, id: next})
		next++
	}

	root := 2*n - 2
	for i := range words {
		var (
			code  []byte
			point []int
		)
		for c := i; c != root; c = parent[c] {
			code = append(code, branch[c])
			point = append(point, parent[c]-n)
		}
		for l, r := 0, len(code)-1; l < r; l, r = l+1, r-1 {
			code[l], code[r] = code[r], code[l]
			point[l], point[r] = point[r], point[l]
		}
		words[i].Code = code
		words[i].Point = point
	}
}
