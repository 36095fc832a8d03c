// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copies and ID relabelling.

package core

import "fmt"

// Clone returns a deep copy of g. Later mutations of either graph are not
// visible in the other.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		adjacency: make([][]int, len(g.adjacency)),
		edges:     make(map[Edge]struct{}, len(g.edges)),
	}
	for id, row := range g.adjacency {
		c.adjacency[id] = append([]int(nil), row...)
	}
	for e := range g.edges {
		c.edges[e] = struct{}{}
	}

	return c
}

// Relabel returns a new graph in which node i of g becomes node perm[i].
// The structure is preserved exactly: {u,v} ∈ E(g) ⇔ {perm[u],perm[v]} ∈ E(result).
//
// Errors:
//   - ErrBadPermutation if len(perm) != N, any entry is outside 0..N-1,
//     or any entry repeats.
//
// Complexity:
//   - Time O(V + E·log d), Space O(V + E).
func (g *Graph) Relabel(perm []int) (*Graph, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.adjacency)
	if len(perm) != n {
		return nil, fmt.Errorf("Relabel: len(perm)=%d, nodes=%d: %w", len(perm), n, ErrBadPermutation)
	}
	seen := make([]bool, n)
	for i, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, fmt.Errorf("Relabel: perm[%d]=%d: %w", i, p, ErrBadPermutation)
		}
		seen[p] = true
	}

	out := NewGraph(WithNodes(n))
	for e := range g.edges {
		u, v := perm[e.U], perm[e.V]
		out.edges[newEdge(u, v)] = struct{}{}
		out.adjacency[u] = insertSorted(out.adjacency[u], v)
		out.adjacency[v] = insertSorted(out.adjacency[v], u)
	}

	return out, nil
}
