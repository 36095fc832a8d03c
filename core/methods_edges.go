// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle, neighborhood queries and adjacency snapshots.
//
// Determinism:
//   - Neighbors(id) and every row of AdjacencyList() are sorted ascending.
//   - Edges() is sorted by (U, V).

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts the undirected edge {u,v}, creating nodes up to max(u,v).
//
// Implementation:
//   - Stage 1: reject negative IDs and self-loops before taking the lock.
//   - Stage 2: under mu, grow the node set, reject duplicates, then insert v
//     into row u and u into row v keeping both rows sorted.
//
// Errors:
//   - ErrNegativeNodeID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity:
//   - Time O(deg(u) + deg(v)) for the sorted inserts, Space O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || v < 0 {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrNegativeNodeID)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	hi := u
	if v > hi {
		hi = v
	}
	g.grow(hi + 1)

	key := newEdge(u, v)
	if _, dup := g.edges[key]; dup {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}
	g.edges[key] = struct{}{}
	g.adjacency[u] = insertSorted(g.adjacency[u], v)
	g.adjacency[v] = insertSorted(g.adjacency[v], u)

	return nil
}

// HasEdge reports whether {u,v} exists. Out-of-range IDs simply report false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edges[newEdge(u, v)]

	return ok
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns a sorted copy of the neighbor IDs of id.
//
// Errors:
//   - ErrNegativeNodeID / ErrNodeNotFound for an invalid id.
//
// Complexity:
//   - Time O(d), Space O(d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkNode(id); err != nil {
		return nil, err
	}

	return append([]int(nil), g.adjacency[id]...), nil
}

// Edges returns every edge sorted by (U, V), each with U < V.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// AdjacencyList returns an independent snapshot of all adjacency rows:
// out[id] is the sorted neighbor list of id. Sequence generators take one
// snapshot per run and walk it without further locking.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]int, len(g.adjacency))
	for id, row := range g.adjacency {
		out[id] = append([]int(nil), row...)
	}

	return out
}

// insertSorted inserts x into the ascending slice s.
func insertSorted(s []int, x int) []int {
	i := sort.SearchInts(s, x)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = x

	return s
}
