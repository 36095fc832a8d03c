// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle and node-level queries.
//
// Determinism:
//   - Nodes() and IsolatedNodes() return IDs in ascending order.
//
// Concurrency:
//   - Mutators take mu.Lock; queries take mu.RLock.

package core

import "fmt"

// AddNode appends a new isolated node and returns its ID.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency = append(g.adjacency, nil)

	return len(g.adjacency) - 1
}

// EnsureNodes grows the node set so that IDs 0..n-1 exist.
// Existing nodes are left untouched; a smaller n is a no-op.
//
// Errors:
//   - ErrNegativeNodeID if n < 0.
//
// Complexity:
//   - Time O(n - N) for the newly created nodes.
func (g *Graph) EnsureNodes(n int) error {
	if n < 0 {
		return fmt.Errorf("EnsureNodes(%d): %w", n, ErrNegativeNodeID)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.grow(n)

	return nil
}

// HasNode reports whether id is in 0..N-1.
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return id >= 0 && id < len(g.adjacency)
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Nodes returns all node IDs in ascending order (0..N-1).
// Complexity: O(V).
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.adjacency))
	for i := range out {
		out[i] = i
	}

	return out
}

// Degree returns the number of neighbors of id.
//
// Errors:
//   - ErrNegativeNodeID / ErrNodeNotFound for an invalid id.
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkNode(id); err != nil {
		return 0, err
	}

	return len(g.adjacency[id]), nil
}

// IsolatedNodes returns, in ascending order, every node without incident edges.
// Such nodes never appear in generated sequences.
// Complexity: O(V).
func (g *Graph) IsolatedNodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []int
	for id, row := range g.adjacency {
		if len(row) == 0 {
			out = append(out, id)
		}
	}

	return out
}

// Stats returns a consistent snapshot of counts under a single read lock.
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{
		NodeCount: len(g.adjacency),
		EdgeCount: len(g.edges),
	}
	for _, row := range g.adjacency {
		if len(row) == 0 {
			s.IsolatedCount++
		}
		if len(row) > s.MaxDegree {
			s.MaxDegree = len(row)
		}
	}

	return s
}

// checkNode validates id against the current node range. Caller holds mu.
func (g *Graph) checkNode(id int) error {
	if id < 0 {
		return fmt.Errorf("node %d: %w", id, ErrNegativeNodeID)
	}
	if id >= len(g.adjacency) {
		return fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}

	return nil
}
