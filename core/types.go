// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, GraphOption, sentinel errors and the NewGraph constructor.
// Policy:
//   - One RWMutex (mu) guards adjacency and edges; lock it once per public call.
//   - adjacency[i] is kept sorted ascending at all times.
//   - edges mirrors adjacency for O(1) HasEdge; keys are normalized (U < V).

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeNodeID indicates a node ID below zero.
	ErrNegativeNodeID = errors.New("core: negative node ID")

	// ErrNodeNotFound indicates an operation referenced a node outside 0..N-1.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadPermutation indicates Relabel received something other than a
	// permutation of 0..N-1.
	ErrBadPermutation = errors.New("core: relabel mapping is not a permutation")
)

// Edge is an undirected edge {U,V}. Values returned by the Graph always
// satisfy U < V.
type Edge struct {
	U int
	V int
}

// newEdge normalizes the endpoint order so that U < V.
func newEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithNodes pre-allocates nodes 0..n-1. Non-positive n is a no-op.
func WithNodes(n int) GraphOption {
	return func(g *Graph) {
		if n > len(g.adjacency) {
			g.grow(n)
		}
	}
}

// Graph is an undirected simple graph over contiguous integer node IDs.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edges

	// adjacency[id] holds the sorted neighbor IDs of node id.
	adjacency [][]int

	// edges is the edge catalog keyed by normalized endpoints.
	edges map[Edge]struct{}
}

// GraphStats is a read-only snapshot returned by Stats.
type GraphStats struct {
	NodeCount     int // |V|
	EdgeCount     int // |E|
	IsolatedCount int // nodes with degree 0
	MaxDegree     int // largest degree, 0 for an edgeless graph
}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(n) for WithNodes(n), O(1) otherwise.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make([][]int, 0),
		edges:     make(map[Edge]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// grow extends the node set to n nodes. Caller holds mu (or owns g exclusively).
func (g *Graph) grow(n int) {
	for len(g.adjacency) < n {
		g.adjacency = append(g.adjacency, nil)
	}
}
