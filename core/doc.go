// Package core provides the thread-safe, in-memory graph every embedding
// pipeline in this module starts from.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only; an edge {u,v} is stored once and mirrored in
//     both adjacency rows.
//   - Simple graph: self-loops return ErrLoopNotAllowed and parallel edges
//     return ErrMultiEdgeNotAllowed.
//   - Nodes are addressed by contiguous integer IDs 0..N-1. The ID of a node
//     is also its row in any embedding matrix built from the graph, so the
//     graph never renumbers or removes nodes.
//   - AddEdge(u,v) grows the node set up to max(u,v)+1, leaving any nodes in
//     between isolated.
//
// Determinism:
//
//	Nodes(), Neighbors(id), Edges() and AdjacencyList() always return sorted
//	results, so traversals seeded with the same *rand.Rand are reproducible.
//
// Concurrency:
//
//	A single sync.RWMutex guards the adjacency rows and the edge catalog.
//	Readers receive copies; no method hands out live internal slices.
//
// Core methods:
//
//	NewGraph(opts ...GraphOption) *Graph        // WithNodes(n) pre-allocates 0..n-1
//	AddNode() int                               // O(1) amortized, returns the new ID
//	EnsureNodes(n int) error                    // grow to at least n nodes
//	AddEdge(u, v int) error                     // O(d) sorted insert
//	HasNode(id int) bool / HasEdge(u, v int) bool
//	Neighbors(id int) ([]int, error)            // sorted copy
//	Degree(id int) (int, error)
//	NodeCount() int / EdgeCount() int
//	Nodes() []int / Edges() []Edge / IsolatedNodes() []int
//	AdjacencyList() [][]int                     // snapshot for hot traversal loops
//	Clone() *Graph / Relabel(perm []int) (*Graph, error)
//	Stats() GraphStats
//
// Errors:
//
//	ErrNegativeNodeID      - node ID below zero.
//	ErrNodeNotFound        - node ID outside 0..N-1.
//	ErrLoopNotAllowed      - AddEdge(v, v).
//	ErrMultiEdgeNotAllowed - AddEdge on an existing {u,v}.
//	ErrBadPermutation      - Relabel with a slice that is not a permutation of 0..N-1.
package core
