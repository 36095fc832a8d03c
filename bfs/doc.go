// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus connected-component
// labelling built on top of it.
//
// What
//
//   - BFS(g, start, opts...) explores nodes in non-decreasing hop distance.
//   - BFSResult carries Order (visit sequence), Depth and Parent, both indexed
//     by node ID with -1 for "not reached" / "no parent".
//   - Components(g) labels every node with the index of its connected
//     component; diffusion processes use it to bound how far a tree can grow.
//
// Determinism
//
//	core.Graph returns neighbors sorted ascending and BFS enqueues them in that
//	order, so the visit sequence is fully reproducible.
//
// Options
//
//   - WithContext(ctx):        cancellation, checked once per dequeued node.
//   - WithMaxDepth(d):         stop exploring beyond depth d (d>0); 0 means no limit.
//   - WithFilterNeighbor(fn):  skip edges for which fn(curr, nbr) == false.
//   - WithOnVisit(fn):         hook on visit; a returned error aborts the search.
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors,
//     context errors, and wrapped OnVisit errors.
//
// Complexity: Time O(V + E), Memory O(V).
package bfs
