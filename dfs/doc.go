// Package dfs implements depth-first search (single-source and forest) on
// core.Graph, with pre- and post-order hooks, depth limits, neighbor
// filtering and cancellation.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root, or the whole forest via WithFullTraversal.
//   - Hooks: OnVisit (pre-order) and OnExit (post-order); a returned error aborts.
//   - EulerTour(g, root): the closed walk that crosses every DFS-tree edge
//     twice, built from the two hooks. On a tree this is the Eulerian circuit
//     of the doubled tree, the traversal Diff2Vec turns into a sequence.
//
// Complexity:
//   - Time:   O(V + E) plus the cost of hooks and filters.
//   - Memory: O(V) for the recursion stack and result slices.
//
// Errors:
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is outside 0..N-1.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit, wrapped with the node ID.
package dfs
