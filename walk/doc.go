// Package walk implements the random-walk sequence generators used by the
// DeepWalk and Node2Vec estimators.
//
//   - RandomWalker: first-order, uniform walks. From the current node the
//     next step is drawn uniformly from its sorted neighbor list.
//   - BiasedWalker: second-order node2vec walks. Given the previous node t
//     and the current node v, a neighbor x of v gets weight 1/P when x == t,
//     1 when x is adjacent to t, and 1/Q otherwise.
//
// Both generators emit Number rounds; each round starts one walk at every
// non-isolated node in ascending ID order, so the corpus has
// Number × (nodes with degree > 0) sequences of exactly Length tokens.
//
// The graph is read once through core.Graph.AdjacencyList, so walking does
// not hold the graph lock.
package walk
