// Package nodevec learns node embeddings from graph structure: every node
// of an undirected graph gets a dense vector, and nodes that share
// neighbourhoods end up close to each other.
//
// What is nodevec?
//
//	A sequence-based embedding toolkit built from small packages:
//		• Graph primitives: a thread-safe simple graph with integer node IDs
//		• Fixtures: rings, paths, stars, grids, complete and random graphs
//		• Traversals: BFS with component labelling, DFS with pre/post hooks
//		• Sequence generators: uniform walks, node2vec walks, diffusion trees
//		• Training: skip-gram word2vec with hierarchical softmax
//		• Estimators: Diff2Vec, DeepWalk and Node2Vec on one Fit pipeline
//
// Pipeline:
//
//	core.Graph ─► sequence.Generator ─► sequence.Corpus
//	           ─► embed.Trainer ─► token vectors ─► matrix.Dense (row i = node i)
//
// Packages:
//
//	core/       Graph, Edge and thread-safe primitives
//	builder/    deterministic graph constructors and permutations
//	bfs/        breadth-first search, connected components
//	dfs/        depth-first search, Euler tours of trees
//	sequence/   Sequence, Corpus, Generator contract, token codec
//	walk/       RandomWalker (DeepWalk), BiasedWalker (Node2Vec)
//	diffusion/  Tree (Diff2Vec diffusion + Euler traversal)
//	word2vec/   vocabulary, Huffman tree, parallel skip-gram training
//	matrix/     Dense row-major embedding matrix
//	embed/      Estimator, Config (YAML), Result and similarity queries
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Cycle(5))
//	est, _ := embed.NewDiff2Vec(embed.DefaultDiff2VecConfig())
//	res, _ := est.Fit(g)
//	top, _ := res.MostSimilar(0, 2)
//
//	go get github.com/katalvlaran/nodevec
package nodevec
