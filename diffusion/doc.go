// Package diffusion implements the Diff2Vec sequence generator.
//
// A diffusion starts at a seed node and spreads like an infection: at every
// step a uniformly chosen infected node picks a uniformly chosen neighbor,
// and a neighbor seen for the first time joins the tree through that edge.
// Growth stops once Cover nodes are infected, or once the seed's whole
// connected component is, whichever comes first. Component sizes come from
// bfs.Components, computed once per Generate call.
//
// The resulting tree is turned into a sequence by walking the Eulerian
// circuit of its doubled edges from the seed (dfs.EulerTour) and dropping the
// closing return to the seed. A tree of k nodes therefore yields 2(k-1)
// tokens, and a one-node tree yields just the seed.
//
// Tree.Generate runs Number rounds over every non-isolated node in ascending
// ID order, so the corpus is round-major and node-ascending.
package diffusion
