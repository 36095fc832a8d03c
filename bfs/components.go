package bfs

import "github.com/katalvlaran/nodevec/core"

// Components labels the connected components of g.
//
// labels[id] is the component index of node id; components are numbered in
// order of their smallest node ID, so node 0 is always in component 0.
// sizes[c] is the number of nodes in component c.
//
// A single adjacency snapshot is shared by all sweeps, so the total cost stays
// O(V + E) even for graphs with many isolated nodes.
func Components(g *core.Graph) (labels, sizes []int, err error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	adj := g.AdjacencyList()
	labels = filled(len(adj), -1)
	queue := make([]int, 0, len(adj))

	for root := range adj {
		if labels[root] >= 0 {
			continue
		}
		comp := len(sizes)
		labels[root] = comp
		queue = append(queue[:0], root)
		for head := 0; head < len(queue); head++ {
			for _, nbr := range adj[queue[head]] {
				if labels[nbr] < 0 {
					labels[nbr] = comp
					queue = append(queue, nbr)
				}
			}
		}
		sizes = append(sizes, len(queue))
	}

	return labels, sizes, nil
}
