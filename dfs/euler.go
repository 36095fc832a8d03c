package dfs

import "github.com/katalvlaran/nodevec/core"

// EulerTour returns the closed walk that starts at root, descends every
// DFS-tree edge and climbs back along it, ending at root again. For a tree
// with k nodes the result has 2k-1 entries; a lone root yields [root].
//
// The walk is driven entirely by the OnVisit/OnExit hooks: a node is emitted
// when it is discovered, and its parent is emitted again when the node exits.
func EulerTour(g *core.Graph, root int) ([]int, error) {
	var (
		tour  []int
		stack []int
	)
	_, err := DFS(g, root,
		WithOnVisit(func(id int) error {
			tour = append(tour, id)
			stack = append(stack, id)
			return nil
		}),
		WithOnExit(func(int) error {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				tour = append(tour, stack[len(stack)-1])
			}
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return tour, nil
}
