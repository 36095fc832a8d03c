package dfs

import (
	"fmt"

	"github.com/katalvlaran/nodevec/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	adj  [][]int
	opts DFSOptions
	res  *DFSResult
}

// DFS performs depth-first search on g. With WithFullTraversal it covers all
// components in ascending root order; otherwise it starts only from start.
// Neighbors are explored in ascending ID order.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// one snapshot for the whole traversal; hooks may mutate g safely
	adj := g.AdjacencyList()
	n := len(adj)
	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	w := &dfsWalker{adj: adj, opts: dopts, res: res}

	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if !res.Visited[v] {
				if err := w.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else if err := w.traverse(start, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits id at the given depth and recurses into its neighbors.
func (w *dfsWalker) traverse(id, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	for _, nid := range w.adj[id] {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nid] {
			continue
		}
		// beyond the limit nid stays unvisited and keeps Parent == -1
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nid] = id
		if err := w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
