// SPDX-License-Identifier: MIT
// Package: nodevec/builder
//
// impl_grid.go: Grid(rows, cols) and Empty(n) constructors.
//
// Contract:
//   • Grid: rows ≥ 1, cols ≥ 1; node (r,c) is base + r*cols + c (row-major);
//     4-neighbourhood edges, right neighbour before down neighbour.
//   • Empty: n ≥ 1 isolated nodes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/nodevec/core"
)

const (
	methodGrid    = "Grid"
	methodEmpty   = "Empty"
	minGridDim    = 1
	minEmptyNodes = 1
)

// Grid returns a Constructor for a rows×cols lattice.
// Complexity: O(rows*cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base, err := reserve(g, methodGrid, rows*cols)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := base + r*cols + c
				if c+1 < cols {
					if err = link(g, methodGrid, id, id+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = link(g, methodGrid, id, id+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Empty returns a Constructor that appends n isolated nodes.
func Empty(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minEmptyNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodEmpty, n, minEmptyNodes, ErrTooFewVertices)
		}
		_, err := reserve(g, methodEmpty, n)

		return err
	}
}
