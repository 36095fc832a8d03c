// SPDX-License-Identifier: MIT
// Package: nodevec/builder
//
// impl_star.go: Star(n) and Complete(n) constructors.
//
// Contract:
//   • Star: n ≥ 2; centre is the first new node, leaves follow in order.
//   • Complete: n ≥ 1; edges {i,j} for i<j in lexicographic order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/nodevec/core"
)

const (
	methodStar       = "Star"
	methodComplete   = "Complete"
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Star returns a Constructor that builds a star with one centre and n-1 leaves.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center, err := reserve(g, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = link(g, methodStar, center, center+i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete graph K_n.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base, err := reserve(g, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = link(g, methodComplete, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
