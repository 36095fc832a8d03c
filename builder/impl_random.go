// SPDX-License-Identifier: MIT
// Package: nodevec/builder
//
// impl_random.go - RandomSparse(n, p) constructor and Permutation helper.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): each unordered pair {i,j}, i<j, is kept independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Trial order: i ascending, j ascending (j > i); one rng.Float64() per trial.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/nodevec/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	methodPermutation       = "Permutation"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		// p ∈ {0,1} is fully determined; anything in between needs an RNG.
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base, err := reserve(g, methodRandomSparse, n)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = link(g, methodRandomSparse, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Permutation returns a uniformly random permutation of 0..n-1, suitable
// for core.Graph.Relabel. It requires an RNG (WithSeed/WithRand).
func Permutation(n int, opts ...BuilderOption) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < min=1: %w", methodPermutation, n, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: rng is required: %w", methodPermutation, ErrNeedRandSource)
	}

	return cfg.rng.Perm(n), nil
}
