// SPDX-License-Identifier: MIT
// Package: ullman/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: i asc, then j asc (j>i). Fixed seed ⇒ fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ullman/core"
)

const (
	methodRandomSparse      = "RandomSparse"
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
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := cfg.ids(n)
		if err := addVertices(g, methodRandomSparse, ids...); err != nil {
			return err
		}
		if p == probMin {
			return nil
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// p == 1 keeps every pair without consuming the RNG
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
