// SPDX-License-Identifier: MIT
// Package: ullman/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID "Center".
//   - Adds leaves via cfg.idFn for i = 1..n-1 and emits spokes Center-leaf[i].
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ullman/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodStar, centerVertexID); err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			leafID := cfg.idFn(i)
			if err := addVertices(g, methodStar, leafID); err != nil {
				return err
			}
			if err := addEdge(g, methodStar, centerVertexID, leafID); err != nil {
				return err
			}
		}

		return nil
	}
}
