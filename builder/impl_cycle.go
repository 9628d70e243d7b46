// SPDX-License-Identifier: MIT
// Package: ullman/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i-(i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ullman/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ids := cfg.ids(n)
		if err := addVertices(g, methodCycle, ids...); err != nil {
			return err
		}
		// for i == n-1 the step closes the ring back to 0
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
