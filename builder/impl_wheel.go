// SPDX-License-Identifier: MIT
// Package: ullman/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + "Center", i.e., a cycle of size (n-1) plus a hub vertex.
//   • Therefore, n ≥ 4 (the outer ring must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Builds the outer cycle using Cycle(n-1) with the same cfg.
//   • Adds hub vertex "Center" and spokes to each rim vertex in index order.
//
// Complexity:
//   • Time: O(n) vertices + O(2n-2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ullman/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + "Center".
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		if err := addVertices(g, methodWheel, centerVertexID); err != nil {
			return err
		}

		for i := 0; i < n-1; i++ {
			if err := addEdge(g, methodWheel, centerVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
