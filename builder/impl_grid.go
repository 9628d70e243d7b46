// SPDX-License-Identifier: MIT
// Package: ullman/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood.
//   • Vertex IDs use the fixed scheme "r,c" (row-major order); cfg.idFn is
//     not consulted so coordinates stay explicit.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) emits the Right edge, then the Bottom edge, if present.
//
// Complexity:
//   • Time: O(rows·cols) vertices + O(rows·cols) edges.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/ullman/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addVertices(g, methodGrid, gridVertexID(r, c)); err != nil {
					return err
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridVertexID(r, c)
				if c+1 < cols {
					if err := addEdge(g, methodGrid, u, gridVertexID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, u, gridVertexID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// gridVertexID formats a 2D grid coordinate as "r,c".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
