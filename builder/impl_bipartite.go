// SPDX-License-Identifier: MIT
// Package: ullman/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left partition IDs "{leftPrefix}{i}", i=0..n1-1; right partition
//     "{rightPrefix}{j}", j=0..n2-1 (prefixes default to "L"/"R").
//   • Emits every cross pair L_i-R_j, i ascending then j ascending.
//
// Complexity:
//   • Time: O(n1 + n2) vertices + O(n1·n2) edges.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/ullman/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		leftIDs := prefixedIDs(cfg.leftPrefix, n1)
		rightIDs := prefixedIDs(cfg.rightPrefix, n2)
		if err := addVertices(g, methodCompleteBipartite, leftIDs...); err != nil {
			return err
		}
		if err := addVertices(g, methodCompleteBipartite, rightIDs...); err != nil {
			return err
		}

		for _, u := range leftIDs {
			for _, v := range rightIDs {
				if err := addEdge(g, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// prefixedIDs returns prefix+"0" .. prefix+"n-1".
func prefixedIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = prefix + strconv.Itoa(i)
	}

	return ids
}
