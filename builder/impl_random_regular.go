// SPDX-License-Identifier: MIT
// Package: ullman/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Canonical model:
//   • d-regular simple graph via stub matching with bounded retries.
//   • Each vertex contributes d stubs; stubs are shuffled (per seed) and
//     paired consecutively. A pairing with a loop or a repeated pair is
//     rejected before the graph is touched, and the stubs are reshuffled.
//
// Contract:
//   • n ≥ 1; 0 ≤ d < n; n·d even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • ErrConstructFailed after maxStubMatchingAttempts rejected pairings.
//
// Complexity:
//   • O(n·d) time and space per attempt.
//
// Regular targets give every vertex the same degree, so the degree filter of
// the matcher keeps all candidates and only refinement and search can prune.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ullman/core"
)

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 1000
)

// RandomRegular returns a Constructor that builds a d-regular graph on n vertices.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		ids := cfg.ids(n)
		if err := addVertices(g, methodRandomRegular, ids...); err != nil {
			return err
		}
		if d == 0 {
			return nil
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		seen := make(map[[2]int]struct{}, len(stubs)/2)
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs, seen) {
				continue
			}

			for i := 0; i < len(stubs); i += 2 {
				if err := addEdge(g, methodRandomRegular, ids[stubs[i]], ids[stubs[i+1]]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: no simple pairing after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form a simple graph.
// seen is scratch space, cleared on entry.
func simplePairing(stubs []int, seen map[[2]int]struct{}) bool {
	clear(seen)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
