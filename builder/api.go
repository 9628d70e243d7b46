// SPDX-License-Identifier: MIT
// Package: ullman/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go, one topology per file.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ullman/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Produce simple undirected graphs (no loops, no parallel edges).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error is
// wrapped with the context "BuildGraph: %w" and returned immediately.
//
// Constructors compose: edges already present in g are kept as they are, so
// two constructors may share vertex IDs (e.g. Cycle(5) then Star(5)).
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; branch with errors.Is against builder
//     sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph g, e.g. to grow a target
// in place. It never panics.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// addVertices inserts ids in order, wrapping the first failure with method.
func addVertices(g *core.Graph, method string, ids ...string) error {
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge inserts the undirected edge u-v unless it is already present.
func addEdge(g *core.Graph, method, u, v string) error {
	if g.HasEdge(u, v) {
		return nil
	}
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
	}

	return nil
}
