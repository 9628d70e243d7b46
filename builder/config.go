// SPDX-License-Identifier: MIT
// Package: ullman/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn        = DefaultIDFn  ("0","1","2",...)
//   • rng         = nil          (pure/deterministic unless seeded)
//   • left/right  = "L" / "R"

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// Bipartite ID prefixes (left/right). Empty → defaults resolved below.
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"      // bipartite left side label
	defaultRightPrefix = "R"      // bipartite right side label
	centerVertexID     = "Center" // hub of Star and Wheel
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order. Empty prefixes resolve to defaults here to keep
// downstream code branch-free.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		rng:         nil,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// ids returns cfg.idFn(0..n-1).
func (cfg builderConfig) ids(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = cfg.idFn(i)
	}

	return out
}
