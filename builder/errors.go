// SPDX-License-Identifier: MIT
// Package: ullman/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Validation priority: size → probability → rng → construction.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, degree)
// is outside the allowed domain for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted its attempts or was
// handed a nil constructor or graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownKind indicates that ByName was asked for a topology it does not know.
var ErrUnknownKind = errors.New("builder: unknown kind")
