// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors and checked accessors return these sentinels (wrapped
// with context via %w) and tests check them via errors.Is.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
//
// ERROR PRIORITY (documented, enforced in tests):
// graph nil -> shape/index -> structural violations.

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrBadShape is returned when a requested shape is invalid (negative size).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row, column or vertex) is outside valid bounds.
	// Checked accessors (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that an adjacency expected to be symmetric is not.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals a self-loop (true diagonal entry) in an adjacency.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrUnknownVertex indicates that a referenced vertex ID is not present
	// in the adjacency's vertex index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
