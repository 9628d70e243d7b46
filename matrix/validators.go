// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for adjacency validation checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    branch with errors.Is and still read where the violation was found.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - ValidateAdjacencyRows runs the fixed sequence Square → ZeroDiagonal → Symmetric.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare ensures every row has exactly len(rows) columns.
//
// Returns ErrNonSquare naming the first offending row.
// Complexity: O(n).
func ValidateSquare(rows [][]bool) error {
	n := len(rows)
	for i, r := range rows {
		if len(r) != n {
			return validatorErrorf(fmt.Sprintf("ValidateSquare: row %d has %d cols, want %d", i, len(r), n), ErrNonSquare)
		}
	}

	return nil
}

// ValidateZeroDiagonal ensures no row marks itself adjacent (no self-loops).
// Assumes rows is square.
// Complexity: O(n).
func ValidateZeroDiagonal(rows [][]bool) error {
	for i := range rows {
		if rows[i][i] {
			return validatorErrorf(fmt.Sprintf("ValidateZeroDiagonal: (%d,%d)", i, i), ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric ensures rows[i][j] == rows[j][i] for all i < j.
// Assumes rows is square.
// Complexity: O(n²).
func ValidateSymmetric(rows [][]bool) error {
	n := len(rows)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rows[i][j] != rows[j][i] {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric: (%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateAdjacencyRows runs Square → ZeroDiagonal → Symmetric and returns
// the first violation.
func ValidateAdjacencyRows(rows [][]bool) error {
	if err := ValidateSquare(rows); err != nil {
		return err
	}
	if err := ValidateZeroDiagonal(rows); err != nil {
		return err
	}

	return ValidateSymmetric(rows)
}
