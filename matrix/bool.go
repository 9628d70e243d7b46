// SPDX-License-Identifier: MIT

// Package matrix - Bool storage (row-major packed bits) & accessors.
//
// Purpose:
//   - Provide a cache-friendly bitset with the explicit layout: row i occupies
//     words [i*w, (i+1)*w) where w = ceil(cols/64); column j is bit j%64 of word j/64.
//   - Guarantee safety at the checked surface: At/Set return errors instead of panicking.
//   - Offer unchecked hot-path accessors (Has/Put/Drop) for inner loops whose
//     indices are already known to be in range.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Invariant:
//   - Bits at positions >= cols in the last word of a row are always zero,
//     so word-level scans never see phantom columns.
//
// Complexity quicksheet:
//   - NewBool: O(r*w); At/Set/Has/Put/Drop: O(1); Clone/CopyFrom: O(r*w);
//     RowEmpty/RowCount/NextInRow: O(w); ClearCol: O(r).

package matrix

import (
	"fmt"
	"math/bits"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxCopyFrom = "CopyFrom"
	ctxNewBool  = "NewBool"
)

// wordBits is the number of columns packed into one storage word.
const wordBits = 64

// boolErrorf wraps an error with a uniform Bool context and callsite indices.
func boolErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Bool.%s(%d,%d): %w", method, row, col, err)
}

// Bool is a dense rows×cols boolean matrix packed into uint64 words.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - w is the number of words per row.
//   - data is a flat buffer of length r*w in row-major order.
type Bool struct {
	r, c int
	w    int
	data []uint64
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Bool)(nil)

// NewBool creates an all-false rows×cols matrix.
//
// Zero-sized shapes are legal: an empty pattern graph yields a 0×n
// compatibility matrix.
//
// Errors:
//   - ErrBadShape if rows < 0 or cols < 0.
//
// Complexity:
//   - Time O(r*ceil(c/64)), Space O(r*ceil(c/64)).
func NewBool(rows, cols int) (*Bool, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewBool, rows, cols, ErrBadShape)
	}
	w := (cols + wordBits - 1) / wordBits

	return &Bool{r: rows, c: cols, w: w, data: make([]uint64, rows*w)}, nil
}

// Rows returns the number of rows.
func (m *Bool) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Bool) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Bool) Shape() (rows, cols int) { return m.r, m.c }

// inRange reports whether (row, col) addresses a cell.
func (m *Bool) inRange(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// At returns the value at (row, col).
//
// Errors:
//   - ErrOutOfRange when out of bounds.
func (m *Bool) At(row, col int) (bool, error) {
	if !m.inRange(row, col) {
		return false, boolErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.Has(row, col), nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange when out of bounds.
func (m *Bool) Set(row, col int, v bool) error {
	if !m.inRange(row, col) {
		return boolErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if v {
		m.Put(row, col)
	} else {
		m.Drop(row, col)
	}

	return nil
}

// Has reports the value at (row, col) without bounds checks.
// Callers must guarantee 0 <= row < Rows() and 0 <= col < Cols().
func (m *Bool) Has(row, col int) bool {
	return m.data[row*m.w+col/wordBits]&(1<<(uint(col)%wordBits)) != 0
}

// Put sets (row, col) to true without bounds checks.
func (m *Bool) Put(row, col int) {
	m.data[row*m.w+col/wordBits] |= 1 << (uint(col) % wordBits)
}

// Drop sets (row, col) to false without bounds checks.
func (m *Bool) Drop(row, col int) {
	m.data[row*m.w+col/wordBits] &^= 1 << (uint(col) % wordBits)
}

// row returns the word slice backing row i.
func (m *Bool) row(i int) []uint64 {
	return m.data[i*m.w : (i+1)*m.w]
}

// RowEmpty reports whether row i has no true cell.
func (m *Bool) RowEmpty(i int) bool {
	for _, word := range m.row(i) {
		if word != 0 {
			return false
		}
	}

	return true
}

// RowCount returns the number of true cells in row i.
func (m *Bool) RowCount(i int) int {
	n := 0
	for _, word := range m.row(i) {
		n += bits.OnesCount64(word)
	}

	return n
}

// NextInRow returns the smallest column j >= from with (i, j) true, or -1.
// Iterating with j = m.NextInRow(i, j+1) visits the row in increasing column
// order without allocating.
func (m *Bool) NextInRow(i, from int) int {
	if from < 0 {
		from = 0
	}
	if from >= m.c {
		return -1
	}
	words := m.row(i)
	k := from / wordBits
	word := words[k] &^ ((1 << (uint(from) % wordBits)) - 1)
	for {
		if word != 0 {
			return k*wordBits + bits.TrailingZeros64(word)
		}
		k++
		if k >= len(words) {
			return -1
		}
		word = words[k]
	}
}

// RowIndices returns the true columns of row i in increasing order.
func (m *Bool) RowIndices(i int) []int {
	out := make([]int, 0, m.RowCount(i))
	for j := m.NextInRow(i, 0); j >= 0; j = m.NextInRow(i, j+1) {
		out = append(out, j)
	}

	return out
}

// FirstEmptyRow returns the index of the first all-false row, or -1.
func (m *Bool) FirstEmptyRow() int {
	for i := 0; i < m.r; i++ {
		if m.RowEmpty(i) {
			return i
		}
	}

	return -1
}

// ClearRow sets every cell of row i to false.
func (m *Bool) ClearRow(i int) {
	clear(m.row(i))
}

// ClearCol sets every cell of column j to false.
func (m *Bool) ClearCol(j int) {
	k := j / wordBits
	mask := uint64(1) << (uint(j) % wordBits)
	for i := 0; i < m.r; i++ {
		m.data[i*m.w+k] &^= mask
	}
}

// Count returns the total number of true cells.
func (m *Bool) Count() int {
	n := 0
	for _, word := range m.data {
		n += bits.OnesCount64(word)
	}

	return n
}

// Clone returns a deep copy.
func (m *Bool) Clone() *Bool {
	data := make([]uint64, len(m.data))
	copy(data, m.data)

	return &Bool{r: m.r, c: m.c, w: m.w, data: data}
}

// CopyFrom overwrites m with the contents of src without reallocating.
//
// Errors:
//   - ErrNilMatrix if src is nil.
//   - ErrDimensionMismatch if shapes differ.
func (m *Bool) CopyFrom(src *Bool) error {
	if src == nil {
		return fmt.Errorf("Bool.%s: %w", ctxCopyFrom, ErrNilMatrix)
	}
	if src.r != m.r || src.c != m.c {
		return fmt.Errorf("Bool.%s: %dx%d <- %dx%d: %w", ctxCopyFrom, m.r, m.c, src.r, src.c, ErrDimensionMismatch)
	}
	copy(m.data, src.data)

	return nil
}

// Equal reports whether m and o have the same shape and cells.
func (m *Bool) Equal(o *Bool) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// String renders the matrix as rows of 0/1, one row per line.
func (m *Bool) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if m.Has(i, j) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
