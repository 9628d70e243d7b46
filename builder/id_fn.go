// SPDX-License-Identifier: MIT
// Package: ullman/builder
//
// id_fn.go - vertex ID schemes. Pattern and target files written by the CLI
// use these to make vertex roles readable ("A","B",... for small patterns,
// decimal for large targets).

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25]: 0→"A", 25→"Z".
// Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('A' + idx))
}

// ExcelColumnIDFn returns the spreadsheet column name for idx: 0→"A", 25→"Z",
// 26→"AA", 701→"ZZ". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var buf [16]byte
	pos := len(buf)
	for i := idx; i >= 0; i = i/26 - 1 {
		pos--
		buf[pos] = byte('A' + i%26)
	}

	return string(buf[pos:])
}

// HexIDFn returns idx in lowercase hexadecimal: 10→"a", 255→"ff".
// Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// PrefixIDFn returns an IDFn producing prefix + decimal index ("v0","v1",...).
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixIDFn: idx must be ≥ 0, got %d", idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}

// IDSchemeByName resolves a scheme name used in configuration files:
// "decimal" (or ""), "letters" (spreadsheet columns, never panics), "hex",
// or "prefix:<p>".
func IDSchemeByName(name string) (IDFn, error) {
	switch name {
	case "", "decimal":
		return DefaultIDFn, nil
	case "letters", "excel":
		return ExcelColumnIDFn, nil
	case "hex":
		return HexIDFn, nil
	}
	if p, ok := strings.CutPrefix(name, "prefix:"); ok && p != "" {
		return PrefixIDFn(p), nil
	}

	return nil, fmt.Errorf("IDSchemeByName: %q: %w", name, ErrUnknownKind)
}
