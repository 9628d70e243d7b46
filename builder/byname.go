// SPDX-License-Identifier: MIT
// Package: ullman/builder
//
// byname.go - resolves a topology by name, for the CLI and config files.

package builder

import (
	"fmt"
	"sort"
)

// Params carries the numeric arguments of a named topology.
// N is the primary size; M is the second size for "bipartite" (right side),
// "grid" (columns) and "regular" (degree); P is the edge probability of "random".
type Params struct {
	N int
	M int
	P float64
}

// kinds maps topology names to their constructor factories.
var kinds = map[string]func(Params) Constructor{
	"path":      func(a Params) Constructor { return Path(a.N) },
	"cycle":     func(a Params) Constructor { return Cycle(a.N) },
	"star":      func(a Params) Constructor { return Star(a.N) },
	"wheel":     func(a Params) Constructor { return Wheel(a.N) },
	"complete":  func(a Params) Constructor { return Complete(a.N) },
	"bipartite": func(a Params) Constructor { return CompleteBipartite(a.N, a.M) },
	"grid":      func(a Params) Constructor { return Grid(a.N, a.M) },
	"random":    func(a Params) Constructor { return RandomSparse(a.N, a.P) },
	"regular":   func(a Params) Constructor { return RandomRegular(a.N, a.M) },
}

// ByName returns the Constructor registered under kind.
// Parameter validation happens when the constructor runs.
//
// Errors:
//   - ErrUnknownKind if kind is not one of Kinds().
func ByName(kind string, prm Params) (Constructor, error) {
	mk, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("ByName: %q: %w", kind, ErrUnknownKind)
	}

	return mk(prm), nil
}

// Kinds returns the known topology names in sorted order.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
