// File: order.go
// Role: Natural ordering of vertex IDs.
//
// Integer-looking IDs ("0", "7", "-3", "12") sort numerically and precede all
// other IDs; the rest sort lexicographically. Ties between numerically equal
// but textually different IDs ("7" vs "07") fall back to lexicographic order
// so the order stays total and deterministic.
package core

import (
	"sort"
	"strconv"
)

// NaturalLess reports whether a sorts before b in natural vertex order.
func NaturalLess(a, b string) bool {
	ai, aErr := strconv.ParseInt(a, 10, 64)
	bi, bErr := strconv.ParseInt(b, 10, 64)
	aNum, bNum := aErr == nil, bErr == nil

	switch {
	case aNum && bNum:
		if ai != bi {
			return ai < bi
		}
		return a < b
	case aNum:
		return true
	case bNum:
		return false
	default:
		return a < b
	}
}

// SortNatural sorts ids in place using NaturalLess.
func SortNatural(ids []string) {
	sort.Slice(ids, func(i, j int) bool { return NaturalLess(ids[i], ids[j]) })
}
