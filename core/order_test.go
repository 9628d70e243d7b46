package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/ullman/core"
)

func TestNaturalLess(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"1", "2", true},
		{"2", "10", true},
		{"10", "2", false},
		{"-1", "0", true},
		{"9", "a", true},
		{"a", "9", false},
		{"a", "b", true},
		{"07", "7", true},
		{"7", "07", false},
		{"x", "x", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, core.NaturalLess(tc.a, tc.b), "NaturalLess(%q,%q)", tc.a, tc.b)
	}
}

func TestSortNatural(t *testing.T) {
	ids := []string{"b", "10", "a", "2", "0"}
	core.SortNatural(ids)
	assert.Equal(t, []string{"0", "2", "10", "a", "b"}, ids)
}
