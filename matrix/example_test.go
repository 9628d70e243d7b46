package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/ullman/core"
	"github.com/katalvlaran/ullman/matrix"
)

// ExampleNewAdjacency shows the index order and cached degrees of a triangle
// with a pendant vertex:
//
//	A───B
//	 \ /
//	  C───D
func ExampleNewAdjacency() {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"C", "D"}} {
		_ = g.AddEdge(e[0], e[1])
	}

	a, err := matrix.NewAdjacency(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(a.IDs())
	fmt.Println(a.Degrees())
	fmt.Print(a.Bits())

	// Output:
	// [A B C D]
	// [2 2 3 1]
	// 0110
	// 1010
	// 1101
	// 0010
}
