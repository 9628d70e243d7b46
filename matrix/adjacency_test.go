package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ullman/core"
	"github.com/katalvlaran/ullman/matrix"
)

func TestNewAdjacency_NilGraph(t *testing.T) {
	_, err := matrix.NewAdjacency(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
}

func TestNewAdjacency_FromGraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("b", "a"))
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddVertex("z"))

	a, err := matrix.NewAdjacency(g)
	require.NoError(t, err)

	assert.Equal(t, 4, a.Order())
	assert.Equal(t, 2, a.EdgeCount())
	assert.Equal(t, []string{"a", "b", "c", "z"}, a.IDs())
	assert.Equal(t, []int{1, 2, 1, 0}, a.Degrees())
	assert.Equal(t, 2, a.MaxDegree())
	assert.Equal(t, []int{0, 2}, a.Neighbors(1))
	assert.True(t, a.Adjacent(0, 1))
	assert.True(t, a.Adjacent(1, 0))
	assert.False(t, a.Adjacent(0, 2))
	assert.False(t, a.Adjacent(0, 9))

	idx, err := a.IndexOf("c")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	_, err = a.IndexOf("nope")
	assert.ErrorIs(t, err, matrix.ErrUnknownVertex)

	id, err := a.VertexID(3)
	require.NoError(t, err)
	assert.Equal(t, "z", id)
	_, err = a.VertexID(4)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestAdjacencyFromEdges(t *testing.T) {
	a, err := matrix.AdjacencyFromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {1, 0}})
	require.NoError(t, err)
	assert.Equal(t, 3, a.EdgeCount(), "duplicate pair merged")
	assert.Equal(t, []string{"0", "1", "2", "3"}, a.IDs())
	assert.Equal(t, []int{1, 2, 2, 1}, a.Degrees())

	_, err = matrix.AdjacencyFromEdges(-1, nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.AdjacencyFromEdges(2, [][2]int{{0, 2}})
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.AdjacencyFromEdges(2, [][2]int{{1, 1}})
	assert.ErrorIs(t, err, matrix.ErrNonZeroDiagonal)

	empty, err := matrix.AdjacencyFromEdges(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Order())
	assert.Equal(t, 0, empty.MaxDegree())
}

func TestAdjacencyFromRows(t *testing.T) {
	a, err := matrix.AdjacencyFromRows([][]bool{
		{false, true, true},
		{true, false, false},
		{true, false, false},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 1}, a.Degrees())
	assert.Equal(t, "011\n100\n100\n", a.Bits().String())

	_, err = matrix.AdjacencyFromRows([][]bool{{false, true}})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.AdjacencyFromRows([][]bool{{true}})
	assert.ErrorIs(t, err, matrix.ErrNonZeroDiagonal)
	_, err = matrix.AdjacencyFromRows([][]bool{{false, true}, {false, false}})
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestAdjacency_BitsIsCopy(t *testing.T) {
	a, err := matrix.AdjacencyFromEdges(2, [][2]int{{0, 1}})
	require.NoError(t, err)

	b := a.Bits()
	b.Drop(0, 1)
	assert.True(t, a.Adjacent(0, 1))
}
