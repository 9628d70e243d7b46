package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ullman/matrix"
)

// mustBool returns an all-false rows×cols matrix or fails the test.
func mustBool(t *testing.T, rows, cols int) *matrix.Bool {
	t.Helper()
	m, err := matrix.NewBool(rows, cols)
	require.NoError(t, err)

	return m
}

func TestNewBool_Shapes(t *testing.T) {
	_, err := matrix.NewBool(-1, 3)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewBool(3, -1)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	m := mustBool(t, 0, 5)
	r, c := m.Shape()
	assert.Equal(t, 0, r)
	assert.Equal(t, 5, c)
	assert.Equal(t, -1, m.FirstEmptyRow())

	m = mustBool(t, 3, 0)
	assert.True(t, m.RowEmpty(0))
	assert.Equal(t, -1, m.NextInRow(0, 0))
	assert.Equal(t, 0, m.FirstEmptyRow())
}

func TestBool_AtSetBounds(t *testing.T) {
	m := mustBool(t, 2, 3)
	require.NoError(t, m.Set(1, 2, true))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.True(t, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 3, true), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(-1, 0, true), matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 2, false))
	assert.Equal(t, 0, m.Count())
}

// TestBool_WordBoundaries exercises columns on both sides of 64-bit word edges.
func TestBool_WordBoundaries(t *testing.T) {
	m := mustBool(t, 2, 130)
	for _, j := range []int{0, 63, 64, 127, 128, 129} {
		m.Put(1, j)
	}

	assert.Equal(t, []int{0, 63, 64, 127, 128, 129}, m.RowIndices(1))
	assert.Equal(t, 6, m.RowCount(1))
	assert.Equal(t, 64, m.NextInRow(1, 64))
	assert.Equal(t, 127, m.NextInRow(1, 65))
	assert.Equal(t, -1, m.NextInRow(1, 130))
	assert.True(t, m.RowEmpty(0))
	assert.Equal(t, 0, m.FirstEmptyRow())

	m.Drop(1, 64)
	assert.False(t, m.Has(1, 64))
	assert.Equal(t, 127, m.NextInRow(1, 64))
}

func TestBool_ClearRowCol(t *testing.T) {
	m := mustBool(t, 3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Put(i, j)
		}
	}

	m.ClearRow(1)
	m.ClearCol(2)
	assert.Equal(t, "110\n000\n110\n", m.String())
	assert.Equal(t, 4, m.Count())
	assert.Equal(t, 1, m.FirstEmptyRow())
}

func TestBool_CloneCopyEqual(t *testing.T) {
	m := mustBool(t, 2, 2)
	m.Put(0, 1)

	c := m.Clone()
	assert.True(t, m.Equal(c))
	c.Put(1, 0)
	assert.False(t, m.Equal(c))
	assert.False(t, m.Has(1, 0), "clone must not alias the source")

	dst := mustBool(t, 2, 2)
	require.NoError(t, dst.CopyFrom(c))
	assert.True(t, dst.Equal(c))

	assert.ErrorIs(t, dst.CopyFrom(nil), matrix.ErrNilMatrix)
	assert.ErrorIs(t, dst.CopyFrom(mustBool(t, 3, 2)), matrix.ErrDimensionMismatch)
	assert.False(t, dst.Equal(mustBool(t, 2, 3)))
}
