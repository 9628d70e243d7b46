// SPDX-License-Identifier: MIT
// Package matrix - boolean adjacency for simple undirected graphs.
//
// Deliverables:
//   1) Stable vertex index: row/col i is the i-th ID of core.Graph.Vertices()
//      (natural order), or "0".."n-1" for index-based constructors.
//   2) Symmetric bits, zero diagonal.
//   3) Degrees and sorted neighbour lists cached at construction; the value is
//      immutable afterwards and safe for concurrent readers.

package matrix

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/ullman/core"
)

// ---------- error context tags ----------

const (
	ctxNewAdjacency  = "NewAdjacency"
	ctxFromEdges     = "AdjacencyFromEdges"
	ctxFromRows      = "AdjacencyFromRows"
	ctxVertexID      = "VertexID"
	ctxIndexOf       = "IndexOf"
	defaultNbReserve = 4
)

// Adjacency is an immutable n×n boolean adjacency matrix of a simple
// undirected graph.
//
// bits holds the matrix; deg[i] = |nbrs[i]|; nbrs[i] lists the neighbours of
// i in increasing index order; ids/index translate between row indices and
// vertex IDs.
type Adjacency struct {
	n      int
	bits   *Bool
	deg    []int
	nbrs   [][]int
	maxDeg int
	edges  int
	ids    []string
	index  map[string]int
}

// newAdjacency allocates an empty adjacency over the given vertex IDs.
func newAdjacency(ids []string) *Adjacency {
	n := len(ids)
	b, _ := NewBool(n, n) // n >= 0 always holds here
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	return &Adjacency{
		n:     n,
		bits:  b,
		deg:   make([]int, n),
		nbrs:  make([][]int, n),
		ids:   ids,
		index: index,
	}
}

// link records the undirected edge {i,j}; duplicates are ignored.
// Caller guarantees 0 <= i,j < n and i != j.
func (a *Adjacency) link(i, j int) {
	if a.bits.Has(i, j) {
		return
	}
	a.bits.Put(i, j)
	a.bits.Put(j, i)
	a.edges++
}

// finish derives neighbour lists, degrees and the maximum degree from bits.
func (a *Adjacency) finish() *Adjacency {
	for i := 0; i < a.n; i++ {
		nb := make([]int, 0, defaultNbReserve)
		for j := a.bits.NextInRow(i, 0); j >= 0; j = a.bits.NextInRow(i, j+1) {
			nb = append(nb, j)
		}
		a.nbrs[i] = nb
		a.deg[i] = len(nb)
		if a.deg[i] > a.maxDeg {
			a.maxDeg = a.deg[i]
		}
	}

	return a
}

// NewAdjacency builds the adjacency of g.
//
// Implementation:
//   - Stage 1: validate input graph (ErrGraphNil).
//   - Stage 2: snapshot vertices in natural order; index i ↔ Vertices()[i].
//   - Stage 3: link every edge of g.Edges().
//
// Complexity:
//   - Time O(V log V + E log E + V²/64), Space O(V²/64 + V + E).
func NewAdjacency(g *core.Graph) (*Adjacency, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", ctxNewAdjacency, ErrGraphNil)
	}

	a := newAdjacency(g.Vertices())
	for _, e := range g.Edges() {
		i, iok := a.index[e.From]
		j, jok := a.index[e.To]
		if !iok || !jok {
			// Edge added concurrently after the vertex snapshot.
			return nil, fmt.Errorf("%s: edge %s-%s: %w", ctxNewAdjacency, e.From, e.To, ErrUnknownVertex)
		}
		a.link(i, j)
	}

	return a.finish(), nil
}

// AdjacencyFromEdges builds an n-vertex adjacency from index pairs.
// Vertex IDs are the decimal strings "0".."n-1". Duplicate pairs (in either
// orientation) are merged.
//
// Errors:
//   - ErrBadShape if n < 0.
//   - ErrOutOfRange if an endpoint is outside [0,n).
//   - ErrNonZeroDiagonal for a self-loop.
func AdjacencyFromEdges(n int, edges [][2]int) (*Adjacency, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", ctxFromEdges, n, ErrBadShape)
	}

	a := newAdjacency(decimalIDs(n))
	for k, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("%s: edge %d (%d,%d): %w", ctxFromEdges, k, u, v, ErrOutOfRange)
		}
		if u == v {
			return nil, fmt.Errorf("%s: edge %d (%d,%d): %w", ctxFromEdges, k, u, v, ErrNonZeroDiagonal)
		}
		a.link(u, v)
	}

	return a.finish(), nil
}

// AdjacencyFromRows builds an adjacency from a dense boolean matrix.
// Vertex IDs are "0".."n-1".
//
// Errors:
//   - ErrNonSquare, ErrNonZeroDiagonal, ErrAsymmetry (see ValidateAdjacencyRows).
func AdjacencyFromRows(rows [][]bool) (*Adjacency, error) {
	if err := ValidateAdjacencyRows(rows); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}

	n := len(rows)
	a := newAdjacency(decimalIDs(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rows[i][j] {
				a.link(i, j)
			}
		}
	}

	return a.finish(), nil
}

// decimalIDs returns "0".."n-1".
func decimalIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = strconv.Itoa(i)
	}

	return ids
}

// Order returns the number of vertices n.
func (a *Adjacency) Order() int { return a.n }

// EdgeCount returns the number of undirected edges.
func (a *Adjacency) EdgeCount() int { return a.edges }

// Adjacent reports whether {i,j} is an edge. Out-of-range indices yield false.
func (a *Adjacency) Adjacent(i, j int) bool {
	if i < 0 || i >= a.n || j < 0 || j >= a.n {
		return false
	}

	return a.bits.Has(i, j)
}

// Degree returns the degree of vertex i, or 0 when i is out of range.
func (a *Adjacency) Degree(i int) int {
	if i < 0 || i >= a.n {
		return 0
	}

	return a.deg[i]
}

// MaxDegree returns the largest vertex degree (0 for edgeless graphs).
func (a *Adjacency) MaxDegree() int { return a.maxDeg }

// Degrees returns a copy of the degree vector.
func (a *Adjacency) Degrees() []int {
	out := make([]int, a.n)
	copy(out, a.deg)

	return out
}

// Neighbors returns the neighbours of i in increasing index order, or nil
// when i is out of range.
//
// The slice is shared with the adjacency and MUST NOT be modified; it is
// exposed without copying because the matcher reads it in its inner loops.
func (a *Adjacency) Neighbors(i int) []int {
	if i < 0 || i >= a.n {
		return nil
	}

	return a.nbrs[i]
}

// Bits returns a copy of the underlying boolean matrix.
func (a *Adjacency) Bits() *Bool { return a.bits.Clone() }

// IDs returns a copy of the vertex IDs in index order.
func (a *Adjacency) IDs() []string {
	out := make([]string, a.n)
	copy(out, a.ids)

	return out
}

// VertexID returns the vertex ID at index i.
//
// Errors:
//   - ErrOutOfRange if i is outside [0,n).
func (a *Adjacency) VertexID(i int) (string, error) {
	if i < 0 || i >= a.n {
		return "", fmt.Errorf("%s(%d): %w", ctxVertexID, i, ErrOutOfRange)
	}

	return a.ids[i], nil
}

// IndexOf returns the index of vertex id.
//
// Errors:
//   - ErrUnknownVertex if id is not indexed.
func (a *Adjacency) IndexOf(id string) (int, error) {
	i, ok := a.index[id]
	if !ok {
		return -1, fmt.Errorf("%s(%q): %w", ctxIndexOf, id, ErrUnknownVertex)
	}

	return i, nil
}
