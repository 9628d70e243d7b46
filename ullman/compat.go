// File: compat.go
// Role: Compatibility matrix M (pattern × target): degree-based build,
//       fixpoint refinement and the forward-checking step of the search.
//
// Invariant:
//   - Every mapping that extends the current partial assignment uses only
//     pairs (u,v) with M[u][v] == true. Build, refine and forwardCheck only
//     clear cells that no such mapping can use, so pruning never loses a
//     solution.
//   - Cells are never set back to true; refinement is monotone and stops.
package ullman

import (
	"fmt"

	"github.com/katalvlaran/ullman/matrix"
)

// Compat is a compatibility matrix between a pattern and a target.
// Compat[u][v] == true means pattern vertex u may map to target vertex v.
type Compat struct {
	m    *matrix.Bool
	p, t *matrix.Adjacency
}

// BuildCompat returns the degree-filtered matrix M[u][v] = deg(u) <= deg(v).
//
// Errors:
//   - ErrNilGraph if p or t is nil.
//
// Complexity: O(n1·n2).
func BuildCompat(p, t *matrix.Adjacency) (*Compat, error) {
	if p == nil || t == nil {
		return nil, fmt.Errorf("BuildCompat: %w", ErrNilGraph)
	}

	m, err := matrix.NewBool(p.Order(), t.Order())
	if err != nil {
		return nil, fmt.Errorf("BuildCompat: %w", err)
	}
	for u := 0; u < p.Order(); u++ {
		du := p.Degree(u)
		for v := 0; v < t.Order(); v++ {
			if du <= t.Degree(v) {
				m.Put(u, v)
			}
		}
	}

	return &Compat{m: m, p: p, t: t}, nil
}

// Refine runs neighbourhood refinement to a fixpoint and returns the number
// of passes performed. It may stop early once some row is empty, because the
// matrix is then already known to admit no mapping.
func (c *Compat) Refine() int {
	passes, _ := refine(c.m, c.p, c.t)

	return passes
}

// Feasible reports whether every pattern vertex still has a candidate.
func (c *Compat) Feasible() bool {
	return c.m.FirstEmptyRow() < 0
}

// Allowed reports M[u][v]; out-of-range indices yield false.
func (c *Compat) Allowed(u, v int) bool {
	ok, err := c.m.At(u, v)

	return err == nil && ok
}

// Candidates returns the target vertices u may still map to, ascending.
func (c *Compat) Candidates(u int) []int {
	if u < 0 || u >= c.m.Rows() {
		return nil
	}

	return c.m.RowIndices(u)
}

// Count returns the number of true cells.
func (c *Compat) Count() int { return c.m.Count() }

// Matrix returns a copy of the underlying boolean matrix.
func (c *Compat) Matrix() *matrix.Bool { return c.m.Clone() }

// String renders M as rows of 0/1.
func (c *Compat) String() string { return c.m.String() }

// refine clears M[u][v] whenever some neighbour w of u has no candidate among
// the neighbours of v, repeating full passes until nothing changes.
//
// Returns the number of passes and false as soon as a row is found empty
// (the current branch admits no mapping).
//
// Complexity: O(n1·n2·Δ1·Δ2) per pass, at most n1·n2 passes.
func refine(m *matrix.Bool, p, t *matrix.Adjacency) (passes int, ok bool) {
	n1 := p.Order()
	for {
		passes++
		changed := false
		for u := 0; u < n1; u++ {
			for v := m.NextInRow(u, 0); v >= 0; v = m.NextInRow(u, v+1) {
				if !supported(m, p.Neighbors(u), t.Neighbors(v)) {
					m.Drop(u, v)
					changed = true
				}
			}
			if m.RowEmpty(u) {
				return passes, false
			}
		}
		if !changed {
			return passes, true
		}
	}
}

// supported reports whether every pattern neighbour w has some candidate w'
// among the target neighbours.
func supported(m *matrix.Bool, patternNbrs, targetNbrs []int) bool {
	for _, w := range patternNbrs {
		found := false
		for _, x := range targetNbrs {
			if m.Has(w, x) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// forwardCheck commits k->v on m (a private copy owned by the caller) and
// prunes what the commitment rules out:
//
//  1. Row k keeps only v; column v is removed from every other row.
//  2. For every later pattern vertex w and candidate x, drop (w,x) when the
//     pair would break the edge between k and w: a pattern edge k–w needs a
//     target edge v–x; in induced mode a non-edge also needs a non-edge.
//  3. Re-run refine on the reduced matrix.
//
// Returns the refinement passes and false when some row becomes empty.
func forwardCheck(m *matrix.Bool, p, t *matrix.Adjacency, k, v int, induced bool) (passes int, ok bool) {
	m.ClearRow(k)
	m.ClearCol(v)
	m.Put(k, v)

	for w := k + 1; w < p.Order(); w++ {
		edge := p.Adjacent(k, w)
		if !edge && !induced {
			// plain matching places no constraint on pattern non-edges
			continue
		}
		for x := m.NextInRow(w, 0); x >= 0; x = m.NextInRow(w, x+1) {
			if t.Adjacent(v, x) != edge {
				m.Drop(w, x)
			}
		}
		if m.RowEmpty(w) {
			return 0, false
		}
	}

	return refine(m, p, t)
}
