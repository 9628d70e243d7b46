// File: search.go
// Role: Backtracking search over the refined compatibility matrix.
//
// Search order:
//   - Pattern vertices are assigned in index order 0..n1-1.
//   - Candidates at each depth are tried in increasing target index.
//   - The first mapping found in this order is the witness.
//
// Memory:
//   - frames[k] is the matrix in force while assigning pattern vertex k.
//     Descending copies frames[k] into frames[k+1] and forward-checks the
//     copy, so a branch never writes into an ancestor's matrix. The frames
//     are allocated once per invocation and reused by sibling branches.
package ullman

import (
	"fmt"

	"github.com/katalvlaran/ullman/matrix"
)

// searcher encapsulates state during one matching invocation.
type searcher struct {
	p, t   *matrix.Adjacency
	opts   Options
	frames []*matrix.Bool // frames[0] = refined root matrix
	assign Mapping        // assign[u] = image of u, or Unassigned
	used   []bool         // used[v] = v is the image of some assigned vertex
	res    *Result
	stop   bool // set by the match limit or the hook
}

// newSearcher allocates the frame arena for root.
func newSearcher(p, t *matrix.Adjacency, root *matrix.Bool, opts Options, res *Result) *searcher {
	n1 := p.Order()
	frames := make([]*matrix.Bool, n1+1)
	frames[0] = root
	for k := 1; k <= n1; k++ {
		frames[k] = root.Clone()
	}
	assign := make(Mapping, n1)
	for u := range assign {
		assign[u] = Unassigned
	}

	return &searcher{
		p:      p,
		t:      t,
		opts:   opts,
		frames: frames,
		assign: assign,
		used:   make([]bool, t.Order()),
		res:    res,
	}
}

// descend tries every candidate for pattern vertex k and recurses.
// It honors context cancellation, the state limit, the match limit and the hook.
func (s *searcher) descend(k int) error {
	// 1. Cancellation check
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
	}

	if k > s.res.Stats.MaxDepth {
		s.res.Stats.MaxDepth = k
	}

	// 2. Complete mapping
	if k == s.p.Order() {
		s.record()
		return nil
	}

	cur, next := s.frames[k], s.frames[k+1]

	// 3. Candidates in increasing target order
	for v := cur.NextInRow(k, 0); v >= 0; v = cur.NextInRow(k, v+1) {
		if s.used[v] {
			continue
		}

		s.res.Stats.States++
		if s.opts.MaxStates > 0 && s.res.Stats.States > s.opts.MaxStates {
			return fmt.Errorf("ullman: after %d states: %w", s.opts.MaxStates, ErrStateLimit)
		}

		// 3a. Edge consistency against every assigned vertex j < k
		if !s.consistent(k, v) {
			s.res.Stats.Pruned++
			continue
		}

		// 3b. Forward checking on a private copy
		if err := next.CopyFrom(cur); err != nil {
			return fmt.Errorf("ullman: depth %d: %w", k, err)
		}
		passes, ok := forwardCheck(next, s.p, s.t, k, v, s.opts.Induced)
		s.res.Stats.Passes += passes
		if !ok {
			s.res.Stats.Pruned++
			continue
		}

		// 3c. Recurse; the assignment is discarded on return
		s.assign[k], s.used[v] = v, true
		err := s.descend(k + 1)
		s.assign[k], s.used[v] = Unassigned, false
		if err != nil || s.stop {
			return err
		}
	}

	return nil
}

// consistent reports whether k->v preserves adjacency with every assigned j < k.
// Plain mode: a pattern edge must map to a target edge. Induced mode: both
// graphs must agree on the pair.
func (s *searcher) consistent(k, v int) bool {
	for j := 0; j < k; j++ {
		pe := s.p.Adjacent(k, j)
		te := s.t.Adjacent(v, s.assign[j])
		if pe && !te {
			return false
		}
		if s.opts.Induced && !pe && te {
			return false
		}
	}

	return true
}

// record stores a copy of the complete assignment and applies the match
// limit and the hook.
func (s *searcher) record() {
	m := s.assign.Clone()
	s.res.Stats.Matches++
	s.res.Matches = append(s.res.Matches, m)
	if !s.res.Found {
		s.res.Mapping = m
		s.res.Found = true
	}

	if s.opts.OnMatch != nil && !s.opts.OnMatch(m.Clone()) {
		s.stop = true
	}
	if s.opts.MaxMatches > 0 && s.res.Stats.Matches >= s.opts.MaxMatches {
		s.stop = true
	}
}
