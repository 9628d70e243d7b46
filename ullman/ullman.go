// File: ullman.go
// Role: Public entry points of the matcher.
//
// Flow of Match:
//  1. Validate inputs; a pattern larger than the target is rejected at once.
//  2. Build the degree-filtered compatibility matrix and refine it.
//  3. If refinement leaves an empty row, report no mapping.
//  4. Otherwise run the backtracking search with forward checking.
package ullman

import (
	"fmt"

	"github.com/katalvlaran/ullman/core"
	"github.com/katalvlaran/ullman/matrix"
)

// Match searches for mappings of pattern p into target t.
//
// The returned Result is non-nil whenever the inputs are valid, also when the
// search ends with an error (state limit or context), in which case it carries
// the mappings and statistics gathered so far.
//
// Errors:
//   - ErrNilGraph if p or t is nil.
//   - ErrStateLimit (wrapped) when WithMaxStates is exceeded.
//   - ctx.Err() unwrapped on cancellation or deadline.
//
// Complexity: exponential in the worst case; refinement costs
// O(n1·n2·Δ1·Δ2) per pass.
func Match(p, t *matrix.Adjacency, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if p == nil || t == nil {
		return nil, fmt.Errorf("Match: %w", ErrNilGraph)
	}

	res := &Result{}
	n1, n2 := p.Order(), t.Order()
	log := o.Logger.With("pattern", n1, "target", n2, "induced", o.Induced)

	// A larger pattern can never be injected.
	if n1 > n2 {
		res.Stats.Complete = true
		log.Debug("ullman: pattern larger than target")

		return res, nil
	}

	c, err := BuildCompat(p, t)
	if err != nil {
		return nil, fmt.Errorf("Match: %w", err)
	}
	passes, ok := refine(c.m, p, t)
	res.Stats.Passes = passes
	res.Stats.Candidates = c.m.Count()
	log.Debug("ullman: refined", "passes", passes, "candidates", res.Stats.Candidates, "feasible", ok)
	if !ok {
		res.Stats.Complete = true

		return res, nil
	}

	s := newSearcher(p, t, c.m, o, res)
	if err = s.descend(0); err != nil {
		log.Debug("ullman: search stopped", "states", res.Stats.States, "matches", res.Stats.Matches, "err", err)

		return res, err
	}
	res.Stats.Complete = true
	log.Debug("ullman: search done",
		"found", res.Found,
		"matches", res.Stats.Matches,
		"states", res.Stats.States,
		"pruned", res.Stats.Pruned,
		"passes", res.Stats.Passes,
	)

	return res, nil
}

// IsSubgraphIsomorphic reports whether p is isomorphic to a subgraph of t.
// The search stops at the first mapping regardless of WithMaxMatches.
func IsSubgraphIsomorphic(p, t *matrix.Adjacency, opts ...Option) (bool, error) {
	res, err := Match(p, t, append(opts[:len(opts):len(opts)], WithMaxMatches(1))...)
	if err != nil {
		return false, err
	}

	return res.Found, nil
}

// FindMapping returns the first mapping in search order and whether one exists.
func FindMapping(p, t *matrix.Adjacency, opts ...Option) (Mapping, bool, error) {
	res, err := Match(p, t, append(opts[:len(opts):len(opts)], WithMaxMatches(1))...)
	if err != nil {
		return nil, false, err
	}

	return res.Mapping, res.Found, nil
}

// FindAll enumerates mappings in search order. It is unlimited by default;
// pass WithMaxMatches(n) to cap the number collected.
func FindAll(p, t *matrix.Adjacency, opts ...Option) ([]Mapping, error) {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithMaxMatches(0))
	all = append(all, opts...)
	res, err := Match(p, t, all...)
	if err != nil {
		return nil, err
	}

	return res.Matches, nil
}

// GraphResult is Result expressed in vertex IDs of core graphs.
type GraphResult struct {
	Found   bool
	Mapping map[string]string   // pattern ID -> target ID
	Matches []map[string]string // every recorded mapping, in search order
	Stats   Stats
}

// MatchGraphs runs Match on two core graphs and translates mappings to
// vertex IDs. Vertex indices follow core.Graph.Vertices order.
func MatchGraphs(p, t *core.Graph, opts ...Option) (*GraphResult, error) {
	if p == nil || t == nil {
		return nil, fmt.Errorf("MatchGraphs: %w", ErrNilGraph)
	}
	pa, err := matrix.NewAdjacency(p)
	if err != nil {
		return nil, fmt.Errorf("MatchGraphs: pattern: %w", err)
	}
	ta, err := matrix.NewAdjacency(t)
	if err != nil {
		return nil, fmt.Errorf("MatchGraphs: target: %w", err)
	}

	res, err := Match(pa, ta, opts...)
	if res == nil {
		return nil, err
	}

	pids, tids := pa.IDs(), ta.IDs()
	out := &GraphResult{Found: res.Found, Stats: res.Stats}
	for _, m := range res.Matches {
		named := make(map[string]string, len(m))
		for u, v := range m {
			named[pids[u]] = tids[v]
		}
		out.Matches = append(out.Matches, named)
	}
	if res.Found {
		out.Mapping = out.Matches[0]
	}

	return out, err
}

// VerifyMapping checks that m is an injective map from the vertices of p into
// the vertices of t that preserves every pattern edge; with induced it must
// also preserve every pattern non-edge.
//
// Errors:
//   - ErrNilGraph if p or t is nil.
//   - ErrInvalidMapping (wrapped with the offending vertices) otherwise.
func VerifyMapping(p, t *matrix.Adjacency, m Mapping, induced bool) error {
	if p == nil || t == nil {
		return fmt.Errorf("VerifyMapping: %w", ErrNilGraph)
	}
	if len(m) != p.Order() {
		return fmt.Errorf("VerifyMapping: length %d, pattern order %d: %w", len(m), p.Order(), ErrInvalidMapping)
	}

	seen := make(map[int]int, len(m))
	for u, v := range m {
		if v < 0 || v >= t.Order() {
			return fmt.Errorf("VerifyMapping: %d->%d out of range: %w", u, v, ErrInvalidMapping)
		}
		if prev, dup := seen[v]; dup {
			return fmt.Errorf("VerifyMapping: %d and %d both map to %d: %w", prev, u, v, ErrInvalidMapping)
		}
		seen[v] = u
	}

	for u := 0; u < len(m); u++ {
		for w := u + 1; w < len(m); w++ {
			pe, te := p.Adjacent(u, w), t.Adjacent(m[u], m[w])
			if pe && !te {
				return fmt.Errorf("VerifyMapping: edge %d-%d lost: %w", u, w, ErrInvalidMapping)
			}
			if induced && !pe && te {
				return fmt.Errorf("VerifyMapping: non-edge %d-%d mapped to an edge: %w", u, w, ErrInvalidMapping)
			}
		}
	}

	return nil
}
