// Package ullman decides subgraph isomorphism between a pattern graph P and a
// target graph T with Ullman's algorithm: an injective map f from the
// vertices of P into the vertices of T such that every edge {u,w} of P maps
// to an edge {f(u),f(w)} of T.
//
// What:
//
//   - Compatibility matrix M (n1×n2): M[u][v] says pattern vertex u may still
//     map to target vertex v. Built from degrees (deg(u) <= deg(v)) and
//     refined to a fixpoint: (u,v) is cleared when some neighbour of u has no
//     candidate among the neighbours of v.
//   - Backtracking search: pattern vertices are assigned in index order,
//     candidates in increasing target order. Each tentative k->v is checked
//     against every earlier assignment, then forward-checked on a private
//     copy of M (row k fixed, column v removed, edge constraints applied,
//     refined again). An empty row prunes the branch.
//   - Induced mode (WithInduced): non-edges must map to non-edges as well.
//
// Why:
//   - Motif and pattern search in networks, chemistry and circuits
//   - Exhaustive enumeration of embeddings for small patterns
//   - A reference matcher whose witnesses can be checked independently
//
// Key Types:
//
//   - Compat: the compatibility matrix, exposed for inspection
//   - Mapping: witness, Mapping[u] = image of pattern vertex u
//   - Result/GraphResult: outcome, all recorded mappings and Stats
//   - Option: functional options (WithContext, WithInduced, WithMaxMatches,
//     WithMaxStates, WithOnMatch, WithLogger)
//
// Complexity:
//
//   - Build:   O(n1·n2)
//   - Refine:  O(n1·n2·Δ1·Δ2) per pass, at most n1·n2 passes
//   - Search:  exponential in the worst case; memory O(n1·n1·n2/64) words
//     for the per-depth matrix frames
//
// Errors:
//
//   - ErrNilGraph        pattern or target is nil
//   - ErrStateLimit      WithMaxStates budget exhausted
//   - ErrInvalidMapping  VerifyMapping rejected a witness
//   - context.Canceled / context.DeadlineExceeded, unwrapped
//
// Functions:
//
//   - Match(p, t *matrix.Adjacency, opts ...Option) (*Result, error)
//   - IsSubgraphIsomorphic(p, t, opts...) (bool, error)
//   - FindMapping(p, t, opts...) (Mapping, bool, error)
//   - FindAll(p, t, opts...) ([]Mapping, error)
//   - MatchGraphs(p, t *core.Graph, opts...) (*GraphResult, error)
//   - VerifyMapping(p, t, m, induced) error
//   - BuildCompat(p, t) (*Compat, error)
//
// An empty pattern is trivially embedded (the empty mapping); a pattern with
// more vertices than the target never is.
package ullman
