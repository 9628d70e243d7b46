// Package ullman defines types and options for Ullman subgraph matching,
// including cancellation, induced matching, match and state limits, a
// streaming match hook and search diagnostics.
package ullman

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Unassigned marks a pattern vertex without an image in a partial mapping.
const Unassigned = -1

var (
	// ErrNilGraph is returned when a nil pattern or target is passed.
	ErrNilGraph = errors.New("ullman: graph is nil")

	// ErrStateLimit indicates the search was stopped by WithMaxStates before it
	// reached a definitive answer.
	ErrStateLimit = errors.New("ullman: state limit exceeded")

	// ErrInvalidMapping indicates that a mapping is not an injective,
	// adjacency-preserving map from pattern to target.
	ErrInvalidMapping = errors.New("ullman: invalid mapping")
)

// Mapping is a witness: Mapping[u] is the target vertex index assigned to
// pattern vertex u.
type Mapping []int

// Clone returns an independent copy of m.
func (m Mapping) Clone() Mapping {
	if m == nil {
		return nil
	}
	out := make(Mapping, len(m))
	copy(out, m)

	return out
}

// String renders m as "0->2 1->3 ...".
func (m Mapping) String() string {
	parts := make([]string, len(m))
	for u, v := range m {
		parts[u] = fmt.Sprintf("%d->%d", u, v)
	}

	return strings.Join(parts, " ")
}

// Stats reports search diagnostics.
type Stats struct {
	// Candidates is the number of true cells of the compatibility matrix after
	// the initial refinement.
	Candidates int

	// States counts tentative assignments (search-tree nodes tried).
	States int

	// Pruned counts tentative assignments rejected by the edge-consistency
	// check or by forward checking.
	Pruned int

	// Passes is the total number of refinement passes, root and per branch.
	Passes int

	// Matches is the number of complete mappings found.
	Matches int

	// MaxDepth is the deepest level reached (number of assigned vertices).
	MaxDepth int

	// Complete is true when the answer is definitive: the search space was
	// exhausted or the search was stopped by the match limit or the hook.
	// It is false after a state limit or a context error.
	Complete bool
}

// Result captures the outcome of a match.
type Result struct {
	// Found reports whether at least one mapping exists (was found).
	Found bool

	// Mapping is the first mapping found in search order, nil when !Found.
	Mapping Mapping

	// Matches holds every recorded mapping in search order (at most MaxMatches
	// when that limit is positive).
	Matches []Mapping

	// Stats holds search diagnostics.
	Stats Stats
}

// Option configures optional behavior of the matcher.
// Use with Match(p, t, opts...).
type Option func(*Options)

// Options holds configurable parameters for a match.
type Options struct {
	// Ctx allows cancellation or timeouts; checked at every search descent.
	// Defaults to context.Background().
	Ctx context.Context

	// Induced switches edge preservation to equality: two pattern vertices are
	// adjacent iff their images are. Default false (plain subgraph matching).
	Induced bool

	// MaxMatches stops the search once this many mappings were found.
	// 0 means unlimited. Default 1 (first witness only).
	MaxMatches int

	// MaxStates aborts the search with ErrStateLimit after this many tentative
	// assignments. 0 means unlimited (default).
	MaxStates int

	// OnMatch, if non-nil, is invoked for every mapping found, in search order.
	// The mapping is a private copy. Returning false stops the search.
	OnMatch func(m Mapping) bool

	// Logger receives debug records (sizes, refinement summary, outcome).
	// Defaults to a logger that discards everything.
	Logger *slog.Logger
}

// discardLogger is the default Logger.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// DefaultOptions returns Options with:
//   - Background context
//   - plain (non-induced) matching
//   - MaxMatches = 1, no state limit
//   - no hook, discarding logger
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Induced:    false,
		MaxMatches: 1,
		MaxStates:  0,
		OnMatch:    nil,
		Logger:     discardLogger,
	}
}

// WithContext sets the Context used for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithInduced enables induced-subgraph matching.
func WithInduced() Option {
	return func(o *Options) {
		o.Induced = true
	}
}

// WithMaxMatches limits the number of mappings to collect; 0 means unlimited.
// Panics if n < 0.
func WithMaxMatches(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("ullman: WithMaxMatches(%d): negative limit", n))
	}
	return func(o *Options) {
		o.MaxMatches = n
	}
}

// WithMaxStates bounds the number of tentative assignments; 0 means unlimited.
// Panics if n < 0.
func WithMaxStates(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("ullman: WithMaxStates(%d): negative limit", n))
	}
	return func(o *Options) {
		o.MaxStates = n
	}
}

// WithOnMatch installs fn as the match hook.
func WithOnMatch(fn func(m Mapping) bool) Option {
	return func(o *Options) {
		o.OnMatch = fn
	}
}

// WithLogger routes debug records to l. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
