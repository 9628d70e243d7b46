// File: builder_impl_test.go
// Functional tests for every Constructor: counts, sample edges, determinism
// and error sentinels.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ullman/builder"
	"github.com/katalvlaran/ullman/core"
)

// degrees returns the degree of every vertex of g.
func degrees(t *testing.T, g *core.Graph) map[string]int {
	t.Helper()
	out := make(map[string]int, g.VertexCount())
	for _, id := range g.Vertices() {
		d, err := g.Degree(id)
		require.NoError(t, err)
		out[id] = d
	}

	return out
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("4", "0"), "closing edge")
				for _, d := range degrees(t, g) {
					assert.Equal(t, 2, d)
				}
			},
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []core.Edge{{From: "0", To: "1"}, {From: "1", To: "2"}, {From: "2", To: "3"}}, g.Edges())
			},
		},
		{
			name:  "Star(4)",
			ctor:  builder.Star(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, leaf := range []string{"1", "2", "3"} {
					assert.True(t, g.HasEdge("Center", leaf))
				}
				assert.Equal(t, 3, degrees(t, g)["Center"])
			},
		},
		{
			name:  "Wheel(5)",
			ctor:  builder.Wheel(5),
			wantV: 5, wantE: 8, // C_4 + 4 spokes
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("0", "1"))
				assert.True(t, g.HasEdge("3", "0"))
				assert.True(t, g.HasEdge("Center", "2"))
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, d := range degrees(t, g) {
					assert.Equal(t, 3, d)
				}
			},
		},
		{
			name:  "Complete(1)",
			ctor:  builder.Complete(1),
			wantV: 1, wantE: 0,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasVertex("0"))
			},
		},
		{
			name:  "CompleteBipartite(2,3)",
			ctor:  builder.CompleteBipartite(2, 3),
			wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("L0", "R0"))
				assert.True(t, g.HasEdge("L1", "R2"))
				assert.False(t, g.HasEdge("L0", "L1"))
			},
		},
		{
			name:  "Grid(2x3)",
			ctor:  builder.Grid(2, 3),
			wantV: 6, wantE: 7, // 2·2 horizontal + 1·3 vertical
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("0,0", "0,1"))
				assert.True(t, g.HasEdge("0,0", "1,0"))
				assert.False(t, g.HasEdge("0,0", "1,1"))
			},
		},
		{
			name:  "RandomSparse_p0(5)",
			ctor:  builder.RandomSparse(5, 0.0),
			wantV: 5, wantE: 0,
			sampleCheck: func(t *testing.T, g *core.Graph) {},
		},
		{
			name:  "RandomSparse_p1(5)",
			ctor:  builder.RandomSparse(5, 1.0),
			wantV: 5, wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			tc.sampleCheck(t, g)

			// rebuilding yields the same graph
			g2, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, g.Edges(), g2.Edges())
			assert.Equal(t, g.Vertices(), g2.Vertices())
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", builder.CompleteBipartite(0, 2), nil, builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, 0.5), nil, builder.ErrTooFewVertices},
		{"RandomSparse(5,1.5)", builder.RandomSparse(5, 1.5), nil, builder.ErrInvalidProbability},
		{"RandomSparse(5,-0.1)", builder.RandomSparse(5, -0.1), nil, builder.ErrInvalidProbability},
		{"RandomSparse_noRNG", builder.RandomSparse(5, 0.5), nil, builder.ErrNeedRandSource},
		{"RandomRegular(5,3)_parity", builder.RandomRegular(5, 3), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"RandomRegular(4,4)", builder.RandomRegular(4, 4), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"RandomRegular_noRNG", builder.RandomRegular(6, 2), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomSparse_SeedDeterminism(t *testing.T) {
	build := func(seed int64) []core.Edge {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return g.Edges()
	}

	assert.Equal(t, build(7), build(7))
	assert.NotEqual(t, build(7), build(8))
}

func TestRandomRegular_Degrees(t *testing.T) {
	for _, tc := range []struct{ n, d int }{{10, 3}, {12, 2}, {8, 0}, {16, 4}} {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(3)}, builder.RandomRegular(tc.n, tc.d))
		require.NoError(t, err, "n=%d d=%d", tc.n, tc.d)
		assert.Equal(t, tc.n, g.VertexCount())
		assert.Equal(t, tc.n*tc.d/2, g.EdgeCount())
		for id, deg := range degrees(t, g) {
			assert.Equal(t, tc.d, deg, "vertex %s", id)
		}
	}
}

// Constructors compose over shared IDs without duplicating edges.
func TestBuildGraph_Compose(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(5), builder.Star(5), builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 9, g.EdgeCount()) // Path(3) edges already belong to the cycle
}

func TestApply(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("0", "x"))
	require.NoError(t, builder.Apply(g, nil, builder.Path(3)))
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(3)), builder.ErrConstructFailed)
	assert.ErrorIs(t, builder.Apply(g, nil, builder.Path(0)), builder.ErrTooFewVertices)
}

func TestOptions_IDSchemeAndPrefix(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn)}, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithPartitionPrefix("u", "")}, builder.CompleteBipartite(1, 1))
	require.NoError(t, err)
	assert.True(t, g.HasEdge("u0", "R0"))
}

func TestByName(t *testing.T) {
	assert.Equal(t,
		[]string{"bipartite", "complete", "cycle", "grid", "path", "random", "regular", "star", "wheel"},
		builder.Kinds())

	tests := []struct {
		kind         string
		prm          builder.Params
		wantV, wantE int
	}{
		{"path", builder.Params{N: 4}, 4, 3},
		{"cycle", builder.Params{N: 4}, 4, 4},
		{"star", builder.Params{N: 4}, 4, 3},
		{"wheel", builder.Params{N: 5}, 5, 8},
		{"complete", builder.Params{N: 4}, 4, 6},
		{"bipartite", builder.Params{N: 2, M: 3}, 5, 6},
		{"grid", builder.Params{N: 3, M: 3}, 9, 12},
		{"random", builder.Params{N: 6, P: 1}, 6, 15},
		{"regular", builder.Params{N: 6, M: 2}, 6, 6},
	}
	for _, tc := range tests {
		ctor, err := builder.ByName(tc.kind, tc.prm)
		require.NoError(t, err, tc.kind)
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, ctor)
		require.NoError(t, err, tc.kind)
		assert.Equal(t, tc.wantV, g.VertexCount(), tc.kind)
		assert.Equal(t, tc.wantE, g.EdgeCount(), tc.kind)
	}

	_, err := builder.ByName("hexagon", builder.Params{N: 6})
	assert.ErrorIs(t, err, builder.ErrUnknownKind)
}
