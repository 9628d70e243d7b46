// Package builder provides deterministic graph generators in the
// “functional-options” style, used to produce pattern and target graphs for
// subgraph matching: fixtures in tests, inputs in benchmarks, and files
// written by `ullman gen`.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(bopts, cons...): new graph, constructors applied in order.
//     – Apply(g, bopts, cons...):   grow an existing graph.
//     – ByName(kind, Params):       resolve a topology by name.
//   - Topologies (Constructor factories):
//     – Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid.
//     – RandomSparse (G(n,p)), RandomRegular (stub matching).
//   - Options (BuilderOption):
//     – WithSeed, WithRand:          RNG for stochastic builders.
//     – WithIDScheme:                vertex ID strategy (IDFn).
//     – WithPartitionPrefix:         bipartite side labels.
//   - Vertex-ID schemes (IDFn):
//     – DefaultIDFn, SymbolIDFn, ExcelColumnIDFn, HexIDFn, PrefixIDFn,
//     and IDSchemeByName for configuration files.
//
// Guarantees:
//
//   - Every generated graph is simple and undirected (core.Graph invariants).
//   - Same options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors return wrapped sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed,
//     ErrUnknownKind) and never panic.
package builder
