// Package ullman is an in-memory toolkit for subgraph isomorphism: does a
// small pattern graph occur inside a larger target graph, and where?
//
// What is in the box?
//
//	A thread-safe graph core plus Ullman's matcher and the tooling around it:
//		• core/     – undirected simple graphs with string vertex IDs
//		• matrix/   – bitset boolean matrices and dense adjacency views
//		• ullman/   – compatibility matrix, refinement, backtracking search
//		• builder/  – deterministic generators (path, cycle, star, grid, random…)
//		• cmd/ullman/ – command line: match graph files, generate graphs
//
// Quick example, a triangle inside a house:
//
//	pattern      target
//	   a         1───2
//	  / \        │   │
//	 b───c       4───3
//	              ╲ ╱
//	               5
//
//	p, _ := builder.BuildGraph(nil, builder.Cycle(3))
//	res, _ := ullman.MatchGraphs(p, target)
//	fmt.Println(res.Found, res.Mapping)
//
// Matching is non-induced by default: every pattern edge must land on a
// target edge. ullman.WithInduced() also requires pattern non-edges to land
// on target non-edges.
//
//	go get github.com/katalvlaran/ullman
package ullman
