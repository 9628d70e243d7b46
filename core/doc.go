// Package core provides a small, thread-safe in-memory Graph used to describe
// pattern and target graphs before they are handed to the matcher.
//
// The Graph G = (V,E) is a simple undirected graph:
//
//   - Vertices are identified by non-empty strings.
//   - Edges are unordered pairs {u,v} with u != v (no self-loops).
//   - At most one edge per pair (no multi-edges).
//   - Constant-time edge queries via nested sets: adjacency[u][v] = struct{}{}.
//   - Separate sync.RWMutex for vertices (muVert) and adjacency (muEdgeAdj).
//
// Why so narrow?
//
//	The subgraph matcher assumes simple undirected graphs. Rejecting loops and
//	parallel edges at construction time turns a silent precondition of the
//	algorithm into an explicit error at the edge of the system.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1), idempotent
//	HasVertex(id string) bool           // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string) error      // O(1), creates missing endpoints
//	RemoveEdge(from, to string) error   // O(1)
//	HasEdge(from, to string) bool       // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error) // O(d·log d), natural order
//	Degree(id string) (int, error)           // O(1)
//	Vertices() []string                      // O(V·log V), natural order
//	Edges() []Edge                           // O(E·log E)
//	VertexCount(), EdgeCount() int           // O(1)
//
//	// Copies
//	Clone() *Graph                           // O(V+E)
//	InducedSubgraph(g, keep) *Graph          // O(V+E)
//
// Ordering:
//
//	Vertices() and NeighborIDs() use natural order: IDs that parse as base-10
//	integers come first in numeric order, everything else follows in
//	lexicographic order. Vertex index i in a matrix view is the i-th element of
//	Vertices(), so "0","1",...,"10" keep their numeric positions.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – parallel edge
package core
