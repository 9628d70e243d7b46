// Package core defines the Graph and Edge types and the sentinel errors
// shared by every graph operation.
//
// All Graph methods are safe for concurrent use. Locks are always taken in
// the order muVert -> muEdgeAdj.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected edge {From, To}. Edges returned by the Graph are
// normalized so that From precedes To in natural vertex order.
type Edge struct {
	From string
	To   string
}

// Graph is an undirected simple graph keyed by string vertex IDs.
//
// muVert protects vertices; muEdgeAdj protects adjacency and edgeCount.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards adjacency and edgeCount

	vertices map[string]struct{}

	// adjacency[u][v] exists iff {u,v} is an edge; both directions are stored.
	adjacency map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]struct{}),
	}
}
