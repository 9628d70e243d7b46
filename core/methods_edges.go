// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns normalized edges sorted by (From, To) in natural order.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
package core

import "sort"

// AddEdge inserts the undirected edge {from, to}.
//
// Steps:
//  1. Validate IDs and reject self-loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject an existing edge, link both directions.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, dup := g.adjacency[from][to]; dup {
		return ErrMultiEdgeNotAllowed
	}
	g.adjacency[from][to] = struct{}{}
	g.adjacency[to][from] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the undirected edge {from, to}.
//
// Errors:
//   - ErrEdgeNotFound if the pair is not connected (including unknown vertices).
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.adjacency[from][to]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[from], to)
	delete(g.adjacency[to], from)
	g.edgeCount--

	return nil
}

// HasEdge reports whether {from, to} is an edge. Unknown IDs yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Edges returns every edge once, normalized (From before To in natural
// order) and sorted by (From, To).
//
// Complexity: O(E log E) time, O(E) space.
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for u, nbs := range g.adjacency {
		for v := range nbs {
			if NaturalLess(u, v) {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return NaturalLess(out[i].From, out[j].From)
		}
		return NaturalLess(out[i].To, out[j].To)
	})

	return out
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}
