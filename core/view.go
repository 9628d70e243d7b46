// File: view.go
// Role: Non-mutating graph views.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.
package core

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph()

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for id := range g.vertices {
		if keep[id] {
			out.vertices[id] = struct{}{}
			out.adjacency[id] = make(map[string]struct{})
		}
	}

	for u := range out.vertices {
		for v := range g.adjacency[u] {
			if !keep[v] {
				continue
			}
			out.adjacency[u][v] = struct{}{}
			if NaturalLess(u, v) {
				out.edgeCount++
			}
		}
	}

	return out
}
