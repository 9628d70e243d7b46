// File: methods_clone.go
// Role: Deep copies of graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.
package core

// Clone returns a deep copy of the Graph: vertices and adjacency.
// Mutating the clone never affects g and vice versa.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := NewGraph()
	for id := range g.vertices {
		out.vertices[id] = struct{}{}
		nbs := make(map[string]struct{}, len(g.adjacency[id]))
		for nb := range g.adjacency[id] {
			nbs[nb] = struct{}{}
		}
		out.adjacency[id] = nbs
	}
	out.edgeCount = g.edgeCount

	return out
}
