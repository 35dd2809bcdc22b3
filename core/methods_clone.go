// File: methods_clone.go
// Role: Deep copy of a Graph.
// Concurrency:
//   - Read lock on the source for the whole snapshot; the clone shares no maps with it.

package core

// Clone returns a deep copy of the Graph: nodes, adjacency and counters.
// Mutating the clone never affects g and vice versa.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.adjacency)))
	for u, nbrs := range g.adjacency {
		inner := make(map[string]Polarity, len(nbrs))
		for v, p := range nbrs {
			inner[v] = p
		}
		clone.adjacency[u] = inner
	}
	clone.negatives = g.negatives

	return clone
}
