// File: methods_adjacent.go
// Role: Neighborhood queries.
// Determinism:
//   - Neighbors and NeighborsWithLabels are sorted by neighbor ID ascending.

package core

import "sort"

// Neighbors returns the IDs adjacent to id, sorted ascending.
// Unknown nodes yield an empty (nil) slice.
// Complexity: O(d·log d).
func (g *Graph) Neighbors(id string) []string {
	g.mu.RLock()
	nbrs := g.adjacency[id]
	if len(nbrs) == 0 {
		g.mu.RUnlock()
		return nil
	}
	out := make([]string, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	g.mu.RUnlock()

	sort.Strings(out)

	return out
}

// NeighborsWithLabels returns (neighbor, polarity) pairs for id, sorted by
// neighbor ID. Unknown nodes yield an empty (nil) slice.
// Complexity: O(d·log d).
func (g *Graph) NeighborsWithLabels(id string) []Neighbor {
	g.mu.RLock()
	nbrs := g.adjacency[id]
	if len(nbrs) == 0 {
		g.mu.RUnlock()
		return nil
	}
	out := make([]Neighbor, 0, len(nbrs))
	for v, p := range nbrs {
		out = append(out, Neighbor{ID: v, Polarity: p})
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Degree returns the number of edges incident to id (0 for unknown nodes).
// Complexity: O(1).
func (g *Graph) Degree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}
