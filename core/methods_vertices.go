// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "sort"

// AddNode inserts a node with an empty adjacency if missing (idempotent).
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(id)

	return nil
}

// ensureNode registers id with an empty adjacency bucket. Caller holds mu.
func (g *Graph) ensureNode(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]Polarity)
	}
}

// HasNode reports whether id is part of the node set.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// Nodes returns every node ID sorted ascending.
// The returned slice is a fresh copy owned by the caller.
// Complexity: O(V·log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// NodeCount returns |V|.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// IsComplete reports whether every pair of distinct nodes is adjacent.
// Graphs with fewer than two nodes are complete.
//
// Without loops and multi-edges, completeness is equivalent to every node
// having degree |V|-1, which avoids the O(V²) pair scan.
// Complexity: O(V).
func (g *Graph) IsComplete() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	want := len(g.adjacency) - 1
	for _, nbrs := range g.adjacency {
		if len(nbrs) != want {
			return false
		}
	}

	return true
}
