// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/EdgeLabel/Edges/EdgeCount/NegativeEdgeCount.
// Determinism:
//   - Edges() returns each undirected edge once with U < V, sorted by (U, V).
// Concurrency:
//   - AddEdge writes both adjacency directions under one write lock, so readers never
//     observe a half-written (asymmetric) edge.

package core

import "sort"

// AddEdge sets edge(u,v) = edge(v,u) = p, registering both endpoints first.
// A previous polarity for the same unordered pair is overwritten; no
// duplicate edge is ever created.
//
// Steps:
//  1. Validate IDs, polarity and u != v.
//  2. Lock mu; ensure both endpoints exist.
//  3. Adjust the negative-edge counter for the old and new polarity.
//  4. Write both directions.
//
// Errors:
//   - ErrEmptyNodeID, ErrBadPolarity, ErrLoopNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, p Polarity) error {
	// 1) Input validation
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}
	if !p.IsValid() {
		return ErrBadPolarity
	}
	if u == v {
		return ErrLoopNotAllowed
	}

	// 2) Register endpoints and write under a single lock
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(u)
	g.ensureNode(v)

	// 3) Keep the negative counter exact on overwrite
	if old, ok := g.adjacency[u][v]; ok && old == Negative {
		g.negatives--
	}
	if p == Negative {
		g.negatives++
	}

	// 4) Symmetric write
	g.adjacency[u][v] = p
	g.adjacency[v][u] = p

	return nil
}

// HasEdge reports whether u and v are adjacent. Unknown nodes yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.EdgeLabel(u, v)

	return ok
}

// EdgeLabel returns the polarity of edge {u,v}; ok is false when the edge
// (or either node) is absent.
// Complexity: O(1).
func (g *Graph) EdgeLabel(u, v string) (Polarity, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	p, ok := g.adjacency[u][v] // indexing a nil inner map is safe

	return p, ok
}

// Edges returns every undirected edge exactly once.
// The mirror entry is suppressed by keeping only the (U < V) orientation.
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCountLocked())
	for u, nbrs := range g.adjacency {
		for v, p := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v, Polarity: p})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// EdgeCount returns |E|, half the sum of adjacency sizes.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCountLocked()
}

func (g *Graph) edgeCountLocked() int {
	total := 0
	for _, nbrs := range g.adjacency {
		total += len(nbrs)
	}

	return total / 2
}

// NegativeEdgeCount returns the number of undirected Negative edges.
// Complexity: O(1).
func (g *Graph) NegativeEdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.negatives
}
