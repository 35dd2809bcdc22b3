// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, Neighbor, GraphOption, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - mu guards nodes and adjacency; mutations take the write lock, queries the read lock.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node identifier is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrBadPolarity indicates a polarity other than Positive or Negative.
	ErrBadPolarity = errors.New("core: invalid polarity")

	// ErrLoopNotAllowed indicates a self-edge (u == v) was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is one undirected signed edge as reported by Graph.Edges.
// Edges() always reports U < V.
type Edge struct {
	// U is the smaller endpoint identifier.
	U string

	// V is the larger endpoint identifier.
	V string

	// Polarity is the sign of the relation between U and V.
	Polarity Polarity
}

// Neighbor pairs an adjacent node with the polarity of the connecting edge.
type Neighbor struct {
	ID       string
	Polarity Polarity
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the node map for n nodes.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.adjacency = make(map[string]map[string]Polarity, n)
		}
	}
}

// Graph is a signed undirected graph without multi-edges or self-loops.
//
// adjacency[u][v] holds the polarity of edge {u,v}; every node has a
// (possibly empty) inner map, so the key set of adjacency is the node set.
type Graph struct {
	mu sync.RWMutex // guards adjacency and negatives

	// adjacency[u][v] = polarity; symmetric by construction.
	adjacency map[string]map[string]Polarity

	// negatives counts undirected negative edges, kept in step with adjacency.
	negatives int
}

// NewGraph creates an empty signed Graph.
// Complexity: O(1), or O(n) with WithCapacity(n).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.adjacency == nil {
		g.adjacency = make(map[string]map[string]Polarity)
	}

	return g
}
