// Package core provides the signed undirected Graph that every balance
// checker in lvbalance reads.
//
// A signed graph G = (V, E, σ) attaches a polarity σ(e) ∈ {+, −} to every
// undirected edge, modelling "friend"/"foe" relations. The Graph keeps:
//
//   - a node set of non-empty string identifiers,
//   - a symmetric adjacency: adjacency[u][v] == adjacency[v][u] == polarity,
//     always written in both directions under one lock,
//   - at most one polarity per unordered pair; re-adding an edge overwrites
//     the previous polarity (last write wins).
//
// Why use core.Graph?
//
//   - Deterministic iteration - Nodes(), Edges(), Neighbors() and
//     NeighborsWithLabels() all return results sorted by identifier.
//   - Total queries - lookups on unknown nodes return empty/absent results,
//     never errors.
//   - Thread-safe - a single sync.RWMutex guards nodes and adjacency, so
//     many checkers may read one graph concurrently.
//
// Core Methods:
//
//	// Construction
//	NewGraph(opts ...GraphOption) *Graph
//	AddNode(id string) error                  // O(1), idempotent
//	AddEdge(u, v string, p Polarity) error    // O(1), symmetric, overwrites
//
//	// Queries
//	HasNode(id string) bool                   // O(1)
//	HasEdge(u, v string) bool                 // O(1)
//	EdgeLabel(u, v string) (Polarity, bool)   // O(1)
//	Neighbors(id string) []string             // O(d·log d)
//	NeighborsWithLabels(id string) []Neighbor // O(d·log d)
//	Nodes() []string                          // O(V·log V)
//	Edges() []Edge                            // O(E·log E), each edge once with U < V
//
//	// Counts
//	NodeCount() int
//	EdgeCount() int
//	NegativeEdgeCount() int
//	IsComplete() bool
//
//	// Cloning
//	Clone() *Graph
//
// Errors:
//
//	ErrEmptyNodeID    – zero-length node identifier
//	ErrBadPolarity    – polarity is neither Positive nor Negative
//	ErrLoopNotAllowed – self-edge u == v
//
// Polarity serializes as exactly two tokens, "+" for Positive and "-" for
// Negative, through encoding.TextMarshaler / encoding.TextUnmarshaler, so any
// text-based codec (JSON, YAML, TOML) round-trips it without extra glue.
package core
