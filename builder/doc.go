// SPDX-License-Identifier: MIT
// Package builder provides deterministic signed-graph fixtures.
//
// Everything is expressed as a Constructor applied by BuildGraph:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSymbolIDs()},
//	    builder.Cycle(5, 1),
//	)
//
// Topologies
//
//   - Cycle(n, negatives): ring 0→1→…→n-1→0, the first `negatives` edges negative.
//   - Path(n, p), Star(n, p): trees with every edge of polarity p.
//   - Complete(n): K_n split into two factions by WithFactionSize; edges are
//     positive inside a faction and negative across, so the graph is balanced
//     by construction.
//   - RandomSigned(n, p, q): each pair is an edge with probability p, and an
//     edge is negative with probability q. Requires WithSeed or WithRand.
//   - FromEdges(edges): replays a fixed edge list.
//
// Named samples
//
//	Samples() lists the canonical scenarios (balanced and unbalanced triangles
//	and quads, a 15-node network, a mixed 4-cycle); LookupSample resolves one
//	by name and Sample.Graph builds it.
//
// Growth
//
//	Evolve(g, closureP, randomP, maxIterations, opts...) grows an existing
//	graph by triadic closure (sign predicted by balance theory) and random
//	positive links until it is complete, and reports how many iterations it
//	took. It mutates g and needs WithSeed or WithRand.
//
// Determinism
//
//	Same constructors, options and seed ⇒ identical graphs. Constructors add
//	nodes in index order and emit edges in a fixed order.
//
// Errors
//
//	Constructors return sentinel errors wrapped with their name; callers
//	branch with errors.Is. Nothing panics except the ID schemes on negative
//	indices, which constructors never produce.
package builder
