// Package lvbalance decides whether a signed graph is structurally balanced:
// whether its nodes split into two factions with every edge inside a faction
// positive and every edge between factions negative.
//
// The module is organised in small subpackages:
//
//	core/      - signed Graph, Polarity, Edge and Neighbor types
//	triangle/  - local triangle-parity test (exact on complete graphs)
//	cycle/     - exhaustive simple-cycle enumeration with sign parity
//	supernode/ - positive contraction, integrity check, two-coloring
//	balance/   - Strategy facade that runs checkers and compares verdicts
//	builder/   - named sample scenarios and signed graph generators
//	graphio/   - YAML, JSON and TOML graph definitions
//	render/    - Graphviz DOT export and SVG rendering
//
// The lvbalance command (cmd/lvbalance) exposes all of it from the shell.
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("ann", "bob", core.Positive)
//	_ = g.AddEdge("bob", "cat", core.Negative)
//	_ = g.AddEdge("ann", "cat", core.Negative)
//	balanced := supernode.IsBalanced(g) // true: {ann bob} vs {cat}
package lvbalance
