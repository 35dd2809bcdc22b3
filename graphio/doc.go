// Package graphio reads and writes signed-graph definition files.
//
// A definition is a Document: an optional name and description, optional
// isolated nodes, and a list of signed edges. The same Document maps onto
// three formats, chosen by file extension:
//
//	# triangle.yaml
//	name: unbalanced-triangle
//	edges:
//	  - {from: A, to: B, sign: "+"}
//	  - {from: A, to: C, sign: "+"}
//	  - {from: B, to: C, sign: "-"}
//
// In YAML the sign must be quoted, since a bare "-" starts a sequence entry.
// JSON and TOML carry it as an ordinary string.
//
// Decoding is strict: unknown fields and signs other than "+" and "-" are
// errors, reported with the offending edge index. Reading a definition builds
// a fresh core.Graph; nothing is cached or stored.
package graphio
