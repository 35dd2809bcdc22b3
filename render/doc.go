// Package render draws signed graphs with Graphviz.
//
// ToDOT produces an undirected DOT document: positive edges are solid and
// labelled "+", negative edges are dashed red and labelled "-". Two optional
// overlays come from the super-node analysis:
//
//   - Options.Clusters wraps each super-node (positive component) in a
//     cluster subgraph.
//   - Options.Factions fills the nodes of faction X and faction Y with two
//     colors when the graph is balanced; unbalanced graphs are left unfilled.
//
// RenderSVG lays the DOT out with the WebAssembly build of Graphviz, so no
// system installation is needed.
package render
