// Package triangle implements the local balance test for signed graphs:
// every complete triangle must carry an even number of negative edges.
//
// What
//
//   - FindAll enumerates every complete triangle {i<j<k} of a core.Graph.
//   - FindUnbalanced keeps the triangles whose negative-edge count is odd (1 or 3).
//   - IsBalanced is true iff no unbalanced triangle exists.
//   - OpenTriads lists paths u-via-w whose endpoints are not adjacent, with
//     the sign that would close each into a balanced triangle; Closures groups
//     them per missing edge and flags bridges that disagree.
//
// Policy
//
//	A triple whose three edges are not all present is not a triangle and is
//	skipped silently; it is never reported as unbalanced. The check therefore
//	examines 3-cycles only: it is exact for complete graphs but only a
//	necessary condition elsewhere. An odd cycle of length ≥ 4 (for example a
//	square with one negative edge) passes this test; use package cycle or
//	package supernode for an exact verdict on sparse graphs.
//
// Determinism
//
//	Triples are drawn from g.Nodes(), which is sorted, so every triangle is
//	reported as (Nodes[0] < Nodes[1] < Nodes[2]) in lexicographic order.
//
// Complexity
//
//   - Time:   O(V³) edge-label lookups.
//   - Memory: O(V) for the node listing plus the reported triangles.
package triangle
