// Package supernode decides structural balance by contraction and two-coloring.
//
// What
//
//	Nodes joined by positive paths must share a faction, so every connected
//	component of the positive subgraph is contracted into a super-node. The
//	graph is balanced iff
//	  1. no negative edge joins two members of the same super-node, and
//	  2. the super-node graph, whose edges are the negative edges crossing
//	     distinct super-nodes, is bipartite.
//	The two color classes of (2) are the factions.
//
// How
//
//   - FindSuperNodes: BFS over positive edges from every unvisited node in
//     ascending order; super-node IDs are 0,1,2… in discovery order.
//   - CheckIntegrity: every member pair of every super-node is tested for a
//     negative edge; each hit is a Conflict.
//   - Partition: BFS two-coloring of the super-node graph. Each uncolored
//     super-node starts a component with color 0; the first neighbor already
//     holding the same color fails the whole partition and is reported as
//     Partition.Clash.
//   - IsBalanced runs the three in order and never partitions a graph whose
//     integrity check failed. Analyze returns every intermediate result.
//
// Determinism
//
//	Members, conflicts, groups and factions are all sorted; repeated calls
//	return identical values.
//
// Complexity
//
//   - FindSuperNodes: O(V + E).
//   - CheckIntegrity: O(Σ|S|²) EdgeLabel lookups (quadratic in the largest
//     super-node).
//   - Partition:      O(V + E + S log S).
package supernode
