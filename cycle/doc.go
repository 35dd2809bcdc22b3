// Package cycle implements the exhaustive balance test for signed graphs:
// a graph is balanced iff every simple cycle carries an even number of
// negative edges.
//
// What
//
//   - FindAll enumerates every simple cycle (length ≥ 3) exactly once.
//   - FindUnbalanced keeps the cycles with an odd negative-edge count.
//   - IsBalanced is true iff no such cycle exists.
//
// How
//
//	Each node s, taken in ascending order, anchors an iterative depth-first
//	search driven by an explicit frame stack (node, next-neighbor cursor), a
//	path slice and an on-path set, all allocated per call. From the top of the
//	stack a neighbor equal to s closes a cycle when the path holds at least
//	three nodes; otherwise the search descends only into neighbors that are
//	off-path and strictly greater than s. Every cycle is therefore found from
//	its minimum vertex, once per traversal direction.
//
//	Both traversals collapse onto one canonical form: the sequence rotated to
//	its minimum element, or its reversal (first element fixed) when that is
//	lexicographically smaller. The dedup key is a length-prefixed encoding of
//	the canonical sequence, so identifiers containing separators cannot collide.
//
//	Polarities are recomputed around the closed walk for every unique cycle.
//	There is no shortcut on the graph-wide negative-edge parity.
//
// Scale limit
//
//	Simple-cycle enumeration is exponential in the worst case: K_n alone has
//	Σ_{k=3..n} n!/(2k(n-k)!) cycles. The enumerator suits graphs of tens of
//	nodes. Callers bound the work with:
//
//	  WithMaxNodes(n)   // refuse graphs above n nodes (ErrGraphTooLarge)
//	  WithMaxCycles(n)  // abort after n unique cycles (ErrCycleLimit)
//	  WithContext(ctx)  // abort on cancellation or deadline
//
//	Path depth is bounded by the node count through the explicit stack, so no
//	input can exhaust the goroutine stack.
//
// Determinism
//
//	Output is sorted by (length, node sequence). Cycle.Nodes is the canonical
//	form, so the first node is always the minimum of the cycle.
//
// Complexity
//
//   - Time:   O((V+E)·(C+1)) in the Johnson-style bound, exponential in general.
//   - Memory: O(V) search state plus O(C·L) for the reported cycles.
package cycle
