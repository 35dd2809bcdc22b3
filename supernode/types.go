package supernode

import "github.com/katalvlaran/lvbalance/core"

// SuperNode is one connected component of the positive subgraph.
// Nodes is sorted ascending.
type SuperNode struct {
	ID    int
	Nodes []string
}

// Conflict is a negative edge with both endpoints inside one super-node.
type Conflict struct {
	SuperNodeID int
	Edge        core.Edge
}

// Integrity is the outcome of CheckIntegrity.
type Integrity struct {
	Valid     bool
	Conflicts []Conflict
}

// Partition is the outcome of two-coloring the super-node graph.
//
// On success GroupX holds the super-node IDs colored 0 and GroupY those
// colored 1. On failure both groups are nil and Clash names the two adjacent
// super-nodes found with the same color.
type Partition struct {
	Success bool
	GroupX  []int
	GroupY  []int
	Clash   *[2]int
}

// Result bundles every step of the contraction test.
// Partition is the zero value when integrity failed.
type Result struct {
	SuperNodes []SuperNode
	Integrity  Integrity
	Partition  Partition
	Balanced   bool
}

// Checker is the super-node strategy as a value. The zero value is ready to use.
type Checker struct{}

// Name returns "supernode".
func (Checker) Name() string { return "supernode" }

// IsBalanced delegates to the package-level IsBalanced.
func (Checker) IsBalanced(g *core.Graph) bool { return IsBalanced(g) }

// Analyze delegates to the package-level Analyze.
func (Checker) Analyze(g *core.Graph) Result { return Analyze(g) }
