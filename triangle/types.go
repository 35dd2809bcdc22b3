package triangle

import "github.com/katalvlaran/lvbalance/core"

// Triangle is a complete 3-cycle of a signed graph.
//
// Edges holds the polarities of (Nodes[0],Nodes[1]), (Nodes[1],Nodes[2])
// and (Nodes[0],Nodes[2]), in that order.
type Triangle struct {
	Nodes         [3]string
	Edges         [3]core.Polarity
	NegativeCount int
}

// Balanced reports whether the triangle has an even number of negative edges.
func (t Triangle) Balanced() bool {
	return t.NegativeCount%2 == 0
}

// Checker is the triangle strategy as a value, for callers that select
// strategies at runtime. The zero value is ready to use.
type Checker struct{}

// Name returns "triangle".
func (Checker) Name() string { return "triangle" }

// IsBalanced delegates to the package-level IsBalanced.
func (Checker) IsBalanced(g *core.Graph) bool { return IsBalanced(g) }

// FindUnbalanced delegates to the package-level FindUnbalanced.
func (Checker) FindUnbalanced(g *core.Graph) []Triangle { return FindUnbalanced(g) }
