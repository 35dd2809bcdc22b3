// SPDX-License-Identifier: MIT

package triangle

import "github.com/katalvlaran/lvbalance/core"

// FindAll returns every complete triangle of g, balanced or not.
// A nil graph has no triangles.
func FindAll(g *core.Graph) []Triangle {
	return scan(g, func(Triangle) bool { return true })
}

// FindUnbalanced returns the complete triangles of g whose negative-edge
// count is odd. Incomplete triples are skipped, never flagged.
func FindUnbalanced(g *core.Graph) []Triangle {
	return scan(g, func(t Triangle) bool { return !t.Balanced() })
}

// IsBalanced reports whether g has no unbalanced triangle.
// Exact only when g is complete; see the package documentation.
func IsBalanced(g *core.Graph) bool {
	return len(FindUnbalanced(g)) == 0
}

// scan walks all strictly increasing triples over the sorted node listing and
// collects the complete triangles accepted by keep.
func scan(g *core.Graph, keep func(Triangle) bool) []Triangle {
	if g == nil {
		return nil
	}

	nodes := g.Nodes()
	var out []Triangle

	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			// Prune early: without edge (i,j) no k can close a triangle.
			pij, ok := g.EdgeLabel(nodes[i], nodes[j])
			if !ok {
				continue
			}
			for k := j + 1; k < len(nodes); k++ {
				pjk, ok := g.EdgeLabel(nodes[j], nodes[k])
				if !ok {
					continue
				}
				pik, ok := g.EdgeLabel(nodes[i], nodes[k])
				if !ok {
					continue
				}

				t := Triangle{
					Nodes: [3]string{nodes[i], nodes[j], nodes[k]},
					Edges: [3]core.Polarity{pij, pjk, pik},
				}
				for _, p := range t.Edges {
					if p == core.Negative {
						t.NegativeCount++
					}
				}
				if keep(t) {
					out = append(out, t)
				}
			}
		}
	}

	return out
}
