// SPDX-License-Identifier: MIT

package supernode

import (
	"sort"

	"github.com/katalvlaran/lvbalance/core"
)

// FindSuperNodes contracts the positive subgraph of g into super-nodes.
// Every node belongs to exactly one super-node; isolated nodes and nodes with
// only negative edges form singletons. A nil graph yields nil.
func FindSuperNodes(g *core.Graph) []SuperNode {
	if g == nil {
		return nil
	}

	nodes := g.Nodes()
	seen := make(map[string]bool, len(nodes))
	var out []SuperNode

	for _, start := range nodes {
		if seen[start] {
			continue
		}
		seen[start] = true
		queue := []string{start}

		for qi := 0; qi < len(queue); qi++ {
			for _, nb := range g.NeighborsWithLabels(queue[qi]) {
				if nb.Polarity != core.Positive || seen[nb.ID] {
					continue
				}
				seen[nb.ID] = true
				queue = append(queue, nb.ID)
			}
		}

		sort.Strings(queue)
		out = append(out, SuperNode{ID: len(out), Nodes: queue})
	}

	return out
}

// CheckIntegrity reports every negative edge whose endpoints share a
// super-node. Conflicts follow super-node order, then member-pair order.
func CheckIntegrity(g *core.Graph, sns []SuperNode) Integrity {
	var conflicts []Conflict
	if g != nil {
		for _, sn := range sns {
			members := sn.Nodes
			for i := 0; i < len(members); i++ {
				for j := i + 1; j < len(members); j++ {
					p, ok := g.EdgeLabel(members[i], members[j])
					if !ok || p != core.Negative {
						continue
					}
					u, v := members[i], members[j]
					if v < u {
						u, v = v, u
					}
					conflicts = append(conflicts, Conflict{
						SuperNodeID: sn.ID,
						Edge:        core.Edge{U: u, V: v, Polarity: core.Negative},
					})
				}
			}
		}
	}

	return Integrity{Valid: len(conflicts) == 0, Conflicts: conflicts}
}

// IsBalanced reports whether g is structurally balanced. Integrity is checked
// first; a graph with conflicts is unbalanced without attempting a partition.
func IsBalanced(g *core.Graph) bool {
	return Analyze(g).Balanced
}

// Analyze runs contraction, integrity check and partition, and returns all of
// them along with the verdict.
func Analyze(g *core.Graph) Result {
	r := Result{SuperNodes: FindSuperNodes(g)}
	r.Integrity = CheckIntegrity(g, r.SuperNodes)
	if !r.Integrity.Valid {
		return r
	}
	r.Partition = PartitionSuperNodes(g, r.SuperNodes)
	r.Balanced = r.Partition.Success

	return r
}

// Factions expands a successful partition into the sorted node lists of
// faction X and faction Y. Both are nil when p did not succeed.
func Factions(sns []SuperNode, p Partition) (x, y []string) {
	if !p.Success {
		return nil, nil
	}
	byID := make(map[int][]string, len(sns))
	for _, sn := range sns {
		byID[sn.ID] = sn.Nodes
	}
	expand := func(ids []int) []string {
		out := []string{}
		for _, id := range ids {
			out = append(out, byID[id]...)
		}
		sort.Strings(out)
		return out
	}

	return expand(p.GroupX), expand(p.GroupY)
}
