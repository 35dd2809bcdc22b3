package supernode

import (
	"sort"

	"github.com/katalvlaran/lvbalance/core"
)

const uncolored = -1

// PartitionSuperNodes two-colors the super-node graph of g: super-nodes are
// vertices and every negative edge whose endpoints lie in distinct super-nodes
// is an edge. Positive edges and nodes outside sns are ignored.
//
// Components are colored from their first super-node (in sns order) with
// color 0. Empty input succeeds with empty groups.
func PartitionSuperNodes(g *core.Graph, sns []SuperNode) Partition {
	owner := make(map[string]int, len(sns)) // node → index into sns
	for i, sn := range sns {
		for _, id := range sn.Nodes {
			owner[id] = i
		}
	}

	adj := make([]map[int]struct{}, len(sns))
	if g != nil {
		for _, e := range g.Edges() {
			if e.Polarity != core.Negative {
				continue
			}
			a, okA := owner[e.U]
			b, okB := owner[e.V]
			if !okA || !okB || a == b {
				continue
			}
			if adj[a] == nil {
				adj[a] = make(map[int]struct{})
			}
			if adj[b] == nil {
				adj[b] = make(map[int]struct{})
			}
			adj[a][b] = struct{}{}
			adj[b][a] = struct{}{}
		}
	}

	color := make([]int, len(sns))
	for i := range color {
		color[i] = uncolored
	}

	for start := range sns {
		if color[start] != uncolored {
			continue
		}
		color[start] = 0
		queue := []int{start}

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range sortedKeys(adj[u]) {
				switch color[v] {
				case uncolored:
					color[v] = 1 - color[u]
					queue = append(queue, v)
				case color[u]:
					return Partition{Clash: &[2]int{sns[u].ID, sns[v].ID}}
				}
			}
		}
	}

	p := Partition{Success: true, GroupX: []int{}, GroupY: []int{}}
	for i, sn := range sns {
		if color[i] == 0 {
			p.GroupX = append(p.GroupX, sn.ID)
		} else {
			p.GroupY = append(p.GroupY, sn.ID)
		}
	}

	return p
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
