// SPDX-License-Identifier: MIT

package cycle

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/katalvlaran/lvbalance/core"
)

// pollEvery is the number of search steps between context checks.
const pollEvery = 1024

// frame is one level of the explicit DFS stack.
type frame struct {
	node string
	next int // index of the next neighbor to try
}

// FindAll returns every simple cycle of g (length ≥ 3) exactly once, sorted by
// (length, node sequence). A nil graph has no cycles.
//
// Errors: ErrGraphTooLarge, ErrCycleLimit, ErrOptionViolation, or the context
// error when the search was cancelled. All are wrapped; use errors.Is.
func FindAll(g *core.Graph, opts ...Option) ([]Cycle, error) {
	var out []Cycle
	err := search(g, resolve(opts), func(c Cycle) bool {
		out = append(out, c)
		return false
	})
	if err != nil {
		return nil, fmt.Errorf("FindAll: %w", err)
	}
	sortCycles(out)

	return out, nil
}

// FindUnbalanced returns the simple cycles of g carrying an odd number of
// negative edges, sorted like FindAll.
func FindUnbalanced(g *core.Graph, opts ...Option) ([]Cycle, error) {
	var out []Cycle
	err := search(g, resolve(opts), func(c Cycle) bool {
		if !c.Balanced() {
			out = append(out, c)
		}
		return false
	})
	if err != nil {
		return nil, fmt.Errorf("FindUnbalanced: %w", err)
	}
	sortCycles(out)

	return out, nil
}

// IsBalanced reports whether every simple cycle of g has an even number of
// negative edges. The search stops at the first odd cycle.
func IsBalanced(g *core.Graph, opts ...Option) (bool, error) {
	balanced := true
	err := search(g, resolve(opts), func(c Cycle) bool {
		if !c.Balanced() {
			balanced = false
			return true
		}
		return false
	})
	if err != nil {
		return false, fmt.Errorf("IsBalanced: %w", err)
	}

	return balanced, nil
}

// search enumerates unique simple cycles and hands each to visit in discovery
// order. visit returns true to stop early; that is not an error.
func search(g *core.Graph, o Options, visit func(Cycle) bool) error {
	if o.err != nil {
		return o.err
	}
	if g == nil {
		return nil
	}

	nodes := g.Nodes()
	if o.MaxNodes > 0 && len(nodes) > o.MaxNodes {
		return fmt.Errorf("%d nodes, limit %d: %w", len(nodes), o.MaxNodes, ErrGraphTooLarge)
	}

	// Snapshot adjacency once; every later lookup is lock-free and consistent.
	adj := make(map[string][]core.Neighbor, len(nodes))
	for _, id := range nodes {
		adj[id] = g.NeighborsWithLabels(id)
	}

	seen := make(map[string]struct{})
	steps := 0

	for _, s := range nodes {
		path := []string{s}
		onPath := map[string]bool{s: true}
		stack := []frame{{node: s}}

		for len(stack) > 0 {
			steps++
			if steps%pollEvery == 0 {
				if err := o.Ctx.Err(); err != nil {
					return fmt.Errorf("search aborted: %w", err)
				}
			}

			top := &stack[len(stack)-1]
			nbrs := adj[top.node]
			if top.next >= len(nbrs) {
				delete(onPath, top.node)
				path = path[:len(path)-1]
				stack = stack[:len(stack)-1]
				continue
			}
			nbr := nbrs[top.next].ID
			top.next++

			if nbr == s {
				if len(path) < 3 {
					continue
				}
				canon := canonical(path)
				k := key(canon)
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}
				if o.MaxCycles > 0 && len(seen) > o.MaxCycles {
					return fmt.Errorf("more than %d cycles: %w", o.MaxCycles, ErrCycleLimit)
				}
				if visit(label(adj, canon)) {
					return nil
				}
				continue
			}

			// Only descend above the anchor so each cycle is found from its minimum.
			if nbr > s && !onPath[nbr] {
				onPath[nbr] = true
				path = append(path, nbr)
				stack = append(stack, frame{node: nbr})
			}
		}
	}

	if err := o.Ctx.Err(); err != nil {
		return fmt.Errorf("search aborted: %w", err)
	}

	return nil
}

// label walks the closed sequence and records each edge polarity.
func label(adj map[string][]core.Neighbor, nodes []string) Cycle {
	c := Cycle{
		Nodes: nodes,
		Edges: make([]core.Polarity, len(nodes)),
	}
	for i, u := range nodes {
		v := nodes[(i+1)%len(nodes)]
		p := polarityOf(adj[u], v)
		c.Edges[i] = p
		if p == core.Negative {
			c.NegativeCount++
		}
	}

	return c
}

// polarityOf binary-searches v in a neighbor list sorted by ID.
func polarityOf(nbrs []core.Neighbor, v string) core.Polarity {
	i, ok := slices.BinarySearchFunc(nbrs, v, func(n core.Neighbor, id string) int {
		return strings.Compare(n.ID, id)
	})
	if !ok {
		return 0
	}

	return nbrs[i].Polarity
}

// sortCycles orders cycles by length, then by node sequence.
func sortCycles(cs []Cycle) {
	sort.Slice(cs, func(i, j int) bool {
		if len(cs[i].Nodes) != len(cs[j].Nodes) {
			return len(cs[i].Nodes) < len(cs[j].Nodes)
		}
		return compare(cs[i].Nodes, cs[j].Nodes) < 0
	})
}
