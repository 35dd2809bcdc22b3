package supernode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbalance/core"
	"github.com/katalvlaran/lvbalance/supernode"
)

// signed builds a graph from "u v sign" triples.
func signed(t *testing.T, edges ...[3]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		p, err := core.ParsePolarity(e[2])
		require.NoError(t, err)
		require.NoError(t, g.AddEdge(e[0], e[1], p))
	}
	return g
}

func TestEmptyAndNil(t *testing.T) {
	assert.Nil(t, supernode.FindSuperNodes(nil))
	assert.True(t, supernode.IsBalanced(nil))

	g := core.NewGraph()
	sns := supernode.FindSuperNodes(g)
	assert.Empty(t, sns)
	assert.True(t, supernode.CheckIntegrity(g, sns).Valid)

	p := supernode.PartitionSuperNodes(g, sns)
	assert.True(t, p.Success)
	assert.Empty(t, p.GroupX)
	assert.Empty(t, p.GroupY)
	assert.Nil(t, p.Clash)
}

func TestIsolatedNodes(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("b"))
	require.NoError(t, g.AddNode("a"))

	sns := supernode.FindSuperNodes(g)
	assert.Equal(t, []supernode.SuperNode{
		{ID: 0, Nodes: []string{"a"}},
		{ID: 1, Nodes: []string{"b"}},
	}, sns)

	p := supernode.PartitionSuperNodes(g, sns)
	assert.True(t, p.Success)
	assert.Equal(t, []int{0, 1}, p.GroupX)
	assert.Empty(t, p.GroupY)
}

func TestBalancedQuad(t *testing.T) {
	g := signed(t,
		[3]string{"A", "C", "-"}, [3]string{"A", "B", "+"}, [3]string{"A", "D", "-"},
		[3]string{"B", "C", "-"}, [3]string{"B", "D", "-"}, [3]string{"C", "D", "+"},
	)

	r := supernode.Analyze(g)
	assert.Equal(t, []supernode.SuperNode{
		{ID: 0, Nodes: []string{"A", "B"}},
		{ID: 1, Nodes: []string{"C", "D"}},
	}, r.SuperNodes)
	assert.True(t, r.Integrity.Valid)
	assert.Empty(t, r.Integrity.Conflicts)
	assert.True(t, r.Partition.Success)
	assert.Equal(t, []int{0}, r.Partition.GroupX)
	assert.Equal(t, []int{1}, r.Partition.GroupY)
	assert.True(t, r.Balanced)

	x, y := supernode.Factions(r.SuperNodes, r.Partition)
	assert.Equal(t, []string{"A", "B"}, x)
	assert.Equal(t, []string{"C", "D"}, y)
}

func TestUnbalancedQuad_IntegrityConflicts(t *testing.T) {
	g := signed(t,
		[3]string{"A", "B", "-"}, [3]string{"A", "C", "+"}, [3]string{"A", "D", "-"},
		[3]string{"B", "C", "+"}, [3]string{"B", "D", "+"}, [3]string{"C", "D", "-"},
	)

	r := supernode.Analyze(g)
	require.Len(t, r.SuperNodes, 1)
	assert.Equal(t, []string{"A", "B", "C", "D"}, r.SuperNodes[0].Nodes)
	assert.False(t, r.Integrity.Valid)
	assert.Equal(t, []supernode.Conflict{
		{SuperNodeID: 0, Edge: core.Edge{U: "A", V: "B", Polarity: core.Negative}},
		{SuperNodeID: 0, Edge: core.Edge{U: "A", V: "D", Polarity: core.Negative}},
		{SuperNodeID: 0, Edge: core.Edge{U: "C", V: "D", Polarity: core.Negative}},
	}, r.Integrity.Conflicts)

	// Partition is never attempted once integrity failed.
	assert.Equal(t, supernode.Partition{}, r.Partition)
	assert.False(t, r.Balanced)
	assert.False(t, supernode.IsBalanced(g))

	x, y := supernode.Factions(r.SuperNodes, r.Partition)
	assert.Nil(t, x)
	assert.Nil(t, y)
}

func TestAllNegativeTriangle_PartitionClash(t *testing.T) {
	g := signed(t, [3]string{"x", "y", "-"}, [3]string{"y", "z", "-"}, [3]string{"x", "z", "-"})

	sns := supernode.FindSuperNodes(g)
	require.Len(t, sns, 3)
	assert.True(t, supernode.CheckIntegrity(g, sns).Valid)

	p := supernode.PartitionSuperNodes(g, sns)
	assert.False(t, p.Success)
	assert.Nil(t, p.GroupX)
	assert.Nil(t, p.GroupY)
	require.NotNil(t, p.Clash)
	assert.Equal(t, [2]int{1, 2}, *p.Clash)
	assert.False(t, supernode.IsBalanced(g))
}

func TestMixedSquare(t *testing.T) {
	g := signed(t,
		[3]string{"A", "B", "-"}, [3]string{"B", "C", "+"},
		[3]string{"C", "D", "-"}, [3]string{"D", "A", "+"},
	)

	r := supernode.Analyze(g)
	require.True(t, r.Balanced)
	x, y := supernode.Factions(r.SuperNodes, r.Partition)
	assert.Equal(t, []string{"A", "D"}, x)
	assert.Equal(t, []string{"B", "C"}, y)
}

func TestComplexNetwork_OddNegativeRing(t *testing.T) {
	g := signed(t,
		[3]string{"1", "2", "+"}, [3]string{"1", "3", "+"}, [3]string{"2", "3", "+"},
		[3]string{"2", "4", "-"}, [3]string{"2", "5", "+"}, [3]string{"3", "6", "-"},
		[3]string{"5", "6", "-"}, [3]string{"4", "7", "-"}, [3]string{"4", "9", "-"},
		[3]string{"7", "12", "+"}, [3]string{"9", "12", "+"}, [3]string{"6", "8", "+"},
		[3]string{"6", "11", "-"}, [3]string{"8", "11", "-"}, [3]string{"10", "11", "-"},
		[3]string{"11", "14", "-"}, [3]string{"12", "13", "+"}, [3]string{"13", "15", "-"},
		[3]string{"14", "15", "-"},
	)

	r := supernode.Analyze(g)
	assert.Equal(t, []supernode.SuperNode{
		{ID: 0, Nodes: []string{"1", "2", "3", "5"}},
		{ID: 1, Nodes: []string{"10"}},
		{ID: 2, Nodes: []string{"11"}},
		{ID: 3, Nodes: []string{"12", "13", "7", "9"}},
		{ID: 4, Nodes: []string{"14"}},
		{ID: 5, Nodes: []string{"15"}},
		{ID: 6, Nodes: []string{"4"}},
		{ID: 7, Nodes: []string{"6", "8"}},
	}, r.SuperNodes)
	assert.True(t, r.Integrity.Valid)
	assert.False(t, r.Partition.Success)
	require.NotNil(t, r.Partition.Clash)
	assert.Equal(t, [2]int{5, 4}, *r.Partition.Clash)
	assert.False(t, r.Balanced)
}

// TestPartitionLaw: positive edges never cross super-nodes, and a negative
// edge inside a super-node is always a conflict.
func TestPartitionLaw(t *testing.T) {
	g := signed(t,
		[3]string{"a", "b", "+"}, [3]string{"b", "c", "+"}, [3]string{"a", "c", "-"},
		[3]string{"c", "d", "-"}, [3]string{"d", "e", "+"}, [3]string{"e", "f", "-"},
	)
	sns := supernode.FindSuperNodes(g)
	owner := map[string]int{}
	for _, sn := range sns {
		for _, id := range sn.Nodes {
			_, dup := owner[id]
			require.False(t, dup, "%s in two super-nodes", id)
			owner[id] = sn.ID
		}
	}
	assert.Len(t, owner, g.NodeCount())

	conflicts := supernode.CheckIntegrity(g, sns).Conflicts
	inside := 0
	for _, e := range g.Edges() {
		same := owner[e.U] == owner[e.V]
		if e.Polarity == core.Positive {
			assert.True(t, same, "positive edge %s-%s crosses super-nodes", e.U, e.V)
		} else if same {
			inside++
		}
	}
	assert.Equal(t, 1, inside)
	assert.Len(t, conflicts, inside)
}

func TestIdempotent(t *testing.T) {
	g := signed(t, [3]string{"p", "q", "-"}, [3]string{"q", "r", "+"}, [3]string{"r", "s", "-"})
	assert.Equal(t, supernode.Analyze(g), supernode.Analyze(g))
}

func TestChecker(t *testing.T) {
	var c supernode.Checker
	assert.Equal(t, "supernode", c.Name())
	g := signed(t, [3]string{"A", "B", "+"}, [3]string{"A", "C", "+"}, [3]string{"B", "C", "-"})
	assert.False(t, c.IsBalanced(g))
	assert.Len(t, c.Analyze(g).Integrity.Conflicts, 1)
}
