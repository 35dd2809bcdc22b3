package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbalance/builder"
	"github.com/katalvlaran/lvbalance/core"
	"github.com/katalvlaran/lvbalance/render"
)

func sample(t *testing.T, name string) *core.Graph {
	t.Helper()
	s, err := builder.LookupSample(name)
	require.NoError(t, err)
	g, err := s.Graph()
	require.NoError(t, err)
	return g
}

func TestToDOT_Plain(t *testing.T) {
	dot := render.ToDOT(sample(t, builder.SampleUnbalancedTriangle), render.Options{Title: "tri"})

	assert.True(t, strings.HasPrefix(dot, "graph G {\n"))
	assert.Contains(t, dot, `label="tri";`)
	assert.Contains(t, dot, `"A" -- "B" [label="+"];`)
	assert.Contains(t, dot, `"B" -- "C" [label="-", style=dashed, color=red, fontcolor=red];`)
	assert.NotContains(t, dot, "cluster_")
	assert.NotContains(t, dot, "lightblue")
}

func TestToDOT_ClustersAndFactions(t *testing.T) {
	dot := render.ToDOT(sample(t, builder.SampleBalancedQuad), render.Options{Clusters: true, Factions: true})

	assert.Contains(t, dot, "subgraph cluster_0 {")
	assert.Contains(t, dot, "subgraph cluster_1 {")
	assert.Contains(t, dot, `"A" [fillcolor=lightblue];`)
	assert.Contains(t, dot, `"B" [fillcolor=lightblue];`)
	assert.Contains(t, dot, `"C" [fillcolor=lightsalmon];`)
	assert.Contains(t, dot, `"D" [fillcolor=lightsalmon];`)
}

func TestToDOT_UnbalancedHasNoFactionFill(t *testing.T) {
	dot := render.ToDOT(sample(t, builder.SampleUnbalancedQuad), render.Options{Factions: true})
	assert.NotContains(t, dot, "fillcolor=lightblue")
	assert.NotContains(t, dot, "fillcolor=lightsalmon")
}

func TestToDOT_Deterministic(t *testing.T) {
	g := sample(t, builder.SampleComplexNetwork15)
	opts := render.Options{Clusters: true}
	assert.Equal(t, render.ToDOT(g, opts), render.ToDOT(g, opts))
	assert.NotPanics(t, func() { render.ToDOT(nil, opts) })
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz layout is slow")
	}
	dot := render.ToDOT(sample(t, builder.SampleMixedSquare), render.Options{Factions: true})
	svg, err := render.RenderSVG(context.Background(), dot)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}
