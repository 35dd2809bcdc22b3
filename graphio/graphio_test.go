package graphio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbalance/builder"
	"github.com/katalvlaran/lvbalance/core"
	"github.com/katalvlaran/lvbalance/graphio"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want graphio.Format
	}{
		{"g.yaml", graphio.YAML},
		{"dir/g.YML", graphio.YAML},
		{"g.json", graphio.JSON},
		{"g.toml", graphio.TOML},
	}
	for _, tc := range tests {
		got, err := graphio.FormatFromPath(tc.path)
		require.NoError(t, err, tc.path)
		assert.Equal(t, tc.want, got)
	}

	for _, bad := range []string{"g.csv", "noext"} {
		_, err := graphio.FormatFromPath(bad)
		assert.ErrorIs(t, err, graphio.ErrUnknownFormat, bad)
	}
	assert.Equal(t, ".yaml", graphio.YAML.Ext())
	assert.Equal(t, ".toml", graphio.TOML.Ext())
}

func TestDecode_YAML(t *testing.T) {
	src := `
name: unbalanced-triangle
description: two friends of A who dislike each other
nodes: [Z]
edges:
  - {from: A, to: B, sign: "+"}
  - {from: A, to: C, sign: +}
  - {from: B, to: C, sign: "-"}
`
	doc, err := graphio.Decode(strings.NewReader(src), graphio.YAML)
	require.NoError(t, err)
	assert.Equal(t, "unbalanced-triangle", doc.Name)
	require.Len(t, doc.Edges, 3)
	assert.Equal(t, core.Negative, doc.Edges[2].Sign)

	g, err := doc.Graph()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "Z"}, g.Nodes())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestDecode_JSONAndTOML(t *testing.T) {
	js := `{"edges":[{"from":"x","to":"y","sign":"-"}]}`
	doc, err := graphio.Decode(strings.NewReader(js), graphio.JSON)
	require.NoError(t, err)
	assert.Equal(t, []graphio.EdgeSpec{{From: "x", To: "y", Sign: core.Negative}}, doc.Edges)

	tm := `
name = "pair"

[[edges]]
from = "x"
to = "y"
sign = "+"
`
	doc, err = graphio.Decode(strings.NewReader(tm), graphio.TOML)
	require.NoError(t, err)
	assert.Equal(t, "pair", doc.Name)
	assert.Equal(t, []graphio.EdgeSpec{{From: "x", To: "y", Sign: core.Positive}}, doc.Edges)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format graphio.Format
		src    string
		is     error
	}{
		{"empty", graphio.YAML, "  \n", graphio.ErrEmptyDocument},
		{"bad sign json", graphio.JSON, `{"edges":[{"from":"a","to":"b","sign":"0"}]}`, core.ErrBadPolarity},
		{"bad sign yaml", graphio.YAML, "edges:\n  - {from: a, to: b, sign: pos}\n", nil},
		{"unquoted minus yaml", graphio.YAML, "edges:\n  - from: a\n    to: b\n    sign: -\n", nil},
		{"unknown field yaml", graphio.YAML, "edges: []\nweight: 3\n", nil},
		{"unknown field json", graphio.JSON, `{"edges":[],"weight":3}`, nil},
		{"unknown field toml", graphio.TOML, "weight = 3\nedges = []\n", graphio.ErrUnknownField},
		{"unknown format", graphio.Format(9), "x", graphio.ErrUnknownFormat},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.Decode(strings.NewReader(tc.src), tc.format)
			require.Error(t, err)
			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			}
		})
	}
}

func TestGraph_EdgeErrorsCarryIndex(t *testing.T) {
	doc := &graphio.Document{Edges: []graphio.EdgeSpec{
		{From: "a", To: "b", Sign: core.Positive},
		{From: "c", To: "c", Sign: core.Negative},
	}}
	_, err := doc.Graph()
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	assert.Contains(t, err.Error(), "edge 1")
}

// TestRoundTrip encodes every sample in every format and decodes it back to
// an identical graph.
func TestRoundTrip(t *testing.T) {
	for _, s := range builder.Samples() {
		g, err := s.Graph()
		require.NoError(t, err)
		require.NoError(t, g.AddNode("lonely"))

		for _, f := range []graphio.Format{graphio.YAML, graphio.JSON, graphio.TOML} {
			t.Run(s.Name+"/"+f.String(), func(t *testing.T) {
				var buf bytes.Buffer
				require.NoError(t, graphio.Encode(&buf, graphio.FromGraph(s.Name, g), f))

				doc, err := graphio.Decode(&buf, f)
				require.NoError(t, err)
				assert.Equal(t, s.Name, doc.Name)
				assert.Equal(t, []string{"lonely"}, doc.Nodes)

				back, err := doc.Graph()
				require.NoError(t, err)
				assert.Equal(t, g.Nodes(), back.Nodes())
				assert.Equal(t, g.Edges(), back.Edges())
			})
		}
	}
}

func TestEncodeYAML_QuotesMinus(t *testing.T) {
	doc := &graphio.Document{Edges: []graphio.EdgeSpec{{From: "a", To: "b", Sign: core.Negative}}}
	var buf bytes.Buffer
	require.NoError(t, graphio.Encode(&buf, doc, graphio.YAML))
	assert.Contains(t, buf.String(), `sign: '-'`)
}

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()
	g, err := builder.BuildGraph(nil, builder.BalancedQuad())
	require.NoError(t, err)

	for _, name := range []string{"quad.yaml", "quad.json", "quad.toml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, graphio.WriteFile(path, graphio.FromGraph("quad", g)))

		doc, back, err := graphio.ReadFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, "quad", doc.Name)
		assert.Equal(t, g.Edges(), back.Edges())
	}

	_, _, err = graphio.ReadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
	assert.ErrorIs(t, graphio.WriteFile(filepath.Join(dir, "x.csv"), &graphio.Document{}), graphio.ErrUnknownFormat)
}
