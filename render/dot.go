package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/lvbalance/core"
	"github.com/katalvlaran/lvbalance/supernode"
)

// Options configures DOT output.
type Options struct {
	// Title is drawn above the graph when non-empty.
	Title string
	// Clusters draws every super-node as a cluster subgraph.
	Clusters bool
	// Factions fills faction X and Y nodes when the graph is balanced.
	Factions bool
}

const (
	factionXColor = "lightblue"
	factionYColor = "lightsalmon"
)

// ToDOT converts g to an undirected Graphviz DOT document.
// The output is deterministic: nodes and edges follow g's sorted listings.
func ToDOT(g *core.Graph, opts Options) string {
	if g == nil {
		g = core.NewGraph()
	}

	var (
		result supernode.Result
		fill   map[string]string
	)
	if opts.Clusters || opts.Factions {
		result = supernode.Analyze(g)
	}
	if opts.Factions && result.Balanced {
		x, y := supernode.Factions(result.SuperNodes, result.Partition)
		fill = make(map[string]string, len(x)+len(y))
		for _, id := range x {
			fill[id] = factionXColor
		}
		for _, id := range y {
			fill[id] = factionYColor
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=12];\n")
	buf.WriteString("\n")

	if opts.Clusters {
		for _, sn := range result.SuperNodes {
			fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", sn.ID)
			fmt.Fprintf(&buf, "    label=\"S%d\";\n    style=\"rounded,dashed\";\n", sn.ID)
			for _, id := range sn.Nodes {
				fmt.Fprintf(&buf, "    %s;\n", nodeStmt(id, fill))
			}
			buf.WriteString("  }\n")
		}
	} else {
		for _, id := range g.Nodes() {
			fmt.Fprintf(&buf, "  %s;\n", nodeStmt(id, fill))
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", e.U, e.V, strings.Join(edgeAttrs(e.Polarity), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeStmt(id string, fill map[string]string) string {
	if c, ok := fill[id]; ok {
		return fmt.Sprintf("%q [fillcolor=%s]", id, c)
	}
	return fmt.Sprintf("%q", id)
}

func edgeAttrs(p core.Polarity) []string {
	attrs := []string{fmt.Sprintf("label=%q", p.String())}
	if p == core.Negative {
		attrs = append(attrs, "style=dashed", "color=red", "fontcolor=red")
	}
	return attrs
}

// RenderSVG lays out a DOT document and returns the SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
