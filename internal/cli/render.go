package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbalance/render"
)

// errUnknownOutput is returned for an output path that is neither .dot nor .svg.
var errUnknownOutput = errors.New("output must end in .dot or .svg")

func newRenderCmd() *cobra.Command {
	var (
		output   string
		clusters bool
		factions bool
	)

	cmd := &cobra.Command{
		Use:   "render GRAPH",
		Short: "Export a graph as Graphviz DOT or SVG",
		Long: `Render GRAPH with negative edges drawn dashed and red.

The output format follows the extension of --output: .dot writes the DOT
source, .svg lays it out with the embedded Graphviz engine. Without --output
the DOT source is printed.`,
		Example: `  lvbalance render sample:balanced-quad --factions -o quad.svg
  lvbalance render team.yaml --clusters`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			dot := render.ToDOT(g, render.Options{Title: name, Clusters: clusters, Factions: factions})
			if output == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), dot)
				return err
			}

			var data []byte
			switch strings.ToLower(filepath.Ext(output)) {
			case ".dot", ".gv":
				data = []byte(dot)
			case ".svg":
				prog := newProgress(logger)
				if data, err = render.RenderSVG(ctx, dot); err != nil {
					return err
				}
				prog.done("layout complete", "bytes", len(data))
			default:
				return fmt.Errorf("%s: %w", output, errUnknownOutput)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}

			p := printer{cmd.OutOrStdout()}
			p.field("rendered", name)
			p.field("wrote", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.dot or .svg)")
	cmd.Flags().BoolVar(&clusters, "clusters", false, "draw super-nodes as clusters")
	cmd.Flags().BoolVar(&factions, "factions", false, "color faction members when balanced")

	return cmd
}
