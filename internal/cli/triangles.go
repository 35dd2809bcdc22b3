package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbalance/triangle"
)

func newTrianglesCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "triangles GRAPH",
		Short: "List unbalanced triangles (odd number of negative edges)",
		Long: `List triangles of GRAPH. Only unbalanced ones are shown unless --all is set.

The triangle verdict is exact only for complete graphs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())

			prog := newProgress(logger)
			found := triangle.FindUnbalanced(g)
			if all {
				found = triangle.FindAll(g)
			}
			prog.done("triangle scan complete", "triangles", len(found))

			p := printer{cmd.OutOrStdout()}
			p.graph(name)
			for _, t := range found {
				p.field(fmt.Sprintf("%s %s %s", t.Nodes[0], t.Nodes[1], t.Nodes[2]),
					fmt.Sprintf("%s  %d negative  %s", signs(t.Edges[:]), t.NegativeCount, balanceWord(t.Balanced())))
			}

			balanced := triangle.IsBalanced(g)
			if !g.IsComplete() {
				p.caveat("graph is incomplete; the triangle verdict is not conclusive")
			}
			p.verdict(balanced, "triangle test: %s", balanceWord(balanced))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "list balanced triangles too")

	return cmd
}
