package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbalance/cycle"
)

func newCyclesCmd() *cobra.Command {
	var unbalanced bool

	cmd := &cobra.Command{
		Use:   "cycles GRAPH",
		Short: "Enumerate simple cycles and their sign parity",
		Long: `Enumerate every simple cycle of GRAPH in canonical form.

The search is exponential; it is bounded by cycles.max_nodes and
cycles.max_cycles from the configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			opts := append(configFromContext(ctx).CycleOptions(), cycle.WithContext(ctx))

			prog := newProgress(logger)
			var found []cycle.Cycle
			if unbalanced {
				found, err = cycle.FindUnbalanced(g, opts...)
			} else {
				found, err = cycle.FindAll(g, opts...)
			}
			if err != nil {
				return err
			}
			prog.done("cycle search complete", "cycles", len(found))

			p := printer{cmd.OutOrStdout()}
			p.graph(name)
			bad := 0
			for _, c := range found {
				if !c.Balanced() {
					bad++
				}
				p.field(fmt.Sprintf("len %d", c.Len()),
					fmt.Sprintf("%s  [%s]  %s", strings.Join(c.Nodes, " "), signs(c.Edges), balanceWord(c.Balanced())))
			}
			p.counts(fmt.Sprintf("%d cycles", len(found)), fmt.Sprintf("%d unbalanced", bad))
			p.verdict(bad == 0, "cycle test: %s", balanceWord(bad == 0))
			return nil
		},
	}

	cmd.Flags().BoolVar(&unbalanced, "unbalanced", false, "list only cycles with an odd number of negative edges")

	return cmd
}
