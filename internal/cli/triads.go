package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbalance/triangle"
)

func newTriadsCmd() *cobra.Command {
	var each bool

	cmd := &cobra.Command{
		Use:   "triads GRAPH",
		Short: "List potential triadic closures and their predicted signs",
		Long: `List pairs of GRAPH that share a neighbor but are not connected.

For every missing edge the sign that keeps the new triangle balanced is
shown. A pair whose common neighbors imply opposite signs is flagged: no
sign closes it without creating an unbalanced triangle. With --each, every
open triad (pair, common neighbor) is listed on its own.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			p := printer{cmd.OutOrStdout()}
			p.graph(name)

			if each {
				prog := newProgress(logger)
				triads := triangle.OpenTriads(g)
				prog.done("triad scan complete", "triads", len(triads))
				for _, t := range triads {
					p.field(t.U+" "+t.W, fmt.Sprintf("via %s  [%s]  predict %s", t.Via, signs(t.Edges[:]), sign(t.Predicted)))
				}
				p.counts(fmt.Sprintf("%d open triads", len(triads)))
				return nil
			}

			prog := newProgress(logger)
			closures := triangle.Closures(g)
			prog.done("triad scan complete", "closures", len(closures))
			conflicting := 0
			for _, c := range closures {
				p.field(c.U+" "+c.W, fmt.Sprintf("predict %s  via %s", sign(c.Predicted), strings.Join(c.Vias, " ")))
				if c.Conflicting {
					conflicting++
					p.caveat("%s-%s: common neighbors disagree on the sign", c.U, c.W)
				}
			}
			p.counts(fmt.Sprintf("%d potential closures", len(closures)), fmt.Sprintf("%d conflicting", conflicting))
			return nil
		},
	}

	cmd.Flags().BoolVar(&each, "each", false, "list every (pair, common neighbor) triad")

	return cmd
}
