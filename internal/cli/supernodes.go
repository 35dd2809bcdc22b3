package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbalance/supernode"
)

func newSuperNodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "supernodes GRAPH",
		Short: "Contract positive components and two-color them",
		Long: `Contract the positive subgraph of GRAPH into super-nodes, report negative
edges inside a super-node, and try to split the super-nodes into two factions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())

			prog := newProgress(logger)
			r := supernode.Analyze(g)
			prog.done("super-node analysis complete", "supernodes", len(r.SuperNodes))

			p := printer{cmd.OutOrStdout()}
			p.graph(name)
			for _, sn := range r.SuperNodes {
				p.field(fmt.Sprintf("S%d", sn.ID), strings.Join(sn.Nodes, " "))
			}

			if !r.Integrity.Valid {
				for _, c := range r.Integrity.Conflicts {
					p.caveat("negative edge %s-%s inside S%d", c.Edge.U, c.Edge.V, c.SuperNodeID)
				}
				p.verdict(false, "super-node test: %s", balanceWord(false))
				return nil
			}
			if !r.Partition.Success {
				p.caveat("S%d and S%d cannot be separated", r.Partition.Clash[0], r.Partition.Clash[1])
				p.verdict(false, "super-node test: %s", balanceWord(false))
				return nil
			}

			x, y := supernode.Factions(r.SuperNodes, r.Partition)
			p.field("faction X", strings.Join(x, " "))
			p.field("faction Y", strings.Join(y, " "))
			p.verdict(true, "super-node test: %s", balanceWord(true))
			return nil
		},
	}
}
