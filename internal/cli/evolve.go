package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbalance/builder"
	"github.com/katalvlaran/lvbalance/graphio"
	"github.com/katalvlaran/lvbalance/supernode"
)

func newEvolveCmd() *cobra.Command {
	var (
		seed     int64
		closureP float64
		randomP  float64
		maxIter  int
		output   string
	)

	cmd := &cobra.Command{
		Use:   "evolve GRAPH",
		Short: "Grow a graph by triadic closure until it is complete",
		Long: `Simulate network growth from GRAPH.

Each iteration closes every open triad with probability --closure, using the
sign balance theory predicts, then links every other unconnected pair with
probability --random as a positive tie. The run stops when the graph is
complete or after --max-iter iterations. The same --seed replays the same
history. --output exports the grown graph as a definition file.`,
		Example: `  lvbalance evolve sample:mixed-square --seed 7
  lvbalance evolve team.yaml --closure 0.8 --random 0 -o grown.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())

			prog := newProgress(logger)
			ev, err := builder.Evolve(g, closureP, randomP, maxIter, builder.WithSeed(seed))
			if err != nil {
				return err
			}
			prog.done("simulation complete", "iterations", ev.Iterations)

			p := printer{cmd.OutOrStdout()}
			p.graph(name)
			p.field("iterations", fmt.Sprint(ev.Iterations))
			p.field("edges", fmt.Sprintf("%d -> %d of %d", ev.InitialEdges, ev.FinalEdges, ev.MaxEdges))
			p.field("closures", fmt.Sprint(ev.ClosureEdges))
			p.field("random", fmt.Sprint(ev.RandomEdges))
			if !ev.Completed {
				p.caveat("not complete after %d iterations", ev.Iterations)
			}
			balanced := supernode.IsBalanced(g)
			p.verdict(balanced, "grown graph is %s", balanceWord(balanced))

			if output != "" {
				if err := graphio.WriteFile(output, graphio.FromGraph(name+"-evolved", g)); err != nil {
					return err
				}
				p.field("wrote", output)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&closureP, "closure", builder.DefaultClosureProbability, "probability of closing an open triad per iteration")
	cmd.Flags().Float64Var(&randomP, "random", builder.DefaultRandomProbability, "probability of a random positive link per iteration")
	cmd.Flags().IntVar(&maxIter, "max-iter", builder.DefaultMaxIterations, "iteration limit")
	cmd.Flags().StringVarP(&output, "output", "o", "", "export the grown graph (.yaml, .json or .toml)")

	return cmd
}
