package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbalance/balance"
)

// errInconsistent is returned by check when exact strategies disagree.
var errInconsistent = errors.New("strategies disagree")

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check GRAPH...",
		Short: "Run every configured strategy and compare verdicts",
		Long: `Analyze one or more graphs with the configured strategies.

Each GRAPH is a .yaml, .json or .toml definition file, or sample:NAME for a
built-in sample. Graphs are analysed concurrently (analysis.workers).`,
		Example: `  lvbalance check sample:balanced-quad
  lvbalance check team.yaml sample:complex-network-15`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args)
		},
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	graphs := make([]balance.Named, 0, len(args))
	for _, arg := range args {
		name, g, err := loadGraph(arg)
		if err != nil {
			return err
		}
		graphs = append(graphs, balance.Named{Name: name, Graph: g})
	}

	strategies, err := cfg.Strategies()
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	reports, err := balance.AnalyzeAll(ctx, graphs,
		balance.WithStrategies(strategies...),
		balance.WithWorkers(cfg.Analysis.Workers),
		balance.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	prog.done("analysis complete", "graphs", len(reports))

	p := printer{cmd.OutOrStdout()}
	var inconsistent []string
	for _, r := range reports {
		printReport(p, r)
		if !r.Consistent {
			inconsistent = append(inconsistent, r.Name)
		}
	}
	if len(inconsistent) > 0 {
		return fmt.Errorf("%v: %w", inconsistent, errInconsistent)
	}

	return nil
}

func printReport(p printer, r *balance.Report) {
	p.graph(r.Name)
	complete := "incomplete"
	if r.Complete {
		complete = "complete"
	}
	p.counts(
		fmt.Sprintf("%d nodes", r.Nodes),
		fmt.Sprintf("%d edges", r.Edges),
		fmt.Sprintf("%d negative", r.NegativeEdges),
		complete,
	)

	for _, v := range r.Verdicts {
		switch {
		case v.Err != nil:
			p.caveat("%-10s %v", v.Strategy, v.Err)
		case !v.Exact:
			p.aside("%-10s %s (inexact)", v.Strategy, plainVerdict(v.Balanced))
		default:
			p.field(v.Strategy, balanceWord(v.Balanced))
		}
	}

	if !r.Consistent {
		p.verdict(false, "strategies disagree")
		return
	}
	p.verdict(r.Balanced, "%s is %s", r.Name, balanceWord(r.Balanced))
}

func plainVerdict(balanced bool) string {
	if balanced {
		return "balanced"
	}
	return "unbalanced"
}
