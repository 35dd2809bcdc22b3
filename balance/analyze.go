// SPDX-License-Identifier: MIT

package balance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvbalance/core"
)

func resolve(opts []Option) (config, error) {
	c := config{
		strategies: DefaultStrategies(),
		workers:    1,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.err != nil {
		return c, c.err
	}
	if len(c.strategies) == 0 {
		return c, ErrNoStrategies
	}

	return c, nil
}

// Analyze runs every strategy on g in order and compares the verdicts.
// A nil graph is analysed as an empty one.
//
// When every strategy fails, the report is still returned together with an
// error wrapping ErrAllStrategiesFailed. Cancellation of ctx aborts the run.
func Analyze(ctx context.Context, g *core.Graph, opts ...Option) (*Report, error) {
	c, err := resolve(opts)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	r, err := analyze(ctx, "", g, c)
	if err != nil {
		return r, fmt.Errorf("Analyze: %w", err)
	}

	return r, nil
}

// AnalyzeAll analyses independent graphs concurrently, at most WithWorkers at
// a time. Reports keep the order of graphs. The first failing graph cancels
// the rest and its error is returned.
func AnalyzeAll(ctx context.Context, graphs []Named, opts ...Option) ([]*Report, error) {
	c, err := resolve(opts)
	if err != nil {
		return nil, fmt.Errorf("AnalyzeAll: %w", err)
	}

	reports := make([]*Report, len(graphs))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(c.workers)

	for i, n := range graphs {
		eg.Go(func() error {
			r, err := analyze(gctx, n.Name, n.Graph, c)
			if err != nil {
				return fmt.Errorf("%s: %w", n.Name, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("AnalyzeAll: %w", err)
	}

	return reports, nil
}

func analyze(ctx context.Context, name string, g *core.Graph, c config) (*Report, error) {
	if g == nil {
		g = core.NewGraph()
	}

	r := &Report{
		Name:          name,
		Nodes:         g.NodeCount(),
		Edges:         g.EdgeCount(),
		NegativeEdges: g.NegativeEdgeCount(),
		Complete:      g.IsComplete(),
		Verdicts:      make([]Verdict, 0, len(c.strategies)),
	}

	for _, s := range c.strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		ok, err := s.Check(ctx, g)
		v := Verdict{
			Strategy: s.Name(),
			Balanced: ok && err == nil,
			Exact:    exactOn(s, g),
			Err:      err,
			Elapsed:  time.Since(start),
		}
		r.Verdicts = append(r.Verdicts, v)

		if err != nil {
			c.logger.Debug("strategy failed", "graph", name, "strategy", v.Strategy, "err", err)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			continue
		}
		c.logger.Debug("strategy done", "graph", name, "strategy", v.Strategy,
			"balanced", v.Balanced, "exact", v.Exact, "elapsed", v.Elapsed)
	}

	if !r.decide() {
		return r, ErrAllStrategiesFailed
	}

	return r, nil
}

// decide fills Balanced, Exact and Consistent. It returns false when no
// verdict succeeded.
func (r *Report) decide() bool {
	var first *Verdict
	r.Consistent = true
	for i := range r.Verdicts {
		v := &r.Verdicts[i]
		if v.Err != nil {
			continue
		}
		if first == nil {
			first = v
		}
		if !v.Exact {
			continue
		}
		if !r.Exact {
			r.Exact = true
			r.Balanced = v.Balanced
			continue
		}
		if v.Balanced != r.Balanced {
			r.Consistent = false
		}
	}
	if first == nil {
		r.Consistent = false
		return false
	}
	if !r.Exact {
		r.Balanced = first.Balanced
	}

	return true
}
