package balance_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbalance/balance"
	"github.com/katalvlaran/lvbalance/builder"
	"github.com/katalvlaran/lvbalance/core"
	"github.com/katalvlaran/lvbalance/cycle"
)

func sample(t *testing.T, name string) *core.Graph {
	t.Helper()
	s, err := builder.LookupSample(name)
	require.NoError(t, err)
	g, err := s.Graph()
	require.NoError(t, err)
	return g
}

func verdict(t *testing.T, r *balance.Report, name string) balance.Verdict {
	t.Helper()
	for _, v := range r.Verdicts {
		if v.Strategy == name {
			return v
		}
	}
	t.Fatalf("no verdict for %s", name)
	return balance.Verdict{}
}

func TestAnalyze_Samples(t *testing.T) {
	tests := []struct {
		name     string
		balanced bool
		complete bool
		triangle bool // triangle verdict
	}{
		{builder.SampleBalancedTriangle, true, true, true},
		{builder.SampleUnbalancedTriangle, false, true, false},
		{builder.SampleBalancedQuad, true, true, true},
		{builder.SampleUnbalancedQuad, false, true, false},
		{builder.SampleComplexNetwork15, false, false, true},
		{builder.SampleMixedSquare, true, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := balance.Analyze(context.Background(), sample(t, tc.name))
			require.NoError(t, err)

			assert.Equal(t, tc.balanced, r.Balanced)
			assert.True(t, r.Exact)
			assert.True(t, r.Consistent)
			assert.Equal(t, tc.complete, r.Complete)
			require.Len(t, r.Verdicts, 3)

			tri := verdict(t, r, balance.TriangleName)
			assert.Equal(t, tc.triangle, tri.Balanced)
			assert.Equal(t, tc.complete, tri.Exact)
			assert.True(t, verdict(t, r, balance.CycleName).Exact)
			assert.Equal(t, tc.balanced, verdict(t, r, balance.SuperNodeName).Balanced)
		})
	}
}

// TestEquivalenceLaw checks cycle == supernode on every graph, and
// triangle == both on complete graphs.
func TestEquivalenceLaw(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 40; seed++ {
		n := 4 + int(seed%5)
		p := 0.3 + float64(seed%4)*0.2
		q := float64(seed%3) * 0.25

		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSigned(n, p, q))
		require.NoError(t, err)

		r, err := balance.Analyze(ctx, g)
		require.NoError(t, err)
		assert.True(t, r.Consistent, "seed %d", seed)
		assert.Equal(t,
			verdict(t, r, balance.CycleName).Balanced,
			verdict(t, r, balance.SuperNodeName).Balanced,
			"seed %d", seed)
		if r.Complete {
			assert.Equal(t, r.Balanced, verdict(t, r, balance.TriangleName).Balanced, "seed %d", seed)
		}
	}
}

func TestEquivalenceLaw_CompleteFactions(t *testing.T) {
	for k := 0; k <= 6; k++ {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithFactionSize(k)}, builder.Complete(6))
		require.NoError(t, err)

		r, err := balance.Analyze(context.Background(), g)
		require.NoError(t, err)
		assert.True(t, r.Balanced, "k=%d", k)
		assert.True(t, r.Consistent, "k=%d", k)
		for _, v := range r.Verdicts {
			assert.True(t, v.Exact)
			assert.True(t, v.Balanced, "%s k=%d", v.Strategy, k)
		}
	}
}

func TestAnalyze_CycleGuardRecorded(t *testing.T) {
	g := sample(t, builder.SampleComplexNetwork15)
	r, err := balance.Analyze(context.Background(), g,
		balance.WithStrategies(balance.DefaultStrategies(cycle.WithMaxNodes(10))...))
	require.NoError(t, err)

	cv := verdict(t, r, balance.CycleName)
	assert.ErrorIs(t, cv.Err, cycle.ErrGraphTooLarge)
	assert.False(t, cv.Balanced)
	assert.False(t, r.Balanced)
	assert.True(t, r.Exact)
	assert.True(t, r.Consistent)
}

func TestAnalyze_AllFailed(t *testing.T) {
	g := sample(t, builder.SampleBalancedQuad)
	r, err := balance.Analyze(context.Background(), g,
		balance.WithStrategies(balance.Cycle(cycle.WithMaxNodes(1))))
	assert.ErrorIs(t, err, balance.ErrAllStrategiesFailed)
	require.NotNil(t, r)
	assert.False(t, r.Consistent)
}

func TestAnalyze_InexactOnly(t *testing.T) {
	g := sample(t, builder.SampleMixedSquare)
	r, err := balance.Analyze(context.Background(), g, balance.WithStrategies(balance.Triangle()))
	require.NoError(t, err)
	assert.True(t, r.Balanced)
	assert.False(t, r.Exact)
	assert.True(t, r.Consistent)
}

func TestAnalyze_Options(t *testing.T) {
	ctx := context.Background()

	_, err := balance.Analyze(ctx, core.NewGraph(), balance.WithStrategies())
	assert.ErrorIs(t, err, balance.ErrNoStrategies)

	_, err = balance.AnalyzeAll(ctx, nil, balance.WithWorkers(0))
	assert.ErrorIs(t, err, balance.ErrOptionViolation)

	r, err := balance.Analyze(ctx, nil)
	require.NoError(t, err)
	assert.True(t, r.Balanced)
	assert.Zero(t, r.Nodes)
}

func TestAnalyze_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := balance.Analyze(ctx, sample(t, builder.SampleBalancedQuad))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestAnalyze_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, err := balance.Analyze(context.Background(), sample(t, builder.SampleUnbalancedTriangle),
		balance.WithLogger(logger))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "strategy done")
	assert.Contains(t, out, "supernode")
}

func TestAnalyzeAll_KeepsOrder(t *testing.T) {
	var graphs []balance.Named
	for _, s := range builder.Samples() {
		g, err := s.Graph()
		require.NoError(t, err)
		graphs = append(graphs, balance.Named{Name: s.Name, Graph: g})
	}
	for i := 0; i < 8; i++ {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(int64(i))}, builder.RandomSigned(7, 0.5, 0.3))
		require.NoError(t, err)
		graphs = append(graphs, balance.Named{Name: fmt.Sprintf("random-%d", i), Graph: g})
	}

	reports, err := balance.AnalyzeAll(context.Background(), graphs, balance.WithWorkers(4))
	require.NoError(t, err)
	require.Len(t, reports, len(graphs))
	for i, r := range reports {
		assert.Equal(t, graphs[i].Name, r.Name)
		assert.Equal(t, graphs[i].Graph.NodeCount(), r.Nodes)
		assert.True(t, r.Consistent, r.Name)
	}
}

func TestAnalyzeAll_PropagatesFailure(t *testing.T) {
	graphs := []balance.Named{
		{Name: "ok", Graph: sample(t, builder.SampleBalancedTriangle)},
		{Name: "big", Graph: sample(t, builder.SampleComplexNetwork15)},
	}
	_, err := balance.AnalyzeAll(context.Background(), graphs,
		balance.WithStrategies(balance.Cycle(cycle.WithMaxNodes(5))))
	assert.ErrorIs(t, err, balance.ErrAllStrategiesFailed)
	assert.Contains(t, err.Error(), "big")
}

func TestStrategyByName(t *testing.T) {
	for _, name := range []string{balance.TriangleName, balance.CycleName, balance.SuperNodeName} {
		s, err := balance.StrategyByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}
	_, err := balance.StrategyByName("pagerank")
	assert.ErrorIs(t, err, balance.ErrUnknownStrategy)
}
