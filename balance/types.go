package balance

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvbalance/core"
)

var (
	// ErrNoStrategies is returned when the strategy list is empty.
	ErrNoStrategies = errors.New("balance: no strategies")

	// ErrAllStrategiesFailed is returned when no strategy produced a verdict.
	ErrAllStrategiesFailed = errors.New("balance: all strategies failed")

	// ErrUnknownStrategy is returned by StrategyByName for an unregistered name.
	ErrUnknownStrategy = errors.New("balance: unknown strategy")

	// ErrOptionViolation indicates a meaningless option value.
	ErrOptionViolation = errors.New("balance: invalid option value")
)

// Verdict is the outcome of one strategy on one graph.
type Verdict struct {
	Strategy string
	Balanced bool
	// Exact is false when the strategy cannot decide balance on this graph
	// (the triangle test on an incomplete graph).
	Exact   bool
	Err     error
	Elapsed time.Duration
}

// Report collects every verdict for one graph.
type Report struct {
	Name          string
	Nodes         int
	Edges         int
	NegativeEdges int
	Complete      bool
	Verdicts      []Verdict

	// Balanced is the verdict of the first exact strategy that succeeded,
	// or of the first successful one when none was exact.
	Balanced bool
	// Exact reports whether Balanced came from an exact strategy.
	Exact bool
	// Consistent is true iff all exact, error-free verdicts agree.
	Consistent bool
}

// Named pairs a graph with the name used in its Report.
type Named struct {
	Name  string
	Graph *core.Graph
}

// Option configures Analyze and AnalyzeAll.
type Option func(*config)

type config struct {
	strategies []Strategy
	workers    int
	logger     *log.Logger
	err        error
}

// WithStrategies replaces the default strategy list.
func WithStrategies(ss ...Strategy) Option {
	return func(c *config) {
		c.strategies = ss
	}
}

// WithWorkers bounds the number of graphs AnalyzeAll analyses at once.
// n must be at least 1.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n < 1 {
			c.err = ErrOptionViolation
			return
		}
		c.workers = n
	}
}

// WithLogger sets the logger receiving one debug line per strategy run.
// A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
