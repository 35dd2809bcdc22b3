// Package cycle defines the Cycle type, search options and sentinel errors.
package cycle

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvbalance/core"
)

var (
	// ErrGraphTooLarge is returned when the graph exceeds WithMaxNodes.
	ErrGraphTooLarge = errors.New("cycle: graph exceeds node limit")

	// ErrCycleLimit is returned when more than WithMaxCycles cycles are found.
	ErrCycleLimit = errors.New("cycle: cycle limit exceeded")

	// ErrOptionViolation indicates a meaningless option value (e.g. a negative limit).
	ErrOptionViolation = errors.New("cycle: invalid option value")
)

// Cycle is a simple cycle of a signed graph.
//
// Nodes is the canonical sequence without repeating the first node;
// Edges[i] labels the edge Nodes[i]–Nodes[(i+1)%len(Nodes)].
type Cycle struct {
	Nodes         []string
	Edges         []core.Polarity
	NegativeCount int
}

// Len returns the number of edges (equal to the number of nodes).
func (c Cycle) Len() int { return len(c.Nodes) }

// Balanced reports whether the cycle has an even number of negative edges.
func (c Cycle) Balanced() bool { return c.NegativeCount%2 == 0 }

// Option configures a cycle search.
type Option func(*Options)

// Options holds the guards applied to one search.
type Options struct {
	// Ctx is polled while searching; defaults to context.Background().
	Ctx context.Context

	// MaxNodes rejects graphs with more nodes; 0 disables the check.
	MaxNodes int

	// MaxCycles aborts after this many unique cycles; 0 disables the check.
	MaxCycles int

	err error // first option violation, reported by the search entry point
}

// DefaultOptions returns unlimited guards with a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxNodes:  0,
		MaxCycles: 0,
	}
}

// WithContext sets the context polled during the search.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxNodes refuses graphs with more than n nodes. n == 0 disables the guard.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxNodes = n
	}
}

// WithMaxCycles aborts the search once more than n unique cycles are found.
// n == 0 disables the guard.
func WithMaxCycles(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxCycles = n
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Checker is the cycle strategy as a value; Options are applied on every call.
type Checker struct {
	Options []Option
}

// Name returns "cycle".
func (Checker) Name() string { return "cycle" }

// IsBalanced delegates to the package-level IsBalanced with c.Options.
func (c Checker) IsBalanced(g *core.Graph) (bool, error) { return IsBalanced(g, c.Options...) }

// FindUnbalanced delegates to the package-level FindUnbalanced with c.Options.
func (c Checker) FindUnbalanced(g *core.Graph) ([]Cycle, error) {
	return FindUnbalanced(g, c.Options...)
}
