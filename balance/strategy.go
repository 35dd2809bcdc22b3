package balance

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvbalance/core"
	"github.com/katalvlaran/lvbalance/cycle"
	"github.com/katalvlaran/lvbalance/supernode"
	"github.com/katalvlaran/lvbalance/triangle"
)

// Strategy decides whether a signed graph is structurally balanced.
// Implementations must not mutate g and must be safe for concurrent use on
// distinct graphs.
type Strategy interface {
	Name() string
	Check(ctx context.Context, g *core.Graph) (bool, error)
}

// partial is implemented by strategies that are not exact on every graph.
type partial interface {
	ExactOn(g *core.Graph) bool
}

// Strategy names accepted by StrategyByName.
const (
	TriangleName  = "triangle"
	CycleName     = "cycle"
	SuperNodeName = "supernode"
)

type triangleStrategy struct{ c triangle.Checker }

func (s triangleStrategy) Name() string { return s.c.Name() }

func (s triangleStrategy) Check(ctx context.Context, g *core.Graph) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.c.IsBalanced(g), nil
}

// ExactOn is true only for complete graphs; elsewhere incomplete triples are skipped.
func (triangleStrategy) ExactOn(g *core.Graph) bool { return g.IsComplete() }

type cycleStrategy struct{ c cycle.Checker }

func (s cycleStrategy) Name() string { return s.c.Name() }

func (s cycleStrategy) Check(ctx context.Context, g *core.Graph) (bool, error) {
	opts := append(slices.Clone(s.c.Options), cycle.WithContext(ctx))
	return cycle.IsBalanced(g, opts...)
}

type superNodeStrategy struct{ c supernode.Checker }

func (s superNodeStrategy) Name() string { return s.c.Name() }

func (s superNodeStrategy) Check(ctx context.Context, g *core.Graph) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.c.IsBalanced(g), nil
}

// Triangle returns the triangle-parity strategy.
func Triangle() Strategy { return triangleStrategy{} }

// Cycle returns the exhaustive cycle strategy; opts are applied on every check
// and the check context is added to them.
func Cycle(opts ...cycle.Option) Strategy {
	return cycleStrategy{c: cycle.Checker{Options: opts}}
}

// SuperNode returns the contraction and two-coloring strategy.
func SuperNode() Strategy { return superNodeStrategy{} }

// DefaultStrategies returns triangle, cycle and supernode, in that order.
func DefaultStrategies(cycleOpts ...cycle.Option) []Strategy {
	return []Strategy{Triangle(), Cycle(cycleOpts...), SuperNode()}
}

// StrategyByName resolves one of TriangleName, CycleName or SuperNodeName.
func StrategyByName(name string, cycleOpts ...cycle.Option) (Strategy, error) {
	switch name {
	case TriangleName:
		return Triangle(), nil
	case CycleName:
		return Cycle(cycleOpts...), nil
	case SuperNodeName:
		return SuperNode(), nil
	}

	return nil, fmt.Errorf("StrategyByName: %q: %w", name, ErrUnknownStrategy)
}

// exactOn reports whether s decides balance exactly on g.
func exactOn(s Strategy, g *core.Graph) bool {
	if p, ok := s.(partial); ok {
		return p.ExactOn(g)
	}
	return true
}
