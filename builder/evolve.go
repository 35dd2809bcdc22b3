// SPDX-License-Identifier: MIT
// Package: lvbalance/builder
//
// evolve.go - triadic-closure growth simulation.
//
// Contract:
//   • Evolve mutates g in place and returns statistics; it never removes edges.
//   • Each iteration first offers every missing edge that closes an open triad
//     (probability closureP, sign predicted by balance theory via the lowest
//     common neighbor), then every other missing edge (probability randomP,
//     positive sign).
//   • Candidates are visited in sorted (U, W) order, so a fixed seed replays
//     the same history.
//   • Stops when g is complete or after maxIterations iterations.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbalance/core"
	"github.com/katalvlaran/lvbalance/triangle"
)

const methodEvolve = "Evolve"

// Default parameters of the triadic-closure simulation.
const (
	DefaultClosureProbability = 0.5
	DefaultRandomProbability  = 0.1
	DefaultMaxIterations      = 1000
)

// Evolution summarises one Evolve run.
type Evolution struct {
	Iterations   int
	Completed    bool
	InitialEdges int
	FinalEdges   int
	MaxEdges     int
	// ClosureEdges and RandomEdges count the edges added by each mechanism.
	ClosureEdges int
	RandomEdges  int
}

// Evolve grows g by triadic closure and random links until it is complete.
// It requires WithSeed or WithRand among bopts.
func Evolve(g *core.Graph, closureP, randomP float64, maxIterations int, bopts ...BuilderOption) (Evolution, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return Evolution{}, fmt.Errorf("%s: %w", methodEvolve, cfg.err)
	}
	if g == nil {
		return Evolution{}, fmt.Errorf("%s: nil graph: %w", methodEvolve, ErrConstructFailed)
	}
	if closureP < 0 || closureP > 1 {
		return Evolution{}, fmt.Errorf("%s: closureP=%.4f: %w", methodEvolve, closureP, ErrInvalidProbability)
	}
	if randomP < 0 || randomP > 1 {
		return Evolution{}, fmt.Errorf("%s: randomP=%.4f: %w", methodEvolve, randomP, ErrInvalidProbability)
	}
	if maxIterations < 1 {
		return Evolution{}, fmt.Errorf("%s: maxIterations=%d < 1: %w", methodEvolve, maxIterations, ErrInvalidParameter)
	}
	if cfg.rng == nil {
		return Evolution{}, fmt.Errorf("%s: %w", methodEvolve, ErrNeedRandSource)
	}

	n := g.NodeCount()
	ev := Evolution{InitialEdges: g.EdgeCount(), MaxEdges: n * (n - 1) / 2}

	for ev.Iterations < maxIterations && !g.IsComplete() {
		ev.Iterations++

		for _, c := range triangle.Closures(g) {
			if cfg.rng.Float64() >= closureP {
				continue
			}
			if err := addEdge(g, c.U, c.W, c.Predicted, methodEvolve); err != nil {
				return ev, err
			}
			ev.ClosureEdges++
		}

		// Pairs that became closable during this iteration wait for the next one.
		closable := make(map[[2]string]bool)
		for _, c := range triangle.Closures(g) {
			closable[[2]string{c.U, c.W}] = true
		}
		nodes := g.Nodes()
		for i := 0; i < len(nodes); i++ {
			for j := i + 1; j < len(nodes); j++ {
				u, w := nodes[i], nodes[j]
				if g.HasEdge(u, w) || closable[[2]string{u, w}] {
					continue
				}
				if cfg.rng.Float64() >= randomP {
					continue
				}
				if err := addEdge(g, u, w, core.Positive, methodEvolve); err != nil {
					return ev, err
				}
				ev.RandomEdges++
			}
		}
	}

	ev.FinalEdges = g.EdgeCount()
	ev.Completed = g.IsComplete()

	return ev, nil
}
