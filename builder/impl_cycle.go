// SPDX-License-Identifier: MIT
// Package: lvbalance/builder
//
// impl_cycle.go - implementation of Cycle(n, negatives).
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices); 0 ≤ negatives ≤ n (else ErrInvalidParameter).
//   • Nodes idFn(0..n-1) in index order; edges i→(i+1)%n for i=0..n-1.
//   • The first `negatives` ring edges are negative, the rest positive, so the
//     cycle is balanced iff negatives is even.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbalance/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the signed ring C_n.
func Cycle(n, negatives int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if negatives < 0 || negatives > n {
			return fmt.Errorf("%s: negatives=%d not in [0,%d]: %w", methodCycle, negatives, n, ErrInvalidParameter)
		}

		ids, err := addNodes(g, n, cfg, methodCycle)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			p := core.Positive
			if i < negatives {
				p = core.Negative
			}
			if err = addEdge(g, ids[i], ids[(i+1)%n], p, methodCycle); err != nil {
				return err
			}
		}

		return nil
	}
}
