// SPDX-License-Identifier: MIT
// Package: lvbalance/builder
//
// impl_complete.go - implementation of Complete(n).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); WithFactionSize(k) needs k ≤ n
//     (else ErrInvalidParameter).
//   • Nodes 0..k-1 form faction X, k..n-1 faction Y.
//   • Each pair {i,j}, i<j, is emitted once in lexicographic order: positive
//     inside a faction, negative across. The result is balanced.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbalance/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds a balanced signed K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		k := cfg.factionSize
		if k > n {
			return fmt.Errorf("%s: faction size %d > n=%d: %w", methodComplete, k, n, ErrInvalidParameter)
		}

		ids, err := addNodes(g, n, cfg, methodComplete)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				p := core.Positive
				if (i < k) != (j < k) {
					p = core.Negative
				}
				if err = addEdge(g, ids[i], ids[j], p, methodComplete); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
