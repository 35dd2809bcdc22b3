// SPDX-License-Identifier: MIT
// Package: lvbalance/builder
//
// impl_path.go - implementation of Path(n, p).
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Edges i→i+1 for i=0..n-2, all of polarity p. A path has no cycle and
//     is balanced for every p.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbalance/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the path P_n with uniform polarity p.
func Path(n int, p core.Polarity) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addNodes(g, n, cfg, methodPath)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(g, ids[i], ids[i+1], p, methodPath); err != nil {
				return err
			}
		}

		return nil
	}
}
