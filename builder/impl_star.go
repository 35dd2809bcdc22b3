// SPDX-License-Identifier: MIT
// Package: lvbalance/builder
//
// impl_star.go - implementation of Star(n, p).
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices): hub CenterNodeID plus n-1 leaves idFn(0..n-2).
//   • Spokes are emitted in leaf index order, all of polarity p.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbalance/core"
)

// CenterNodeID is the hub of Star.
const CenterNodeID = "Center"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n nodes in total.
func Star(n int, p core.Polarity) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddNode(CenterNodeID); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", methodStar, CenterNodeID, err)
		}
		leaves, err := addNodes(g, n-1, cfg, methodStar)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err = addEdge(g, CenterNodeID, leaf, p, methodStar); err != nil {
				return err
			}
		}

		return nil
	}
}
