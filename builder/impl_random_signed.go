// SPDX-License-Identifier: MIT
// Package: lvbalance/builder
//
// impl_random_signed.go - implementation of RandomSigned(n, p, q).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); p, q ∈ [0,1] (else ErrInvalidProbability).
//   • Requires cfg.rng (WithSeed/WithRand), else ErrNeedRandSource.
//   • Pairs {i,j}, i<j, are visited in lexicographic order. One draw decides
//     the edge (< p); a second draw, made only for edges, decides the sign
//     (< q ⇒ negative).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbalance/core"
)

const (
	methodRandomSigned   = "RandomSigned"
	minRandomSignedNodes = 1
)

// RandomSigned returns a Constructor for an Erdős–Rényi graph with random signs.
func RandomSigned(n int, p, q float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSignedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSigned, n, minRandomSignedNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.4f: %w", methodRandomSigned, p, ErrInvalidProbability)
		}
		if q < 0 || q > 1 {
			return fmt.Errorf("%s: q=%.4f: %w", methodRandomSigned, q, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSigned, ErrNeedRandSource)
		}

		ids, err := addNodes(g, n, cfg, methodRandomSigned)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				pol := core.Positive
				if cfg.rng.Float64() < q {
					pol = core.Negative
				}
				if err = addEdge(g, ids[i], ids[j], pol, methodRandomSigned); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
