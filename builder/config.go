// SPDX-License-Identifier: MIT
// Package: lvbalance/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = DefaultIDFn  ("0","1","2",...)
//   • rng         = nil          (pure unless seeded)
//   • factionSize = 0            (Complete is all-positive)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Node ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Size of faction X in Complete; the remaining nodes form faction Y.
	factionSize int

	// First option violation, surfaced by BuildGraph.
	err error
}

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		rng:         nil,
		factionSize: 0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
