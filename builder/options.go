// SPDX-License-Identifier: MIT
// Package: lvbalance/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Meaningless values are recorded as ErrOptionViolation and reported by
//     BuildGraph; nothing panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node ID generator: idx -> string.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.err = ErrOptionViolation
			return
		}
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r == nil {
			c.err = ErrOptionViolation
			return
		}
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithFactionSize puts the first k nodes of Complete into faction X.
// k == 0 (the default) leaves a single faction and an all-positive graph.
func WithFactionSize(k int) BuilderOption {
	return func(c *builderConfig) {
		if k < 0 {
			c.err = ErrOptionViolation
			return
		}
		c.factionSize = k
	}
}
