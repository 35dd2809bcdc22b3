// SPDX-License-Identifier: MIT
// Package: lvbalance/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Constructors attach context with %w ("Cycle: n=2 < min=3: ...").

package builder

import "errors"

// ErrTooFewVertices indicates that n is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidParameter indicates a count outside its valid range
// (e.g. more negative edges than the ring has, or a faction larger than K_n).
var ErrInvalidParameter = errors.New("builder: parameter out of range")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a core insertion failure.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownSample is returned by LookupSample for an unregistered name.
var ErrUnknownSample = errors.New("builder: unknown sample")

// ErrOptionViolation indicates that a WithX option received a meaningless
// value (nil RNG, nil ID scheme, negative faction size). It is reported by
// BuildGraph before any constructor runs.
var ErrOptionViolation = errors.New("builder: invalid option value")
