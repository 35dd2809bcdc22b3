// SPDX-License-Identifier: MIT
// Package: lvbalance/builder
//
// samples.go - named signed-graph scenarios.
//
// Each sample is a fixed edge list replayed by FromEdges, so the IDs are the
// ones written here and ignore WithIDScheme.

package builder

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvbalance/core"
)

const methodFromEdges = "FromEdges"

// Sample names accepted by LookupSample.
const (
	SampleBalancedTriangle   = "balanced-triangle"
	SampleUnbalancedTriangle = "unbalanced-triangle"
	SampleBalancedQuad       = "balanced-quad"
	SampleUnbalancedQuad     = "unbalanced-quad"
	SampleComplexNetwork15   = "complex-network-15"
	SampleMixedSquare        = "mixed-square"
)

// Sample is a named fixed scenario.
type Sample struct {
	Name        string
	Description string
	Edges       []core.Edge
}

// Graph builds a fresh graph holding the sample's edges.
func (s Sample) Graph() (*core.Graph, error) {
	return BuildGraph(nil, FromEdges(s.Edges))
}

// FromEdges returns a Constructor that adds edges in the given order.
func FromEdges(edges []core.Edge) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, e := range edges {
			if err := addEdge(g, e.U, e.V, e.Polarity, methodFromEdges); err != nil {
				return err
			}
		}
		return nil
	}
}

func pos(u, v string) core.Edge { return core.Edge{U: u, V: v, Polarity: core.Positive} }
func neg(u, v string) core.Edge { return core.Edge{U: u, V: v, Polarity: core.Negative} }

var samples = []Sample{
	{
		Name:        SampleBalancedTriangle,
		Description: "three mutual friends",
		Edges:       []core.Edge{pos("A", "B"), pos("A", "C"), pos("B", "C")},
	},
	{
		Name:        SampleUnbalancedTriangle,
		Description: "two friends of A who dislike each other",
		Edges:       []core.Edge{pos("A", "B"), pos("A", "C"), neg("B", "C")},
	},
	{
		Name:        SampleBalancedQuad,
		Description: "complete K4 split into factions {A,B} and {C,D}",
		Edges: []core.Edge{
			neg("A", "C"), pos("A", "B"), neg("A", "D"),
			neg("B", "C"), neg("B", "D"), pos("C", "D"),
		},
	},
	{
		Name:        SampleUnbalancedQuad,
		Description: "complete K4 with no consistent faction split",
		Edges: []core.Edge{
			neg("A", "B"), pos("A", "C"), neg("A", "D"),
			pos("B", "C"), pos("B", "D"), neg("C", "D"),
		},
	},
	{
		Name:        SampleComplexNetwork15,
		Description: "sparse 15-node network with an odd negative ring",
		Edges: []core.Edge{
			pos("1", "2"), pos("1", "3"), pos("2", "3"),
			neg("2", "4"), pos("2", "5"), neg("3", "6"), neg("5", "6"),
			neg("4", "7"), neg("4", "9"), pos("7", "12"), pos("9", "12"),
			pos("6", "8"), neg("6", "11"), neg("8", "11"),
			neg("10", "11"), neg("11", "14"), pos("12", "13"), neg("13", "15"), neg("14", "15"),
		},
	},
	{
		Name:        SampleMixedSquare,
		Description: "4-cycle with two negative edges, balanced but triangle-free",
		Edges:       []core.Edge{neg("A", "B"), pos("B", "C"), neg("C", "D"), pos("D", "A")},
	},
}

// Samples returns every named sample in registration order.
// The returned samples are copies.
func Samples() []Sample {
	out := make([]Sample, len(samples))
	for i, s := range samples {
		s.Edges = slices.Clone(s.Edges)
		out[i] = s
	}

	return out
}

// LookupSample returns the sample registered under name.
func LookupSample(name string) (Sample, error) {
	for _, s := range samples {
		if s.Name == name {
			s.Edges = slices.Clone(s.Edges)
			return s, nil
		}
	}

	return Sample{}, fmt.Errorf("LookupSample: %q: %w", name, ErrUnknownSample)
}

// BalancedTriangle returns a Constructor for the balanced-triangle sample.
func BalancedTriangle() Constructor { return sampleConstructor(SampleBalancedTriangle) }

// UnbalancedTriangle returns a Constructor for the unbalanced-triangle sample.
func UnbalancedTriangle() Constructor { return sampleConstructor(SampleUnbalancedTriangle) }

// BalancedQuad returns a Constructor for the balanced-quad sample.
func BalancedQuad() Constructor { return sampleConstructor(SampleBalancedQuad) }

// UnbalancedQuad returns a Constructor for the unbalanced-quad sample.
func UnbalancedQuad() Constructor { return sampleConstructor(SampleUnbalancedQuad) }

// ComplexNetwork15 returns a Constructor for the 15-node network sample.
func ComplexNetwork15() Constructor { return sampleConstructor(SampleComplexNetwork15) }

// MixedSquare returns a Constructor for the mixed 4-cycle sample.
func MixedSquare() Constructor { return sampleConstructor(SampleMixedSquare) }

func sampleConstructor(name string) Constructor {
	s, err := LookupSample(name)
	if err != nil {
		return func(*core.Graph, builderConfig) error { return err }
	}

	return FromEdges(s.Edges)
}
