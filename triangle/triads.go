package triangle

import (
	"sort"

	"github.com/katalvlaran/lvbalance/core"
)

// OpenTriad is a path U-Via-W whose endpoints are not adjacent: a triangle
// waiting for its third edge. U < W always.
type OpenTriad struct {
	U, W, Via string
	// Edges holds the polarities of (U,Via) and (Via,W).
	Edges [2]core.Polarity
	// Predicted is the sign of U-W that would make the closed triangle
	// balanced: positive when both edges agree, negative otherwise.
	Predicted core.Polarity
}

// Closure groups the open triads of one missing edge.
type Closure struct {
	U, W string
	// Vias lists every common neighbor of U and W, sorted.
	Vias []string
	// Predicted is the balance-preserving sign implied by Vias[0].
	Predicted core.Polarity
	// Conflicting is true when two common neighbors imply opposite signs,
	// so no sign for U-W keeps every new triangle balanced.
	Conflicting bool
}

// PredictSign returns the polarity that closes a path of signs a and b into a
// balanced triangle.
func PredictSign(a, b core.Polarity) core.Polarity {
	if a == b {
		return core.Positive
	}
	return core.Negative
}

// OpenTriads returns every open triad of g, one per (pair, common neighbor),
// sorted by (U, W, Via). A nil graph has none.
func OpenTriads(g *core.Graph) []OpenTriad {
	if g == nil {
		return nil
	}

	var out []OpenTriad
	for _, via := range g.Nodes() {
		nbs := g.NeighborsWithLabels(via)
		for i := 0; i < len(nbs); i++ {
			for j := i + 1; j < len(nbs); j++ {
				u, w := nbs[i], nbs[j] // u.ID < w.ID: neighbors are sorted
				if g.HasEdge(u.ID, w.ID) {
					continue
				}
				out = append(out, OpenTriad{
					U:         u.ID,
					W:         w.ID,
					Via:       via,
					Edges:     [2]core.Polarity{u.Polarity, w.Polarity},
					Predicted: PredictSign(u.Polarity, w.Polarity),
				})
			}
		}
	}

	sort.Slice(out, func(a, b int) bool {
		if out[a].U != out[b].U {
			return out[a].U < out[b].U
		}
		if out[a].W != out[b].W {
			return out[a].W < out[b].W
		}
		return out[a].Via < out[b].Via
	})

	return out
}

// Closures collapses OpenTriads into one entry per missing edge, sorted by
// (U, W).
func Closures(g *core.Graph) []Closure {
	var out []Closure
	for _, t := range OpenTriads(g) {
		n := len(out)
		if n > 0 && out[n-1].U == t.U && out[n-1].W == t.W {
			last := &out[n-1]
			last.Vias = append(last.Vias, t.Via)
			if t.Predicted != last.Predicted {
				last.Conflicting = true
			}
			continue
		}
		out = append(out, Closure{U: t.U, W: t.W, Vias: []string{t.Via}, Predicted: t.Predicted})
	}

	return out
}
