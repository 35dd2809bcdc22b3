package cycle_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvbalance/core"
	"github.com/katalvlaran/lvbalance/cycle"
)

// BenchmarkFindAll_K8 enumerates the 8,018 simple cycles of K8.
// The graph is built once; only the enumeration is timed.
func BenchmarkFindAll_K8(b *testing.B) {
	g := complete(b, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cycle.FindAll(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkIsBalanced_Ladder measures a balanced ladder of 2×12 nodes, where no
// early exit is possible and every cycle must be visited.
func BenchmarkIsBalanced_Ladder(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 12; i++ {
		top, bot := fmt.Sprintf("t%02d", i), fmt.Sprintf("b%02d", i)
		_ = g.AddEdge(top, bot, core.Negative)
		if i > 0 {
			_ = g.AddEdge(fmt.Sprintf("t%02d", i-1), top, core.Positive)
			_ = g.AddEdge(fmt.Sprintf("b%02d", i-1), bot, core.Positive)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ok, err := cycle.IsBalanced(g)
		if err != nil || !ok {
			b.Fatalf("ok=%v err=%v", ok, err)
		}
	}
}
