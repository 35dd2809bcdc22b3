// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbalance/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and all
// neighbors appear with their polarity.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			p := core.Positive
			if id%2 == 1 {
				p = core.Negative
			}
			assert.NoError(t, g.AddEdge("X", fmt.Sprintf("V%03d", id), p))
		}(i)
	}
	wg.Wait()

	require.Len(t, g.Neighbors("X"), num)
	assert.Equal(t, num, g.EdgeCount())
	assert.Equal(t, num/2, g.NegativeEdgeCount())
}

// TestConcurrentReadersDuringWrites mixes readers and writers; the race
// detector must stay quiet and every edge must stay symmetric.
func TestConcurrentReadersDuringWrites(t *testing.T) {
	g := core.NewGraph()
	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge("Base", fmt.Sprintf("V%d", id), core.Negative)
		}(i)
		go func() {
			defer wg.Done()
			for _, e := range g.Edges() {
				p, ok := g.EdgeLabel(e.V, e.U)
				assert.True(t, ok)
				assert.Equal(t, e.Polarity, p)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, rounds, g.EdgeCount())
}
