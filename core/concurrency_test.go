package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-graph/lattice/core"
)

// TestConcurrentReadsOfFrozenGraph exercises the concurrency model described
// in doc.go: a graph that is not being mutated is safe to read from many
// goroutines at once, with no locking required on AdjacencyList's part.
func TestConcurrentReadsOfFrozenGraph(t *testing.T) {
	g := core.New[core.WeightedEdge[int]](core.Undirected, 50)
	for v := 0; v < 49; v++ {
		g.Add(core.NewWeightedEdge(v, v+1, v))
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			total := 0
			for v := 0; v < g.VertexCount(); v++ {
				total += len(g.Adjacent(v))
			}
			require.Equal(t, 2*g.EdgeCount(), total)
		}()
	}
	wg.Wait()
}

// TestConcurrentMutationOfIndependentClones confirms Clone gives each
// goroutine an independent graph: concurrent mutation of clones never
// races because nothing is shared.
func TestConcurrentMutationOfIndependentClones(t *testing.T) {
	base := core.New[core.UnweightedEdge](core.Directed, 8)
	base.Add(core.NewUnweightedEdge(0, 1))

	var wg sync.WaitGroup
	for i := 1; i < 8; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := base.Clone()
			c.Add(core.NewUnweightedEdge(i, (i+1)%8))
			require.Equal(t, 2, c.EdgeCount())
		}()
	}
	wg.Wait()
	require.Equal(t, 1, base.EdgeCount(), "base graph must be unaffected by clone mutation")
}
