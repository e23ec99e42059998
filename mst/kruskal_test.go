package mst_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-graph/lattice/core"
	"github.com/arborist-graph/lattice/mst"
)

func TestKruskalNilGraph(t *testing.T) {
	_, err := mst.Kruskal[int](nil)
	require.ErrorIs(t, err, mst.ErrGraphNil)
}

func TestKruskalRequiresUndirected(t *testing.T) {
	g := core.New[core.WeightedEdge[int]](core.Directed, 2)
	_, err := mst.Kruskal(g)
	require.ErrorIs(t, err, mst.ErrRequiresUndirected)
}

func TestKruskalSingleVertex(t *testing.T) {
	g := core.New[core.WeightedEdge[int]](core.Undirected, 1)
	res, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Empty(t, res.Edges)
	require.Equal(t, 0, res.TotalWeight)
}

func TestKruskalEmptyGraph(t *testing.T) {
	g := core.New[core.WeightedEdge[int]](core.Undirected, 0)
	res, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Empty(t, res.Edges)
}

func TestKruskalClassicNetwork(t *testing.T) {
	g := core.New[core.WeightedEdge[int]](core.Undirected, 4)
	g.Add(core.NewWeightedEdge(0, 1, 1))
	g.Add(core.NewWeightedEdge(1, 2, 2))
	g.Add(core.NewWeightedEdge(2, 3, 3))
	g.Add(core.NewWeightedEdge(0, 3, 10))
	g.Add(core.NewWeightedEdge(0, 2, 4))

	res, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Len(t, res.Edges, 3)
	require.Equal(t, 6, res.TotalWeight)
}

func TestKruskalDisconnectedGraph(t *testing.T) {
	g := core.New[core.WeightedEdge[int]](core.Undirected, 4)
	g.Add(core.NewWeightedEdge(0, 1, 1))
	g.Add(core.NewWeightedEdge(2, 3, 1))

	_, err := mst.Kruskal(g)
	require.ErrorIs(t, err, mst.ErrDisconnected)
}

func TestKruskalSkipsSelfLoops(t *testing.T) {
	g := core.New[core.WeightedEdge[int]](core.Undirected, 2)
	g.Add(core.NewWeightedEdge(0, 0, 5))
	g.Add(core.NewWeightedEdge(0, 1, 2))

	res, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Len(t, res.Edges, 1)
	require.Equal(t, 2, res.TotalWeight)
}

func TestKruskalTieBreaksDeterministically(t *testing.T) {
	g := core.New[core.WeightedEdge[int]](core.Undirected, 3)
	g.Add(core.NewWeightedEdge(0, 1, 1))
	g.Add(core.NewWeightedEdge(1, 2, 1))
	g.Add(core.NewWeightedEdge(0, 2, 1))

	res1, err := mst.Kruskal(g)
	require.NoError(t, err)
	res2, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Equal(t, res1.Edges, res2.Edges)
}
