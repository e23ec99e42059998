package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-graph/lattice/core"
	"github.com/arborist-graph/lattice/dijkstra"
)

func textbookGraph() *core.AdjacencyList[core.WeightedEdge[int]] {
	g := core.New[core.WeightedEdge[int]](core.Directed, 5)
	g.Add(core.NewWeightedEdge(0, 1, 10))
	g.Add(core.NewWeightedEdge(0, 2, 3))
	g.Add(core.NewWeightedEdge(1, 2, 1))
	g.Add(core.NewWeightedEdge(2, 1, 4))
	g.Add(core.NewWeightedEdge(1, 3, 2))
	g.Add(core.NewWeightedEdge(2, 3, 8))
	g.Add(core.NewWeightedEdge(2, 4, 2))
	g.Add(core.NewWeightedEdge(4, 3, 1))
	g.Add(core.NewWeightedEdge(3, 4, 7))
	return g
}

func TestDijkstraNilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra[int](nil, 0)
	require.ErrorIs(t, err, dijkstra.ErrGraphNil)
}

func TestDijkstraSourceOutOfRange(t *testing.T) {
	g := textbookGraph()
	_, err := dijkstra.Dijkstra(g, 9)
	require.ErrorIs(t, err, dijkstra.ErrSourceNotFound)
}

func TestDijkstraShortestDistances(t *testing.T) {
	g := textbookGraph()
	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	require.Equal(t, 0, res.Dist[0])
	require.Equal(t, 7, res.Dist[1])
	require.Equal(t, 3, res.Dist[2])
	require.Equal(t, 6, res.Dist[3])
	require.Equal(t, 5, res.Dist[4])
}

func TestDijkstraReturnPathDisabledByDefault(t *testing.T) {
	g := textbookGraph()
	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	require.Nil(t, res.Prev)
}

func TestDijkstraPathTo(t *testing.T) {
	g := textbookGraph()
	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath[int]())
	require.NoError(t, err)

	path, ok := res.PathTo(0, 3)
	require.True(t, ok)
	require.Equal(t, []int{0, 2, 4, 3}, path)
}

func TestDijkstraUnreachableVertexHasNoPath(t *testing.T) {
	g := core.New[core.WeightedEdge[int]](core.Directed, 3)
	g.Add(core.NewWeightedEdge(0, 1, 1))
	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath[int]())
	require.NoError(t, err)
	_, ok := res.Dist[2]
	require.False(t, ok)
	_, ok = res.PathTo(0, 2)
	require.False(t, ok)
}

func TestDijkstraNegativeWeightRejected(t *testing.T) {
	g := core.New[core.WeightedEdge[int]](core.Directed, 2)
	g.Add(core.NewWeightedEdge(0, 1, -5))
	_, err := dijkstra.Dijkstra(g, 0)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstraUndirectedGraphFollowsBothOrientations(t *testing.T) {
	g := core.New[core.WeightedEdge[int]](core.Undirected, 3)
	g.Add(core.NewWeightedEdge(0, 1, 1))
	g.Add(core.NewWeightedEdge(1, 2, 1))
	res, err := dijkstra.Dijkstra(g, 2)
	require.NoError(t, err)
	require.Equal(t, 1, res.Dist[1])
	require.Equal(t, 2, res.Dist[0])
}

func TestDijkstraMaxDistanceLeavesFarVerticesUnreached(t *testing.T) {
	g := textbookGraph()
	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(5))
	require.NoError(t, err)
	require.Contains(t, res.Dist, 0)
	require.Contains(t, res.Dist, 2)
	require.Contains(t, res.Dist, 4)
	require.NotContains(t, res.Dist, 3)
}

func TestDijkstraMaxDistanceNegativeRejected(t *testing.T) {
	g := textbookGraph()
	_, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(-1))
	require.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
}

func TestDijkstraInfEdgeThresholdBlocksHeavyEdges(t *testing.T) {
	g := core.New[core.WeightedEdge[int]](core.Directed, 3)
	g.Add(core.NewWeightedEdge(0, 1, 1))
	g.Add(core.NewWeightedEdge(1, 2, 100))

	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	require.Equal(t, 0, res.Dist[0])
	require.Equal(t, 1, res.Dist[1])
	_, ok := res.Dist[2]
	require.False(t, ok)
}

func TestDijkstraInfEdgeThresholdNonPositiveRejected(t *testing.T) {
	g := textbookGraph()
	_, err := dijkstra.Dijkstra(g, 0, dijkstra.WithInfEdgeThreshold(0))
	require.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)
}
