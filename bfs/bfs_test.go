package bfs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arborist-graph/lattice/bfs"
	"github.com/arborist-graph/lattice/core"
)

func chainGraph(n int) *core.AdjacencyList[core.UnweightedEdge] {
	g := core.New[core.UnweightedEdge](core.Directed, n)
	for v := 0; v < n-1; v++ {
		g.Add(core.NewUnweightedEdge(v, v+1))
	}
	return g
}

func TestBFSNilGraph(t *testing.T) {
	_, err := bfs.BFS[core.UnweightedEdge](nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestBFSStartOutOfRange(t *testing.T) {
	g := chainGraph(3)
	_, err := bfs.BFS(g, 5)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestBFSOrderAndDepth(t *testing.T) {
	g := chainGraph(5)
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)
	for v := 0; v < 5; v++ {
		require.Equal(t, v, res.Depth[v])
	}
}

func TestBFSPathTo(t *testing.T) {
	g := chainGraph(4)
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, path)

	_, err = res.PathTo(99)
	require.Error(t, err)
}

func TestBFSMaxDepth(t *testing.T) {
	g := chainGraph(6)
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 1, 2}, res.Order)
}

func TestBFSNegativeMaxDepthIsOptionViolation(t *testing.T) {
	g := chainGraph(3)
	_, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFSFilterNeighbor(t *testing.T) {
	g := core.New[core.UnweightedEdge](core.Undirected, 4)
	g.Add(core.NewUnweightedEdge(0, 1))
	g.Add(core.NewUnweightedEdge(0, 2))
	g.Add(core.NewUnweightedEdge(1, 3))

	res, err := bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(_, to int) bool {
		return to != 2
	}))
	require.NoError(t, err)
	require.NotContains(t, res.Order, 2)
	require.Contains(t, res.Order, 3)
}

func TestBFSOnVisitError(t *testing.T) {
	g := chainGraph(5)
	boom := errors.New("boom")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 3 {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
}

func TestBFSCallbacksInvoked(t *testing.T) {
	g := chainGraph(3)
	var enqueued, dequeued, visited []int
	_, err := bfs.BFS(g, 0,
		bfs.WithOnEnqueue(func(v, _ int) { enqueued = append(enqueued, v) }),
		bfs.WithOnDequeue(func(v, _ int) { dequeued = append(dequeued, v) }),
		bfs.WithOnVisit(func(v, _ int) error { visited = append(visited, v); return nil }),
	)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, enqueued)
	require.Equal(t, []int{0, 1, 2}, dequeued)
	require.Equal(t, []int{0, 1, 2}, visited)
}

func TestBFSContextCancellation(t *testing.T) {
	g := chainGraph(1000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestBFSContextDeadline(t *testing.T) {
	g := chainGraph(2)
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	time.Sleep(2 * time.Millisecond)
	_, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBFSDisconnectedGraphDoesNotVisitUnreachable(t *testing.T) {
	g := core.New[core.UnweightedEdge](core.Directed, 4)
	g.Add(core.NewUnweightedEdge(0, 1))
	// vertices 2, 3 unreachable from 0.
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 1}, res.Order)
	require.NotContains(t, res.Depth, 2)
	require.NotContains(t, res.Depth, 3)
}
