package bfs

import "context"

// Result is the outcome of Walk: visit order, per-vertex distance from
// start, predecessor vertex, and the predecessor edge used to reach it
// (absent for start itself).
type Result[E any] struct {
	Order           []int
	Depth           map[int]int
	Parent          map[int]int
	PredecessorEdge map[int]E
}

// Walk is the minimal traversal collaborator: given n vertices, a function
// enumerating the edges incident to a vertex, a function projecting an edge
// to the neighbor it leads to from a given vertex, and a predicate deciding
// whether an edge may be traversed, it explores breadth-first from start and
// returns the reachable set with predecessor bookkeeping.
//
// flow.FlowNetwork.MaxFlow instantiates this with E = *flow.FlowEdge[W],
// edgesOf = the residual adjacency at v, endpoint = the edge's Other(from),
// and admit = positive residual capacity toward the neighbor.
//
// ctx is checked once per dequeue; a cancelled context aborts the walk and
// returns ctx.Err(). Pass context.Background() for an unconditional walk.
func Walk[E any](
	ctx context.Context,
	n int,
	edgesOf func(v int) []E,
	endpoint func(e E, from int) int,
	admit func(e E, from, to int) bool,
	start int,
) (Result[E], error) {
	res := Result[E]{
		Order:           make([]int, 0, n),
		Depth:           map[int]int{start: 0},
		Parent:          make(map[int]int, n),
		PredecessorEdge: make(map[int]E, n),
	}
	visited := make(map[int]bool, n)
	visited[start] = true
	queue := []int{start}

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		v := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, v)

		for _, e := range edgesOf(v) {
			to := endpoint(e, v)
			if visited[to] || !admit(e, v, to) {
				continue
			}
			visited[to] = true
			res.Depth[to] = res.Depth[v] + 1
			res.Parent[to] = v
			res.PredecessorEdge[to] = e
			queue = append(queue, to)
		}
	}
	return res, nil
}
