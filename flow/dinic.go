package flow

import (
	"context"
	"fmt"

	"github.com/arborist-graph/lattice/core"
)

// MaxFlowDinic computes the maximum flow from Source() to Sink() using
// Dinic's algorithm: repeated construction of a level graph by BFS, then a
// blocking flow pushed through it by DFS with per-vertex iterators, until
// the sink is no longer reachable in the level graph.
//
// If Source() and Sink() coincide, max flow is undefined; MaxFlowDinic
// returns an absent core.Optional[W] without touching the residual state,
// the same as MaxFlow.
//
// It operates on the same residual state as MaxFlow and, like it, returns
// the flow held on the arcs entering Sink(), so running either algorithm
// after the other finds no further augmenting path and returns the same
// value.
func (fn *FlowNetwork[W]) MaxFlowDinic(ctx context.Context) (core.Optional[W], error) {
	if fn.source == fn.sink {
		return core.None[W](), nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var total W
	augments := 0
	for {
		select {
		case <-ctx.Done():
			return core.None[W](), fmt.Errorf("flow: MaxFlowDinic: %w", ctx.Err())
		default:
		}

		level, ok := fn.buildLevelGraph()
		if !ok {
			fn.lastReachable = reachableFromLevels(level)
			break
		}
		iter := make([]int, fn.n)

		for {
			select {
			case <-ctx.Done():
				return core.None[W](), fmt.Errorf("flow: MaxFlowDinic: %w", ctx.Err())
			default:
			}
			var zero W
			pushed := fn.dinicPush(fn.source, fn.sourceCapacityBound(), level, iter)
			if pushed == zero {
				break
			}
			total += pushed
			augments++
			if fn.opts.Logger != nil {
				fn.opts.Logger.Info("flow: dinic blocking-flow push", "pushed", pushed, "total", total)
			}
			// Forcing an early level-graph rebuild trades a few extra BFS
			// passes for fresher level distances on networks where capacities
			// shift a lot per phase; 0 (the default) disables this and rides
			// out each blocking flow fully.
			if fn.opts.DinicRebuildInterval > 0 && augments%fn.opts.DinicRebuildInterval == 0 {
				break
			}
		}
	}

	return core.Some(fn.sinkInflow()), nil
}

// buildLevelGraph runs BFS from source over positive-residual arcs,
// returning each vertex's distance (-1 if unreached) and whether sink was
// reached.
func (fn *FlowNetwork[W]) buildLevelGraph() ([]int, bool) {
	level := make([]int, fn.n)
	for i := range level {
		level[i] = -1
	}
	level[fn.source] = 0
	queue := []int{fn.source}
	var zero W
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, e := range fn.residual[v] {
			to := e.Other(v)
			if level[to] < 0 && e.ResidualCapacityTo(to) > zero {
				level[to] = level[v] + 1
				queue = append(queue, to)
			}
		}
	}
	return level, level[fn.sink] >= 0
}

// dinicPush recursively pushes up to `available` flow from v toward Sink()
// along edges that advance strictly one level deeper, advancing each
// vertex's iterator so exhausted edges are never revisited within a phase.
func (fn *FlowNetwork[W]) dinicPush(v int, available W, level []int, iter []int) W {
	if v == fn.sink {
		return available
	}
	var zero W
	edges := fn.residual[v]
	for ; iter[v] < len(edges); iter[v]++ {
		e := edges[iter[v]]
		to := e.Other(v)
		if level[to] != level[v]+1 {
			continue
		}
		residual := e.ResidualCapacityTo(to)
		if residual <= zero {
			continue
		}
		send := available
		if residual < send {
			send = residual
		}
		pushed := fn.dinicPush(to, send, level, iter)
		if pushed > zero {
			e.AddResidualFlowTo(to, pushed)
			return pushed
		}
	}
	return zero
}

func reachableFromLevels(level []int) map[int]bool {
	reachable := make(map[int]bool, len(level))
	for v, l := range level {
		if l >= 0 {
			reachable[v] = true
		}
	}
	return reachable
}

// sourceCapacityBound returns the sum of residual capacity on every arc
// leaving Source(), a safe upper bound on any single blocking-flow push —
// no augmenting path can carry more than the source can emit.
func (fn *FlowNetwork[W]) sourceCapacityBound() W {
	var total W
	for _, e := range fn.residual[fn.source] {
		total += e.ResidualCapacityTo(e.Other(fn.source))
	}
	return total
}
