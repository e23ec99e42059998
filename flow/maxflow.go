package flow

import (
	"context"
	"fmt"

	"github.com/arborist-graph/lattice/bfs"
	"github.com/arborist-graph/lattice/core"
)

// MaxFlow computes the maximum flow from Source() to Sink() using
// Edmonds-Karp: repeated BFS for a shortest augmenting path in the residual
// graph, augmented by that path's bottleneck capacity, until no path with
// positive residual capacity remains.
//
// If Source() and Sink() coincide, max flow is undefined; MaxFlow returns
// an absent core.Optional[W] without touching the residual state, rather
// than guessing at a zero or error result.
//
// The returned value is the flow held on the arcs entering Sink(). Calling
// MaxFlow again (or MaxFlowDinic after it) finds no further augmenting path
// and returns the same value.
func (fn *FlowNetwork[W]) MaxFlow(ctx context.Context) (core.Optional[W], error) {
	if fn.source == fn.sink {
		return core.None[W](), nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var total W
	for {
		res, err := bfs.Walk(ctx, fn.n, fn.Edges, func(e *FlowEdge[W], from int) int {
			return e.Other(from)
		}, func(e *FlowEdge[W], from, to int) bool {
			var zero W
			return e.ResidualCapacityTo(to) > zero
		}, fn.source)
		if err != nil {
			return core.None[W](), fmt.Errorf("flow: MaxFlow: %w", err)
		}
		if _, reached := res.Depth[fn.sink]; !reached {
			reachable := make(map[int]bool, len(res.Depth))
			for v := range res.Depth {
				reachable[v] = true
			}
			fn.lastReachable = reachable
			break
		}

		bottleneck := bottleneckAlong(res, fn.sink)
		for v := fn.sink; v != fn.source; {
			e := res.PredecessorEdge[v]
			parent := res.Parent[v]
			e.AddResidualFlowTo(v, bottleneck)
			v = parent
		}
		total += bottleneck

		if fn.opts.Logger != nil {
			fn.opts.Logger.Info("flow: augmented path", "bottleneck", bottleneck, "total", total)
		}
	}

	return core.Some(fn.sinkInflow()), nil
}

// sinkInflow sums Flow over the arcs entering Sink(): the value of the flow
// currently held in the residual state.
func (fn *FlowNetwork[W]) sinkInflow() W {
	var value W
	for _, e := range fn.residual[fn.sink] {
		if e.To() == fn.sink {
			value += e.Flow()
		}
	}
	return value
}

// bottleneckAlong walks res.Parent/res.PredecessorEdge back from sink to the
// root, returning the minimum residual capacity encountered.
func bottleneckAlong[W core.Weight](res bfs.Result[*FlowEdge[W]], sink int) W {
	var bottleneck W
	first := true
	for v := sink; ; {
		e, ok := res.PredecessorEdge[v]
		if !ok {
			break
		}
		parent := res.Parent[v]
		residual := e.ResidualCapacityTo(v)
		if first || residual < bottleneck {
			bottleneck = residual
			first = false
		}
		v = parent
	}
	return bottleneck
}
