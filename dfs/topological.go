package dfs

import (
	"context"
	"fmt"

	"github.com/arborist-graph/lattice/core"
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context for TopologicalSort. A nil
// ctx is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// TopologicalSort computes a linear ordering of g's vertices such that for
// every edge u -> v, u precedes v. g must be directed; ErrRequiresDirected
// otherwise. ErrCycleDetected is returned if g contains a cycle.
func TopologicalSort[E core.Edge[E]](g *core.AdjacencyList[E], opts ...TopoOption) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Kind() != core.Directed {
		return nil, ErrRequiresDirected
	}

	o := defaultTopoOptions()
	for _, apply := range opts {
		apply(&o)
	}

	n := g.VertexCount()
	state := make([]int, n)
	order := make([]int, 0, n)

	var visit func(v int) error
	visit = func(v int) error {
		select {
		case <-o.ctx.Done():
			return o.ctx.Err()
		default:
		}
		if state[v] == gray {
			return ErrCycleDetected
		}
		if state[v] == black {
			return nil
		}
		state[v] = gray
		for _, e := range g.Adjacent(v) {
			to := e.Other(v)
			if e.Tail() != v {
				continue
			}
			if err := visit(to); err != nil {
				return err
			}
		}
		state[v] = black
		order = append(order, v)
		return nil
	}

	for v := 0; v < n; v++ {
		if state[v] == white {
			if err := visit(v); err != nil {
				return nil, fmt.Errorf("dfs: TopologicalSort: %w", err)
			}
		}
	}

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}
