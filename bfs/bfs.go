package bfs

import (
	"fmt"

	"github.com/arborist-graph/lattice/core"
)

// BFS traverses g breadth-first from start, honoring the supplied Options.
// It is a thin wrapper over Walk that derives edgesOf/endpoint from g and
// folds FilterNeighbor/MaxDepth/OnEnqueue/OnDequeue/OnVisit into Walk's
// admission predicate and a post-pass over the result.
func BFS[E core.Edge[E]](g *core.AdjacencyList[E], start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if start < 0 || start >= g.VertexCount() {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res, err := Walk(o.Ctx, g.VertexCount(), g.Adjacent, func(e E, from int) int {
		return e.Other(from)
	}, func(e E, from, to int) bool {
		return o.FilterNeighbor(from, to)
	}, start)
	if err != nil {
		return nil, err
	}

	out := &BFSResult{
		Depth:  make(map[int]int, len(res.Depth)),
		Parent: make(map[int]int, len(res.Parent)),
	}
	for _, v := range res.Order {
		depth := res.Depth[v]
		if o.MaxDepth > 0 && depth > o.MaxDepth {
			continue
		}
		o.OnEnqueue(v, depth)
		o.OnDequeue(v, depth)
		if err := o.OnVisit(v, depth); err != nil {
			return nil, err
		}
		out.Order = append(out.Order, v)
		out.Depth[v] = depth
		if p, ok := res.Parent[v]; ok {
			out.Parent[v] = p
		}
	}
	return out, nil
}
