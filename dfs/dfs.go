package dfs

import (
	"fmt"

	"github.com/arborist-graph/lattice/core"
)

type walker[E core.Edge[E]] struct {
	g    *core.AdjacencyList[E]
	opts Options
	res  *Result
}

// DFS traverses g depth-first from start. With WithFullTraversal, it covers
// every disconnected component instead of only start's reachable set.
func DFS[E core.Edge[E]](g *core.AdjacencyList[E], start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	if !o.FullTraversal && (start < 0 || start >= g.VertexCount()) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	res := &Result{
		Order:   make([]int, 0, n),
		Depth:   make(map[int]int, n),
		Parent:  make(map[int]int, n),
		Visited: make(map[int]bool, n),
	}
	w := &walker[E]{g: g, opts: o, res: res}

	if o.FullTraversal {
		for v := 0; v < n; v++ {
			if !res.Visited[v] {
				if err := w.visit(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else {
		if err := w.visit(start, 0); err != nil {
			return res, err
		}
	}

	res.SkippedNeighbors = w.opts.SkippedNeighbors
	return res, nil
}

func (w *walker[E]) visit(v, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[v] = true
	w.res.Depth[v] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	for _, e := range w.g.Adjacent(v) {
		to := e.Other(v)
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(to) {
			w.opts.SkippedNeighbors++
			continue
		}
		if !w.res.Visited[to] {
			w.res.Parent[to] = v
			if err := w.visit(to, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}

	w.res.Order = append(w.res.Order, v)
	return nil
}
