package flow

import (
	"fmt"

	"github.com/arborist-graph/lattice/core"
)

// FlowNetwork is a residual capacity network built from a snapshot of a
// core.AdjacencyList[core.WeightedEdge[W]], ready for MaxFlow, MaxFlowDinic,
// and MinCut.
type FlowNetwork[W core.Weight] struct {
	n        int
	source   int
	sink     int
	residual [][]*FlowEdge[W]
	opts     Options

	lastReachable map[int]bool // populated by the most recent MaxFlow/MaxFlowDinic run
}

// NewFlowNetwork builds a FlowNetwork from g between source and sink. g is
// cloned internally; mutating g afterward does not affect the network.
//
// Every weighted edge becomes capacity: a directed edge (u, v, w) yields one
// FlowEdge u->v with capacity w and 0 reverse capacity; an undirected edge
// yields two independent FlowEdges, u->v and v->u, each carrying the full
// capacity w, since either direction can carry flow up to w on its own.
// Self-loop edges contribute no net flow and are skipped.
func NewFlowNetwork[W core.Weight](g *core.AdjacencyList[core.WeightedEdge[W]], source, sink int, opts ...Option) (*FlowNetwork[W], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d", ErrVertexOutOfRange, source)
	}
	if sink < 0 || sink >= n {
		return nil, fmt.Errorf("%w: sink %d", ErrVertexOutOfRange, sink)
	}
	// source and sink may coincide; that case is not a construction error,
	// it makes max flow undefined, and MaxFlow/MaxFlowDinic report that by
	// returning an absent core.Optional.

	snapshot := g.Clone()

	// Every edge, self-loops included, is checked before any residual state
	// is built.
	for v := 0; v < n; v++ {
		for _, e := range snapshot.Adjacent(v) {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: (%d,%d)=%v", ErrNegativeWeightedEdge, e.Tail(), e.Head(), e.Weight)
			}
		}
	}

	var o Options
	for _, apply := range opts {
		apply(&o)
	}

	fn := &FlowNetwork[W]{
		n:        n,
		source:   source,
		sink:     sink,
		residual: make([][]*FlowEdge[W], n),
		opts:     o,
	}

	var zero W
	directed := snapshot.Kind() == core.Directed
	seenUndirected := make(map[[2]int]bool)

	for v := 0; v < n; v++ {
		for _, e := range snapshot.Adjacent(v) {
			u, w := e.Tail(), e.Head()
			if u == w {
				continue // self-loops contribute no net flow
			}
			if e.Weight < zero {
				return nil, fmt.Errorf("%w: (%d,%d)=%v", ErrNegativeWeightedEdge, u, w, e.Weight)
			}

			if directed {
				fe := newFlowEdge[W](u, w, e.Weight)
				fn.residual[u] = append(fn.residual[u], fe)
				fn.residual[w] = append(fn.residual[w], fe)
				continue
			}

			key := [2]int{u, w}
			if u > w {
				key = [2]int{w, u}
			}
			if seenUndirected[key] {
				continue
			}
			seenUndirected[key] = true

			forward := newFlowEdge[W](u, w, e.Weight)
			backward := newFlowEdge[W](w, u, e.Weight)
			fn.residual[u] = append(fn.residual[u], forward)
			fn.residual[w] = append(fn.residual[w], forward)
			fn.residual[w] = append(fn.residual[w], backward)
			fn.residual[u] = append(fn.residual[u], backward)
		}
	}

	return fn, nil
}

// VertexCount returns the number of vertices in the network.
func (fn *FlowNetwork[W]) VertexCount() int { return fn.n }

// Source returns the configured source vertex.
func (fn *FlowNetwork[W]) Source() int { return fn.source }

// Sink returns the configured sink vertex.
func (fn *FlowNetwork[W]) Sink() int { return fn.sink }

// Edges returns the residual arcs incident to v, in construction order.
func (fn *FlowNetwork[W]) Edges(v int) []*FlowEdge[W] { return fn.residual[v] }
