package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/arborist-graph/lattice/core"
)

// Dijkstra computes shortest distances from source to every reachable
// vertex in g. Edge weights must be non-negative.
func Dijkstra[W core.Weight](g *core.AdjacencyList[core.WeightedEdge[W]], source int, opts ...Option[W]) (*Result[W], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if source < 0 || source >= g.VertexCount() {
		return nil, ErrSourceNotFound
	}

	var o options[W]
	for _, apply := range opts {
		apply(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var zero W
	for v := 0; v < g.VertexCount(); v++ {
		for _, e := range g.Adjacent(v) {
			if e.Weight < zero {
				return nil, fmt.Errorf("%w: (%d,%d)=%v", ErrNegativeWeight, e.Tail(), e.Head(), e.Weight)
			}
		}
	}

	dist := make(map[int]W, g.VertexCount())
	var prev map[int]int
	if o.returnPath {
		prev = make(map[int]int, g.VertexCount())
	}
	visited := make(map[int]bool, g.VertexCount())

	pq := make(nodePQ[W], 0, g.VertexCount())
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem[W]{id: source, dist: zero})
	dist[source] = zero

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem[W])
		u, d := item.id, item.dist
		if visited[u] {
			continue
		}
		if o.hasMaxDistance && d > o.maxDistance {
			break
		}
		visited[u] = true

		for _, e := range g.Adjacent(u) {
			v := e.Other(u)
			w := e.Weight
			if o.hasInfThreshold && w >= o.infEdgeThreshold {
				continue
			}

			newDist := d + w
			if o.hasMaxDistance && newDist > o.maxDistance {
				continue
			}
			if cur, ok := dist[v]; ok && newDist >= cur {
				continue
			}

			dist[v] = newDist
			if prev != nil {
				prev[v] = u
			}
			heap.Push(&pq, &nodeItem[W]{id: v, dist: newDist})
		}
	}

	return &Result[W]{Dist: dist, Prev: prev}, nil
}

type nodeItem[W core.Weight] struct {
	id   int
	dist W
}

// nodePQ is a lazy-decrease-key min-heap ordered by dist ascending: a
// shorter distance discovered later for the same vertex is pushed as a new
// entry rather than updating the existing one in place, and stale entries
// are skipped on pop via the visited set.
type nodePQ[W core.Weight] []*nodeItem[W]

func (pq nodePQ[W]) Len() int            { return len(pq) }
func (pq nodePQ[W]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ[W]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ[W]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[W])) }
func (pq *nodePQ[W]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
