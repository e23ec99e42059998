// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm over core.AdjacencyList[core.WeightedEdge[W]] with non-negative
// weights.
//
// Complexity:
//
//   - Time:  O((V + E) log V), using a lazy-decrease-key binary heap.
//   - Space: O(V + E).
//
// Options:
//
//	WithReturnPath()       - also return the predecessor map for path reconstruction.
//	WithMaxDistance(x)     - skip exploring past distance x.
//	WithInfEdgeThreshold(t) - treat edges with weight >= t as impassable.
//
// Errors:
//
//	ErrGraphNil           - a nil graph was passed.
//	ErrSourceNotFound     - the source vertex is out of range.
//	ErrNegativeWeight     - an edge carries a negative weight.
//	ErrBadMaxDistance     - WithMaxDistance received a negative value.
//	ErrBadInfThreshold    - WithInfEdgeThreshold received a non-positive value.
package dijkstra

import (
	"errors"

	"github.com/arborist-graph/lattice/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to Dijkstra.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates the requested source vertex is out of range.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found")

	// ErrNegativeWeight indicates a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates WithMaxDistance received a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates WithInfEdgeThreshold received a non-positive value.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Option configures a Dijkstra run.
type Option[W core.Weight] func(*options[W])

type options[W core.Weight] struct {
	returnPath       bool
	hasMaxDistance   bool
	maxDistance      W
	hasInfThreshold  bool
	infEdgeThreshold W
	err              error
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath[W core.Weight]() Option[W] {
	return func(o *options[W]) { o.returnPath = true }
}

// WithMaxDistance caps exploration at distance max (inclusive). Vertices
// whose shortest distance would exceed max are left unreached.
func WithMaxDistance[W core.Weight](max W) Option[W] {
	return func(o *options[W]) {
		var zero W
		if max < zero {
			o.err = ErrBadMaxDistance
			return
		}
		o.hasMaxDistance = true
		o.maxDistance = max
	}
}

// WithInfEdgeThreshold treats edges whose weight is >= threshold as
// impassable.
func WithInfEdgeThreshold[W core.Weight](threshold W) Option[W] {
	return func(o *options[W]) {
		var zero W
		if threshold <= zero {
			o.err = ErrBadInfThreshold
			return
		}
		o.hasInfThreshold = true
		o.infEdgeThreshold = threshold
	}
}

// Result holds the outcome of a Dijkstra run.
type Result[W core.Weight] struct {
	// Dist maps a vertex to its shortest distance from the source. A vertex
	// absent from Dist was never reached.
	Dist map[int]W

	// Prev maps a vertex to its predecessor on the shortest path, present
	// only when WithReturnPath was given.
	Prev map[int]int
}

// PathTo reconstructs the source -> dest path from Prev. Requires the
// Result to have been computed with WithReturnPath.
func (r *Result[W]) PathTo(source, dest int) ([]int, bool) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, false
	}
	path := []int{dest}
	for cur := dest; cur != source; {
		p, ok := r.Prev[cur]
		if !ok {
			return nil, false
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
