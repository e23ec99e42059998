package flow

import (
	"errors"
	"fmt"

	"github.com/arborist-graph/lattice/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to NewFlowNetwork.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrVertexOutOfRange is returned when source or sink falls outside
	// [0, VertexCount).
	ErrVertexOutOfRange = errors.New("flow: vertex out of range")

	// ErrNegativeWeightedEdge is returned when an edge carries a negative
	// capacity; flow networks require nonnegative capacities.
	ErrNegativeWeightedEdge = errors.New("flow: negative capacity edge")
)

// FlowEdge is a single directed capacity arc (from -> to) in a residual
// network. The same *FlowEdge is aliased into both from's and to's
// residual adjacency lists: ResidualCapacityTo and AddResidualFlowTo
// dispatch on which endpoint is asking, so a push recorded through one
// endpoint's view is immediately visible through the other's.
type FlowEdge[W core.Weight] struct {
	from, to int
	capacity W
	flow     W
}

// newFlowEdge builds a capacity arc from -> to. Panics if capacity is
// negative; callers validate user-supplied weights before this point.
func newFlowEdge[W core.Weight](from, to int, capacity W) *FlowEdge[W] {
	var zero W
	if capacity < zero {
		panic("flow: negative FlowEdge capacity")
	}
	return &FlowEdge[W]{from: from, to: to, capacity: capacity}
}

// From returns the arc's tail.
func (e *FlowEdge[W]) From() int { return e.from }

// To returns the arc's head.
func (e *FlowEdge[W]) To() int { return e.to }

// Capacity returns the arc's nominal capacity.
func (e *FlowEdge[W]) Capacity() W { return e.capacity }

// Flow returns the current flow pushed from From() to To(). It stays within
// [0, Capacity()] as long as every push respects ResidualCapacityTo.
func (e *FlowEdge[W]) Flow() W { return e.flow }

// Other returns the endpoint opposite vertex. Panics if vertex is neither
// From() nor To().
func (e *FlowEdge[W]) Other(vertex int) int {
	switch vertex {
	case e.from:
		return e.to
	case e.to:
		return e.from
	default:
		panic(fmt.Sprintf("flow: vertex %d is not an endpoint of this FlowEdge", vertex))
	}
}

// ResidualCapacityTo returns how much additional flow can be pushed toward
// vertex: capacity-flow in the forward direction (from -> to), or flow
// itself in the reverse direction (to -> from), since undoing flow already
// sent frees up exactly that much capacity.
func (e *FlowEdge[W]) ResidualCapacityTo(vertex int) W {
	switch vertex {
	case e.to:
		return e.capacity - e.flow
	case e.from:
		return e.flow
	default:
		panic(fmt.Sprintf("flow: vertex %d is not an endpoint of this FlowEdge", vertex))
	}
}

// AddResidualFlowTo pushes delta units of residual capacity toward vertex,
// increasing Flow() when vertex == To() and decreasing it when vertex ==
// From(). delta must not exceed ResidualCapacityTo(vertex); callers enforce
// this via the bottleneck computed along an augmenting path.
func (e *FlowEdge[W]) AddResidualFlowTo(vertex int, delta W) {
	switch vertex {
	case e.to:
		e.flow += delta
	case e.from:
		e.flow -= delta
	default:
		panic(fmt.Sprintf("flow: vertex %d is not an endpoint of this FlowEdge", vertex))
	}
}

// Logger is the minimal structured-logging collaborator flow accepts. Any
// *slog.Logger value satisfies it; the zero Options leaves Logger nil and
// flow stays silent.
type Logger interface {
	Info(msg string, args ...any)
}

// Options configures FlowNetwork's algorithms.
type Options struct {
	// Logger, if non-nil, receives one Info call per augmenting path found.
	Logger Logger

	// DinicRebuildInterval, if > 0, forces MaxFlowDinic to rebuild the level
	// graph after every that many augmenting pushes (counted across phases),
	// even if the current blocking flow is not yet complete; 0 rebuilds only
	// when a phase's blocking flow is complete.
	DinicRebuildInterval int
}

// Option configures a FlowNetwork at construction time.
type Option func(*Options)

// WithLogger installs a Logger.
func WithLogger(l Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithDinicRebuildInterval sets the forced level-graph rebuild cadence for
// MaxFlowDinic.
func WithDinicRebuildInterval(n int) Option {
	return func(o *Options) { o.DinicRebuildInterval = n }
}
