package mst

import (
	"errors"

	"github.com/arborist-graph/lattice/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to Kruskal.
	ErrGraphNil = errors.New("mst: graph is nil")

	// ErrRequiresUndirected indicates Kruskal was given a directed graph.
	ErrRequiresUndirected = errors.New("mst: Kruskal requires an undirected graph")

	// ErrDisconnected indicates the graph has no spanning tree: fewer than
	// VertexCount()-1 edges could be added without forming a cycle.
	ErrDisconnected = errors.New("mst: graph is disconnected")
)

// Edge is one tree edge in a computed MST, carrying its endpoints and weight.
type Edge[W core.Weight] struct {
	From, To int
	Weight   W
}

// Result holds the outcome of a Kruskal run.
type Result[W core.Weight] struct {
	Edges       []Edge[W]
	TotalWeight W
}
