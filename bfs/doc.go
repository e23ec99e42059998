// Package bfs provides breadth-first search over integer-indexed vertices,
// the traversal collaborator flow.FlowNetwork uses internally to find
// shortest augmenting paths, and a richer options-driven wrapper for
// traversing a core.AdjacencyList directly.
//
// Walk is the primitive: it knows nothing about core.AdjacencyList or any
// particular edge type, only a neighbor-enumeration function, an
// edge-to-vertex projection, and a per-edge admission predicate — exactly
// the "collaborator interface" a flow network needs to search its residual
// graph without bfs importing the flow package.
//
// BFS is the convenience entry point for ordinary graph traversal: it wraps
// Walk with the neighbor/endpoint functions derived from a
// core.AdjacencyList[E] and exposes the same functional-option surface
// (OnVisit, OnEnqueue, MaxDepth, FilterNeighbor, context cancellation) used
// throughout this module.
//
// # Errors
//
//	ErrGraphNil            - a nil graph was passed to BFS.
//	ErrStartVertexNotFound - the start vertex is out of range.
//	ErrOptionViolation     - an invalid option was supplied (e.g. negative MaxDepth).
package bfs
