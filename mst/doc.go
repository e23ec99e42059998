// Package mst computes a Minimum Spanning Tree (MST) over an undirected,
// weighted core.AdjacencyList using Kruskal's algorithm: a union-find
// (disjoint-set) structure with path compression and union by rank merges
// components as edges are consumed in ascending weight order.
//
// Complexity:
//
//   - Time:  O(E log E + α(V)·E), dominated by the initial sort.
//   - Space: O(V + E).
//
// Errors:
//
//	ErrGraphNil       - a nil graph was passed.
//	ErrRequiresUndirected - the graph is directed.
//	ErrDisconnected   - the graph has no spanning tree covering all vertices.
package mst
