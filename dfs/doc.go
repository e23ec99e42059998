// Package dfs implements depth-first search and its classic derivatives
// (cycle detection, topological sort, strongly connected components) over
// core.AdjacencyList.
//
// DFS supports single-source and full-forest traversal, pre-/post-order
// hooks, depth limiting, neighbor filtering, and context cancellation,
// mirroring the functional-option surface used throughout this module.
//
// HasCycle reports whether g contains a cycle, honoring directed vs.
// undirected semantics (a single undirected edge is not itself a 2-cycle).
//
// TopologicalSort computes a linear ordering of a directed, acyclic g's
// vertices consistent with every edge. It returns ErrCycleDetected if g is
// cyclic.
//
// StronglyConnectedComponents partitions a directed g's vertices into
// maximal sets where every vertex can reach every other, via Tarjan's
// algorithm.
//
// # Complexity
//
//   - Time:   O(V + E) for DFS, HasCycle, TopologicalSort, and SCC.
//   - Memory: O(V) for recursion stack and bookkeeping maps.
//
// # Errors
//
//	ErrGraphNil            - a nil graph was passed.
//	ErrStartVertexNotFound - the start vertex is out of range.
//	ErrCycleDetected       - TopologicalSort found a cycle.
//	ErrRequiresDirected    - TopologicalSort or SCC was given an undirected graph.
package dfs
