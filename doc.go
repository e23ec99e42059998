// Package lattice is a library of generic graph data structures and
// algorithms, organized as a set of focused subpackages:
//
//	core/     — the edge algebra and adjacency-list graph container
//	           (UnweightedEdge, WeightedEdge[W], AdjacencyList[E], codec).
//	bfs/      — generic breadth-first traversal, the shared collaborator
//	           consumed by flow's augmenting-path search.
//	dfs/      — generic depth-first traversal, cycle detection,
//	           topological sort, and strongly connected components.
//	dijkstra/ — single-source shortest paths with non-negative weights.
//	flow/     — residual flow networks, Ford-Fulkerson/Edmonds-Karp and
//	           Dinic maximum flow, and minimum-cut extraction.
//	mst/      — minimum spanning trees via Kruskal's algorithm.
//	builder/  — deterministic generators for common graph topologies,
//	           useful as test and benchmark fixtures.
//
// All algorithmic packages operate on core.AdjacencyList[E], parameterized
// over an edge type E satisfying core.Edge[E], and identify vertices by
// dense integer index (0..VertexCount()-1) rather than by string or
// pointer identity.
package lattice
