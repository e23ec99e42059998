// Package flow computes maximum flow and minimum cut over a capacitated
// network backed by core.AdjacencyList[core.WeightedEdge[W]].
//
// FlowNetwork snapshots the graph into a residual representation: each
// original edge becomes a *FlowEdge aliased into both endpoints' residual
// adjacency lists, so augmenting flow through one endpoint's view is
// immediately visible from the other's. Directed edges get a single
// FlowEdge with zero reverse capacity; undirected edges get a pair of
// independent FlowEdges, one per direction, each with the edge's full
// capacity.
//
// MaxFlow runs Edmonds-Karp: repeated BFS (via the bfs package's Walk
// primitive) for a shortest augmenting path in the residual graph,
// augmenting by the path's bottleneck capacity, until no path remains.
// MaxFlowDinic runs Dinic's algorithm (level graphs plus blocking flow) as
// an alternative that reaches the same value with fewer augmentation
// rounds on dense networks. MinCut reports, after a max-flow computation,
// the FlowEdges crossing from the source side of a minimum s-t cut to its
// complement — the saturated arcs whose capacities the max-flow/min-cut
// theorem says sum to the max-flow value.
//
// Source and sink may coincide at construction; that case makes max flow
// undefined rather than invalid, so MaxFlow and MaxFlowDinic report it by
// returning an absent core.Optional[W] instead of failing NewFlowNetwork.
//
// # Complexity
//
//   - MaxFlow (Edmonds-Karp):  O(V * E^2)
//   - MaxFlowDinic:            O(V^2 * E) general graphs, O(E * sqrt(V)) unit-capacity
//   - MinCut:                  O(V + E) given a prior max-flow computation
//
// # Errors
//
//	ErrGraphNil              - a nil graph was passed to NewFlowNetwork.
//	ErrVertexOutOfRange      - source or sink is outside [0, VertexCount).
//	ErrNegativeWeightedEdge  - an edge carries a negative weight.
package flow
