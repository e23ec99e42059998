// Package builder provides deterministic generators for common graph
// topologies over core.AdjacencyList: Complete, Cycle, Path, Star,
// CompleteBipartite, Grid, and RandomSparse (Erdős–Rényi). Each generator
// takes an EdgeFn callback so the caller decides the concrete edge type
// (core.UnweightedEdge or core.WeightedEdge[W] with whatever weight policy
// it wants) while the generator owns only the topology: which vertex pairs
// get an edge, and in what order.
//
// Determinism: vertex indices and edge emission order are fixed by the
// topology alone. RandomSparse additionally requires a seeded RNG via
// WithSeed so that two runs with the same seed produce the same graph.
//
// Errors:
//
//	ErrTooFewVertices     - a size parameter is below the topology's minimum.
//	ErrInvalidProbability - RandomSparse's p is outside [0,1].
//	ErrNeedRandSource     - RandomSparse needs WithSeed for 0 < p < 1.
package builder
