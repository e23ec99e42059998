// Package core defines the edge algebra and the adjacency-list graph
// container shared by the rest of this module.
//
// The central type is AdjacencyList[E], a value-semantic, vertex-indexed
// graph over a parametric edge type E. Vertices are the dense integer range
// 0..VertexCount; edges are anything satisfying the Edge[E] capability set
// (Either/Other/Reversed/Equal/Matches/Hash). Two concrete edge types are
// provided out of the box:
//
//   - UnweightedEdge   — a bare vertex pair.
//   - WeightedEdge[W]  — a vertex pair plus an additive, ordered weight.
//
// A graph is built once (New or FromEdges) and then mutated in place
// (Add, Remove, RemoveAllEdges, Reverse) or copied (Clone, Reversed).
// Copying always yields an independent graph: AdjacencyList holds no shared,
// persistent structure and no mutex. Concurrent reads of a graph that no
// goroutine is mutating are safe; callers who mutate a graph shared across
// goroutines should Clone it per goroutine or otherwise serialize their own
// access.
//
// # Directed vs. undirected
//
// Directed graphs store each edge once, under its tail. Undirected graphs
// store each edge twice: once under either endpoint, once (reversed) under
// the other, so that Adjacent(v) always returns edges for which
// e.Either() == v. Self-loops on an undirected graph are therefore stored
// twice under the same vertex.
//
// # Serialization
//
// Encode/Decode (for UnweightedEdge) and EncodeWeighted/DecodeWeighted (for
// WeightedEdge[W]) marshal a graph to/from a small YAML document with fields
// kind, vertex_count, and edges. Decoding rejects malformed input with typed
// errors (ErrDecodedVertexCountNegative, ErrDecodedEdgeOutOfBounds); it never
// panics, unlike the in-memory mutators, which treat bad vertex indices as a
// programmer error.
//
// # Optional
//
// Optional[W] wraps a value that may be absent, for operations defined only
// on part of their input domain (see flow.MaxFlow when source == sink).
//
// # Errors
//
//	ErrDecodedVertexCountNegative - decoded vertex_count < 0.
//	ErrDecodedEdgeOutOfBounds     - decoded edge references a vertex outside range.
package core
