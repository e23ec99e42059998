package core

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// encodedEdge is the YAML shape of an UnweightedEdge.
type encodedEdge struct {
	A int `yaml:"a"`
	B int `yaml:"b"`
}

// encodedWeightedEdge is the YAML shape of a WeightedEdge[W].
type encodedWeightedEdge[W Weight] struct {
	A      int `yaml:"a"`
	B      int `yaml:"b"`
	Weight W   `yaml:"weight"`
}

// encodedGraph is the on-the-wire record described by §6: a kind tag, a
// vertex count, and the edge list that reconstructs the graph.
type encodedGraph struct {
	Kind        string        `yaml:"kind"`
	VertexCount int           `yaml:"vertex_count"`
	Edges       []encodedEdge `yaml:"edges"`
}

type encodedWeightedGraph[W Weight] struct {
	Kind        string                   `yaml:"kind"`
	VertexCount int                      `yaml:"vertex_count"`
	Edges       []encodedWeightedEdge[W] `yaml:"edges"`
}

func kindToString(k GraphKind) string { return k.String() }

func kindFromString(s string) (GraphKind, error) {
	switch s {
	case "directed":
		return Directed, nil
	case "undirected":
		return Undirected, nil
	default:
		return Directed, fmt.Errorf("core: decode: unknown graph kind %q", s)
	}
}

// edgesForEncode returns the edge stream that reconstructs g: for a directed
// graph, the concatenation of every adjacency slot; for an undirected graph,
// each edge emitted exactly once (non-self-loop edges from the slot with the
// smaller endpoint, self-loops from every other occurrence — see doc.go).
func edgesForEncode[E Edge[E]](g *AdjacencyList[E]) []E {
	out := make([]E, 0, g.edgeCount)
	if g.kind == Directed {
		for _, lst := range g.adj {
			out = append(out, lst...)
		}
		return out
	}

	loopParity := make([]int, g.vertexCount)
	for v, lst := range g.adj {
		for _, e := range lst {
			other := e.Other(v)
			if other == v {
				if loopParity[v]%2 == 0 {
					out = append(out, e)
				}
				loopParity[v]++
				continue
			}
			if other > v {
				out = append(out, e)
			}
		}
	}
	return out
}

// Encode marshals an UnweightedEdge graph to YAML.
func Encode(g *AdjacencyList[UnweightedEdge]) ([]byte, error) {
	rec := encodedGraph{
		Kind:        kindToString(g.kind),
		VertexCount: g.vertexCount,
		Edges:       make([]encodedEdge, 0, g.edgeCount),
	}
	for _, e := range edgesForEncode(g) {
		rec.Edges = append(rec.Edges, encodedEdge{A: e.a, B: e.b})
	}
	return yaml.Marshal(rec)
}

// Decode unmarshals a graph encoded by Encode. Returns
// ErrDecodedVertexCountNegative or ErrDecodedEdgeOutOfBounds for malformed
// input; never panics.
func Decode(data []byte) (*AdjacencyList[UnweightedEdge], error) {
	var rec encodedGraph
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("core: decode: %w", err)
	}
	kind, err := kindFromString(rec.Kind)
	if err != nil {
		return nil, err
	}
	if rec.VertexCount < 0 {
		return nil, ErrDecodedVertexCountNegative
	}
	for _, e := range rec.Edges {
		if e.A < 0 || e.A >= rec.VertexCount || e.B < 0 || e.B >= rec.VertexCount {
			return nil, ErrDecodedEdgeOutOfBounds
		}
	}

	g := New[UnweightedEdge](kind, rec.VertexCount)
	for _, e := range rec.Edges {
		g.Add(UnweightedEdge{a: e.A, b: e.B})
	}
	return g, nil
}

// EncodeWeighted marshals a WeightedEdge[W] graph to YAML.
func EncodeWeighted[W Weight](g *AdjacencyList[WeightedEdge[W]]) ([]byte, error) {
	rec := encodedWeightedGraph[W]{
		Kind:        kindToString(g.kind),
		VertexCount: g.vertexCount,
		Edges:       make([]encodedWeightedEdge[W], 0, g.edgeCount),
	}
	for _, e := range edgesForEncode(g) {
		rec.Edges = append(rec.Edges, encodedWeightedEdge[W]{A: e.a, B: e.b, Weight: e.Weight})
	}
	return yaml.Marshal(rec)
}

// DecodeWeighted unmarshals a graph encoded by EncodeWeighted. Returns
// ErrDecodedVertexCountNegative or ErrDecodedEdgeOutOfBounds for malformed
// input; never panics.
func DecodeWeighted[W Weight](data []byte) (*AdjacencyList[WeightedEdge[W]], error) {
	var rec encodedWeightedGraph[W]
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("core: decode: %w", err)
	}
	kind, err := kindFromString(rec.Kind)
	if err != nil {
		return nil, err
	}
	if rec.VertexCount < 0 {
		return nil, ErrDecodedVertexCountNegative
	}
	for _, e := range rec.Edges {
		if e.A < 0 || e.A >= rec.VertexCount || e.B < 0 || e.B >= rec.VertexCount {
			return nil, ErrDecodedEdgeOutOfBounds
		}
	}

	g := New[WeightedEdge[W]](kind, rec.VertexCount)
	for _, e := range rec.Edges {
		g.Add(WeightedEdge[W]{a: e.A, b: e.B, Weight: e.Weight})
	}
	return g, nil
}
