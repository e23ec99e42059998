package mst

import (
	"sort"

	"github.com/arborist-graph/lattice/core"
)

// Kruskal computes the Minimum Spanning Tree of an undirected, weighted
// graph via global edge sort plus union-find. Self-loops are skipped; they
// can never belong to a spanning tree. A graph with zero or one vertex
// yields a trivially empty MST.
func Kruskal[W core.Weight](g *core.AdjacencyList[core.WeightedEdge[W]]) (*Result[W], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Kind() != core.Undirected {
		return nil, ErrRequiresUndirected
	}

	n := g.VertexCount()
	if n <= 1 {
		return &Result[W]{}, nil
	}

	edges := make([]core.WeightedEdge[W], 0, g.EdgeCount())
	for v := 0; v < n; v++ {
		for _, e := range g.Adjacent(v) {
			if e.IsSelfLoop() {
				continue
			}
			if e.Tail() > e.Head() {
				continue
			}
			edges = append(edges, e)
		}
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	var find func(v int) int
	find = func(v int) int {
		for parent[v] != v {
			parent[v] = parent[parent[v]]
			v = parent[v]
		}
		return v
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	res := &Result[W]{}
	for _, e := range edges {
		u, w := e.Tail(), e.Head()
		if find(u) != find(w) {
			union(u, w)
			res.Edges = append(res.Edges, Edge[W]{From: u, To: w, Weight: e.Weight})
			res.TotalWeight += e.Weight
			if len(res.Edges) == n-1 {
				break
			}
		}
	}

	if len(res.Edges) < n-1 {
		return nil, ErrDisconnected
	}
	return res, nil
}
