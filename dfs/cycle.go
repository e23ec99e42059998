package dfs

import "github.com/arborist-graph/lattice/core"

// HasCycle reports whether g contains a cycle. For a directed graph this is
// any back-edge to a vertex still on the recursion stack. For an undirected
// graph, walking back along the edge just arrived on is not itself a cycle;
// only a second, distinct path to an ancestor counts.
func HasCycle[E core.Edge[E]](g *core.AdjacencyList[E]) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	n := g.VertexCount()
	state := make([]int, n)
	directed := g.Kind() == core.Directed

	var visit func(v, parent int, parentEdgeUsed *bool) bool
	visit = func(v, parent int, _ *bool) bool {
		state[v] = gray
		usedParentBacktrack := false
		for _, e := range g.Adjacent(v) {
			to := e.Other(v)
			if !directed && !usedParentBacktrack && to == parent && v != parent {
				usedParentBacktrack = true
				continue
			}
			switch state[to] {
			case white:
				if visit(to, v, nil) {
					return true
				}
			case gray:
				return true
			}
		}
		state[v] = black
		return false
	}

	for v := 0; v < n; v++ {
		if state[v] == white {
			if visit(v, -1, nil) {
				return true, nil
			}
		}
	}
	return false, nil
}
