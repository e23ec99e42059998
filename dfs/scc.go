package dfs

import "github.com/arborist-graph/lattice/core"

// StronglyConnectedComponents partitions a directed g's vertices into
// maximal sets where every vertex can reach every other, via Tarjan's
// algorithm. Components are returned in reverse topological order of the
// condensation graph; within a component, vertices appear in the order
// Tarjan's stack unwound them.
func StronglyConnectedComponents[E core.Edge[E]](g *core.AdjacencyList[E]) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Kind() != core.Directed {
		return nil, ErrRequiresDirected
	}

	n := g.VertexCount()
	index := make([]int, n)
	lowLink := make([]int, n)
	onStack := make([]bool, n)
	visited := make([]bool, n)
	var stack []int
	var sccs [][]int
	counter := 0

	var strongConnect func(v int)
	strongConnect = func(v int) {
		index[v] = counter
		lowLink[v] = counter
		counter++
		visited[v] = true
		stack = append(stack, v)
		onStack[v] = true

		for _, e := range g.Adjacent(v) {
			w := e.Other(v)
			if !visited[w] {
				strongConnect(w)
				if lowLink[w] < lowLink[v] {
					lowLink[v] = lowLink[w]
				}
			} else if onStack[w] {
				if index[w] < lowLink[v] {
					lowLink[v] = index[w]
				}
			}
		}

		if lowLink[v] == index[v] {
			var scc []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	for v := 0; v < n; v++ {
		if !visited[v] {
			strongConnect(v)
		}
	}
	return sccs, nil
}
