package mst_test

import (
	"fmt"

	"github.com/arborist-graph/lattice/core"
	"github.com/arborist-graph/lattice/mst"
)

func ExampleKruskal() {
	g := core.New[core.WeightedEdge[int]](core.Undirected, 4)
	g.Add(core.NewWeightedEdge(0, 1, 1))
	g.Add(core.NewWeightedEdge(1, 2, 2))
	g.Add(core.NewWeightedEdge(2, 3, 3))
	g.Add(core.NewWeightedEdge(0, 3, 10))

	res, err := mst.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.TotalWeight)
	fmt.Println(len(res.Edges))
	// Output:
	// 6
	// 3
}
