package builder_test

import (
	"fmt"

	"github.com/arborist-graph/lattice/builder"
	"github.com/arborist-graph/lattice/core"
)

func ExampleComplete() {
	g, err := builder.Complete(core.Undirected, 4, func(u, v int) core.UnweightedEdge {
		return core.NewUnweightedEdge(u, v)
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.VertexCount(), g.EdgeCount())
	// Output:
	// 4 6
}

func ExampleGrid() {
	g, err := builder.Grid(core.Undirected, 2, 3, func(u, v int) core.WeightedEdge[int] {
		return core.NewWeightedEdge(u, v, 1)
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.VertexCount(), g.EdgeCount())
	// Output:
	// 6 7
}
