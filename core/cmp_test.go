package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/arborist-graph/lattice/core"
)

// TestCloneStructuralEquivalence uses go-cmp, rather than a hand-rolled
// field-by-field comparison, to assert that a clone is structurally
// identical to its source graph. WeightedEdge keeps its endpoints in
// unexported fields, so cmp needs cmpopts.EquateComparable to compare it
// with == instead of refusing to inspect those fields.
func TestCloneStructuralEquivalence(t *testing.T) {
	g := core.New[core.WeightedEdge[int]](core.Directed, 4)
	g.Add(core.NewWeightedEdge(0, 1, 3))
	g.Add(core.NewWeightedEdge(1, 2, 4))
	g.Add(core.NewWeightedEdge(2, 3, 5))

	clone := g.Clone()

	opts := cmp.Options{cmpopts.EquateComparable(core.WeightedEdge[int]{})}
	for v := 0; v < g.VertexCount(); v++ {
		if diff := cmp.Diff(g.Adjacent(v), clone.Adjacent(v), opts); diff != "" {
			t.Fatalf("clone diverged at vertex %d (-orig +clone):\n%s", v, diff)
		}
	}
}
