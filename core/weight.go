package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Weight bounds the type parameter W of WeightedEdge[W] and everything built
// on it (flow.FlowEdge, flow.FlowNetwork). It admits every numeric type with
// a natural total order, zero value, and addition — exactly what Ford-
// Fulkerson's capacity/flow bookkeeping needs. constraints.Integer and
// constraints.Float (golang.org/x/exp/constraints) already give us +, -, <,
// and the zero value W(0) for free via ordinary Go operators; there is no
// need for a separate Zero()/Less() method set.
type Weight interface {
	constraints.Integer | constraints.Float
}

// hashWeight folds a Weight value into a uint64 for use by Edge.Hash. Values
// are widened to float64 first so the same bit pattern is produced for an
// integer 3 and a float 3.0 of different concrete types — Hash only needs to
// be consistent with Equal for a single edge type, but widening keeps the
// combination step in WeightedEdge.Hash (edge.go) type-agnostic.
func hashWeight[W Weight](w W) uint64 {
	f := float64(w)
	if f == 0 {
		f = 0 // fold -0.0 into +0.0, which Equal treats as the same weight
	}
	return math.Float64bits(f)
}
