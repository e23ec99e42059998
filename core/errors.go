package core

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the codec. These are the only data-dependent
// failures core ever reports as typed errors; everything else (an
// out-of-range vertex passed to Add/Remove/Adjacent, or Other called with a
// vertex that is not one of the edge's endpoints) is a programmer error and
// panics instead, per the package's failure-semantics split (see doc.go).
var (
	// ErrDecodedVertexCountNegative indicates a decoded vertex_count < 0.
	ErrDecodedVertexCountNegative = errors.New("core: decoded vertex count is negative")

	// ErrDecodedEdgeOutOfBounds indicates a decoded edge endpoint outside 0..vertex_count.
	ErrDecodedEdgeOutOfBounds = errors.New("core: decoded edge endpoint out of bounds")
)

// badVertex panics with a consistent message for out-of-range vertex
// accesses. Kept as a single helper so the wording stays uniform across
// Add/Remove/Adjacent.
func badVertex(op string, v, vertexCount int) {
	panic(fmt.Sprintf("core: %s: vertex %d out of range [0,%d)", op, v, vertexCount))
}

// badEndpoint panics when Other is called with a vertex that is not one of
// the edge's two endpoints.
func badEndpoint(v int) {
	panic(fmt.Sprintf("core: vertex %d is not an endpoint of this edge", v))
}
