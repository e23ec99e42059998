package builder

import (
	"fmt"
	"math/rand"

	"github.com/arborist-graph/lattice/core"
)

const (
	minCompleteNodes  = 1
	minCycleNodes     = 3
	minPathNodes      = 2
	minStarNodes      = 2
	minGridDim        = 1
	minPartitionSize  = 1
	minSparseVertices = 1
)

// EdgeFn builds the edge for the ordered pair (u, v); it is called once per
// emitted pair in the topology's documented order.
type EdgeFn[E core.Edge[E]] func(u, v int) E

// Option configures a generator run.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithSeed seeds the generator's RNG, required by RandomSparse whenever
// 0 < p < 1.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

func resolve(opts []Option) options {
	var o options
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// addBoth adds e to g, and for directed graphs also adds its reverse so the
// topology reads as symmetric regardless of Kind.
func addBoth[E core.Edge[E]](g *core.AdjacencyList[E], edgeFn EdgeFn[E], u, v int) {
	g.Add(edgeFn(u, v))
	if g.Kind() == core.Directed {
		g.Add(edgeFn(v, u))
	}
}

// Complete builds the complete simple graph K_n: every unordered pair gets
// an edge, emitted in lexicographic (i,j) order with i<j.
func Complete[E core.Edge[E]](kind core.GraphKind, n int, edgeFn EdgeFn[E]) (*core.AdjacencyList[E], error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("builder: Complete: n=%d < %d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}
	g := core.New[E](kind, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			addBoth(g, edgeFn, i, j)
		}
	}
	return g, nil
}

// Cycle builds an n-vertex simple cycle C_n (n >= 3): edges i -> (i+1)%n.
// For a directed graph this produces a single-direction ring, not a
// symmetric one: unlike Complete, Cycle does not add the reverse edges.
func Cycle[E core.Edge[E]](kind core.GraphKind, n int, edgeFn EdgeFn[E]) (*core.AdjacencyList[E], error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("builder: Cycle: n=%d < %d: %w", n, minCycleNodes, ErrTooFewVertices)
	}
	g := core.New[E](kind, n)
	for i := 0; i < n; i++ {
		g.Add(edgeFn(i, (i+1)%n))
	}
	return g, nil
}

// Path builds a simple path P_n (n >= 2): edges (i-1) -> i for i=1..n-1. For
// a directed graph this produces a single-direction path.
func Path[E core.Edge[E]](kind core.GraphKind, n int, edgeFn EdgeFn[E]) (*core.AdjacencyList[E], error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("builder: Path: n=%d < %d: %w", n, minPathNodes, ErrTooFewVertices)
	}
	g := core.New[E](kind, n)
	for i := 1; i < n; i++ {
		g.Add(edgeFn(i - 1, i))
	}
	return g, nil
}

// Star builds a star with hub vertex 0 and n-1 leaves 1..n-1 (n >= 2).
func Star[E core.Edge[E]](kind core.GraphKind, n int, edgeFn EdgeFn[E]) (*core.AdjacencyList[E], error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("builder: Star: n=%d < %d: %w", n, minStarNodes, ErrTooFewVertices)
	}
	g := core.New[E](kind, n)
	for leaf := 1; leaf < n; leaf++ {
		addBoth(g, edgeFn, 0, leaf)
	}
	return g, nil
}

// CompleteBipartite builds K_{n1,n2}: the left partition occupies vertices
// 0..n1-1 and the right partition occupies n1..n1+n2-1. Every cross pair
// gets an edge, emitted left-ascending then right-ascending.
func CompleteBipartite[E core.Edge[E]](kind core.GraphKind, n1, n2 int, edgeFn EdgeFn[E]) (*core.AdjacencyList[E], error) {
	if n1 < minPartitionSize || n2 < minPartitionSize {
		return nil, fmt.Errorf("builder: CompleteBipartite: n1=%d, n2=%d (each must be >= %d): %w",
			n1, n2, minPartitionSize, ErrTooFewVertices)
	}
	g := core.New[E](kind, n1+n2)
	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			addBoth(g, edgeFn, i, n1+j)
		}
	}
	return g, nil
}

// GridIndex maps a (row, col) coordinate to its vertex index in a
// rows x cols grid built by Grid, using row-major order.
func GridIndex(cols, r, c int) int { return r*cols + c }

// Grid builds a rows x cols orthogonal grid with 4-neighborhood connectivity
// (right and bottom neighbors per cell), vertices numbered row-major via
// GridIndex.
func Grid[E core.Edge[E]](kind core.GraphKind, rows, cols int, edgeFn EdgeFn[E]) (*core.AdjacencyList[E], error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("builder: Grid: rows=%d, cols=%d (each must be >= %d): %w",
			rows, cols, minGridDim, ErrTooFewVertices)
	}
	g := core.New[E](kind, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := GridIndex(cols, r, c)
			if c+1 < cols {
				addBoth(g, edgeFn, u, GridIndex(cols, r, c+1))
			}
			if r+1 < rows {
				addBoth(g, edgeFn, u, GridIndex(cols, r+1, c))
			}
		}
	}
	return g, nil
}

// RandomSparse samples an Erdős–Rényi-like graph over n vertices, including
// each admissible pair independently with probability p. Undirected graphs
// consider unordered pairs {i,j}, i<j; directed graphs consider ordered
// pairs (i,j), i != j. A seed via WithSeed is required whenever
// 0 < p < 1; p == 0 and p == 1 are deterministic and need no RNG.
func RandomSparse[E core.Edge[E]](kind core.GraphKind, n int, p float64, edgeFn EdgeFn[E], opts ...Option) (*core.AdjacencyList[E], error) {
	if n < minSparseVertices {
		return nil, fmt.Errorf("builder: RandomSparse: n=%d < %d: %w", n, minSparseVertices, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("builder: RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
	}
	o := resolve(opts)
	if o.rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("builder: RandomSparse: %w", ErrNeedRandSource)
	}

	g := core.New[E](kind, n)
	include := func() bool {
		if p == 0 {
			return false
		}
		if p == 1 {
			return true
		}
		return o.rng.Float64() < p
	}

	if kind == core.Directed {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if include() {
					g.Add(edgeFn(i, j))
				}
			}
		}
		return g, nil
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if include() {
				g.Add(edgeFn(i, j))
			}
		}
	}
	return g, nil
}
