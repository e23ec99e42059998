package core

import "fmt"

// GraphKind selects how AdjacencyList stores and reverses edges.
type GraphKind int

const (
	// Directed graphs store each edge once, under its tail.
	Directed GraphKind = iota
	// Undirected graphs store each edge twice: once under either endpoint,
	// once reversed under the other.
	Undirected
)

// String implements fmt.Stringer for diagnostics and the YAML codec.
func (k GraphKind) String() string {
	switch k {
	case Directed:
		return "directed"
	case Undirected:
		return "undirected"
	default:
		return fmt.Sprintf("GraphKind(%d)", int(k))
	}
}

// AdjacencyList is a value-semantic, vertex-indexed graph over edge type E.
// Vertices are the dense range 0..VertexCount. See doc.go for the storage
// invariants per GraphKind.
type AdjacencyList[E Edge[E]] struct {
	kind        GraphKind
	vertexCount int
	edgeCount   int
	adj         [][]E
}

// New returns a fully disconnected graph with vertexCount vertices. Panics
// on a negative vertexCount.
func New[E Edge[E]](kind GraphKind, vertexCount int) *AdjacencyList[E] {
	if vertexCount < 0 {
		panic(fmt.Sprintf("core: New: negative vertex count %d", vertexCount))
	}
	return &AdjacencyList[E]{
		kind:        kind,
		vertexCount: vertexCount,
		adj:         make([][]E, vertexCount),
	}
}

// FromEdges builds a graph from an edge stream. If edges is empty the
// result has VertexCount 0. Otherwise VertexCount is one more than the
// largest endpoint seen across all edges. Panics if any endpoint is
// negative (the same programmer-error policy as Add).
func FromEdges[E Edge[E]](kind GraphKind, edges []E) *AdjacencyList[E] {
	if len(edges) == 0 {
		return &AdjacencyList[E]{kind: kind}
	}

	maxV := 0
	for _, e := range edges {
		if t := e.Tail(); t > maxV {
			maxV = t
		}
		if h := e.Head(); h > maxV {
			maxV = h
		}
	}

	g := New[E](kind, maxV+1)
	for _, e := range edges {
		g.Add(e)
	}
	return g
}

// Kind reports the graph's GraphKind.
func (g *AdjacencyList[E]) Kind() GraphKind { return g.kind }

// VertexCount reports the number of vertices (0..VertexCount).
func (g *AdjacencyList[E]) VertexCount() int { return g.vertexCount }

// EdgeCount reports the number of input edges currently stored, counting
// each undirected edge once regardless of its double storage.
func (g *AdjacencyList[E]) EdgeCount() int { return g.edgeCount }

// Adjacent returns the edges incident to v, in insertion order. The
// returned slice is a defensive copy: mutating it never corrupts the graph.
// Panics if v is out of range.
func (g *AdjacencyList[E]) Adjacent(v int) []E {
	g.checkVertex("Adjacent", v)
	out := make([]E, len(g.adj[v]))
	copy(out, g.adj[v])
	return out
}

// Add appends e to the graph, storing it per Kind's rule (see doc.go).
// Panics if either endpoint is out of range.
func (g *AdjacencyList[E]) Add(e E) {
	tail, head := e.Tail(), e.Head()
	g.checkVertex("Add", tail)
	g.checkVertex("Add", head)

	g.adj[e.Either()] = append(g.adj[e.Either()], e)
	if g.kind == Undirected {
		other := e.Other(e.Either())
		g.adj[other] = append(g.adj[other], e.Reversed())
	}
	g.edgeCount++
}

// Remove deletes the first insertion-ordered occurrence of an edge
// Equal to e. Returns false and leaves the graph untouched if no such edge
// exists. Panics if e.Either() is out of range (the same programmer-error
// policy as Add/Adjacent).
func (g *AdjacencyList[E]) Remove(e E) bool {
	slot := e.Either()
	g.checkVertex("Remove", slot)

	i := indexOfEqual(g.adj[slot], e)
	if i < 0 {
		return false
	}
	g.adj[slot] = removeAt(g.adj[slot], i)

	if g.kind == Undirected {
		other := e.Other(slot)
		rev := e.Reversed()
		j := indexOfEqual(g.adj[other], rev)
		if j < 0 {
			panic("core: Remove: undirected mirror edge missing, invariant broken")
		}
		g.adj[other] = removeAt(g.adj[other], j)
	}

	g.edgeCount--
	return true
}

// RemoveAllEdges clears every adjacency slot and resets EdgeCount to 0,
// preserving VertexCount and Kind.
func (g *AdjacencyList[E]) RemoveAllEdges() {
	for i := range g.adj {
		g.adj[i] = nil
	}
	g.edgeCount = 0
}

// Reverse replaces every stored edge with its Reversed(), re-indexed under
// its new Either(). A no-op on undirected graphs. EdgeCount and VertexCount
// are unchanged.
func (g *AdjacencyList[E]) Reverse() {
	if g.kind == Undirected {
		return
	}
	newAdj := make([][]E, g.vertexCount)
	for _, lst := range g.adj {
		for _, e := range lst {
			r := e.Reversed()
			newAdj[r.Either()] = append(newAdj[r.Either()], r)
		}
	}
	g.adj = newAdj
}

// Reversed returns Clone().Reverse() without mutating the receiver.
func (g *AdjacencyList[E]) Reversed() *AdjacencyList[E] {
	c := g.Clone()
	c.Reverse()
	return c
}

// Clone returns an independent deep copy: mutating the clone never affects
// the receiver and vice versa.
func (g *AdjacencyList[E]) Clone() *AdjacencyList[E] {
	c := &AdjacencyList[E]{
		kind:        g.kind,
		vertexCount: g.vertexCount,
		edgeCount:   g.edgeCount,
		adj:         make([][]E, len(g.adj)),
	}
	for i, lst := range g.adj {
		if lst == nil {
			continue
		}
		c.adj[i] = append([]E(nil), lst...)
	}
	return c
}

func (g *AdjacencyList[E]) checkVertex(op string, v int) {
	if v < 0 || v >= g.vertexCount {
		badVertex(op, v, g.vertexCount)
	}
}

func indexOfEqual[E Edge[E]](lst []E, target E) int {
	for i, e := range lst {
		if e.Equal(target) {
			return i
		}
	}
	return -1
}

func removeAt[E Edge[E]](lst []E, i int) []E {
	return append(lst[:i], lst[i+1:]...)
}
