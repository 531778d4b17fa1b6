// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph implements the vertex/domain data model the chromatic
// search operates on: vertices with packed bitset neighborhoods and a
// per-vertex color-domain bitset, plus the handful of whole-graph
// statistics (density, balance, max degree) the search driver and the
// configuration decision tree need to pick a strategy.
package graph

import "fmt"

// Graph is an undirected simple graph with at most MaxColors colors
// available to any coloring of it. Vertices are addressed by a stable
// integer index in [0, |V|).
type Graph struct {
	vertices []Vertex
	edges    int
}

// New returns an empty Graph with n vertices and no edges.
func New(n int) *Graph {
	g := &Graph{vertices: make([]Vertex, n)}
	for i := range g.vertices {
		g.vertices[i] = Vertex{id: i, color: Uncolored, neighbors: NewNeighbors(n)}
	}
	return g
}

// NumVertices returns |V|.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// NumEdges returns |E|.
func (g *Graph) NumEdges() int { return g.edges }

// Vertex returns a pointer to the vertex at index v. It panics if v is out
// of range, since an out-of-range vertex handle is a caller bug, not a
// recoverable condition.
func (g *Graph) Vertex(v int) *Vertex {
	if v < 0 || v >= len(g.vertices) {
		panic(fmt.Sprintf("graph: vertex index %d out of range [0,%d)", v, len(g.vertices)))
	}
	return &g.vertices[v]
}

// Vertices returns every vertex, in index order.
func (g *Graph) Vertices() []Vertex { return g.vertices }

// AddEdge adds the undirected edge (u,v), updating the degree and neighbor
// bitset of both endpoints. Self-loops are rejected; the caller (a format
// reader) is expected to have already validated u != v, so this is treated
// as a programmer error rather than a user error.
func (g *Graph) AddEdge(u, v int) {
	if u == v {
		panic("graph: self-loop")
	}
	a, b := g.Vertex(u), g.Vertex(v)
	if a.neighbors.Has(v) {
		return // already recorded; keep add_edge idempotent
	}
	a.neighbors.Set(v)
	b.neighbors.Set(u)
	a.adj = append(a.adj, v)
	b.adj = append(b.adj, u)
	a.degree++
	b.degree++
	g.edges++
}

// Neighbors reports whether u and v are adjacent by scanning u's adjacency
// list. This predicate is intentionally O(degree): the colorer's hot loops
// walk the adjacency list directly rather than calling this, so the scan
// cost here is never on the critical path (see Vertex.HasNeighbor for the
// O(1) alternative).
func (g *Graph) Neighbors(u, v int) bool {
	for _, w := range g.Vertex(u).adj {
		if w == v {
			return true
		}
	}
	return false
}

// MaxDegree returns the maximum vertex degree, Delta(G).
func (g *Graph) MaxDegree() int {
	max := 0
	for i := range g.vertices {
		if d := g.vertices[i].degree; d > max {
			max = d
		}
	}
	return max
}

// AvgDegree returns the mean vertex degree, 2|E|/|V|.
func (g *Graph) AvgDegree() float64 {
	if len(g.vertices) == 0 {
		return 0
	}
	return 2 * float64(g.edges) / float64(len(g.vertices))
}

// Density returns AVG_DEGREE/|V|.
func (g *Graph) Density() float64 {
	if len(g.vertices) == 0 {
		return 0
	}
	return g.AvgDegree() / float64(len(g.vertices))
}

// Balance returns MAX_DEGREE/AVG_DEGREE, or 0 for a graph with no edges.
func (g *Graph) Balance() float64 {
	avg := g.AvgDegree()
	if avg == 0 {
		return 0
	}
	return float64(g.MaxDegree()) / avg
}

// SetAvailableColors resets every vertex's color to Uncolored and its
// domain to the first k colors. It panics if k exceeds MaxColors: the
// caller (the search driver) is responsible for never requesting more
// colors than the bitset domain can hold.
func (g *Graph) SetAvailableColors(k int) {
	if k > MaxColors {
		panic(fmt.Sprintf("graph: requested %d colors exceeds MaxColors=%d", k, MaxColors))
	}
	full := FullColorSet(k)
	for i := range g.vertices {
		g.vertices[i].color = Uncolored
		g.vertices[i].domain = full
	}
}

// UpdateAvailability clears every bit >= k from every vertex's domain, used
// by EXHAUSTIVE mode to narrow the search whenever CHROMATIC tightens.
func (g *Graph) UpdateAvailability(k int) {
	mask := FullColorSet(k)
	for i := range g.vertices {
		g.vertices[i].domain &= mask
	}
}

// IsConnected reports whether g is connected, treating the empty graph as
// connected.
func (g *Graph) IsConnected() bool {
	if len(g.vertices) <= 1 {
		return true
	}
	return len(g.ConnectedComponents()) <= 1
}

// ConnectedComponents returns the vertex indices of each connected
// component of g, each sorted ascending.
func (g *Graph) ConnectedComponents() [][]int {
	seen := make([]bool, len(g.vertices))
	var comps [][]int
	for s := range g.vertices {
		if seen[s] {
			continue
		}
		var comp []int
		stack := []int{s}
		seen[s] = true
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, u)
			for _, w := range g.vertices[u].adj {
				if !seen[w] {
					seen[w] = true
					stack = append(stack, w)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// Subgraph returns a new Graph containing only the given vertex indices,
// renumbered 0..len(keep)-1 in the order given, along with the mapping from
// new index back to the original index in g.
func (g *Graph) Subgraph(keep []int) (sub *Graph, toOriginal []int) {
	newIndex := make(map[int]int, len(keep))
	for i, v := range keep {
		newIndex[v] = i
	}
	sub = New(len(keep))
	for i, v := range keep {
		for _, w := range g.vertices[v].adj {
			j, ok := newIndex[w]
			if ok && j > i {
				sub.AddEdge(i, j)
			}
		}
	}
	return sub, append([]int(nil), keep...)
}

// RemoveIsolatedVertices removes every degree-0 vertex and renumbers the
// survivors 0..|V'|-1, preserving their relative order. It returns the
// mapping from each surviving vertex's new index to its original index.
func (g *Graph) RemoveIsolatedVertices() (survivorOriginal []int) {
	// Removing a vertex shifts every index above it down by one, and
	// every neighbor bitset must have that bit position closed up to
	// match; walk from the highest isolated index down so earlier
	// removals never invalidate a not-yet-processed index.
	var isolated []int
	for i := range g.vertices {
		if g.vertices[i].degree == 0 {
			isolated = append(isolated, i)
		}
	}
	survivorOriginal = make([]int, len(g.vertices))
	for i := range survivorOriginal {
		survivorOriginal[i] = i
	}
	for k := len(isolated) - 1; k >= 0; k-- {
		v := isolated[k]
		g.removeVertex(v)
		survivorOriginal = append(survivorOriginal[:v], survivorOriginal[v+1:]...)
	}
	return survivorOriginal
}

// removeVertex deletes vertex v from the index space, shifting every
// surviving vertex above v down by one and rewriting every adjacency list
// and neighbor bitset to match. v must have degree 0.
func (g *Graph) removeVertex(v int) {
	g.vertices = append(g.vertices[:v], g.vertices[v+1:]...)
	for i := range g.vertices {
		g.vertices[i].id = i
		g.vertices[i].neighbors.removeBit(v)
		for j, w := range g.vertices[i].adj {
			if w > v {
				g.vertices[i].adj[j] = w - 1
			}
		}
	}
}
