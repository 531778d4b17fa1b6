// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bounds

import (
	"sort"

	"github.com/colorworks/chromanum/graph"
)

// WelshPowell returns an upper bound on chi(G) using the Welsh-Powell
// heuristic: sort vertices by descending degree, then repeatedly take the
// first uncolored vertex, color it with the active color, and greedily
// extend that color class with every remaining uncolored vertex that has
// no neighbor already in the class. All vertex colors are restored to
// Uncolored before returning, since this is a bound estimator, not a
// coloring the caller should keep.
func WelshPowell(g *graph.Graph) int {
	n := g.NumVertices()
	if n == 0 {
		return 0
	}
	order := descendingDegreeOrder(g)
	colored := make([]bool, n)
	k := 0
	remaining := n
	for remaining > 0 {
		for _, v := range order {
			if colored[v] {
				continue
			}
			if classHasNeighbor(g, v, colored, k) {
				continue
			}
			g.Vertex(v).SetColor(k)
			colored[v] = true
			remaining--
		}
		k++
	}
	resetColors(g)
	return k
}

// classHasNeighbor reports whether v has a neighbor currently colored k.
// It is only ever asked about vertices not yet in class k, so checking
// against the live color array (rather than a separate per-class set) is
// sufficient.
func classHasNeighbor(g *graph.Graph, v int, colored []bool, k int) bool {
	for _, u := range g.Vertex(v).Adjacency() {
		if colored[u] && g.Vertex(u).Color() == k {
			return true
		}
	}
	return false
}

func descendingDegreeOrder(g *graph.Graph) []int {
	order := make([]int, g.NumVertices())
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return g.Vertex(order[i]).Degree() > g.Vertex(order[j]).Degree()
	})
	return order
}

func resetColors(g *graph.Graph) {
	for i := range g.Vertices() {
		g.Vertex(i).SetColor(graph.Uncolored)
	}
}
