// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lowk

import (
	"golang.org/x/tools/container/intsets"

	"github.com/colorworks/chromanum/graph"
)

// MaximalIndependentSets enumerates every maximal independent set of g via
// Bron-Kerbosch with pivoting, treating "independent in g" as "adjacent in
// the complement of g" so the classic maximal-clique recursion applies
// without materializing the complement graph. intsets.Sparse (as used by
// gonum's graph/topo.TarjanSCC for its on-stack set) backs R, P and X.
func MaximalIndependentSets(g *graph.Graph) [][]int {
	p := &intsets.Sparse{}
	for i := 0; i < g.NumVertices(); i++ {
		p.Insert(i)
	}
	var out [][]int
	bronKerbosch(g, &intsets.Sparse{}, p, &intsets.Sparse{}, &out)
	return out
}

func bronKerbosch(g *graph.Graph, r, p, x *intsets.Sparse, out *[][]int) {
	if p.IsEmpty() && x.IsEmpty() {
		*out = append(*out, r.AppendTo(nil))
		return
	}
	pivot := choosePivot(p, g)
	skip := complementNeighbors(p, g, pivot)
	for _, v := range p.AppendTo(nil) {
		if skip.Has(v) {
			continue
		}
		r2 := copySet(r)
		r2.Insert(v)
		p2 := complementNeighbors(p, g, v)
		x2 := complementNeighbors(x, g, v)
		bronKerbosch(g, r2, p2, x2, out)
		p.Remove(v)
		x.Insert(v)
	}
}

// choosePivot returns the vertex of p with the most complement-neighbors
// within p, ties broken by the lowest vertex index (p.Do visits elements in
// ascending order, and only a strictly greater count replaces the
// incumbent).
func choosePivot(p *intsets.Sparse, g *graph.Graph) int {
	best, bestCount := -1, -1
	p.Do(func(u int) {
		c := complementNeighbors(p, g, u).Len()
		if c > bestCount {
			bestCount, best = c, u
		}
	})
	return best
}

// complementNeighbors returns the subset of s adjacent to v in g's
// complement, i.e. not adjacent to v (and not v itself) in g.
func complementNeighbors(s *intsets.Sparse, g *graph.Graph, v int) *intsets.Sparse {
	out := &intsets.Sparse{}
	s.Do(func(u int) {
		if u != v && !g.Vertex(v).HasNeighbor(u) {
			out.Insert(u)
		}
	})
	return out
}

func copySet(s *intsets.Sparse) *intsets.Sparse {
	out := &intsets.Sparse{}
	s.Do(func(u int) { out.Insert(u) })
	return out
}
