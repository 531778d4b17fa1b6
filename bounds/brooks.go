// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bounds implements the upper-bound estimators that seed the
// chromatic search: a conservative approximation of Brooks' theorem, the
// Welsh-Powell greedy color-class extension, and Recursive Largest First.
// WelshPowell and RecursiveLargestFirst follow the structure of gonum's
// graph/coloring.WelshPowell and graph/coloring.RecursiveLargestFirst,
// adapted from gonum's map[int64]int coloring and graph.Undirected node
// iterators to this package's packed-bitset graph.Graph.
package bounds

import "github.com/colorworks/chromanum/graph"

// Brooks returns an upper bound on chi(G) using a conservative reading of
// Brooks' theorem: it only recognizes the two classes Brooks' theorem
// singles out (complete graphs and odd cycles) and otherwise falls back to
// Delta(G)+0, i.e. Delta(G). It is sound as an upper bound for a connected
// graph; on a disconnected graph it can fall below chi(G) (K4 plus an
// isolated vertex yields 3). It is not tight outside the flagged classes
// (for instance it does not
// distinguish a general odd-cycle-containing graph from one that is
// bipartite); callers that need a tighter bound should also consult
// WelshPowell or RecursiveLargestFirst.
func Brooks(g *graph.Graph) int {
	n := g.NumVertices()
	if n == 0 {
		return 0
	}
	delta := g.MaxDegree()
	if n%2 == 1 {
		if sameDegree(g) && (delta == 2 || delta == n-1) {
			return delta + 1
		}
		return delta
	}
	if isComplete(g) {
		return delta + 1
	}
	return delta
}

func sameDegree(g *graph.Graph) bool {
	vs := g.Vertices()
	if len(vs) == 0 {
		return true
	}
	d := vs[0].Degree()
	for i := 1; i < len(vs); i++ {
		if vs[i].Degree() != d {
			return false
		}
	}
	return true
}

func isComplete(g *graph.Graph) bool {
	n := g.NumVertices()
	for _, v := range g.Vertices() {
		if v.Degree() != n-1 {
			return false
		}
	}
	return true
}
