// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lowk implements the low-k specialist: a direct bipartite check
// for 2-colorability, and a Bron-Kerbosch-driven reduction for 3- and
// 4-colorability, each independent-set peel handled as a maximal-clique
// enumeration on the complement graph. The explicit-stack traversal style
// follows gonum's graph/traverse.BreadthFirst.
package lowk

import "github.com/colorworks/chromanum/graph"

// Bipartite reports whether g is 2-colorable, returning a witness coloring
// on success. Each connected component is colored independently by a
// depth-first alternation from an arbitrary start vertex; a monochromatic
// edge discovered anywhere fails the whole graph.
func Bipartite(g *graph.Graph) (colors []int, ok bool) {
	n := g.NumVertices()
	colors = make([]int, n)
	for i := range colors {
		colors[i] = graph.Uncolored
	}
	for s := 0; s < n; s++ {
		if colors[s] != graph.Uncolored {
			continue
		}
		colors[s] = 0
		stack := []int{s}
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, u := range g.Vertex(v).Adjacency() {
				switch colors[u] {
				case graph.Uncolored:
					colors[u] = 1 - colors[v]
					stack = append(stack, u)
				case colors[v]:
					return nil, false
				}
			}
		}
	}
	return colors, true
}
