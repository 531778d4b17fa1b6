// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bounds

import "github.com/colorworks/chromanum/graph"

// RecursiveLargestFirst returns an upper bound on chi(G) using the
// Recursive Largest First heuristic of Leighton. Vertices are sorted by
// descending degree. For each color class, a primary vertex (the first
// uncolored vertex) is colored, partitioning the remaining uncolored
// vertices into U (adjacent to the class so far) and V (not yet adjacent).
// While V is non-empty, a secondary vertex maximizing |N(secondary) n U| is
// chosen from V, colored, and moved (along with its V-neighbors) into U.
//
// Tiebreak: when several candidates in V tie for the maximum, the lowest
// vertex index within V is chosen. The spec text describing RLF leaves this
// tiebreak unspecified beyond "lowest index in V"; this is taken literally
// here (index meaning the vertex's own identity, not a position within a
// transient work array), which keeps the heuristic deterministic without
// depending on iteration order.
//
// All vertex colors are restored to Uncolored before returning.
func RecursiveLargestFirst(g *graph.Graph) int {
	n := g.NumVertices()
	if n == 0 {
		return 0
	}
	order := descendingDegreeOrder(g)
	colored := make([]bool, n)
	inU := make([]bool, n)
	remaining := n
	k := 0
	for remaining > 0 {
		primary := firstUncolored(order, colored)
		g.Vertex(primary).SetColor(k)
		colored[primary] = true
		remaining--

		for i := range inU {
			inU[i] = false
		}
		var v []int
		for _, u := range order {
			if colored[u] {
				continue
			}
			if g.Neighbors(primary, u) {
				inU[u] = true
			} else {
				v = append(v, u)
			}
		}

		for len(v) > 0 {
			secondary, idx := bestSecondary(g, v, inU)
			g.Vertex(secondary).SetColor(k)
			colored[secondary] = true
			remaining--
			v = append(v[:idx], v[idx+1:]...)

			inU[secondary] = true
			var keep []int
			for _, u := range v {
				if g.Neighbors(secondary, u) {
					inU[u] = true
				} else {
					keep = append(keep, u)
				}
			}
			v = keep
		}
		k++
	}
	resetColors(g)
	return k
}

func firstUncolored(order []int, colored []bool) int {
	for _, u := range order {
		if !colored[u] {
			return u
		}
	}
	panic("bounds: RecursiveLargestFirst called with no uncolored vertices remaining")
}

// bestSecondary returns the vertex in v maximizing adjacency to U, along
// with its index within v, breaking ties by lowest vertex index.
func bestSecondary(g *graph.Graph, v []int, inU []bool) (vertex, idx int) {
	bestCount := -1
	vertex, idx = v[0], 0
	for i, cand := range v {
		count := 0
		for _, u := range g.Vertex(cand).Adjacency() {
			if inU[u] {
				count++
			}
		}
		if count > bestCount || (count == bestCount && cand < vertex) {
			bestCount = count
			vertex = cand
			idx = i
		}
	}
	return vertex, idx
}
