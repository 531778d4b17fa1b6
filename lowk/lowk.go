// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lowk

import (
	"fmt"

	"github.com/colorworks/chromanum/graph"
)

// Colorable decides k-colorability for k in {2,3,4} using the bipartite
// check directly for k=2 and, for k=3 and k=4, the reduction "G is
// k-colorable iff some independent set S has G\S (k-1)-colorable": S is
// peeled off by recursing over MaximalIndependentSets(g) (k=2 terminates
// the recursion), coloring S with the extra color label k-1 on success.
// Enumeration short-circuits at the first S that succeeds.
//
// Colorable panics for any k outside {2,3,4}: a caller requesting it
// outside that range is a programming error, not a user-facing condition
// (the search driver's general colorer handles every other k).
func Colorable(g *graph.Graph, k int) (colors []int, ok bool) {
	if k < 2 || k > 4 {
		panic(fmt.Sprintf("lowk: Colorable called with k=%d, want k in {2,3,4}", k))
	}
	return colorable(g, k)
}

func colorable(g *graph.Graph, k int) ([]int, bool) {
	if k == 2 {
		return Bipartite(g)
	}
	n := g.NumVertices()
	for _, s := range MaximalIndependentSets(g) {
		if len(s) == 0 {
			continue
		}
		keep := complementOf(s, n)
		sub, toOriginal := g.Subgraph(keep)
		subColors, ok := colorable(sub, k-1)
		if !ok {
			continue
		}
		colors := make([]int, n)
		for i := range colors {
			colors[i] = graph.Uncolored
		}
		for i, orig := range toOriginal {
			colors[orig] = subColors[i]
		}
		for _, v := range s {
			colors[v] = k - 1
		}
		return colors, true
	}
	return nil, false
}

func complementOf(s []int, n int) []int {
	in := make([]bool, n)
	for _, v := range s {
		in[v] = true
	}
	keep := make([]int, 0, n-len(s))
	for v := 0; v < n; v++ {
		if !in[v] {
			keep = append(keep, v)
		}
	}
	return keep
}
