// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chromatic is the library entry point: it composes the graph
// model, heuristics, bounds, search driver, low-k specialist, subset-DP
// cross-check, and configuration decision tree behind two calls, Chromatic
// and KColorable. It owns no algorithmic logic of its own beyond that
// composition.
package chromatic

import (
	"fmt"

	"github.com/colorworks/chromanum/bounds"
	"github.com/colorworks/chromanum/config"
	"github.com/colorworks/chromanum/dp"
	"github.com/colorworks/chromanum/graph"
	"github.com/colorworks/chromanum/lowk"
	"github.com/colorworks/chromanum/search"
)

// Result is the outcome of a Chromatic or KColorable call. For Chromatic,
// Colors always holds a witness coloring using colors [0,K). For
// KColorable, a nil Colors means k colors do not suffice; Optimal is then
// still true, since the decision itself is exact either way.
type Result struct {
	K       int
	Colors  map[int]int
	Optimal bool
}

// Chromatic computes chi(G) under cfg, preferring the low-k specialist's
// cheap exact answers (bipartite, then the Bron-Kerbosch 3- and
// 4-colorability reductions) before falling back to the configured search
// driver. For |V| <= config.DPCrossover it additionally cross-checks the
// result against the subset-DP variant, reporting the comparison in
// Optimal rather than trusting either path blindly.
func Chromatic(g *graph.Graph, cfg config.Config) (result Result, err error) {
	n := g.NumVertices()
	if n == 0 {
		return Result{Colors: map[int]int{}, Optimal: true}, nil
	}
	defer func() {
		if r := recover(); r != nil {
			if r == search.ErrCapacity {
				err = search.ErrCapacity
				return
			}
			panic(r)
		}
	}()

	k, colors := colorGraph(g, cfg)

	optimal := true
	if n <= config.DPCrossover {
		optimal = dp.Chi(g) == k
	}
	return toResult(k, colors, optimal), nil
}

// KColorable decides k-colorability. k in {2,3,4} always routes through
// the low-k specialist; every other k (including 1) runs the search
// package's general colorer directly, bypassing the search driver's
// bracket since k is already fixed.
func KColorable(g *graph.Graph, k int, cfg config.Config) (Result, error) {
	if k <= 0 {
		return Result{}, fmt.Errorf("chromatic: k must be positive, got %d", k)
	}
	if k > graph.MaxColors {
		return Result{}, fmt.Errorf("chromatic: k=%d exceeds the %d-color bitset capacity", k, graph.MaxColors)
	}
	var colors []int
	var ok bool
	if k >= 2 && k <= 4 {
		colors, ok = lowk.Colorable(g, k)
	} else {
		colors, ok = search.KColorable(g, k, cfg.Policy)
	}
	if !ok {
		return Result{K: k, Optimal: true}, nil
	}
	return toResult(k, colors, true), nil
}

// colorGraph returns an exact (k, witness coloring) pair for g, preferring
// the low-k specialist's cheap paths before the general search driver. The
// bipartite check is always cheap and always tried; the 3/4-colorability
// reduction is only worth its exponential worst case when a fast
// polynomial estimate (Welsh-Powell) already suggests a small answer, per
// the low-k specialist's own scope note that it is meant for k in
// {2,3,4}, not as a universal first attempt.
func colorGraph(g *graph.Graph, cfg config.Config) (int, []int) {
	if colors, ok := lowk.Bipartite(g); ok {
		return usedColors(colors), colors
	}
	if bounds.WelshPowell(g) <= 4 {
		if colors, ok := lowk.Colorable(g, 3); ok {
			return 3, colors
		}
		if colors, ok := lowk.Colorable(g, 4); ok {
			return 4, colors
		}
	}
	return search.Chi(g, cfg.Search, cfg.Bounds, cfg.Policy)
}

func usedColors(colors []int) int {
	max := -1
	for _, c := range colors {
		if c > max {
			max = c
		}
	}
	return max + 1
}

func toResult(k int, colors []int, optimal bool) Result {
	m := make(map[int]int, len(colors))
	for v, c := range colors {
		m[v] = c
	}
	return Result{K: k, Colors: m, Optimal: optimal}
}
