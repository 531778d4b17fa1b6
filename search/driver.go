// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"errors"

	"github.com/colorworks/chromanum/bounds"
	"github.com/colorworks/chromanum/graph"
	"github.com/colorworks/chromanum/heuristics"
)

// ErrCapacity is panicked by runConnected's bracket drivers when a
// graph's initial upper bound exceeds graph.MaxColors: the bitset domain
// this package is built on cannot represent more than 64 colors, and that
// is out of this tool's scope rather than a search failure. Callers at a
// boundary (chromatic.Chromatic) recover it and return it as an ordinary
// error.
var ErrCapacity = errors.New("search: graph's upper bound exceeds the 64-color domain capacity")

// Strategy names a search-driver bracket state.
type Strategy int

const (
	Greedy Strategy = iota
	Binary
	Grebin
	Exhaustive
)

func (s Strategy) String() string {
	switch s {
	case Greedy:
		return "GREEDY"
	case Binary:
		return "BINARY"
	case Grebin:
		return "GREBIN"
	case Exhaustive:
		return "EXHAUSTIVE"
	default:
		return "UNKNOWN"
	}
}

// BoundKind names an upper-bound estimator choice feeding Chi's bracket.
type BoundKind int

const (
	NoBound BoundKind = iota
	BrooksBound
	RLFBound
	WPBound
)

func (b BoundKind) String() string {
	switch b {
	case NoBound:
		return "NO"
	case BrooksBound:
		return "BROOKS"
	case RLFBound:
		return "RLF"
	case WPBound:
		return "WP"
	default:
		return "UNKNOWN"
	}
}

// KColorable decides whether g admits a proper coloring using at most k
// colors under policy, returning a witness coloring (one entry per vertex,
// in vertex-index order) on success.
func KColorable(g *graph.Graph, k int, policy heuristics.Policy) (colors []int, ok bool) {
	if k <= 0 {
		return nil, g.NumVertices() == 0
	}
	ctx := NewContext(g, policy, k)
	if !Color(ctx) {
		return nil, false
	}
	return snapshotColors(g), true
}

// Chi brackets chi(G) using strategy and boundKind, decomposing across
// connected components first (chi(G) is the max over components; a
// component no larger than the best chromatic number found so far cannot
// raise that max, so it is colored cheaply rather than searched).
func Chi(g *graph.Graph, strategy Strategy, boundKind BoundKind, policy heuristics.Policy) (k int, colors []int) {
	if g.NumVertices() == 0 {
		return 0, nil
	}
	comps := g.ConnectedComponents()
	if len(comps) <= 1 {
		return runConnected(g, strategy, boundKind, policy)
	}

	colors = make([]int, g.NumVertices())
	best := 0
	for _, comp := range comps {
		sub, toOriginal := g.Subgraph(comp)
		var compK int
		var compColors []int
		if len(comp) <= best {
			compK, compColors = cheapColoring(sub, policy)
		} else {
			compK, compColors = runConnected(sub, strategy, boundKind, policy)
		}
		if compK > best {
			best = compK
		}
		for i, orig := range toOriginal {
			colors[orig] = compColors[i]
		}
	}
	return best, colors
}

// cheapColoring colors sub without searching for optimality, used for a
// component already known not to raise the overall maximum.
func cheapColoring(sub *graph.Graph, policy heuristics.Policy) (int, []int) {
	k := bounds.WelshPowell(sub)
	colors, ok := KColorable(sub, k, policy)
	if !ok {
		// WelshPowell's k is always achievable; this would indicate a
		// graph.Graph/search bug, not a user-facing condition.
		panic("search: WelshPowell bound rejected by KColorable")
	}
	return k, colors
}

func runConnected(g *graph.Graph, strategy Strategy, boundKind BoundKind, policy heuristics.Policy) (int, []int) {
	bound := initialBound(g, boundKind)
	if bound > graph.MaxColors {
		panic(ErrCapacity)
	}
	if boundKind == BrooksBound && bound == g.MaxDegree()+1 {
		if colors, ok := KColorable(g, bound, policy); ok {
			return bound, colors
		}
	}
	switch strategy {
	case Greedy:
		return driverGreedy(g, policy)
	case Binary:
		return driverBinary(g, policy, bound)
	case Grebin:
		return driverGrebin(g, policy, bound)
	case Exhaustive:
		return driverExhaustive(g, policy, bound)
	default:
		return driverGreedy(g, policy)
	}
}

func initialBound(g *graph.Graph, boundKind BoundKind) int {
	switch boundKind {
	case BrooksBound:
		return bounds.Brooks(g)
	case RLFBound:
		return bounds.RecursiveLargestFirst(g)
	case WPBound:
		return bounds.WelshPowell(g)
	default:
		return g.NumVertices()
	}
}

func driverGreedy(g *graph.Graph, policy heuristics.Policy) (int, []int) {
	limit := g.NumVertices()
	if limit > graph.MaxColors {
		limit = graph.MaxColors
	}
	for u := 1; u <= limit; u++ {
		if colors, ok := KColorable(g, u, policy); ok {
			return u, colors
		}
	}
	panic(ErrCapacity)
}

func driverBinary(g *graph.Graph, policy heuristics.Policy, bound int) (int, []int) {
	hi := bound
	if hi < graph.MaxColors {
		hi *= 2
		if hi > graph.MaxColors {
			hi = graph.MaxColors
		}
	}
	colors, ok := KColorable(g, hi, policy)
	if !ok {
		hi = g.NumVertices()
		colors, _ = KColorable(g, hi, policy)
	}
	return bisect(g, policy, 0, hi, colors)
}

func driverGrebin(g *graph.Graph, policy heuristics.Policy, bound int) (int, []int) {
	u := 1
	prevFail := 0
	for {
		if colors, ok := KColorable(g, u, policy); ok {
			return bisect(g, policy, prevFail, u, colors)
		}
		prevFail = u
		if u >= bound {
			u++
			continue
		}
		u *= 2
		if u > bound {
			u = bound
		}
	}
}

func driverExhaustive(g *graph.Graph, policy heuristics.Policy, bound int) (int, []int) {
	k := bound
	if k > graph.MaxColors {
		k = graph.MaxColors
	}
	ctx := NewContext(g, policy, k)
	ctx.Exhaustive = true
	ctx.Chromatic = k - 1
	Color(ctx)
	chi := ctx.Chromatic + 1
	colors := ctx.BestColors
	if colors == nil {
		colors, _ = KColorable(g, chi, policy)
	}
	return chi, colors
}

// bisect narrows [lo, hi] to the least feasible k, given hi already known
// feasible with witness hiColors and lo known (or assumed, at lo=0)
// infeasible.
func bisect(g *graph.Graph, policy heuristics.Policy, lo, hi int, hiColors []int) (int, []int) {
	for hi > lo+1 {
		mid := (lo + hi) / 2
		if colors, ok := KColorable(g, mid, policy); ok {
			hi, hiColors = mid, colors
		} else {
			lo = mid
		}
	}
	return hi, hiColors
}
