// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heuristics implements the vertex-ordering and color-selection
// policies the constraint-propagating colorer dispatches to: static and
// dynamically re-sorted vertex orderings (VERTEX, DEGREE, IDO, DSATUR,
// RECOLOR, CONFLICT), the first-fit and connected-sequence next-vertex
// rules, and the first-fit next-color rule with its symmetry-breaking
// bound.
//
// Orderings are represented the way gonum's graph/coloring package
// represents its DSatur and descending-degree orders: a sort.Interface
// implementation per heuristic, picked by a switch on the Policy's
// Ordering at each call.
package heuristics

import (
	"sort"

	"github.com/colorworks/chromanum/graph"
)

// Ordering names a vertex-selection heuristic.
type Ordering int

const (
	// Vertex orders by ascending vertex identity (the identity order).
	Vertex Ordering = iota
	// Degree orders by descending degree, ties broken by identity.
	Degree
	// IDO (incidence degree ordering) orders by descending count of
	// already-colored neighbors.
	IDO
	// DSatur orders by ascending domain size (descending saturation),
	// ties broken by descending degree.
	DSatur
	// Recolor orders by descending adaptive recoloring count.
	Recolor
	// Conflict orders by descending adaptive conflict count.
	Conflict
)

// String returns the configuration-surface name of the ordering.
func (o Ordering) String() string {
	switch o {
	case Vertex:
		return "VERTEX"
	case Degree:
		return "DEGREE"
	case IDO:
		return "IDO"
	case DSatur:
		return "DSATUR"
	case Recolor:
		return "RECOLOR"
	case Conflict:
		return "CONFLICT"
	default:
		return "UNKNOWN"
	}
}

// Policy bundles the configuration-surface knobs governing vertex
// selection: the ordering heuristic, the dynamic re-sort cadence, the
// decay applied to the RECOLOR/CONFLICT adaptive counters on every
// recursive frame, and whether next-vertex selection is restricted to the connected
// sequence (vertices with at least one already-colored neighbor).
type Policy struct {
	Ordering    Ordering
	SortingRate int
	DecayFactor float64
	CS          bool
}

// NewOrder returns the initial vertex order for g under p. For DSatur the
// initial order with no colored vertices degenerates to descending degree
// (every domain is full, so the degree tiebreak decides); IDO starts from
// the same descending-degree order, although its own comparator would
// leave an all-uncolored graph in identity order. Either way a single
// static sort suffices until the first dynamic re-sort.
func (p Policy) NewOrder(g *graph.Graph) []int {
	order := make([]int, g.NumVertices())
	for i := range order {
		order[i] = i
	}
	switch p.Ordering {
	case Degree, IDO, DSatur:
		sort.Stable(byDescendingDegree{order: order, g: g})
	case Recolor:
		sort.Stable(byDescendingFloat{order: order, key: func(v int) float64 { return g.Vertex(v).NbRecolorings() }})
	case Conflict:
		sort.Stable(byDescendingFloat{order: order, key: func(v int) float64 { return g.Vertex(v).NbConflicts() }})
	}
	return order
}

// Resort re-sorts order[from:] in place according to p.Ordering.
func (p Policy) Resort(g *graph.Graph, order []int, from int) {
	if from >= len(order) {
		return
	}
	suffix := order[from:]
	switch p.Ordering {
	case Vertex:
		sort.Ints(suffix)
	case Degree:
		sort.Stable(byDescendingDegree{order: suffix, g: g})
	case IDO:
		sort.Stable(byDescendingInt{order: suffix, key: func(v int) int { return coloredNeighbors(g, v) }})
	case DSatur:
		sort.Stable(byDSatur{order: suffix, g: g})
	case Recolor:
		sort.Stable(byDescendingFloat{order: suffix, key: func(v int) float64 { return g.Vertex(v).NbRecolorings() }})
	case Conflict:
		sort.Stable(byDescendingFloat{order: suffix, key: func(v int) float64 { return g.Vertex(v).NbConflicts() }})
	}
}

// ShouldResort reports whether a re-sort is due given the current tick of
// SORTING_COUNTER (already incremented for this call).
func (p Policy) ShouldResort(sortingCounter int) bool {
	return p.SortingRate != 0 && sortingCounter%p.SortingRate == 0
}

// DecayCounters multiplies every vertex's adaptive counter relevant to
// p.Ordering by p.DecayFactor. It is a no-op unless p.Ordering is Recolor
// or Conflict. The colorer calls this once per recursive frame, per the
// spec's bookkeeping step, independent of whether a re-sort happens to be
// due on that frame.
func (p Policy) DecayCounters(g *graph.Graph) {
	switch p.Ordering {
	case Recolor:
		decayAll(g, func(v *graph.Vertex) { v.DecayRecolorings(p.DecayFactor) })
	case Conflict:
		decayAll(g, func(v *graph.Vertex) { v.DecayConflicts(p.DecayFactor) })
	}
}

// NextVertex returns the index into order of the next vertex to color at
// or after from+1, or -1 if the coloring is complete. Under CS it prefers
// the first such vertex with at least one already-colored neighbor,
// falling back to first-fit if none remains; IDO and DSatur already place
// such vertices first so CS is redundant (but harmless) for them.
func (p Policy) NextVertex(g *graph.Graph, order []int, from int) int {
	ff := func() int {
		for i := from + 1; i < len(order); i++ {
			if g.Vertex(order[i]).Color() == graph.Uncolored {
				return i
			}
		}
		return -1
	}
	if !p.CS {
		return ff()
	}
	for i := from + 1; i < len(order); i++ {
		v := g.Vertex(order[i])
		if v.Color() != graph.Uncolored {
			continue
		}
		if coloredNeighbors(g, order[i]) > 0 {
			return i
		}
	}
	return ff()
}

// NextColor returns the smallest color in v's domain that is >= minColor
// and <= bound, or -1 if none exists. bound folds together the caller's
// symmetry-breaking and mode-specific ceilings (MAX_USED+1, MAX_COLOR,
// CHROMATIC-1 in EXHAUSTIVE mode): the caller computes the tightest of
// those and passes it here.
func NextColor(v *graph.Vertex, minColor, bound int) int {
	if minColor > bound {
		return -1
	}
	c := v.Domain().Next(minColor)
	if c == -1 || c > bound {
		return -1
	}
	return c
}

// decayAll applies f to every vertex of g, used to decay all adaptive
// counters on each DecayCounters call regardless of which vertices are
// still uncolored.
func decayAll(g *graph.Graph, f func(*graph.Vertex)) {
	vs := g.Vertices()
	for i := range vs {
		f(&vs[i])
	}
}

func coloredNeighbors(g *graph.Graph, v int) int {
	n := 0
	for _, u := range g.Vertex(v).Adjacency() {
		if g.Vertex(u).Color() != graph.Uncolored {
			n++
		}
	}
	return n
}

// byDescendingDegree sorts a vertex-index slice by descending degree,
// ties broken by ascending identity, mirroring gonum's byDescDegree.
type byDescendingDegree struct {
	order []int
	g     *graph.Graph
}

func (s byDescendingDegree) Len() int { return len(s.order) }
func (s byDescendingDegree) Less(i, j int) bool {
	di, dj := s.g.Vertex(s.order[i]).Degree(), s.g.Vertex(s.order[j]).Degree()
	if di != dj {
		return di > dj
	}
	return s.order[i] < s.order[j]
}
func (s byDescendingDegree) Swap(i, j int) { s.order[i], s.order[j] = s.order[j], s.order[i] }

// byDescendingInt sorts by a descending integer key, ties broken by
// ascending identity.
type byDescendingInt struct {
	order []int
	key   func(int) int
}

func (s byDescendingInt) Len() int { return len(s.order) }
func (s byDescendingInt) Less(i, j int) bool {
	ki, kj := s.key(s.order[i]), s.key(s.order[j])
	if ki != kj {
		return ki > kj
	}
	return s.order[i] < s.order[j]
}
func (s byDescendingInt) Swap(i, j int) { s.order[i], s.order[j] = s.order[j], s.order[i] }

// byDescendingFloat sorts by a descending float key, ties broken by
// ascending identity.
type byDescendingFloat struct {
	order []int
	key   func(int) float64
}

func (s byDescendingFloat) Len() int { return len(s.order) }
func (s byDescendingFloat) Less(i, j int) bool {
	ki, kj := s.key(s.order[i]), s.key(s.order[j])
	if ki != kj {
		return ki > kj
	}
	return s.order[i] < s.order[j]
}
func (s byDescendingFloat) Swap(i, j int) { s.order[i], s.order[j] = s.order[j], s.order[i] }

// byDSatur sorts ascending by domain popcount (descending saturation),
// ties broken by descending degree then ascending identity.
type byDSatur struct {
	order []int
	g     *graph.Graph
}

func (s byDSatur) Len() int { return len(s.order) }
func (s byDSatur) Less(i, j int) bool {
	vi, vj := s.g.Vertex(s.order[i]), s.g.Vertex(s.order[j])
	pi, pj := vi.Domain().Count(), vj.Domain().Count()
	if pi != pj {
		return pi < pj
	}
	if vi.Degree() != vj.Degree() {
		return vi.Degree() > vj.Degree()
	}
	return s.order[i] < s.order[j]
}
func (s byDSatur) Swap(i, j int) { s.order[i], s.order[j] = s.order[j], s.order[i] }
