// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package search implements the constraint-propagating colorer and the
// search driver that brackets the chromatic number with it. The driver
// mirrors gonum's graph/coloring.Dsatur/DsaturExact recursive
// color/uncolor structure, undoing each branch through an explicit change
// log; the bisection state machine is
// grounded on wkschwartz-pigosat's optimize.go Minimize.
package search

import (
	"github.com/colorworks/chromanum/graph"
	"github.com/colorworks/chromanum/heuristics"
)

// Context is the explicit search-context struct the design notes call for
// in place of the original's process-wide globals: every mutable scalar
// the colorer and its heuristics policy need is threaded through here by
// reference rather than closed over.
type Context struct {
	G      *graph.Graph
	Policy heuristics.Policy

	// Order is the current vertex ordering; Order[VertexCounter+1:] is the
	// suffix a dynamic re-sort may reorder.
	Order []int

	// MaxColor is the color-label ceiling for non-EXHAUSTIVE modes (the
	// search driver's current trial k, minus one).
	MaxColor int

	// Exhaustive selects the EXHAUSTIVE improvement-loop semantics: MaxUsed
	// is bounded by Chromatic rather than MaxColor, and each success
	// tightens Chromatic and narrows every domain before resuming search.
	Exhaustive bool

	// Chromatic is the best known upper bound, exclusive: a colorer run in
	// EXHAUSTIVE mode has proved the graph (Chromatic+1)-colorable whenever
	// Chromatic < its initial value.
	Chromatic int

	// MaxUsed is the highest color label assigned so far on the current
	// branch.
	MaxUsed int

	VertexCounter  int
	SortingCounter int

	// BestColors snapshots the color of every vertex at the moment
	// Chromatic last tightened, since EXHAUSTIVE mode backtracks away
	// from every success (including the final, best one) to keep
	// searching, leaving the live coloring uncolored again by the time
	// Color returns.
	BestColors []int
}

// NewContext builds a Context for g under p, with the initial vertex order
// from p.NewOrder and colors/domains already reset to k available colors.
func NewContext(g *graph.Graph, p heuristics.Policy, k int) *Context {
	g.SetAvailableColors(k)
	return &Context{
		G:             g,
		Policy:        p,
		Order:         p.NewOrder(g),
		MaxColor:      k - 1,
		VertexCounter: -1,
	}
}
