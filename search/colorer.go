// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"github.com/colorworks/chromanum/graph"
	"github.com/colorworks/chromanum/heuristics"
)

// Color attempts to extend ctx's current partial coloring to a proper
// coloring of ctx.G under ctx.MaxColor (or, in EXHAUSTIVE mode, under
// ctx.Chromatic). It reports whether a proper coloring was found.
//
// In EXHAUSTIVE mode a successful leaf does not stop the search: it
// tightens ctx.Chromatic, narrows every open domain via
// graph.UpdateAvailability, and the call still backtracks to keep looking
// for a smaller witness, returning false once the tightened bound has
// pruned every remaining branch. The caller reads ctx.Chromatic afterward
// rather than relying on the boolean result.
func Color(ctx *Context) bool {
	ctx.Policy.DecayCounters(ctx.G)
	ctx.SortingCounter++
	if ctx.Policy.ShouldResort(ctx.SortingCounter) {
		ctx.Policy.Resort(ctx.G, ctx.Order, ctx.VertexCounter+1)
	}

	idx := ctx.Policy.NextVertex(ctx.G, ctx.Order, ctx.VertexCounter)
	// Connected-sequence selection may pick a vertex past an uncolored
	// one; swap it into the first uncolored position so every position up
	// to VertexCounter stays colored and later frames still reach the
	// skipped vertex.
	for i := ctx.VertexCounter + 1; idx != -1 && i < idx; i++ {
		if ctx.G.Vertex(ctx.Order[i]).Color() == graph.Uncolored {
			ctx.Order[i], ctx.Order[idx] = ctx.Order[idx], ctx.Order[i]
			idx = i
			break
		}
	}
	if idx == -1 {
		if ctx.Exhaustive && ctx.MaxUsed < ctx.Chromatic {
			ctx.Chromatic = ctx.MaxUsed
			ctx.G.UpdateAvailability(ctx.Chromatic)
			ctx.BestColors = snapshotColors(ctx.G)
		}
		return true
	}

	vertex := ctx.Order[idx]
	prevVertexCounter := ctx.VertexCounter
	ctx.VertexCounter = idx
	savedMaxUsed := ctx.MaxUsed

	cl := newChangeLog()
	c := -1
	for {
		if ctx.Exhaustive && ctx.MaxUsed >= ctx.Chromatic {
			ctx.VertexCounter = prevVertexCounter
			return false
		}

		bound := ctx.MaxUsed + 1
		if ctx.Exhaustive {
			if ctx.Chromatic-1 < bound {
				bound = ctx.Chromatic - 1
			}
		} else if ctx.MaxColor < bound {
			bound = ctx.MaxColor
		}

		nc := heuristics.NextColor(ctx.G.Vertex(vertex), c+1, bound)
		if nc == -1 {
			ctx.VertexCounter = prevVertexCounter
			return false
		}
		c = nc

		v := ctx.G.Vertex(vertex)
		v.SetColor(c)
		if c > ctx.MaxUsed {
			ctx.MaxUsed = c
		}
		cl.recordColor(vertex)
		v.IncrementRecolorings()

		success := false
		if propagate(ctx, vertex, cl) {
			success = Color(ctx)
		}
		if success && !ctx.Exhaustive {
			return true
		}

		ctx.MaxUsed = savedMaxUsed
		cl.rollback(ctx.G)
		cl = newChangeLog()
	}
}

func snapshotColors(g *graph.Graph) []int {
	vs := g.Vertices()
	out := make([]int, len(vs))
	for i := range vs {
		out[i] = vs[i].Color()
	}
	return out
}

// propagate removes v's just-assigned color from every uncolored
// neighbor's domain, recording each removal in cl, and forces the color of
// any neighbor left with exactly one legal color, cascading through an
// explicit worklist rather than nested recursion so propagation on dense
// graphs cannot overflow the call stack. It reports false, with the
// conflicting vertex's conflict counter bumped, if any domain is emptied
// or two adjacent vertices end up with the same color. Forced colors raise
// ctx.MaxUsed like chosen ones.
func propagate(ctx *Context, v int, cl *changeLog) bool {
	queue := []int{v}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		c := ctx.G.Vertex(cur).Color()
		for _, u := range ctx.G.Vertex(cur).Adjacency() {
			uv := ctx.G.Vertex(u)
			if uv.Color() != graph.Uncolored {
				if uv.Color() == c {
					uv.IncrementConflicts()
					return false
				}
				continue
			}
			if !uv.RemoveFromDomain(c) {
				continue
			}
			cl.recordRemoval(u, c)
			if uv.Domain() == 0 {
				uv.IncrementConflicts()
				return false
			}
			if forced, ok := uv.Domain().Only(); ok {
				uv.SetColor(forced)
				if forced > ctx.MaxUsed {
					ctx.MaxUsed = forced
				}
				cl.recordColor(u)
				uv.IncrementRecolorings()
				queue = append(queue, u)
			}
		}
	}
	return true
}
