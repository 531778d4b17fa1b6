// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// Uncolored is the color value of a vertex that has not yet been assigned a
// color.
const Uncolored = -1

// Vertex is one node of a Graph. Its identity is its index in Graph.vertices
// and is stable until RemoveIsolatedVertices renumbers the surviving
// vertices.
type Vertex struct {
	id     int
	degree int
	color  int

	// domain is the set of colors still legal for this vertex under the
	// current partial coloring.
	domain ColorSet

	// adj is the ordered adjacency list, kept alongside the packed
	// neighbor bitset because the colorer's hot loops iterate the list
	// while the bitset backs O(1) adjacency queries.
	adj []int

	// neighbors is the packed neighbor bitset, one bit per vertex index.
	neighbors Neighbors

	// nbRecolorings and nbConflicts feed the RECOLOR and CONFLICT
	// heuristics; the colorer decays the one its ordering uses by a
	// configurable factor on every recursive frame.
	nbRecolorings float64
	nbConflicts   float64
}

// ID returns the vertex's current index.
func (v *Vertex) ID() int { return v.id }

// Degree returns the vertex's degree.
func (v *Vertex) Degree() int { return v.degree }

// Color returns the vertex's current color, or Uncolored.
func (v *Vertex) Color() int { return v.color }

// Domain returns the set of colors still available to the vertex.
func (v *Vertex) Domain() ColorSet { return v.domain }

// Adjacency returns the vertex's neighbor indices in insertion order.
func (v *Vertex) Adjacency() []int { return v.adj }

// NbRecolorings returns the adaptive recoloring counter used by the
// RECOLOR heuristic.
func (v *Vertex) NbRecolorings() float64 { return v.nbRecolorings }

// NbConflicts returns the adaptive conflict counter used by the CONFLICT
// heuristic.
func (v *Vertex) NbConflicts() float64 { return v.nbConflicts }

// HasNeighbor reports whether u is adjacent to this vertex via the packed
// bitset. O(1), unlike the Graph.Neighbors predicate which scans the
// adjacency list.
func (v *Vertex) HasNeighbor(u int) bool {
	return v.neighbors.Has(u)
}

// SetColor sets the vertex's current color (or graph.Uncolored).
func (v *Vertex) SetColor(c int) { v.color = c }

// SetDomain replaces the vertex's domain wholesale. Used by the colorer's
// change-log rollback to restore a prior domain exactly.
func (v *Vertex) SetDomain(d ColorSet) { v.domain = d }

// RemoveFromDomain removes color c from the vertex's domain and reports
// whether it was present (the caller only needs to log a removal that
// actually changed something).
func (v *Vertex) RemoveFromDomain(c int) bool {
	if !v.domain.Has(c) {
		return false
	}
	v.domain = v.domain.Remove(c)
	return true
}

// RestoreToDomain adds the colors in mask back into the vertex's domain.
func (v *Vertex) RestoreToDomain(mask ColorSet) {
	v.domain |= mask
}

// IncrementRecolorings bumps the adaptive recoloring counter, as the
// colorer does each time it assigns this vertex a color.
func (v *Vertex) IncrementRecolorings() { v.nbRecolorings++ }

// IncrementConflicts bumps the adaptive conflict counter, as the colorer
// does when propagation empties this vertex's domain.
func (v *Vertex) IncrementConflicts() { v.nbConflicts++ }

// DecayRecolorings multiplies the adaptive recoloring counter by factor.
func (v *Vertex) DecayRecolorings(factor float64) { v.nbRecolorings *= factor }

// DecayConflicts multiplies the adaptive conflict counter by factor.
func (v *Vertex) DecayConflicts(factor float64) { v.nbConflicts *= factor }
