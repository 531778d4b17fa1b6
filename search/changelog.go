// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import "github.com/colorworks/chromanum/graph"

// changeLog records every mutation a single recursive colorer frame makes
// to the graph, so a failed branch can be rolled back in O(changes) rather
// than by re-deriving state. coloredVertices holds every vertex this frame
// assigned a color to, in assignment order (including those forced by unit
// propagation); vertexChanges holds, per vertex whose domain shrank, the
// mask of colors this frame removed from it.
type changeLog struct {
	coloredVertices []int
	changedVertices []int
	vertexChanges   map[int]graph.ColorSet
}

func newChangeLog() *changeLog {
	return &changeLog{vertexChanges: make(map[int]graph.ColorSet)}
}

// recordColor notes that v was just colored by this frame.
func (cl *changeLog) recordColor(v int) {
	cl.coloredVertices = append(cl.coloredVertices, v)
}

// recordRemoval notes that color c was just removed from u's domain,
// merging with any prior removal already logged for u this frame.
func (cl *changeLog) recordRemoval(u, c int) {
	if _, ok := cl.vertexChanges[u]; !ok {
		cl.changedVertices = append(cl.changedVertices, u)
	}
	cl.vertexChanges[u] |= 1 << uint(c)
}

// rollback undoes every mutation this frame recorded: every colored vertex
// is reset to Uncolored, and every removed color bit is restored to the
// domain it was removed from.
func (cl *changeLog) rollback(g *graph.Graph) {
	for _, v := range cl.coloredVertices {
		g.Vertex(v).SetColor(graph.Uncolored)
	}
	for _, u := range cl.changedVertices {
		g.Vertex(u).RestoreToDomain(cl.vertexChanges[u])
	}
}
