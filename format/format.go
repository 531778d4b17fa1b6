// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format implements readers for the five on-disk graph formats:
// whitespace-separated (.mat) and single-digit (.txt) adjacency matrices,
// DIMACS-style edge lists (.col), and the graph6 bit-packed encoding
// (.graph6, .g6); sparse6 input is not decoded. Read dispatches on the file extension, the way
// gonum's graph/formats package structure keeps one file per encoding.
package format

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/colorworks/chromanum/graph"
)

// Read loads the graph at path, dispatching on its extension. nbVertices
// is required by the .mat and .txt readers, which do not embed a vertex
// count in the file; it is ignored by .col and .graph6/.g6, which derive
// the count from the input itself.
func Read(path string, nbVertices int) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mat":
		return readMatrix(data, nbVertices, true)
	case ".txt":
		return readMatrix(data, nbVertices, false)
	case ".col":
		return readCol(data)
	case ".graph6", ".g6":
		return readGraph6(data)
	default:
		return nil, fmt.Errorf("format: unrecognized extension %q", ext)
	}
}

// addEdge rejects self-loops with a parse error rather than panicking, the
// way graph.Graph.AddEdge does for a programmer bug: a self-loop arriving
// from a file is a malformed-input condition, not an assertion failure.
func addEdge(g *graph.Graph, u, v int) error {
	if u == v {
		return fmt.Errorf("format: self-loop at vertex %d", u)
	}
	if u < 0 || u >= g.NumVertices() || v < 0 || v >= g.NumVertices() {
		return fmt.Errorf("format: edge (%d,%d) out of range for %d vertices", u, v, g.NumVertices())
	}
	g.AddEdge(u, v)
	return nil
}
