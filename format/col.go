// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/colorworks/chromanum/graph"
)

// readCol parses a DIMACS-style edge list: "c ..." lines are comments, an
// optional "p edge N M" line gives the vertex count, and each "e u v" line
// declares an undirected edge between 1-based vertices u and v. When no
// "p" line is present, the vertex count is derived from the highest
// vertex index any edge line mentions.
func readCol(data []byte) (*graph.Graph, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	n := 0
	type edge struct{ u, v int }
	var edges []edge
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if len(fields) < 3 {
				return nil, fmt.Errorf("format: malformed p line %q", line)
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("format: malformed p line %q: %w", line, err)
			}
			n = v
		case "e":
			if len(fields) < 3 {
				return nil, fmt.Errorf("format: malformed e line %q", line)
			}
			u, err1 := strconv.Atoi(fields[1])
			v, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("format: malformed e line %q", line)
			}
			u, v = u-1, v-1
			edges = append(edges, edge{u, v})
			if u+1 > n {
				n = u + 1
			}
			if v+1 > n {
				n = v + 1
			}
		}
	}
	g := graph.New(n)
	for _, e := range edges {
		if err := addEdge(g, e.u, e.v); err != nil {
			return nil, err
		}
	}
	return g, nil
}
