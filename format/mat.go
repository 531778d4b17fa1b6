// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"
	"strings"

	"github.com/colorworks/chromanum/graph"
)

// readMatrix parses a |V|x|V| 0/1 adjacency matrix. When whitespace is
// true entries are separated by whitespace (.mat); otherwise each row is a
// string of single-digit entries with no separator (.txt). Only the upper
// triangle is consulted: the format assumes a symmetric input and records
// each edge once, matching the invariant that an edge is stored once per
// unordered pair regardless of which triangle the file actually fills in.
func readMatrix(data []byte, n int, whitespace bool) (*graph.Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("format: nbVertices must be positive for this format, got %d", n)
	}
	rows, err := matrixRows(data, n, whitespace)
	if err != nil {
		return nil, err
	}
	g := graph.New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rows[i][j] == 0 {
				continue
			}
			if err := addEdge(g, i, j); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

func matrixRows(data []byte, n int, whitespace bool) ([][]int, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	rows := make([][]int, 0, n)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var row []int
		if whitespace {
			for _, f := range strings.Fields(line) {
				v, err := parseBit(f)
				if err != nil {
					return nil, err
				}
				row = append(row, v)
			}
		} else {
			for _, r := range line {
				v, err := parseBit(string(r))
				if err != nil {
					return nil, err
				}
				row = append(row, v)
			}
		}
		if len(row) != n {
			return nil, fmt.Errorf("format: matrix row has %d entries, want %d", len(row), n)
		}
		rows = append(rows, row)
		if len(rows) == n {
			break
		}
	}
	if len(rows) != n {
		return nil, fmt.Errorf("format: matrix has %d rows, want %d", len(rows), n)
	}
	return rows, nil
}

func parseBit(s string) (int, error) {
	switch s {
	case "0":
		return 0, nil
	case "1":
		return 1, nil
	default:
		return 0, fmt.Errorf("format: matrix entry %q is not 0 or 1", s)
	}
}
