// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"
	"strings"

	"github.com/colorworks/chromanum/graph"
)

// maxGraph6Vertices is the largest vertex count the single-byte-extended
// graph6 header (N(n) with a 3-byte extension) can encode; graphs larger
// than this would need the 8-byte extension, which this decoder does not
// implement.
const maxGraph6Vertices = 258047

// readGraph6 parses the graph6 (or g6) bit-packed encoding: a header byte
// (or 0x7E plus a 3-byte extension for n > 62) giving the vertex count,
// followed by the upper triangle of the adjacency matrix packed 6 bits per
// byte (each byte biased by 63), read column-major: for j in [1,n), for i
// in [0,j), one bit per (i,j) pair.
func readGraph6(data []byte) (*graph.Graph, error) {
	s := strings.TrimRight(string(data), "\r\n")
	s = strings.TrimPrefix(s, ">>graph6<<")
	b := []byte(s)
	if len(b) == 0 {
		return nil, fmt.Errorf("format: empty graph6 input")
	}
	n, rest, err := decodeGraph6Header(b)
	if err != nil {
		return nil, err
	}
	if n > maxGraph6Vertices {
		return nil, fmt.Errorf("format: graph6 vertex count %d exceeds supported maximum %d", n, maxGraph6Vertices)
	}

	g := graph.New(n)
	numBits := n * (n - 1) / 2
	for idx := 0; idx < numBits; idx++ {
		byteIdx := idx / 6
		if byteIdx >= len(rest) {
			return nil, fmt.Errorf("format: graph6 data truncated")
		}
		shift := uint(5 - idx%6)
		if (rest[byteIdx]-63)>>shift&1 == 0 {
			continue
		}
		i, j := graph6Pair(idx, n)
		if err := addEdge(g, i, j); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func decodeGraph6Header(b []byte) (n int, rest []byte, err error) {
	if b[0] == 126 {
		if len(b) < 4 {
			return 0, nil, fmt.Errorf("format: truncated graph6 extended header")
		}
		n = int(b[1]-63)<<12 | int(b[2]-63)<<6 | int(b[3]-63)
		return n, b[4:], nil
	}
	return int(b[0] - 63), b[1:], nil
}

// graph6Pair returns the (i,j) pair the idx-th bit of the column-major
// upper-triangle enumeration corresponds to, for an n-vertex graph.
func graph6Pair(idx, n int) (i, j int) {
	for j = 1; j < n; j++ {
		if idx < j {
			return idx, j
		}
		idx -= j
	}
	panic("format: graph6 bit index out of range")
}
