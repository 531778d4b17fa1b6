// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dp implements the exact subset-DP variant: chi(G) = T(V), where
// T(W) = 1 + min{T(W\S) : S subset of W, S non-empty and independent in
// G[W]}, T(empty) = 0. It is exponential in |V| and is only practical for
// |V| up to about 20; chromatic.Chromatic runs it only in that range, as a
// cross-check of the answer the low-k specialist or search package gives.
package dp

import (
	"math/bits"

	"github.com/colorworks/chromanum/graph"
)

// Chi returns chi(G) computed by subset DP.
//
// Every vertex mask fits a uint32 (the decomposition this package is
// reserved for never exceeds about 20 vertices), so adjacency and the DP
// table are both indexed by plain integer bitmasks rather than
// graph.ColorSet (which caps out at 64 colors, a different limit than the
// vertex count here). Submasks of a mask W always compare <= W as
// integers, so iterating W from 0 upward already visits every proper
// subset of W before W itself; no separate popcount pass is needed.
func Chi(g *graph.Graph) int {
	n := g.NumVertices()
	if n == 0 {
		return 0
	}
	full := uint32(1)<<uint(n) - 1
	adj := make([]uint32, n)
	for i, v := range g.Vertices() {
		var mask uint32
		for _, u := range v.Adjacency() {
			mask |= 1 << uint(u)
		}
		adj[i] = mask
	}

	t := make([]int, full+1)
	for w := uint32(1); w <= full; w++ {
		best := -1
		for sub := w; sub > 0; sub = (sub - 1) & w {
			if !independent(adj, sub) {
				continue
			}
			cand := t[w&^sub] + 1
			if best == -1 || cand < best {
				best = cand
			}
		}
		t[w] = best
	}
	return t[full]
}

// independent reports whether the vertex set sub has no internal edges.
func independent(adj []uint32, sub uint32) bool {
	for s := sub; s != 0; s &= s - 1 {
		v := bits.TrailingZeros32(s)
		if adj[v]&sub != 0 {
			return false
		}
	}
	return true
}
