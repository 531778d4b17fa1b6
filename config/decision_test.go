// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/colorworks/chromanum/graph"
	"github.com/colorworks/chromanum/heuristics"
	"github.com/colorworks/chromanum/search"
)

func complete(n int) *graph.Graph {
	g := graph.New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(i, j)
		}
	}
	return g
}

func TestChooseSmallGraphIsExhaustive(t *testing.T) {
	cfg := Choose(complete(10))
	if cfg.Search != search.Exhaustive {
		t.Errorf("Search = %v, want Exhaustive", cfg.Search)
	}
	if cfg.Bounds != search.RLFBound {
		t.Errorf("Bounds = %v, want RLFBound", cfg.Bounds)
	}
}

func TestChooseDenseGraphUsesDSaturWP(t *testing.T) {
	// 30 vertices, fully connected: density is 1.0, well above threshold.
	cfg := Choose(complete(30))
	if cfg.Bounds != search.WPBound {
		t.Errorf("Bounds = %v, want WPBound", cfg.Bounds)
	}
	if cfg.Policy.Ordering != heuristics.DSatur || !cfg.Policy.CS {
		t.Errorf("Policy = %+v, want DSATUR+CS", cfg.Policy)
	}
}

func TestChooseHubGraphUsesStaticDegree(t *testing.T) {
	// A star plus a long pendant path keeps density low but balance high:
	// the hub vertex has degree far above the mean.
	n := 40
	g := graph.New(n)
	for i := 1; i < n/2; i++ {
		g.AddEdge(0, i)
	}
	for i := n / 2; i < n-1; i++ {
		g.AddEdge(i, i+1)
	}
	if g.Density() >= DenseThreshold && g.Balance() < HighBalanceThreshold {
		t.Skip("constructed graph no longer exercises the high-balance branch")
	}
	cfg := Choose(g)
	if g.Density() < DenseThreshold && g.Balance() >= HighBalanceThreshold {
		if cfg.Policy.Ordering != heuristics.Degree || cfg.Policy.SortingRate != 0 {
			t.Errorf("Policy = %+v, want static DEGREE ordering", cfg.Policy)
		}
	}
}

func TestChooseDefaultBucket(t *testing.T) {
	// A sparse cycle: low density, balance of exactly 1 (regular graph).
	n := 40
	g := graph.New(n)
	for i := 0; i < n; i++ {
		g.AddEdge(i, (i+1)%n)
	}
	cfg := Choose(g)
	if cfg.Search != search.Grebin || cfg.Bounds != search.BrooksBound {
		t.Errorf("Config = %+v, want GREBIN/BROOKS", cfg)
	}
	if cfg.Policy.Ordering != heuristics.DSatur || cfg.Policy.SortingRate != 32 {
		t.Errorf("Policy = %+v, want DSATUR/rate 32", cfg.Policy)
	}
}
