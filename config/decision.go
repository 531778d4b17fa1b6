// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config implements the automatic configuration decision tree
// (C8): a pure function of a graph's vertex count, density, and balance
// that picks a search.Strategy, search.BoundKind, and heuristics.Policy.
package config

import (
	"github.com/colorworks/chromanum/graph"
	"github.com/colorworks/chromanum/heuristics"
	"github.com/colorworks/chromanum/search"
)

// DPCrossover is the vertex count at or below which the subset-DP variant
// is cheap enough to run as a cross-check alongside the EXHAUSTIVE search
// this decision tree picks for the same range.
const DPCrossover = 20

// DenseThreshold is the density at or above which DSATUR with
// connected-sequence selection is chosen over the default BROOKS/GREBIN
// configuration, on the grounds that dense graphs saturate quickly and
// dynamic ordering pays for itself.
const DenseThreshold = 0.5

// HighBalanceThreshold is the balance (MaxDegree/AvgDegree) at or above
// which a graph is considered hub-dominated: a handful of high-degree
// vertices make a static descending-degree order already close to optimal.
const HighBalanceThreshold = 3.0

// Config bundles the decision tree's output: which search driver bracket
// to run, which upper-bound estimator to seed it with, and the vertex/
// color-selection policy to run under it.
type Config struct {
	Search search.Strategy
	Bounds search.BoundKind
	Policy heuristics.Policy
}

// Choose inspects g and returns the configuration the decision tree
// assigns it. Every branch's un-named knobs (those the originating rule
// left unspecified) default to the "otherwise" bucket's DSATUR/32/0.9/CS
// configuration, since that is this tree's general-purpose choice.
func Choose(g *graph.Graph) Config {
	general := heuristics.Policy{Ordering: heuristics.DSatur, SortingRate: 32, DecayFactor: 0.9, CS: true}

	if g.NumVertices() <= DPCrossover {
		return Config{Search: search.Exhaustive, Bounds: search.RLFBound, Policy: general}
	}

	switch {
	case g.Density() >= DenseThreshold:
		return Config{Search: search.Grebin, Bounds: search.WPBound, Policy: general}
	case g.Balance() >= HighBalanceThreshold:
		policy := heuristics.Policy{Ordering: heuristics.Degree, SortingRate: 0, DecayFactor: 0.9, CS: true}
		return Config{Search: search.Grebin, Bounds: search.BrooksBound, Policy: policy}
	default:
		return Config{Search: search.Grebin, Bounds: search.BrooksBound, Policy: general}
	}
}
