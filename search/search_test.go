// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"testing"

	"github.com/colorworks/chromanum/graph"
	"github.com/colorworks/chromanum/heuristics"
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

func cycle(n int) *graph.Graph {
	g := graph.New(n)
	for i := 0; i < n; i++ {
		g.AddEdge(i, (i+1)%n)
	}
	return g
}

func petersen() *graph.Graph {
	g := graph.New(10)
	outer := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}
	for _, e := range outer {
		g.AddEdge(e[0], e[1])
	}
	for i := 0; i < 5; i++ {
		g.AddEdge(i, i+5)
	}
	inner := [][2]int{{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5}}
	for _, e := range inner {
		g.AddEdge(e[0], e[1])
	}
	return g
}

func assertProperColoring(t *testing.T, g *graph.Graph, colors []int, k int) {
	t.Helper()
	if len(colors) != g.NumVertices() {
		t.Fatalf("len(colors) = %d, want %d", len(colors), g.NumVertices())
	}
	for _, v := range g.Vertices() {
		c := colors[v.ID()]
		if c < 0 || c >= k {
			t.Fatalf("vertex %d color %d out of range [0,%d)", v.ID(), c, k)
		}
		for _, u := range v.Adjacency() {
			if colors[u] == c {
				t.Fatalf("edge (%d,%d) both colored %d", v.ID(), u, c)
			}
		}
	}
}

var allPolicies = []heuristics.Policy{
	{Ordering: heuristics.Vertex},
	{Ordering: heuristics.Degree, SortingRate: 1},
	{Ordering: heuristics.IDO, SortingRate: 1},
	{Ordering: heuristics.DSatur, SortingRate: 1},
	{Ordering: heuristics.Recolor, SortingRate: 1, DecayFactor: 0.9},
	{Ordering: heuristics.Conflict, SortingRate: 1, DecayFactor: 0.9, CS: true},
}

func TestKColorableTriangle(t *testing.T) {
	g := complete(3)
	if _, ok := KColorable(g, 2, heuristics.Policy{}); ok {
		t.Fatalf("K3 reported 2-colorable")
	}
	colors, ok := KColorable(g, 3, heuristics.Policy{})
	if !ok {
		t.Fatalf("K3 reported not 3-colorable")
	}
	assertProperColoring(t, g, colors, 3)
}

func TestChiCompleteGraphs(t *testing.T) {
	for _, n := range []int{1, 2, 5, 8} {
		g := complete(n)
		for _, strat := range []Strategy{Greedy, Binary, Grebin, Exhaustive} {
			k, colors := Chi(g, strat, WPBound, heuristics.Policy{Ordering: heuristics.Degree, SortingRate: 1})
			if k != n {
				t.Errorf("Chi(K%d, %v) = %d, want %d", n, strat, k, n)
			}
			assertProperColoring(t, g, colors, k)
		}
	}
}

func TestChiOddAndEvenCycles(t *testing.T) {
	for _, strat := range []Strategy{Greedy, Binary, Grebin, Exhaustive} {
		if k, colors := Chi(cycle(5), strat, WPBound, heuristics.Policy{}); k != 3 {
			t.Errorf("Chi(C5, %v) = %d, want 3", strat, k)
		} else {
			assertProperColoring(t, cycle(5), colors, k)
		}
		if k, colors := Chi(cycle(6), strat, WPBound, heuristics.Policy{}); k != 2 {
			t.Errorf("Chi(C6, %v) = %d, want 2", strat, k)
		} else {
			assertProperColoring(t, cycle(6), colors, k)
		}
	}
}

func TestChiBipartiteK33(t *testing.T) {
	g := graph.New(6)
	for i := 0; i < 3; i++ {
		for j := 3; j < 6; j++ {
			g.AddEdge(i, j)
		}
	}
	k, colors := Chi(g, Exhaustive, WPBound, heuristics.Policy{})
	if k != 2 {
		t.Fatalf("Chi(K3,3) = %d, want 2", k)
	}
	assertProperColoring(t, g, colors, k)
}

func TestChiPetersen(t *testing.T) {
	g := petersen()
	for _, strat := range []Strategy{Greedy, Binary, Grebin, Exhaustive} {
		k, colors := Chi(g, strat, WPBound, heuristics.Policy{Ordering: heuristics.DSatur, SortingRate: 1})
		if k != 3 {
			t.Errorf("Chi(Petersen, %v) = %d, want 3", strat, k)
		}
		assertProperColoring(t, g, colors, k)
	}
}

func TestChiAgreesAcrossPoliciesAndBounds(t *testing.T) {
	g := petersen()
	for _, p := range allPolicies {
		for _, b := range []BoundKind{NoBound, BrooksBound, RLFBound, WPBound} {
			k, colors := Chi(g, Exhaustive, b, p)
			if k != 3 {
				t.Errorf("Chi(Petersen, EXHAUSTIVE, %v, %v) = %d, want 3", b, p.Ordering, k)
			}
			assertProperColoring(t, g, colors, k)
		}
	}
}

func TestChiDisconnectedTakesMax(t *testing.T) {
	// K4 plus a disjoint triangle plus an isolated vertex.
	g := graph.New(8)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			g.AddEdge(i, j)
		}
	}
	for i := 4; i < 7; i++ {
		for j := i + 1; j < 7; j++ {
			g.AddEdge(i, j)
		}
	}
	k, colors := Chi(g, Exhaustive, WPBound, heuristics.Policy{})
	if k != 4 {
		t.Fatalf("Chi(disconnected) = %d, want 4", k)
	}
	assertProperColoring(t, g, colors, k)
}

func TestChiEmptyGraph(t *testing.T) {
	if k, colors := Chi(graph.New(0), Greedy, WPBound, heuristics.Policy{}); k != 0 || colors != nil {
		t.Fatalf("Chi(empty) = %d, %v, want 0, nil", k, colors)
	}
}

func TestChiEdgelessGraph(t *testing.T) {
	g := graph.New(5)
	k, colors := Chi(g, Exhaustive, WPBound, heuristics.Policy{})
	if k != 1 {
		t.Fatalf("Chi(edgeless) = %d, want 1", k)
	}
	assertProperColoring(t, g, colors, k)
}

func TestRollbackRestoresDomainsOnFailure(t *testing.T) {
	g := complete(4)
	before := make([]graph.ColorSet, g.NumVertices())
	ctx := NewContext(g, heuristics.Policy{}, 3)
	for i, v := range g.Vertices() {
		before[i] = v.Domain()
	}
	if Color(ctx) {
		t.Fatalf("K4 reported 3-colorable")
	}
	for i, v := range g.Vertices() {
		if v.Color() != graph.Uncolored {
			t.Errorf("vertex %d left colored %d after failed search", i, v.Color())
		}
		if v.Domain() != before[i] {
			t.Errorf("vertex %d domain %v after failed search, want %v", i, v.Domain(), before[i])
		}
	}
}
