// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dp

import (
	"testing"

	"github.com/colorworks/chromanum/graph"
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

func TestChiEmptyGraph(t *testing.T) {
	if got := Chi(graph.New(0)); got != 0 {
		t.Errorf("Chi(empty) = %d, want 0", got)
	}
}

func TestChiEdgelessGraph(t *testing.T) {
	if got := Chi(graph.New(5)); got != 1 {
		t.Errorf("Chi(edgeless) = %d, want 1", got)
	}
}

func TestChiCompleteGraphs(t *testing.T) {
	for _, n := range []int{1, 2, 5, 7} {
		if got := Chi(complete(n)); got != n {
			t.Errorf("Chi(K%d) = %d, want %d", n, got, n)
		}
	}
}

func TestChiCycles(t *testing.T) {
	if got := Chi(cycle(5)); got != 3 {
		t.Errorf("Chi(C5) = %d, want 3", got)
	}
	if got := Chi(cycle(6)); got != 2 {
		t.Errorf("Chi(C6) = %d, want 2", got)
	}
}

func TestChiPetersen(t *testing.T) {
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
	if got := Chi(g); got != 3 {
		t.Errorf("Chi(Petersen) = %d, want 3", got)
	}
}

func TestChiK33(t *testing.T) {
	g := graph.New(6)
	for i := 0; i < 3; i++ {
		for j := 3; j < 6; j++ {
			g.AddEdge(i, j)
		}
	}
	if got := Chi(g); got != 2 {
		t.Errorf("Chi(K3,3) = %d, want 2", got)
	}
}
