// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import "testing"

func TestColorSetBasics(t *testing.T) {
	s := FullColorSet(4)
	if s.Count() != 4 {
		t.Fatalf("Count() = %d, want 4", s.Count())
	}
	s = s.Remove(1)
	if s.Has(1) {
		t.Fatal("expected color 1 removed")
	}
	if s.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", s.Count())
	}
	s = s.Add(1)
	if !s.Has(1) || s.Count() != 4 {
		t.Fatal("expected color 1 restored")
	}
}

func TestColorSetOnly(t *testing.T) {
	s := FullColorSet(4).Remove(0).Remove(1).Remove(3)
	c, ok := s.Only()
	if !ok || c != 2 {
		t.Fatalf("Only() = (%d,%v), want (2,true)", c, ok)
	}
	if _, ok := FullColorSet(4).Only(); ok {
		t.Fatal("Only() should fail for a multi-color set")
	}
	if _, ok := ColorSet(0).Only(); ok {
		t.Fatal("Only() should fail for the empty set")
	}
}

func TestColorSetNext(t *testing.T) {
	s := FullColorSet(8).Remove(0).Remove(1).Remove(2)
	if got := s.Next(0); got != 3 {
		t.Fatalf("Next(0) = %d, want 3", got)
	}
	if got := s.Next(4); got != 4 {
		t.Fatalf("Next(4) = %d, want 4", got)
	}
	empty := ColorSet(0)
	if got := empty.Next(0); got != -1 {
		t.Fatalf("Next(0) on empty set = %d, want -1", got)
	}
}

func TestFullColorSetBounds(t *testing.T) {
	if FullColorSet(0) != 0 {
		t.Fatal("FullColorSet(0) should be empty")
	}
	if FullColorSet(MaxColors) != ^ColorSet(0) {
		t.Fatal("FullColorSet(MaxColors) should be all ones")
	}
}

func TestNeighborsSetHasClear(t *testing.T) {
	n := NewNeighbors(130)
	n.Set(0)
	n.Set(63)
	n.Set(64)
	n.Set(129)
	for _, v := range []int{0, 63, 64, 129} {
		if !n.Has(v) {
			t.Fatalf("Has(%d) = false, want true", v)
		}
	}
	if n.Count() != 4 {
		t.Fatalf("Count() = %d, want 4", n.Count())
	}
	n.Clear(64)
	if n.Has(64) || n.Count() != 3 {
		t.Fatal("Clear(64) did not take effect")
	}
}

func TestNeighborsEach(t *testing.T) {
	n := NewNeighbors(70)
	want := []int{2, 5, 63, 64, 69}
	for _, v := range want {
		n.Set(v)
	}
	var got []int
	n.Each(func(v int) { got = append(got, v) })
	if len(got) != len(want) {
		t.Fatalf("Each visited %d vertices, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Each()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestNeighborsRemoveBitShiftsDown(t *testing.T) {
	n := NewNeighbors(5)
	// Mark 1, 2, 4 as neighbors, then remove vertex 2 from the index
	// space: 1 stays 1, 4 becomes 3.
	n.Set(1)
	n.Set(2)
	n.Set(4)
	n.removeBit(2)
	if n.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", n.Len())
	}
	if !n.Has(1) || n.Has(2) || !n.Has(3) {
		t.Fatalf("removeBit(2) mapping wrong: has(1)=%v has(2)=%v has(3)=%v", n.Has(1), n.Has(2), n.Has(3))
	}
}

func TestNeighborsRemoveBitCrossesWordBoundary(t *testing.T) {
	n := NewNeighbors(130)
	n.Set(63)
	n.Set(64)
	n.Set(65)
	// Removing vertex 0 shifts everything down by one, crossing the
	// word-63/64 boundary bit-parallel across both words.
	n.removeBit(0)
	if !n.Has(62) || !n.Has(63) || !n.Has(64) {
		t.Fatalf("expected 63,64,65 to have shifted to 62,63,64")
	}
	if n.Has(65) {
		t.Fatal("bit 65 should no longer be set after the shift")
	}
}
