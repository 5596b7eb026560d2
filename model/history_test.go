package model

import "testing"

func TestHistoryDetectsStillLife(t *testing.T) {
	g := emptyGrid(t, 6, 6)
	g.AddBlock(1, 1)
	h := NewHistory(5)

	if h.Observe(g) {
		t.Fatal("first observation cannot be stagnant")
	}
	g.Step()
	if !h.Observe(g) {
		t.Fatal("an unchanged block should be flagged")
	}
}

func TestHistoryDetectsOscillator(t *testing.T) {
	g := emptyGrid(t, 5, 5)
	g.AddBlinker(1, 2)
	h := NewHistory(5)

	for i, want := range []bool{false, false, true, true} {
		if got := h.Observe(g); got != want {
			t.Fatalf("observation %d: got %v, want %v", i, got, want)
		}
		g.Step()
	}
}

func TestHistoryIgnoresMovingPatterns(t *testing.T) {
	g := emptyGrid(t, 16, 16)
	g.AddGlider(2, 2)
	h := NewHistory(5)

	for i := 0; i < 12; i++ {
		if h.Observe(g) {
			t.Fatalf("glider flagged as stagnant at generation %d", g.GetGeneration())
		}
		g.Step()
	}
}

func TestHistoryClearAndDisabled(t *testing.T) {
	g := emptyGrid(t, 6, 6)
	g.AddBlock(1, 1)

	h := NewHistory(3)
	h.Observe(g)
	h.Clear()
	if h.Observe(g) {
		t.Fatal("cleared history should not remember earlier states")
	}

	off := NewHistory(0)
	off.Observe(g)
	if off.Observe(g) {
		t.Fatal("zero-sized history should never flag stagnation")
	}
}
