package model

import (
	"math/rand/v2"
	"testing"

	"github.com/sheikhrachel/go-lifelevel/rules"
)

func checkCells(t *testing.T, a *Automaton, width, height int, alive map[[2]int]bool, step string) {
	t.Helper()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v, _ := a.GetCell(x, y)
			if shouldBeAlive := alive[[2]int{x, y}]; shouldBeAlive != (v == 1) {
				t.Fatalf("%s: cell (%d,%d) = %d, expected alive=%v", step, x, y, v, shouldBeAlive)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	a := NewAutomaton(rules.Conway())
	a.Resize(5, 5)
	a.SetCell(2, 1, 1)
	a.SetCell(2, 2, 1)
	a.SetCell(2, 3, 1)

	a.Advance()
	checkCells(t, a, 5, 5, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, "first step")

	a.Advance()
	checkCells(t, a, 5, 5, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}, "second step")

	if a.Generation() != 2 {
		t.Fatalf("generation = %d, expected 2", a.Generation())
	}
}

func TestNewAutomatonIsEmpty(t *testing.T) {
	a := NewAutomaton(rules.Conway())
	if a.Grid().GetWidth() != 0 || a.Grid().GetHeight() != 0 {
		t.Fatalf("new automaton is %dx%d, expected empty", a.Grid().GetWidth(), a.Grid().GetHeight())
	}
	if _, ok := a.GetCell(0, 0); ok {
		t.Fatal("empty automaton has no cells")
	}
	a.SetCell(0, 0, 1)
	a.Advance()
}

func TestAdvanceFlipsBuffers(t *testing.T) {
	a := NewAutomaton(rules.Conway())
	a.Resize(4, 4)
	first := a.Grid()

	a.Advance()
	if a.Grid() == first {
		t.Fatal("Advance must make the other buffer current")
	}
	a.Advance()
	if a.Grid() != first {
		t.Fatal("two advances must return to the first buffer")
	}
}

func TestDimensionsAndBoundsHoldAcrossGenerations(t *testing.T) {
	cfg, _ := rules.NewRuleConfig(true, 5, []int{1, 2, 3}, []int{0, 5, 6, 7, 8})
	a := NewAutomaton(cfg)
	a.Resize(30, 20)
	a.Grid().Randomize(rand.New(rand.NewPCG(3, 4)), 0.3, 5)
	a.Resize(25, 18)

	for gen := 0; gen < 50; gen++ {
		a.Advance()
		for _, g := range a.grids {
			checkRectangular(t, g, 25, 18)
		}
		for y, row := range a.Grid().Rows() {
			for x, cell := range row {
				if cell > cfg.Life {
					t.Fatalf("generation %d: cell (%d,%d) = %d exceeds life %d", gen, x, y, cell, cfg.Life)
				}
			}
		}
	}
}

func TestSetCellOnlyTouchesCurrentBuffer(t *testing.T) {
	a := NewAutomaton(rules.Conway())
	a.Resize(3, 3)
	a.SetCell(1, 1, 1)
	a.SetCell(5, 5, 1)

	if v, ok := a.GetCell(1, 1); !ok || v != 1 {
		t.Fatalf("GetCell(1,1) = %d,%v expected 1,true", v, ok)
	}
	if a.grids[1-a.current].CountLivingCells() != 0 {
		t.Fatal("SetCell wrote into the spare buffer")
	}
}
