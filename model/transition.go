package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lifelevel/rules"
)

// checkSameShape panics when the two grids differ in height or in the length of their first or last row
func checkSameShape(from, to *Grid) {
	if len(from.cells) != len(to.cells) {
		panic(errors.Errorf("[Advance] grid height mismatch: from=%d to=%d", len(from.cells), len(to.cells)))
	}
	if len(from.cells) == 0 {
		return
	}
	first, last := from.cells[0], from.cells[len(from.cells)-1]
	if len(first) != len(to.cells[0]) || len(last) != len(to.cells[len(to.cells)-1]) {
		panic(errors.Errorf("[Advance] grid width mismatch: from=%d to=%d", len(first), len(to.cells[0])))
	}
}

// CountNeighbors counts the live cells around (x, y), including diagonals when corners is set
func (g *Grid) CountNeighbors(x, y int, corners bool) (count int) {
	var (
		up    = y > 0
		down  = y < len(g.cells)-1
		left  = x > 0
		right = x < g.width-1
	)

	live := func(nx, ny int) {
		if g.cells[ny][nx] != 0 {
			count++
		}
	}

	if up {
		live(x, y-1)
	}
	if right {
		live(x+1, y)
	}
	if down {
		live(x, y+1)
	}
	if left {
		live(x-1, y)
	}

	if !corners {
		return
	}

	if up && right {
		live(x+1, y-1)
	}
	if down && right {
		live(x+1, y+1)
	}
	if down && left {
		live(x-1, y+1)
	}
	if up && left {
		live(x-1, y-1)
	}
	return
}

/*
Advance writes the generation following from into to.

from is only read. Both grids must have the same dimensions, a mismatch means the
caller corrupted its buffers and Advance panics.
*/
func Advance(from, to *Grid, cfg rules.RuleConfig) {
	checkSameShape(from, to)

	for y, row := range to.cells {
		for x := range row {
			row[x] = cfg.Apply(from.CountNeighbors(x, y, cfg.Corners), from.cells[y][x])
		}
	}
}
