package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
)

// Grid is a rectangular board of cell life levels stored row by row
type Grid struct {
	width int
	cells [][]uint8
}

// NewGrid creates a new grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return len(g.cells)
}

// Rows exposes the cell rows for rendering. Callers must not change row lengths.
func (g *Grid) Rows() [][]uint8 {
	return g.cells
}

/*
Resize grows or truncates the grid to width x height.

Existing content stays anchored at the top left. New rows and columns are dead,
rows past height and columns past width are dropped.
*/
func (g *Grid) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)

	if len(g.cells) < height {
		for len(g.cells) < height {
			g.cells = append(g.cells, make([]uint8, width))
		}
	} else {
		clear(g.cells[height:])
		g.cells = g.cells[:height]
	}

	for y, row := range g.cells {
		if len(row) < width {
			g.cells[y] = append(row, make([]uint8, width-len(row))...)
		} else {
			g.cells[y] = row[:width]
		}
	}
	g.width = width
}

// Clear kills all cells
func (g *Grid) Clear() {
	for _, row := range g.cells {
		clear(row)
	}
}

// Set writes a cell value, out of bounds writes are ignored
func (g *Grid) Set(x, y int, value uint8) {
	if x >= 0 && x < g.width && y >= 0 && y < len(g.cells) {
		g.cells[y][x] = value
	}
}

// Get returns the value of a cell and whether (x, y) lies on the grid
func (g *Grid) Get(x, y int) (uint8, bool) {
	if x < 0 || x >= g.width || y < 0 || y >= len(g.cells) {
		return 0, false
	}
	return g.cells[y][x], true
}

// CountLivingCells returns the total number of non-zero cells
func (g *Grid) CountLivingCells() (count int) {
	for _, row := range g.cells {
		for _, cell := range row {
			if cell != 0 {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the dimensions and every cell value
func (g *Grid) GetGridHash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.width, len(g.cells))
	for _, row := range g.cells {
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Randomize sets each cell to value with the given probability and kills the rest
func (g *Grid) Randomize(rng *rand.Rand, density float64, value uint8) {
	for _, row := range g.cells {
		for x := range row {
			if rng.Float64() < density {
				row[x] = value
			} else {
				row[x] = 0
			}
		}
	}
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(startX, startY int, value uint8) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, alive := range row {
			if alive {
				g.Set(startX+x, startY+y, value)
			} else {
				g.Set(startX+x, startY+y, 0)
			}
		}
	}
}

// AddOscillator adds a horizontal blinker starting at the specified position
func (g *Grid) AddOscillator(startX, startY int, value uint8) {
	g.Set(startX, startY, value)
	g.Set(startX+1, startY, value)
	g.Set(startX+2, startY, value)
}
