package model

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

const (
	gridPosBlock = '█'
	gridPosEmpty = ' '

	maxDigit = 9
)

// heatRamp runs from faint (just alive) to hot (at the life ceiling)
var heatRamp = []tcell.Color{
	tcell.ColorNavy,
	tcell.ColorBlue,
	tcell.ColorTeal,
	tcell.ColorGreen,
	tcell.ColorOlive,
	tcell.ColorYellow,
	tcell.ColorOrange,
	tcell.ColorRed,
}

/*
Glyph returns the rune drawn for a cell.

Dead cells are blank. In numeric mode the value is shown as a digit, scaled against
life onto 0-9 when life is above 9. Otherwise live cells are full blocks.
*/
func Glyph(value, life uint8, numeric bool) rune {
	switch {
	case value == 0:
		return gridPosEmpty
	case !numeric:
		return gridPosBlock
	case life > maxDigit:
		scaled := math.Round(float64(value) / float64(life) * maxDigit)
		return rune('0' + int(min(scaled, maxDigit)))
	default:
		return rune('0' + int(min(value, maxDigit)))
	}
}

// HeatColor maps a live cell's intensity onto the heat ramp
func HeatColor(value, life uint8) tcell.Color {
	if value == 0 || life == 0 {
		return tcell.ColorDefault
	}
	idx := int(float64(min(value, life)) / float64(life) * float64(len(heatRamp)-1))
	return heatRamp[idx]
}

// TerminalRenderer draws grids onto a tcell screen
type TerminalRenderer struct {
	Numeric    bool
	Monochrome bool
}

// Style returns the style used for a cell
func (r *TerminalRenderer) Style(value, life uint8) tcell.Style {
	if r.Monochrome || value == 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(HeatColor(value, life))
}

// Display draws the grid at the top left of the screen. Call screen.Show to flush it.
func (r *TerminalRenderer) Display(screen tcell.Screen, g *Grid, life uint8) {
	for y, row := range g.Rows() {
		for x, cell := range row {
			screen.SetContent(x, y, Glyph(cell, life, r.Numeric), nil, r.Style(cell, life))
		}
	}
}

// Status writes text on row y, blanking the rest of the row
func (r *TerminalRenderer) Status(screen tcell.Screen, y int, text string) {
	width, _ := screen.Size()
	style := tcell.StyleDefault.Reverse(!r.Monochrome)
	runes := []rune(text)
	for x := range width {
		c := gridPosEmpty
		if x < len(runes) {
			c = runes[x]
		}
		screen.SetContent(x, y, c, nil, style)
	}
}
