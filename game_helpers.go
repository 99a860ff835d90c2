package main

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-lifelevel/model"
	"github.com/sheikhrachel/go-lifelevel/utils"
)

const (
	// statusRows are reserved below the grid for the status line
	statusRows = 1

	// historySize is how many recent grid hashes are kept for cycle detection
	historySize = 3
)

// game is the interactive state around an automaton
type game struct {
	automaton *model.Automaton
	renderer  *model.TerminalRenderer
	stats     *utils.Stats
	rng       *rand.Rand
	density   float64

	cursorX, cursorY int      // last pointer position
	history          []string // hashes of recent generations
	stagnant         bool

	advance bool // auto-advance on every tick
	update  bool // redraw before waiting again
}

// initializeGame sets up the automaton sized to the screen
func initializeGame(config utils.Config, automaton *model.Automaton, width, height int) *game {
	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	automaton.Resize(width, height-statusRows)

	return &game{
		automaton: automaton,
		renderer:  &model.TerminalRenderer{Numeric: config.Numeric, Monochrome: config.Monochrome},
		stats:     utils.NewStats(),
		rng:       rand.New(rand.NewPCG(seed, 0)),
		density:   config.RandomDensity,
		update:    true,
	}
}

// step advances one generation and updates stagnation tracking
func (g *game) step() {
	g.automaton.Advance()
	g.updateHistory()
	g.update = true
}

// updateHistory marks the game stagnant when the new generation repeats one of the last few
func (g *game) updateHistory() {
	hash := g.automaton.Grid().GetGridHash()
	g.stagnant = slices.Contains(g.history, hash)

	g.history = append(g.history, hash)
	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// edited forgets the history, since hand edits break any cycle
func (g *game) edited() {
	g.history = nil
	g.stagnant = false
	g.update = true
}

// paint sets a cell to value unless it already holds it
func (g *game) paint(x, y int, value uint8) {
	if cur, ok := g.automaton.GetCell(x, y); ok && cur != value {
		g.automaton.SetCell(x, y, value)
		g.edited()
	}
}

// processEvent applies one terminal event and reports whether the user asked to quit
func (g *game) processEvent(ev tcell.Event) (quit bool) {
	life := g.automaton.Rules().Life

	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Rune() == 'n':
			g.step()
		case ev.Rune() == 'a':
			g.advance = !g.advance
		case ev.Rune() == 'r':
			g.automaton.Grid().Randomize(g.rng, g.density, life)
			g.edited()
		case ev.Rune() == 'x':
			g.automaton.Grid().Clear()
			g.edited()
		case ev.Rune() == 'g':
			g.automaton.Grid().AddGlider(g.cursorX, g.cursorY, life)
			g.edited()
		case ev.Rune() == 'o':
			g.automaton.Grid().AddOscillator(g.cursorX, g.cursorY, life)
			g.edited()
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		g.cursorX, g.cursorY = x, y
		switch {
		case ev.Buttons()&tcell.Button1 != 0:
			g.paint(x, y, life)
		case ev.Buttons()&tcell.Button2 != 0:
			g.paint(x, y, 0)
		}
	case *tcell.EventResize:
		width, height := ev.Size()
		g.automaton.Resize(width, height-statusRows)
		g.update = true
	}
	return false
}

// tick advances the automaton when auto-advance is on
func (g *game) tick() {
	if g.advance {
		g.step()
	}
}

// statusLine summarizes the current generation
func (g *game) statusLine() string {
	grid := g.automaton.Grid()
	livingCells := grid.CountLivingCells()

	status := "Active"
	if g.stagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}
	if !g.advance {
		status += " (paused)"
	}

	return fmt.Sprintf("Gen: %d | Living: %d | Status: %s", g.automaton.Generation(), livingCells, status)
}

// draw renders the current grid and status line if anything changed since the last frame
func (g *game) draw(screen tcell.Screen) {
	if !g.update {
		return
	}
	start := time.Now()
	g.renderer.Display(screen, g.automaton.Grid(), g.automaton.Rules().Life)
	g.renderer.Status(screen, g.automaton.Grid().GetHeight(), g.statusLine())
	screen.Show()
	g.stats.RecordDraw(time.Since(start))
	g.update = false
}

// displayFinalStats prints the draw timings once the screen is torn down
func displayFinalStats(g *game) {
	g.stats.Generations = g.automaton.Generation()
	fmt.Printf("Generations: %d in %.1fs\n", g.stats.Generations, time.Since(g.stats.StartTime).Seconds())
	fmt.Printf("DRAW_AVG: %d\n", g.stats.AverageDraw().Milliseconds())
	fmt.Printf("DRAW_MEDIAN: %d\n", g.stats.MedianDraw().Milliseconds())
}
