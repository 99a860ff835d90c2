package model

import "github.com/sheikhrachel/go-lifelevel/rules"

// Automaton is a double-buffered engine: one grid is current, the other receives the next generation
type Automaton struct {
	grids      [2]*Grid
	current    int
	rules      rules.RuleConfig
	generation int
}

// NewAutomaton creates an automaton with empty buffers. Call Resize before use.
func NewAutomaton(cfg rules.RuleConfig) *Automaton {
	return &Automaton{
		grids: [2]*Grid{NewGrid(0, 0), NewGrid(0, 0)},
		rules: cfg,
	}
}

// Advance computes the next generation into the spare buffer and makes it current
func (a *Automaton) Advance() {
	next := 1 - a.current
	Advance(a.grids[a.current], a.grids[next], a.rules)
	a.current = next
	a.generation++
}

// Resize resizes both buffers to width x height
func (a *Automaton) Resize(width, height int) {
	for _, g := range a.grids {
		g.Resize(width, height)
	}
}

// Grid returns the current buffer. Edits made through it are seen by the next Advance.
func (a *Automaton) Grid() *Grid {
	return a.grids[a.current]
}

// Rules returns the rule configuration
func (a *Automaton) Rules() rules.RuleConfig {
	return a.rules
}

// Generation returns how many times Advance has been called
func (a *Automaton) Generation() int {
	return a.generation
}

// GetCell reads a cell from the current buffer
func (a *Automaton) GetCell(x, y int) (uint8, bool) {
	return a.Grid().Get(x, y)
}

// SetCell writes a cell in the current buffer, bypassing the rules
func (a *Automaton) SetCell(x, y int, value uint8) {
	a.Grid().Set(x, y, value)
}
