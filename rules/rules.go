package rules

import "github.com/pkg/errors"

// MaxNeighbors is the largest neighbor count a cell can observe (Moore topology).
const MaxNeighbors = 8

/*
RuleConfig controls how a generation is computed.

Corners selects the 8-neighbor topology when true and the 4-neighbor one when false.
Life is the highest value a cell may reach. Grow[n] and Die[n] decide what happens
to a cell with exactly n live neighbors; growth is checked first.
*/
type RuleConfig struct {
	Corners bool
	Life    uint8
	Grow    [MaxNeighbors + 1]bool
	Die     [MaxNeighbors + 1]bool
}

// NewRuleConfig builds a RuleConfig from lists of neighbor counts
func NewRuleConfig(corners bool, life uint8, grow, die []int) (RuleConfig, error) {
	cfg := RuleConfig{Corners: corners, Life: life}
	for _, n := range grow {
		if n < 0 || n > MaxNeighbors {
			return RuleConfig{}, errors.Errorf("[NewRuleConfig] grow count out of range 0..%d: %d", MaxNeighbors, n)
		}
		cfg.Grow[n] = true
	}
	for _, n := range die {
		if n < 0 || n > MaxNeighbors {
			return RuleConfig{}, errors.Errorf("[NewRuleConfig] die count out of range 0..%d: %d", MaxNeighbors, n)
		}
		cfg.Die[n] = true
	}
	return cfg, nil
}

// Conway returns the rule set that reproduces the classic Game of Life
func Conway() RuleConfig {
	cfg, _ := NewRuleConfig(true, 1, []int{3}, []int{0, 1, 4, 5, 6, 7, 8})
	return cfg
}

// Overlaps lists the neighbor counts that appear in both Grow and Die.
// Grow wins for those counts.
func (c RuleConfig) Overlaps() (counts []int) {
	for n := range MaxNeighbors + 1 {
		if c.Grow[n] && c.Die[n] {
			counts = append(counts, n)
		}
	}
	return
}

/*
Apply computes the next value of a cell holding value with the given number of live neighbors.

Growth saturates at Life and decay saturates at zero.
*/
func (c RuleConfig) Apply(neighbors int, value uint8) uint8 {
	switch {
	case c.Grow[neighbors]:
		if value >= c.Life {
			return c.Life
		}
		return value + 1
	case c.Die[neighbors]:
		if value == 0 {
			return 0
		}
		return value - 1
	default:
		return value
	}
}
