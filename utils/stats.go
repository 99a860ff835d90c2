package utils

import (
	"slices"
	"time"
)

// Stats for draw performance monitoring
type Stats struct {
	StartTime   time.Time
	Generations int
	drawTimes   []time.Duration
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// RecordDraw stores how long one frame took to draw
func (s *Stats) RecordDraw(d time.Duration) {
	s.drawTimes = append(s.drawTimes, d)
}

// Draws returns the number of recorded frames
func (s *Stats) Draws() int {
	return len(s.drawTimes)
}

// AverageDraw returns the mean draw time, zero when nothing was drawn
func (s *Stats) AverageDraw() time.Duration {
	if len(s.drawTimes) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range s.drawTimes {
		total += d
	}
	return total / time.Duration(len(s.drawTimes))
}

// MedianDraw returns the median draw time, zero when nothing was drawn
func (s *Stats) MedianDraw() time.Duration {
	if len(s.drawTimes) == 0 {
		return 0
	}
	sorted := slices.Clone(s.drawTimes)
	slices.Sort(sorted)
	return sorted[len(sorted)/2]
}
