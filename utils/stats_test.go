package utils

import (
	"testing"
	"time"
)

func TestDrawStats(t *testing.T) {
	s := NewStats()
	if s.AverageDraw() != 0 || s.MedianDraw() != 0 {
		t.Fatal("empty stats must report zero")
	}

	for _, ms := range []int{9, 1, 5, 3} {
		s.RecordDraw(time.Duration(ms) * time.Millisecond)
	}

	if s.Draws() != 4 {
		t.Fatalf("draws = %d, expected 4", s.Draws())
	}
	if s.AverageDraw() != 4500*time.Microsecond {
		t.Fatalf("average = %v, expected 4.5ms", s.AverageDraw())
	}
	if s.MedianDraw() != 5*time.Millisecond {
		t.Fatalf("median = %v, expected 5ms", s.MedianDraw())
	}
}
