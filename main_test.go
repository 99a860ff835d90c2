package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newSimulationScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(6, 4)
	return screen
}

func serveAsync(ctx context.Context, g *game, screen tcell.Screen) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, g, screen, 10*time.Millisecond)
	}()
	return done
}

func waitServe(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not return, a goroutine is stuck")
	}
}

func TestServeStopsOnCancelledContext(t *testing.T) {
	screen := newSimulationScreen(t)
	for range 5 {
		screen.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	waitServe(t, serveAsync(ctx, newTestGame(t, 1), screen))
}

func TestServeStopsOnEscape(t *testing.T) {
	screen := newSimulationScreen(t)
	g := newTestGame(t, 1)
	screen.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	// left queued behind the quit key, so the pump may be blocked sending it
	screen.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)

	waitServe(t, serveAsync(context.Background(), g, screen))

	if g.automaton.Generation() != 1 {
		t.Fatalf("generation = %d, expected only the step before escape", g.automaton.Generation())
	}
}
