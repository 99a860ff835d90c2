package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-lifelevel/model"
	"github.com/sheikhrachel/go-lifelevel/utils"
)

// pumpEvents forwards terminal events until the screen is finalized or ctx ends
func pumpEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) error {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

// run is the main loop: terminal events, auto-advance ticks, redraws
func run(ctx context.Context, g *game, screen tcell.Screen, events <-chan tcell.Event, frameRate time.Duration) error {
	ticker := time.NewTicker(frameRate)
	defer ticker.Stop()

	g.draw(screen)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if g.processEvent(ev) {
				return nil
			}
		case <-ticker.C:
			g.tick()
		}
		g.draw(screen)
	}
}

// serve runs the event pump and the main loop until the user quits or ctx ends, then finalizes the screen
func serve(ctx context.Context, g *game, screen tcell.Screen, frameRate time.Duration) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event)

	eg.Go(func() error {
		return pumpEvents(ctx, screen, events)
	})
	eg.Go(func() error {
		defer screen.Fini()
		defer stop()
		return run(ctx, g, screen, events, frameRate)
	})

	return eg.Wait()
}

func main() {
	config, err := utils.ParseArgs(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	cellRules, err := config.RuleConfig()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}
	if overlaps := cellRules.Overlaps(); len(overlaps) > 0 {
		log.Printf("neighbor counts %v both grow and die, growth takes precedence", overlaps)
	}
	if config.FrameRate <= 0 {
		config.FrameRate = utils.DefaultConfig().FrameRate
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	width, height := screen.Size()
	g := initializeGame(config, model.NewAutomaton(cellRules), width, height)

	// Handle SIGTERM (and SIGINT outside raw mode) gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = serve(ctx, g, screen, config.FrameRate)
	stop()
	if err != nil {
		log.Fatalf("game loop: %v", err)
	}
	displayFinalStats(g)
}
