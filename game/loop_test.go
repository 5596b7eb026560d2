package game

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-gol-tui/model"
	"github.com/sheikhrachel/go-gol-tui/utils"
)

func newTestLoop(t *testing.T) (*Loop, *model.Grid, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(100, 30)

	g, err := model.NewGrid(20, 10, utils.NewSeededSource(4))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	cfg := utils.DefaultConfig()
	cfg.PausedPollMs = 1000
	return NewLoop(NewController(g, cfg, nil), model.NewTerminalRenderer(s), g), g, s
}

func runLoop(t *testing.T, l *Loop, ctx context.Context, events <-chan tcell.Event) {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx, events) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("loop returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestLoopStepsAndQuits(t *testing.T) {
	l, g, _ := newTestLoop(t)

	events := make(chan tcell.Event, 4)
	events <- runeKey(' ')
	events <- runeKey(' ')
	events <- tcell.NewEventResize(120, 40)
	events <- runeKey('q')

	runLoop(t, l, context.Background(), events)
	if g.GetGeneration() != 2 {
		t.Fatalf("expected two manual steps, got generation %d", g.GetGeneration())
	}
}

func TestLoopStopsWhenEventsClose(t *testing.T) {
	l, _, _ := newTestLoop(t)
	events := make(chan tcell.Event)
	close(events)
	runLoop(t, l, context.Background(), events)
}

func TestLoopStopsOnCancel(t *testing.T) {
	l, _, _ := newTestLoop(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runLoop(t, l, ctx, make(chan tcell.Event))
}

func TestLoopTicksWhileRunning(t *testing.T) {
	l, g, _ := newTestLoop(t)
	l.controller.delay = time.Millisecond
	l.controller.running = true

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx, make(chan tcell.Event)) }()

	// The first tick waits for the configured delay set before Run.
	time.Sleep(100 * time.Millisecond)
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("loop returned %v", err)
	}
	if g.GetGeneration() == 0 {
		t.Fatal("running loop should have advanced the grid")
	}
}
