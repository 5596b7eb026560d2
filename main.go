package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-tui/utils"
)

// newScreen is replaced in tests that run without a terminal.
var newScreen = tcell.NewScreen

func main() {
	os.Exit(runMain(os.Args[1:], log.New(os.Stderr, "", 0)))
}

// runMain returns the process exit code so deferred cleanup, including
// closing the log file, runs before the process ends.
func runMain(args []string, stderr *log.Logger) int {
	config, usedDefaults, err := utils.ParseFlags(flag.NewFlagSet("gol", flag.ContinueOnError), args)
	if err != nil {
		stderr.Printf("configuration: %v", err)
		return 2
	}
	if usedDefaults {
		fmt.Println("Using default configuration (config.json not found)")
	}

	logger, closeLog, err := openLogger(config.LogFile)
	if err != nil {
		stderr.Printf("log file: %v", err)
		return 1
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats, err := run(ctx, config, logger)
	if err != nil {
		logger.Printf("session failed: %v", err)
		stderr.Printf("%v", err)
		return 1
	}
	displayFinalStats(stats)
	return 0
}

// run owns the terminal for the length of a session.
func run(ctx context.Context, config utils.Config, logger *log.Logger) (*utils.Stats, error) {
	grid, err := initializeGrid(config)
	if err != nil {
		return nil, err
	}
	defer grid.Destroy()

	screen, err := newScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[run] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[run] failed to initialize screen")
	}
	defer screen.Fini()

	if err = checkTerminalSize(screen); err != nil {
		return nil, err
	}

	controller, loop := initializeGame(grid, screen, config, logger)
	logger.Printf("session started: %dx%d grid, %d live cells", grid.GetWidth(), grid.GetHeight(), grid.CountLivingCells())

	var (
		events = make(chan tcell.Event, 16)
		quit   = make(chan struct{})
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		screen.ChannelEvents(events, quit)
		return nil
	})
	eg.Go(func() error {
		defer close(quit)
		return loop.Run(ctx, events)
	})
	if err = eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[run] game loop failed")
	}

	return controller.Stats(), nil
}
