package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-tui/game"
	"github.com/sheikhrachel/go-gol-tui/model"
	"github.com/sheikhrachel/go-gol-tui/utils"
)

// errTerminalTooSmall is returned when the window layout does not fit.
var errTerminalTooSmall = errors.New("terminal too small")

// initializeGrid builds the grid described by config
func initializeGrid(config utils.Config) (*model.Grid, error) {
	var src model.Source
	if config.Seed != 0 {
		src = utils.NewSeededSource(config.Seed)
	} else {
		src = utils.NewClockSource()
	}

	var opts []model.Option
	if config.UseMemoryPool {
		opts = append(opts, model.WithPool(model.NewGridPool()))
	}
	if config.UseParallel {
		workers := config.Workers
		if workers == 0 {
			workers = runtime.NumCPU()
		}
		opts = append(opts, model.WithWorkers(workers))
	}

	grid, err := model.NewGrid(config.Width, config.Height, src, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGrid] failed to create grid")
	}
	if config.Pattern != utils.PatternRandom {
		grid.ResetWithPattern(config.Pattern)
	}
	return grid, nil
}

// initializeGame wires the controller and event loop around the grid
func initializeGame(grid *model.Grid, screen tcell.Screen, config utils.Config, logger *log.Logger) (*game.Controller, *game.Loop) {
	controller := game.NewController(grid, config, logger)
	renderer := model.NewTerminalRenderer(screen)
	return controller, game.NewLoop(controller, renderer, grid)
}

// checkTerminalSize rejects terminals the window layout cannot fit in
func checkTerminalSize(screen tcell.Screen) error {
	w, h := screen.Size()
	if w < model.MinTerminalWidth || h < model.MinTerminalHeight {
		return errors.Wrapf(errTerminalTooSmall, "[checkTerminalSize] need at least %d columns and %d rows, have %dx%d",
			model.MinTerminalWidth, model.MinTerminalHeight, w, h)
	}
	return nil
}

// openLogger directs log output to path, or discards it when path is empty.
// The screen owns the terminal while a session runs, so nothing is logged there.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "[openLogger] failed to open %s", path)
	}
	return log.New(f, "gol ", log.LstdFlags), func() { _ = f.Close() }, nil
}

// displayFinalStats shows the summary printed after the screen is released
func displayFinalStats(stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
