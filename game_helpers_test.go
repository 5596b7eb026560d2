package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-tui/model"
	"github.com/sheikhrachel/go-gol-tui/utils"
)

func TestInitializeGrid(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.Width, cfg.Height = 30, 20
	cfg.Seed = 12

	a, err := initializeGrid(cfg)
	if err != nil {
		t.Fatalf("initializeGrid: %v", err)
	}
	defer a.Destroy()

	cfg.UseParallel, cfg.UseMemoryPool = false, false
	b, err := initializeGrid(cfg)
	if err != nil {
		t.Fatalf("initializeGrid: %v", err)
	}
	defer b.Destroy()

	for y := 0; y < 20; y++ {
		for x := 0; x < 30; x++ {
			if a.GetCell(x, y) != b.GetCell(x, y) {
				t.Fatalf("same seed produced different cell at (%d,%d)", x, y)
			}
		}
	}

	// Parallel and sequential grids keep agreeing.
	for i := 0; i < 10; i++ {
		a.Step()
		b.Step()
	}
	if a.Hash() != b.Hash() {
		t.Fatal("parallel and sequential grids diverged")
	}
}

func TestInitializeGridPattern(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.Pattern = utils.PatternBlinker
	g, err := initializeGrid(cfg)
	if err != nil {
		t.Fatalf("initializeGrid: %v", err)
	}
	defer g.Destroy()
	if g.CountLivingCells() != 3 {
		t.Fatalf("expected a lone blinker, got %d live cells", g.CountLivingCells())
	}
}

func TestInitializeGridRejectsBadSize(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.Width = 0
	if _, err := initializeGrid(cfg); !errors.Is(err, model.ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestCheckTerminalSize(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer s.Fini()

	s.SetSize(model.MinTerminalWidth, model.MinTerminalHeight)
	if err := checkTerminalSize(s); err != nil {
		t.Fatalf("minimum size should be accepted: %v", err)
	}

	s.SetSize(model.MinTerminalWidth-1, model.MinTerminalHeight)
	if err := checkTerminalSize(s); !errors.Is(err, errTerminalTooSmall) {
		t.Fatalf("expected errTerminalTooSmall, got %v", err)
	}
}

func TestOpenLogger(t *testing.T) {
	logger, closeLog, err := openLogger("")
	if err != nil {
		t.Fatalf("discard logger: %v", err)
	}
	logger.Printf("dropped")
	closeLog()

	path := filepath.Join(t.TempDir(), "gol.log")
	logger, closeLog, err = openLogger(path)
	if err != nil {
		t.Fatalf("file logger: %v", err)
	}
	logger.Printf("grid reset")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "grid reset") {
		t.Fatalf("log file missing entry: %q", data)
	}
}

func TestRunMainReportsConfigErrors(t *testing.T) {
	var stderr strings.Builder
	code := runMain([]string{"-config", filepath.Join(t.TempDir(), "none.json"), "-width", "0"}, log.New(&stderr, "", 0))
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(stderr.String(), "configuration") {
		t.Fatalf("expected a configuration error, got %q", stderr.String())
	}
}

func TestRunMainLogsSessionFailure(t *testing.T) {
	orig := newScreen
	newScreen = func() (tcell.Screen, error) { return nil, errors.New("no terminal") }
	t.Cleanup(func() { newScreen = orig })

	dir := t.TempDir()
	logPath := filepath.Join(dir, "gol.log")
	args := []string{"-config", filepath.Join(dir, "none.json"), "-log", logPath, "-width", "20", "-height", "10"}

	var stderr strings.Builder
	if code := runMain(args, log.New(&stderr, "", 0)); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "no terminal") {
		t.Fatalf("expected the screen error on stderr, got %q", stderr.String())
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "session failed") {
		t.Fatalf("log file missing failure entry: %q", data)
	}
}
