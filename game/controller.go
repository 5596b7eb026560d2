package game

import (
	"io"
	"log"
	"time"

	"github.com/sheikhrachel/go-gol-tui/model"
	"github.com/sheikhrachel/go-gol-tui/utils"
)

// Controller holds the run flag and step delay for a session and applies user
// commands to the grid.
type Controller struct {
	grid    *model.Grid
	history *model.History
	stats   *utils.Stats
	logger  *log.Logger

	delay      time.Duration
	minDelay   time.Duration
	maxDelay   time.Duration
	delayStep  time.Duration
	pausedPoll time.Duration

	running   bool
	stagnant  bool
	lastFrame time.Time
}

// NewController starts paused with the configured delay. A nil logger
// discards output.
func NewController(grid *model.Grid, config utils.Config, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	c := &Controller{
		grid:       grid,
		history:    model.NewHistory(config.HistorySize),
		stats:      utils.NewStats(),
		logger:     logger,
		delay:      config.StepDelay(),
		minDelay:   config.MinDelay(),
		maxDelay:   config.MaxDelay(),
		delayStep:  config.DelayStep(),
		pausedPoll: config.PausedPoll(),
		lastFrame:  time.Now(),
	}
	c.stats.Restart(grid.CountLivingCells())
	c.stagnant = c.history.Observe(grid)
	return c
}

// Apply executes a command and reports whether the session should end.
func (c *Controller) Apply(a Action) (quit bool) {
	switch a {
	case ActionQuit:
		c.logger.Printf("quit at generation %d", c.grid.GetGeneration())
		return true
	case ActionToggleRun:
		c.running = !c.running
		c.lastFrame = time.Now()
		c.logger.Printf("running=%v at generation %d", c.running, c.grid.GetGeneration())
	case ActionStep:
		if !c.running {
			c.advance()
		}
	case ActionFaster:
		if c.delay > c.minDelay {
			c.delay = max(c.delay-c.delayStep, c.minDelay)
		}
	case ActionSlower:
		if c.delay < c.maxDelay {
			c.delay = min(c.delay+c.delayStep, c.maxDelay)
		}
	case ActionReset:
		c.grid.Reset()
		c.running = false
		c.history.Clear()
		c.stats.Restart(c.grid.CountLivingCells())
		c.stagnant = c.history.Observe(c.grid)
		c.logger.Printf("grid reset, %d live cells", c.stats.Population)
	}
	return false
}

// Tick advances one generation when the session is running.
func (c *Controller) Tick() {
	if c.running {
		c.advance()
	}
}

func (c *Controller) advance() {
	c.grid.Step()

	now := time.Now()
	c.stats.Update(c.grid.GetGeneration(), c.grid.CountLivingCells(), now.Sub(c.lastFrame))
	c.lastFrame = now

	stagnant := c.history.Observe(c.grid)
	if stagnant && !c.stagnant {
		c.logger.Printf("stagnation detected at generation %d", c.grid.GetGeneration())
	}
	c.stagnant = stagnant
}

// Wait returns how long the loop should sleep before the next tick.
func (c *Controller) Wait() time.Duration {
	if c.running {
		return c.delay
	}
	return c.pausedPoll
}

// Status describes the session for the renderer.
func (c *Controller) Status() model.Status {
	return model.Status{
		DelayMs:    int(c.delay / time.Millisecond),
		Running:    c.running,
		Stagnant:   c.stagnant,
		Population: c.stats.Population,
	}
}

// Stats returns the statistics gathered so far.
func (c *Controller) Stats() *utils.Stats { return c.stats }
