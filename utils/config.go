package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Pattern names accepted by Config.Pattern.
const (
	PatternRandom  = "random"
	PatternGlider  = "glider"
	PatternBlinker = "blinker"
	PatternBlock   = "block"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	StepDelayMs   int    `json:"step_delay_ms"`
	MinDelayMs    int    `json:"min_delay_ms"`
	MaxDelayMs    int    `json:"max_delay_ms"`
	DelayStepMs   int    `json:"delay_step_ms"`
	PausedPollMs  int    `json:"paused_poll_ms"`
	Seed          int64  `json:"seed"`
	UseParallel   bool   `json:"use_parallel"`
	Workers       int    `json:"workers"`
	UseMemoryPool bool   `json:"use_memory_pool"`
	HistorySize   int    `json:"history_size"`
	LogFile       string `json:"log_file"`
	Pattern       string `json:"pattern"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:         200,
		Height:        50,
		StepDelayMs:   200,
		MinDelayMs:    50,
		MaxDelayMs:    1000,
		DelayStepMs:   50,
		PausedPollMs:  50,
		UseParallel:   true,
		UseMemoryPool: true,
		HistorySize:   5,
		Pattern:       PatternRandom,
	}
}

// StepDelay returns the configured delay between generations while running.
func (c Config) StepDelay() time.Duration { return time.Duration(c.StepDelayMs) * time.Millisecond }

// MinDelay returns the shortest delay the speed controls may reach.
func (c Config) MinDelay() time.Duration { return time.Duration(c.MinDelayMs) * time.Millisecond }

// MaxDelay returns the longest delay the speed controls may reach.
func (c Config) MaxDelay() time.Duration { return time.Duration(c.MaxDelayMs) * time.Millisecond }

// DelayStep returns the amount a single speed key press changes the delay by.
func (c Config) DelayStep() time.Duration { return time.Duration(c.DelayStepMs) * time.Millisecond }

// PausedPoll returns how often the loop wakes while paused.
func (c Config) PausedPoll() time.Duration { return time.Duration(c.PausedPollMs) * time.Millisecond }

// Validate reports the first setting that cannot drive a session.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid must be positive, got %dx%d", c.Width, c.Height)
	case c.MinDelayMs <= 0 || c.MaxDelayMs <= 0 || c.DelayStepMs <= 0 || c.PausedPollMs <= 0:
		return errors.Wrap(ErrInvalidConfig, "[Validate] delays must be positive")
	case c.MinDelayMs > c.MaxDelayMs:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] min delay %dms exceeds max delay %dms", c.MinDelayMs, c.MaxDelayMs)
	case c.StepDelayMs < c.MinDelayMs || c.StepDelayMs > c.MaxDelayMs:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] step delay %dms outside [%d, %d]", c.StepDelayMs, c.MinDelayMs, c.MaxDelayMs)
	case c.HistorySize < 0 || c.Workers < 0:
		return errors.Wrap(ErrInvalidConfig, "[Validate] history size and workers must not be negative")
	}
	switch c.Pattern {
	case PatternRandom, PatternGlider, PatternBlinker, PatternBlock:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown pattern %q", c.Pattern)
	}
	return nil
}

// LoadConfig reads a JSON settings file. Keys missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] cannot open %s", path)
	}
	defer f.Close()

	if err = json.NewDecoder(f).Decode(&config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] cannot decode %s", path)
	}
	return config, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.StepDelayMs, "delay", c.StepDelayMs, "initial step delay in milliseconds")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for grid population (0 seeds from the clock)")
	fs.BoolVar(&c.UseParallel, "parallel", c.UseParallel, "compute generations on multiple goroutines")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation (0 uses every CPU)")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "recycle the scratch buffers used for stagnation hashing")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write log output to this file")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial content: random, glider, blinker or block")
}

// ParseFlags loads the file named by -config and applies every flag the user
// set explicitly on top of it. A missing config file leaves the defaults in
// place and reports usedDefaults.
func ParseFlags(fs *flag.FlagSet, args []string) (config Config, usedDefaults bool, err error) {
	path := fs.String("config", "config.json", "path to a JSON configuration file")
	overrides := DefaultConfig()
	overrides.Bind(fs)
	if err = fs.Parse(args); err != nil {
		return config, false, errors.Wrap(err, "[ParseFlags] failed to parse arguments")
	}

	config, err = LoadConfig(*path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config, false, err
		}
		config, usedDefaults, err = DefaultConfig(), true, nil
	}

	// Re-bind onto the loaded config and replay only the flags that were set.
	applied := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
	config.Bind(applied)
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" || err != nil {
			return
		}
		err = errors.Wrapf(applied.Set(f.Name, f.Value.String()), "[ParseFlags] flag -%s", f.Name)
	})
	if err != nil {
		return config, usedDefaults, err
	}

	return config, usedDefaults, config.Validate()
}
