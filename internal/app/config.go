package app

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"lifegrid/internal/life"
)

// ErrInvalidConfig marks startup configuration that cannot be run.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the startup parameters for the application. It is
// validated once and not modified afterwards.
type Config struct {
	WindowSize int           `json:"window_size"`
	GridSize   int           `json:"grid_size"`
	Tick       time.Duration `json:"tick"`
	TPS        int           `json:"tps"`
	Boundary   string        `json:"boundary"`
	Seed       int64         `json:"seed"`
	Density    float64       `json:"density"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		WindowSize: 1000,
		GridSize:   25,
		Tick:       time.Second,
		TPS:        60,
		Boundary:   life.Clamp.String(),
		Seed:       42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.WindowSize, "window", c.WindowSize, "window width and height in pixels")
	fs.IntVar(&c.GridSize, "grid", c.GridSize, "cells per row and column")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "time between generations while running")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "neighbor lookup at the border: clamp, wrap or dead")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial random fill")
	fs.Float64Var(&c.Density, "density", c.Density, "initial live cell probability (0 starts empty)")
}

// LoadConfig reads a JSON configuration file over the defaults.
func LoadConfig(filename string) (*Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, errors.Wrapf(err, "[LoadConfig] failed to read file: %s", filename)
	}

	if err = json.Unmarshal(data, cfg); err != nil {
		return cfg, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %s", filename)
	}

	return cfg, nil
}

// UnmarshalJSON decodes a Config, accepting "tick" either as a duration
// string such as "1s" or as integer nanoseconds.
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	aux := struct {
		*plain
		Tick json.RawMessage `json:"tick"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Tick) == 0 || string(aux.Tick) == "null" {
		return nil
	}
	if aux.Tick[0] == '"' {
		var text string
		if err := json.Unmarshal(aux.Tick, &text); err != nil {
			return errors.Wrap(err, "[Config.UnmarshalJSON] failed to decode tick")
		}
		d, err := time.ParseDuration(text)
		if err != nil {
			return errors.Wrapf(err, "[Config.UnmarshalJSON] invalid tick %q", text)
		}
		c.Tick = d
		return nil
	}
	var nanos int64
	if err := json.Unmarshal(aux.Tick, &nanos); err != nil {
		return errors.Wrap(err, "[Config.UnmarshalJSON] tick must be a duration string or nanoseconds")
	}
	c.Tick = time.Duration(nanos)
	return nil
}

// ParseFlags binds a Config to fs and parses args. When -config names a
// file it supplies the base values and flags given explicitly override it.
func ParseFlags(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := NewConfig()
	var path string
	fs.StringVar(&path, "config", "", "JSON configuration file (tick as \"250ms\" or nanoseconds)")
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "[ParseFlags] failed to parse flags")
	}
	if path == "" {
		return cfg, nil
	}

	base, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	replay := flag.NewFlagSet("replay", flag.ContinueOnError)
	base.Bind(replay)
	var replayErr error
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" || replayErr != nil {
			return
		}
		replayErr = replay.Set(f.Name, f.Value.String())
	})
	if replayErr != nil {
		return nil, errors.Wrap(replayErr, "[ParseFlags] failed to apply flag overrides")
	}
	return base, nil
}

// Validate checks the startup invariants, most importantly that the window
// divides evenly into cells.
func (c *Config) Validate() error {
	switch {
	case c.GridSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid size %d must be positive", c.GridSize)
	case c.WindowSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "window size %d must be positive", c.WindowSize)
	case c.WindowSize%c.GridSize != 0:
		return errors.Wrapf(ErrInvalidConfig, "window size %d is not divisible by grid size %d", c.WindowSize, c.GridSize)
	case c.Tick <= 0:
		return errors.Wrapf(ErrInvalidConfig, "tick %v must be positive", c.Tick)
	case c.TPS <= 0:
		return errors.Wrapf(ErrInvalidConfig, "tps %d must be positive", c.TPS)
	case c.Density < 0 || c.Density > 1:
		return errors.Wrapf(ErrInvalidConfig, "density %g outside [0, 1]", c.Density)
	}
	if _, ok := life.ParseBoundary(c.Boundary); !ok {
		return errors.Wrapf(ErrInvalidConfig, "unknown boundary %q", c.Boundary)
	}
	return nil
}

// CellSize returns the pixel edge length of one cell.
func (c *Config) CellSize() int {
	if c.GridSize <= 0 {
		return 0
	}
	return c.WindowSize / c.GridSize
}

// BoundaryPolicy resolves the configured boundary name.
func (c *Config) BoundaryPolicy() life.Boundary {
	b, _ := life.ParseBoundary(c.Boundary)
	return b
}
