package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	RendererTerminal = "terminal"
	RendererCanvas   = "canvas"
)

// Config holds the configuration for the game
type Config struct {
	CanvasWidth         int           `json:"canvas_width"`
	CanvasHeight        int           `json:"canvas_height"`
	Resolution          int           `json:"resolution"`
	Columns             int           `json:"columns"`
	Rows                int           `json:"rows"`
	FrameRate           time.Duration `json:"frame_rate"`
	Seed                int64         `json:"seed"`
	Renderer            string        `json:"renderer"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	MaxGenerations      int           `json:"max_generations"`
}

// DefaultConfig returns the reference configuration: a 1000px canvas at
// 10px per cell
func DefaultConfig() Config {
	return Config{
		CanvasWidth:         1000,
		CanvasHeight:        800,
		Resolution:          10,
		FrameRate:           100 * time.Millisecond,
		Renderer:            RendererTerminal,
		AutoRestart:         false,
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.CanvasWidth, "width", c.CanvasWidth, "canvas width in pixels")
	fs.IntVar(&c.CanvasHeight, "height", c.CanvasHeight, "canvas height in pixels")
	fs.IntVar(&c.Resolution, "resolution", c.Resolution, "pixels per cell")
	fs.IntVar(&c.Columns, "columns", c.Columns, "grid columns (0 derives from width/resolution)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows (0 derives from width/resolution)")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "time between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize (0 uses the clock)")
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "terminal or canvas")
	fs.BoolVar(&c.AutoRestart, "auto-restart", c.AutoRestart, "re-randomize on extinction or stagnation")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 runs forever)")
}

// GridSize returns the logical grid dimensions. Unless set explicitly both
// are derived from the canvas width, giving a square grid.
func (c Config) GridSize() (columns, rows int) {
	columns, rows = c.Columns, c.Rows
	if c.Resolution <= 0 {
		return
	}
	if columns == 0 {
		columns = c.CanvasWidth / c.Resolution
	}
	if rows == 0 {
		rows = c.CanvasWidth / c.Resolution
	}
	return
}

// Validate reports configuration values the driver cannot run with
func (c Config) Validate() error {
	if c.Resolution <= 0 {
		return errors.Errorf("[Validate] resolution must be positive, got %d", c.Resolution)
	}
	if columns, rows := c.GridSize(); columns <= 0 || rows <= 0 {
		return errors.Errorf("[Validate] grid must be positive, got %dx%d", columns, rows)
	}
	if c.FrameRate <= 0 {
		return errors.Errorf("[Validate] frame_rate must be positive, got %s", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	}
	switch c.Renderer {
	case RendererTerminal, RendererCanvas:
	default:
		return errors.Errorf("[Validate] unknown renderer %q", c.Renderer)
	}
	return nil
}
