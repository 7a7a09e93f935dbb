// Package config loads run configuration from embedded defaults, an optional
// YAML file, and command-line overrides, in that order.
package config

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of a run.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Display   DisplayConfig   `yaml:"display"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// GridConfig sizes and seeds the simulation.
type GridConfig struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"` // 0 = time-based
}

// DisplayConfig controls the GUI front end.
type DisplayConfig struct {
	Scale          int   `yaml:"scale"` // pixels per cell
	TPS            int   `yaml:"tps"`
	StepIntervalMS int   `yaml:"step_interval_ms"` // 0 = one generation per tick
	HUDWidth       int   `yaml:"hud_width"`
	AliveColor     Color `yaml:"alive_color"`
	DeadColor      Color `yaml:"dead_color"`
}

// TelemetryConfig controls sampling and CSV output.
type TelemetryConfig struct {
	Window    int    `yaml:"window"` // generations per stats window
	OutputDir string `yaml:"output_dir"`
	LogStats  bool   `yaml:"log_stats"`
}

// Color is an opaque RGB triple.
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// RGBA converts c to an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// StepInterval returns the configured generation interval.
func (d DisplayConfig) StepInterval() time.Duration {
	return time.Duration(d.StepIntervalMS) * time.Millisecond
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load reads the embedded defaults and, if path is non-empty, overlays the
// file at path. Only keys present in the file replace defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges that would otherwise fail later.
func (c *Config) Validate() error {
	var errs []error
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid size must be positive, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Display.Scale <= 0 {
		errs = append(errs, fmt.Errorf("display.scale must be positive, got %d", c.Display.Scale))
	}
	if c.Display.TPS <= 0 {
		errs = append(errs, fmt.Errorf("display.tps must be positive, got %d", c.Display.TPS))
	}
	if c.Display.StepIntervalMS < 0 {
		errs = append(errs, fmt.Errorf("display.step_interval_ms must not be negative, got %d", c.Display.StepIntervalMS))
	}
	if c.Display.HUDWidth < 0 {
		errs = append(errs, fmt.Errorf("display.hud_width must not be negative, got %d", c.Display.HUDWidth))
	}
	if c.Telemetry.Window <= 0 {
		errs = append(errs, fmt.Errorf("telemetry.window must be positive, got %d", c.Telemetry.Window))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Overrides holds command-line values. Only flags the user actually set are
// applied, so a file value is not clobbered by a flag default.
type Overrides struct {
	width, height  int
	seed           int64
	scale, tps     int
	stepIntervalMS int
	outputDir      string
	logStats       bool
}

// Bind registers the override flags on fs.
func (o *Overrides) Bind(fs *flag.FlagSet) {
	fs.IntVar(&o.width, "width", 0, "grid width in cells")
	fs.IntVar(&o.height, "height", 0, "grid height in cells")
	fs.Int64Var(&o.seed, "seed", 0, "seed for randomize (0 = time-based)")
	fs.IntVar(&o.scale, "scale", 0, "pixel scale multiplier")
	fs.IntVar(&o.tps, "tps", 0, "ticks per second")
	fs.IntVar(&o.stepIntervalMS, "step-interval", 0, "milliseconds between generations (0 = every tick)")
	fs.StringVar(&o.outputDir, "output-dir", "", "directory for telemetry CSV and config snapshot")
	fs.BoolVar(&o.logStats, "log-stats", false, "log telemetry windows via slog")
}

// Apply copies explicitly set flags from fs into cfg and revalidates.
func (o *Overrides) Apply(cfg *Config, fs *flag.FlagSet) error {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Grid.Width = o.width
		case "height":
			cfg.Grid.Height = o.height
		case "seed":
			cfg.Grid.Seed = o.seed
		case "scale":
			cfg.Display.Scale = o.scale
		case "tps":
			cfg.Display.TPS = o.tps
		case "step-interval":
			cfg.Display.StepIntervalMS = o.stepIntervalMS
		case "output-dir":
			cfg.Telemetry.OutputDir = o.outputDir
		case "log-stats":
			cfg.Telemetry.LogStats = o.logStats
		}
	})
	return cfg.Validate()
}
