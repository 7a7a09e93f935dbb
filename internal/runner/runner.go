// Package runner drives a grid without a display: seed once, advance until
// a generation limit or cancellation, and sample telemetry along the way.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"torus-life/internal/config"
	"torus-life/internal/telemetry"
	"torus-life/pkg/core"
	"torus-life/pkg/life"
)

// Options tune a headless run beyond what the config file covers.
type Options struct {
	// MaxGenerations stops the run after this many advances. Zero runs until
	// the context is cancelled.
	MaxGenerations uint64
	Logger         *slog.Logger
}

// Result summarises a finished run.
type Result struct {
	Seed        int64
	Generations uint64
	Population  int
	Elapsed     time.Duration
	Last        telemetry.WindowStats
}

// Run executes a headless simulation. Cancellation is checked between
// generations, never inside one, and is not reported as an error.
func Run(ctx context.Context, cfg *config.Config, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	seed := cfg.Grid.Seed
	if seed == 0 {
		seed = core.TimeSeed()
	}
	res := Result{Seed: seed}

	grid, err := life.New(cfg.Grid.Width, cfg.Grid.Height)
	if err != nil {
		return res, fmt.Errorf("creating grid: %w", err)
	}

	out, err := telemetry.NewOutputManager(cfg.Telemetry.OutputDir)
	if err != nil {
		return res, err
	}
	defer out.Close()

	// Record the resolved seed so the run can be replayed from the snapshot.
	snapshot := *cfg
	snapshot.Grid.Seed = seed
	if err := out.WriteConfig(&snapshot); err != nil {
		return res, err
	}

	grid.Randomize(seed)
	collector := telemetry.NewCollector(cfg.Telemetry.Window)
	window := uint64(collector.Window())

	logger.Info("starting headless run",
		"width", grid.Width(),
		"height", grid.Height(),
		"seed", seed,
		"max_generations", opts.MaxGenerations,
		"output_dir", out.Dir(),
	)

	start := time.Now()
	for opts.MaxGenerations == 0 || grid.Generation() < opts.MaxGenerations {
		if err := ctx.Err(); err != nil {
			break
		}
		t0 := time.Now()
		grid.Advance()
		collector.Record(time.Since(t0))

		if gen := grid.Generation(); gen%window == 0 {
			res.Last = collector.Stats(gen, grid.Population())
			if err := out.WriteStats(res.Last); err != nil {
				return res, err
			}
			if cfg.Telemetry.LogStats {
				logger.Info("window", "stats", res.Last)
			}
		}
	}

	res.Elapsed = time.Since(start)
	res.Generations = grid.Generation()
	res.Population = grid.Population()
	if err := out.Close(); err != nil {
		return res, fmt.Errorf("closing telemetry output: %w", err)
	}

	logger.Info("headless run finished",
		"generations", res.Generations,
		"population", res.Population,
		"elapsed", res.Elapsed.Round(time.Millisecond),
		"cancelled", errors.Is(ctx.Err(), context.Canceled),
	)
	return res, nil
}
