package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"torus-life/internal/config"
	"torus-life/internal/runner"
	"torus-life/pkg/core"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	maxGenerations := flag.Uint64("max-generations", 0, "Stop after N generations in headless mode (0 = until interrupted)")
	var overrides config.Overrides
	overrides.Bind(flag.CommandLine)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := overrides.Apply(cfg, flag.CommandLine); err != nil {
		slog.Error("invalid flags", "error", err)
		os.Exit(1)
	}

	if *headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		_, err := runner.Run(ctx, cfg, runner.Options{MaxGenerations: *maxGenerations, Logger: logger})
		stop()
		if err != nil {
			slog.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	seed := cfg.Grid.Seed
	if seed == 0 {
		seed = core.TimeSeed()
	}
	if err := runGUI(cfg, seed, logger); err != nil {
		slog.Error("gui failed", "error", err)
		os.Exit(2)
	}
}
