// Command lifebench times Advance across grid sizes and seeds and writes a
// CSV report.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sort"
)

func main() {
	sizesFlag := flag.String("sizes", "64x64,200x112,512x512", "comma-separated grid sizes (WxH)")
	seeds := flag.Int("seeds", 3, "seeds per size")
	generations := flag.Int("generations", 500, "generations to time per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "scenarios run in parallel")
	out := flag.String("out", "", "CSV report path (empty = stdout)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		slog.Error("invalid -sizes", "error", err)
		os.Exit(2)
	}
	scenarios := buildScenarios(sizes, *seeds)
	slog.Info("starting sweep", "scenarios", len(scenarios), "workers", *workers, "generations", *generations)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	results, err := sweep(ctx, scenarios, *generations, *workers)
	stop()
	if err != nil {
		slog.Error("sweep failed", "error", err)
		os.Exit(1)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			slog.Error("creating report", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	if err := writeReport(w, results); err != nil {
		slog.Error("writing report", "error", err)
		os.Exit(1)
	}

	ranked := append([]result(nil), results...)
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].GensPerSec > ranked[j].GensPerSec })
	for _, r := range ranked {
		slog.Info("scenario",
			"width", r.Width,
			"height", r.Height,
			"seed", r.Seed,
			"gens_per_sec", int(r.GensPerSec),
			"final_population", r.FinalPopulation,
		)
	}
}
