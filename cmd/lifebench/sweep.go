package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"golang.org/x/sync/errgroup"

	"torus-life/pkg/life"
)

type gridSize struct{ w, h int }

type scenario struct {
	size gridSize
	seed int64
}

// result is one row of the sweep report.
type result struct {
	Width           int     `csv:"width"`
	Height          int     `csv:"height"`
	Seed            int64   `csv:"seed"`
	Generations     int     `csv:"generations"`
	TotalMS         float64 `csv:"total_ms"`
	GensPerSec      float64 `csv:"gens_per_sec"`
	FinalPopulation int     `csv:"final_population"`
}

// parseSizes reads a comma-separated list such as "64x64,200x112".
func parseSizes(s string) ([]gridSize, error) {
	var sizes []gridSize
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ws, hs, ok := strings.Cut(part, "x")
		if !ok {
			return nil, fmt.Errorf("size %q: want WxH", part)
		}
		w, err := strconv.Atoi(ws)
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", part, err)
		}
		h, err := strconv.Atoi(hs)
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", part, err)
		}
		if w <= 0 || h <= 0 {
			return nil, fmt.Errorf("size %q: dimensions must be positive", part)
		}
		sizes = append(sizes, gridSize{w, h})
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return sizes, nil
}

func buildScenarios(sizes []gridSize, seeds int) []scenario {
	var out []scenario
	for _, sz := range sizes {
		for s := 1; s <= seeds; s++ {
			out = append(out, scenario{size: sz, seed: int64(s)})
		}
	}
	return out
}

// runScenario times generations advances of a freshly seeded grid.
func runScenario(ctx context.Context, sc scenario, generations int) (result, error) {
	grid, err := life.New(sc.size.w, sc.size.h)
	if err != nil {
		return result{}, err
	}
	grid.Randomize(sc.seed)

	start := time.Now()
	for i := 0; i < generations; i++ {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return result{}, err
			}
		}
		grid.Advance()
	}
	elapsed := time.Since(start)

	res := result{
		Width:           sc.size.w,
		Height:          sc.size.h,
		Seed:            sc.seed,
		Generations:     generations,
		TotalMS:         float64(elapsed) / float64(time.Millisecond),
		FinalPopulation: grid.Population(),
	}
	if elapsed > 0 {
		res.GensPerSec = float64(generations) / elapsed.Seconds()
	}
	return res, nil
}

// sweep runs every scenario on its own grid, at most workers at a time.
// Results keep scenario order.
func sweep(ctx context.Context, scenarios []scenario, generations, workers int) ([]result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sc := range scenarios {
		i, sc := i, sc
		g.Go(func() error {
			res, err := runScenario(ctx, sc, generations)
			if err != nil {
				return fmt.Errorf("%dx%d seed %d: %w", sc.size.w, sc.size.h, sc.seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeReport(w io.Writer, results []result) error {
	if err := gocsv.Marshal(results, w); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
