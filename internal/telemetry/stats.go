// Package telemetry samples advance timings and population over rolling
// windows and writes them out as CSV.
package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// WindowStats summarises the most recent window of generations.
type WindowStats struct {
	Generation uint64 `csv:"generation"`
	Population int    `csv:"population"`
	Samples    int    `csv:"samples"`

	AvgAdvanceUS float64 `csv:"avg_advance_us"`
	StdAdvanceUS float64 `csv:"std_advance_us"`
	P50AdvanceUS float64 `csv:"p50_advance_us"`
	P90AdvanceUS float64 `csv:"p90_advance_us"`

	GenerationsPerSec float64 `csv:"gens_per_sec"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("generation", s.Generation),
		slog.Int("population", s.Population),
		slog.Int("samples", s.Samples),
		slog.Float64("avg_advance_us", s.AvgAdvanceUS),
		slog.Float64("std_advance_us", s.StdAdvanceUS),
		slog.Float64("p50_advance_us", s.P50AdvanceUS),
		slog.Float64("p90_advance_us", s.P90AdvanceUS),
		slog.Float64("gens_per_sec", s.GenerationsPerSec),
	)
}

// Collector keeps the last Window advance durations in a ring buffer.
type Collector struct {
	window  int
	samples []float64 // microseconds
	sorted  []float64
	next    int
	count   int
}

// NewCollector creates a collector averaging over window generations.
func NewCollector(window int) *Collector {
	if window < 1 {
		window = 60
	}
	return &Collector{
		window:  window,
		samples: make([]float64, window),
		sorted:  make([]float64, 0, window),
	}
}

// Window returns the configured window length.
func (c *Collector) Window() int { return c.window }

// Record stores one advance duration.
func (c *Collector) Record(d time.Duration) {
	c.samples[c.next] = float64(d) / float64(time.Microsecond)
	c.next = (c.next + 1) % c.window
	if c.count < c.window {
		c.count++
	}
}

// Reset drops all samples, e.g. after the grid is reseeded.
func (c *Collector) Reset() {
	c.next = 0
	c.count = 0
}

// Stats computes aggregates over the samples currently held and tags them
// with the caller's generation and population.
func (c *Collector) Stats(generation uint64, population int) WindowStats {
	s := WindowStats{
		Generation: generation,
		Population: population,
		Samples:    c.count,
	}
	if c.count == 0 {
		return s
	}
	c.sorted = append(c.sorted[:0], c.samples[:c.count]...)
	sort.Float64s(c.sorted)

	s.AvgAdvanceUS, s.StdAdvanceUS = stat.MeanStdDev(c.sorted, nil)
	if c.count == 1 {
		s.StdAdvanceUS = 0
	}
	s.P50AdvanceUS = stat.Quantile(0.5, stat.Empirical, c.sorted, nil)
	s.P90AdvanceUS = stat.Quantile(0.9, stat.Empirical, c.sorted, nil)
	if s.AvgAdvanceUS > 0 {
		s.GenerationsPerSec = 1e6 / s.AvgAdvanceUS
	}
	return s
}
