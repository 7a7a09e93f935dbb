package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"torus-life/pkg/life"
)

func TestParseSizes(t *testing.T) {
	sizes, err := parseSizes("64x64, 200x112,")
	if err != nil {
		t.Fatalf("parseSizes: %v", err)
	}
	if len(sizes) != 2 || sizes[1] != (gridSize{200, 112}) {
		t.Fatalf("sizes = %v", sizes)
	}
	for _, bad := range []string{"", "64", "0x5", "ax3", "3xb"} {
		if _, err := parseSizes(bad); err == nil {
			t.Errorf("parseSizes(%q) succeeded", bad)
		}
	}
}

func TestSweepMatchesEngine(t *testing.T) {
	scenarios := buildScenarios([]gridSize{{16, 16}, {20, 10}}, 2)
	if len(scenarios) != 4 {
		t.Fatalf("got %d scenarios, want 4", len(scenarios))
	}
	results, err := sweep(context.Background(), scenarios, 25, 3)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	for i, sc := range scenarios {
		g := life.MustNew(sc.size.w, sc.size.h)
		g.Randomize(sc.seed)
		for n := 0; n < 25; n++ {
			g.Advance()
		}
		r := results[i]
		if r.Width != sc.size.w || r.Seed != sc.seed || r.Generations != 25 {
			t.Fatalf("result %d out of order: %+v", i, r)
		}
		if r.FinalPopulation != g.Population() {
			t.Fatalf("result %d population = %d, want %d", i, r.FinalPopulation, g.Population())
		}
	}

	var buf bytes.Buffer
	if err := writeReport(&buf, results); err != nil {
		t.Fatalf("writeReport: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 || lines[0] != "width,height,seed,generations,total_ms,gens_per_sec,final_population" {
		t.Fatalf("unexpected report:\n%s", buf.String())
	}
}

func TestSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := sweep(ctx, buildScenarios([]gridSize{{8, 8}}, 1), 10, 1); err == nil {
		t.Fatal("expected error from cancelled sweep")
	}
}
