package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Grid.Width != 200 || cfg.Grid.Height != 112 {
		t.Fatalf("grid = %dx%d, want 200x112", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Display.StepInterval() != 50*time.Millisecond {
		t.Fatalf("step interval = %v, want 50ms", cfg.Display.StepInterval())
	}
	if got := cfg.Display.AliveColor.RGBA(); got.R != 242 || got.A != 0xff {
		t.Fatalf("alive color = %+v", got)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "grid:\n  width: 64\ntelemetry:\n  output_dir: out\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Width != 64 {
		t.Errorf("width = %d, want 64", cfg.Grid.Width)
	}
	if cfg.Grid.Height != 112 {
		t.Errorf("height = %d, want default 112", cfg.Grid.Height)
	}
	if cfg.Telemetry.OutputDir != "out" {
		t.Errorf("output dir = %q, want out", cfg.Telemetry.OutputDir)
	}
	if cfg.Telemetry.Window != 60 {
		t.Errorf("window = %d, want default 60", cfg.Telemetry.Window)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  width: 0\ndisplay:\n  tps: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"grid size", "display.tps"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOverridesApplyOnlySetFlags(t *testing.T) {
	cfg := Default()
	cfg.Grid.Height = 30

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var o Overrides
	o.Bind(fs)
	if err := fs.Parse([]string{"-width", "40", "-seed", "9", "-log-stats"}); err != nil {
		t.Fatal(err)
	}
	if err := o.Apply(cfg, fs); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if cfg.Grid.Width != 40 || cfg.Grid.Seed != 9 || !cfg.Telemetry.LogStats {
		t.Fatalf("overrides not applied: %+v", cfg.Grid)
	}
	if cfg.Grid.Height != 30 {
		t.Fatalf("unset flag clobbered height: %d", cfg.Grid.Height)
	}
}

func TestOverridesValidate(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var o Overrides
	o.Bind(fs)
	if err := fs.Parse([]string{"-height", "0"}); err != nil {
		t.Fatal(err)
	}
	if err := o.Apply(cfg, fs); err == nil {
		t.Fatal("expected error for zero height")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Grid.Seed = 77
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != *cfg {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", *loaded, *cfg)
	}
}
