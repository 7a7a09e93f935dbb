//go:build ebiten

// Package app adapts a life.Grid to the ebiten.Game interface.
package app

import (
	"log/slog"

	"torus-life/internal/config"
	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/internal/ui"
	seeds "torus-life/pkg/core"
	"torus-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game owns the grid for the lifetime of the window. Update is the only
// writer; Draw reads between updates.
type Game struct {
	grid    *life.Grid
	painter *render.Painter
	hud     *ui.HUD
	pacer   *core.FixedStep
	cells   []life.CellState

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
	logger   *slog.Logger
}

// New constructs a Game around grid, which the caller has already seeded
// with seed.
func New(grid *life.Grid, cfg *config.Config, seed int64, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	d := cfg.Display
	painter := render.NewPainter(grid.Width(), grid.Height(), d.Scale, d.AliveColor.RGBA(), d.DeadColor.RGBA())
	return &Game{
		grid:     grid,
		painter:  painter,
		hud:      ui.NewHUD(cfg.Display.HUDWidth),
		pacer:    core.NewFixedStepInterval(cfg.Display.StepInterval()),
		scale:    cfg.Display.Scale,
		hudWidth: cfg.Display.HUDWidth,
		seed:     seed,
		logger:   logger,
	}
}

// Reset reseeds the grid. The next generation is computed from the new
// content.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.grid.Randomize(seed)
	g.pacer.Restart()
	g.tickOnce = false
	g.logger.Info("grid randomized", "seed", seed)
}

// Update handles input and advances the grid when a generation is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	clicked := g.hud.Update(g.gridPixelWidth())
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(seeds.TimeSeed())
	}

	switch {
	case g.tickOnce:
		g.grid.Advance()
		g.tickOnce = false
	case !g.paused && g.pacer.ShouldStep():
		g.grid.Advance()
	}
	return nil
}

// Draw renders the current generation and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.cells = g.grid.Snapshot(g.cells)
	g.painter.Draw(screen, g.cells)
	g.hud.Draw(screen, g.gridPixelWidth(), g.grid.Height()*g.scale, ui.Status{
		Generation: g.grid.Generation(),
		Population: g.grid.Population(),
		Width:      g.grid.Width(),
		Height:     g.grid.Height(),
		Seed:       g.seed,
		Paused:     g.paused,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridPixelWidth() + g.hudWidth, g.grid.Height() * g.scale
}

func (g *Game) gridPixelWidth() int { return g.grid.Width() * g.scale }
