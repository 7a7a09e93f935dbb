//go:build ebiten

package main

import (
	"errors"
	"log/slog"

	"torus-life/internal/app"
	"torus-life/internal/config"
	"torus-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func runGUI(cfg *config.Config, seed int64, logger *slog.Logger) error {
	grid, err := life.New(cfg.Grid.Width, cfg.Grid.Height)
	if err != nil {
		return err
	}
	grid.Randomize(seed)

	game := app.New(grid, cfg, seed, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(cfg.Display.TPS)
	ebiten.SetWindowSize(w, h)

	logger.Info("starting gui", "width", grid.Width(), "height", grid.Height(), "seed", seed)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
