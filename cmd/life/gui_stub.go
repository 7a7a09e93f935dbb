//go:build !ebiten

package main

import (
	"errors"
	"log/slog"

	"torus-life/internal/config"
)

var errNoGUI = errors.New("the GUI build requires the ebiten build tag; re-run with `go run -tags ebiten ./cmd/life` or pass -headless")

func runGUI(*config.Config, int64, *slog.Logger) error {
	return errNoGUI
}
