// Package ui draws the status panel beside the grid.
package ui

import (
	"fmt"
	"image"
)

// Status is the per-frame information shown on the panel.
type Status struct {
	Generation    uint64
	Population    int
	Width, Height int
	Seed          int64
	Paused        bool
}

// Lines formats s as the panel's text rows.
func (s Status) Lines() []string {
	state := "Running"
	if s.Paused {
		state = "Paused"
	}
	return []string{
		fmt.Sprintf("Generation %d", s.Generation),
		fmt.Sprintf("Population %d", s.Population),
		fmt.Sprintf("Grid %dx%d", s.Width, s.Height),
		fmt.Sprintf("Seed %d", s.Seed),
		state,
	}
}

// RandomizeButtonRect places the Randomize button along the panel's top
// edge, in panel-local coordinates.
func RandomizeButtonRect(panelWidth int) image.Rectangle {
	w := panelWidth - 2*panelPadding
	if w < minButtonWidth {
		w = minButtonWidth
	}
	top := panelPadding + headerBaseline + buttonGap
	return image.Rect(panelPadding, top, panelPadding+w, top+buttonHeight)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 20
	buttonHeight   = 28
	minButtonWidth = 80
	buttonGap      = 10
	headerBaseline = 18
	statusTop      = panelPadding + headerBaseline + buttonGap + buttonHeight + 24
)
