//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the grid and owns the
// Randomize button.
type HUD struct {
	width        int
	panel        *ebiten.Image
	lastHeight   int
	pixel        *ebiten.Image
	button       image.Rectangle
	hovered      bool
	panelOffsetX int
}

// NewHUD constructs a HUD of the given panel width. A width of zero
// disables it.
func NewHUD(width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{width: width, button: RandomizeButtonRect(width)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update tracks the cursor and reports whether Randomize was clicked.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	mx, my := ebiten.CursorPosition()
	h.hovered = pointInRect(mx-panelOffsetX, my, h.button)
	return h.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int, status Status) {
	if h == nil || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	text.Draw(h.panel, "Game of Life", face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 230, G: 230, B: 242, A: 255})
	h.drawButton("Randomize")

	for i, line := range status.Lines() {
		text.Draw(h.panel, line, face, panelPadding, statusTop+i*lineHeight, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(label string) {
	bg := color.RGBA{R: 64, G: 84, B: 140, A: 255}
	if h.hovered {
		bg = color.RGBA{R: 89, G: 115, B: 191, A: 255}
	}
	rect := h.button
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, color.RGBA{R: 242, G: 242, B: 250, A: 255})
}
