//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"torus-life/pkg/life"
)

// Painter uploads a cell snapshot into a texture the size of the grid, one
// texel per cell, and draws it magnified by an integer scale.
type Painter struct {
	cells int
	tex   *ebiten.Image
	pix   []byte
	op    ebiten.DrawImageOptions

	alive color.Color
	dead  color.Color
}

// NewPainter allocates the texture for a w*h grid.
func NewPainter(w, h, scale int, alive, dead color.Color) *Painter {
	if scale < 1 {
		scale = 1
	}
	p := &Painter{
		cells: w * h,
		tex:   ebiten.NewImage(w, h),
		pix:   make([]byte, 4*w*h),
		alive: alive,
		dead:  dead,
	}
	p.op.GeoM.Scale(float64(scale), float64(scale))
	p.op.Filter = ebiten.FilterNearest
	return p
}

// Draw paints cells at the top-left of dst. Snapshots of the wrong length
// are ignored.
func (p *Painter) Draw(dst *ebiten.Image, cells []life.CellState) {
	if len(cells) != p.cells {
		return
	}
	FillCellsRGBA(p.pix, cells, p.alive, p.dead)
	p.tex.WritePixels(p.pix)
	dst.DrawImage(p.tex, &p.op)
}
