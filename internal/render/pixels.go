// Package render converts cell states into pixel buffers.
package render

import (
	"image/color"

	"torus-life/pkg/life"
)

// FillCellsRGBA writes one RGBA pixel per cell into buf, which must hold at
// least 4*len(cells) bytes.
func FillCellsRGBA(buf []byte, cells []life.CellState, alive, dead color.Color) {
	on := toRGBA(alive)
	off := toRGBA(dead)
	for i, c := range cells {
		px := off
		if c == life.Alive {
			px = on
		}
		base := i * 4
		buf[base+0] = px.R
		buf[base+1] = px.G
		buf[base+2] = px.B
		buf[base+3] = px.A
	}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
