package driver

import (
	"image/color"

	"github.com/fogleman/gg"

	"github.com/openzzt/zztcore/internal/board"
	"github.com/openzzt/zztcore/internal/elements"
	"github.com/openzzt/zztcore/internal/tile"
)

// cellSize is the pixel size of one rendered board cell.
const cellSize = 12

// dosPalette is the 16-color BIOS text-mode palette PNGVideo maps color
// bytes onto, so a dark-board render looks like the original's CGA
// output rather than arbitrary colors.
var dosPalette = [16]color.RGBA{
	{0, 0, 0, 255}, {0, 0, 170, 255}, {0, 170, 0, 255}, {0, 170, 170, 255},
	{170, 0, 0, 255}, {170, 0, 170, 255}, {170, 85, 0, 255}, {170, 170, 170, 255},
	{85, 85, 85, 255}, {85, 85, 255, 255}, {85, 255, 85, 255}, {85, 255, 255, 255},
	{255, 85, 85, 255}, {255, 85, 255, 255}, {255, 255, 85, 255}, {255, 255, 255, 255},
}

// PNGVideo renders a board's tiles to a PNG using gg as a simple
// block-color grid, standing in for a text-mode video surface (spec §6
// "Video", domain-stack wiring for github.com/fogleman/gg).
type PNGVideo struct {
	LastFrame []byte
}

// DrawBoard renders b into LastFrame as PNG-encoded bytes.
func (v *PNGVideo) DrawBoard(b *board.Board) error {
	w, h := b.Map.Width(), b.Map.Height()
	dc := gg.NewContext(w*cellSize, h*cellSize)
	dc.SetColor(color.Black)
	dc.Clear()

	for y := 1; y <= h; y++ {
		for x := 1; x <= w; x++ {
			t := b.Map.Get(x, y)
			if t.Element == tile.Empty {
				continue
			}
			def := elements.Catalog[t.Element]
			bg := dosPalette[t.Background()]
			fg := dosPalette[t.Foreground()]

			px, py := float64((x-1)*cellSize), float64((y-1)*cellSize)
			dc.SetColor(bg)
			dc.DrawRectangle(px, py, cellSize, cellSize)
			dc.Fill()

			dc.SetColor(fg)
			dc.DrawRectangle(px+2, py+2, cellSize-4, cellSize-4)
			dc.Fill()
			_ = def.Char
		}
	}

	buf, err := encodePNG(dc)
	if err != nil {
		return err
	}
	v.LastFrame = buf
	return nil
}
