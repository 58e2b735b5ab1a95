package glyph

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/BeatGlow/epaper"
	"github.com/BeatGlow/epaper/pixel"
)

// displayer adapts an image to the tinygo display interface used by tinyfont.
type displayer struct {
	img *epaper.Image
}

func (d displayer) Size() (x, y int16) {
	w, h := d.img.Resolution()
	return int16(w), int16(h)
}

func (d displayer) SetPixel(x, y int16, c color.RGBA) {
	d.img.Set(int(x), int(y), c)
}

// Display is a no-op, the image is transferred by the panel driver.
func (d displayer) Display() error {
	return nil
}

// WriteLine draws s with a tinyfont font. The base line of the text starts at (x, y).
func WriteLine(dst *epaper.Image, f tinyfont.Fonter, x, y int16, s string, c pixel.Color) {
	r, g, b, _ := c.RGBA()
	tinyfont.WriteLine(displayer{img: dst}, f, x, y, s, color.RGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: 0xff,
	})
}

// LineWidth is the width of s in pixels.
func LineWidth(f tinyfont.Fonter, s string) int {
	_, outbox := tinyfont.LineWidth(f, s)
	return int(outbox)
}

// Interface checks
var (
	_ drivers.Displayer = displayer{}
)
