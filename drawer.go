package epaper

import (
	"image"
	"image/draw"

	"periph.io/x/conn/v3/display"

	"github.com/BeatGlow/epaper/pixel"
)

// Draw renders src onto the image, aligning r.Min with sp in src. Only pixels inside both r and
// the image bounds are updated. Colors are dithered to the panel palette.
func (img *Image) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if img == nil {
		return ErrNilImage
	}
	if img.closed {
		return ErrClosed
	}

	r = r.Intersect(img.Bounds())
	sr := image.Rectangle{Min: sp, Max: sp.Add(r.Size())}.Intersect(src.Bounds())
	if sr.Empty() {
		return nil
	}
	r = image.Rectangle{Min: r.Min.Add(sr.Min.Sub(sp)), Max: r.Min.Add(sr.Max.Sub(sp))}

	quantized := pixel.Quantize(src)
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			c := pixel.Color(quantized.ColorIndexAt(sr.Min.X+x, sr.Min.Y+y))
			img.setPixel(uint16(r.Min.X+x), uint16(r.Min.Y+y), c)
		}
	}
	return nil
}

// Halt does nothing: the image has no hardware attached.
func (img *Image) Halt() error {
	return nil
}

// Interface checks
var (
	_ display.Drawer = (*Image)(nil)
	_ draw.Image     = (*Image)(nil)
)
