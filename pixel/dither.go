package pixel

import (
	"image"
	"image/color"

	"github.com/makeworld-the-better-one/dither/v2"
	"golang.org/x/image/draw"
)

// Quantize maps src onto the panel Palette using serpentine Floyd-Steinberg error diffusion.
//
// The returned image has the bounds of src and its color indices are valid Color values.
func Quantize(src image.Image) *image.Paletted {
	palette := make([]color.Color, len(Palette))
	copy(palette, Palette)

	d := dither.NewDitherer(palette)
	d.Matrix = dither.FloydSteinberg
	d.Serpentine = true

	if dst := d.DitherPaletted(src); dst != nil {
		return dst
	}

	// Fall back to nearest color matching.
	b := src.Bounds()
	dst := image.NewPaletted(b, Palette)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetColorIndex(x, y, uint8(model(src.At(x, y)).(Color)))
		}
	}
	return dst
}

// Scale resamples src to size using Catmull-Rom interpolation.
func Scale(src image.Image, size image.Point) image.Image {
	if size.Eq(src.Bounds().Size()) {
		return src
	}
	r := image.Rectangle{Max: size}
	dst := image.NewRGBA(r)
	draw.CatmullRom.Scale(dst, r, src, src.Bounds(), draw.Over, nil)
	return dst
}

// Fit scales src to fit inside size, preserving its aspect ratio.
func Fit(src image.Image, size image.Point) image.Image {
	b := src.Bounds().Size()
	if b.X == 0 || b.Y == 0 || size.X == 0 || size.Y == 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	w, h := size.X, b.Y*size.X/b.X
	if h > size.Y {
		w, h = b.X*size.Y/b.Y, size.Y
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Scale(src, image.Pt(w, h))
}
