// Package draw rasterizes lines and rectangles onto a tri-color canvas.
//
// Line, Rectangle and Box plot through Canvas.DrawPoint and do no clipping of their own: the caller
// is responsible for keeping every coordinate inside the canvas. Circle and RoundedRectangle clip
// against Canvas.Bounds.
package draw

import (
	"image"

	"github.com/BeatGlow/epaper/pixel"
)

// Canvas is a surface addressed by unsigned 16-bit coordinates.
type Canvas interface {
	// Bounds is the addressable area.
	Bounds() image.Rectangle

	// DrawPoint sets the pixel at (x, y) without range checks.
	DrawPoint(x, y uint16, c pixel.Color)
}

// plot sets a pixel if it falls inside the canvas.
func plot(dst Canvas, x, y int, c pixel.Color) {
	if (image.Point{X: x, Y: y}).In(dst.Bounds()) {
		dst.DrawPoint(uint16(x), uint16(y), c)
	}
}
