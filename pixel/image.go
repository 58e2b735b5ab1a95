package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

// Bitmap is a 1-bit per pixel image in the picture format of the e-paper blitter: rows of
// Stride bytes, leftmost pixel in the most significant bit.
type Bitmap struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the packed pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

// NewBitmap returns a cleared w by h bitmap.
func NewBitmap(w, h int) *Bitmap {
	stride := Stride(w)
	return &Bitmap{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, stride*h),
		Stride: stride,
	}
}

func (p *Bitmap) Bounds() image.Rectangle {
	return p.Rect
}

// ColorModel maps set pixels to Black and clear pixels to White.
func (p *Bitmap) ColorModel() color.Model {
	return bitmapModel
}

func (p *Bitmap) pixOffset(x, y int) (int, byte) {
	x -= p.Rect.Min.X
	y -= p.Rect.Min.Y
	return y*p.Stride + x/8, 0x80 >> uint(x%8)
}

// Bit reports if the pixel at (x, y) is set.
func (p *Bitmap) Bit(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return false
	}
	index, mask := p.pixOffset(x, y)
	return p.Pix[index]&mask != 0
}

// SetBit sets or clears the pixel at (x, y).
func (p *Bitmap) SetBit(x, y int, on bool) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	index, mask := p.pixOffset(x, y)
	if on {
		p.Pix[index] |= mask
	} else {
		p.Pix[index] &^= mask
	}
}

func (p *Bitmap) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	if p.Bit(x, y) {
		return Black
	}
	return White
}

func (p *Bitmap) Set(x, y int, c color.Color) {
	p.SetBit(x, y, isDark(c))
}

// Clear the bitmap.
func (p *Bitmap) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// Fill the bitmap with a single color.
func (p *Bitmap) Fill(c color.Color) {
	var value byte
	if isDark(c) {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

var bitmapModel = color.ModelFunc(func(c color.Color) color.Color {
	if isDark(c) {
		return Black
	}
	return White
})

// Interface checks.
var (
	_ draw.Image = (*Bitmap)(nil)
)
