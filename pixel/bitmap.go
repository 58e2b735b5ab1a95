package pixel

import (
	"image"
	"image/color"
)

// Stride is the number of bytes in one row of a packed bitmap that is w pixels wide.
func Stride(w int) int {
	return (w + 7) / 8
}

// Pack converts src into a Bitmap with the bounds of src. Dark pixels are set, light and
// transparent pixels are clear.
func Pack(src image.Image) *Bitmap {
	if p, ok := src.(*Bitmap); ok {
		return p
	}

	b := src.Bounds()
	dst := NewBitmap(b.Dx(), b.Dy())
	dst.Rect = b
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if isDark(src.At(x, y)) {
				dst.SetBit(x, y, true)
			}
		}
	}
	return dst
}

// Bit reports if the pixel at (x, y) is set in a packed bitmap that is w pixels wide.
func Bit(bitmap []byte, w, x, y int) bool {
	return bitmap[y*Stride(w)+x/8]&(0x80>>uint(x%8)) != 0
}

func isDark(c color.Color) bool {
	if _, _, _, a := c.RGBA(); a < 0x8000 {
		return false
	}
	return color.GrayModel.Convert(c).(color.Gray).Y < 0x80
}
