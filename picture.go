package epaper

import (
	"fmt"
	"log"

	"github.com/BeatGlow/epaper/pixel"
)

// ShowPicture draws the set pixels of a 1 bit per pixel bitmap with its top left corner at (x, y).
//
// The bitmap is row-major and MSB-first, with every row padded to a whole byte. Clear bits leave
// the image untouched. Once a row crosses the right or bottom edge of the image, the rest of that
// row is skipped.
func (img *Image) ShowPicture(x, y uint16, bitmap []byte, w, h uint16, c pixel.Color) error {
	stride := pixel.Stride(int(w))
	if need := stride * int(h); len(bitmap) < need {
		return fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrShortBitmap, w, h, need, len(bitmap))
	}

	var clipped int
	for row := 0; row < int(h); row, y = row+1, y+1 {
		dx := x
	pixels:
		for _, b := range bitmap[row*stride : (row+1)*stride] {
			for bit := 7; bit >= 0; bit-- {
				if dx >= img.width || y >= img.height {
					clipped++
					break pixels
				}
				if b&(1<<uint(bit)) != 0 {
					img.DrawPoint(dx, y, c)
				}
				dx++
			}
		}
	}

	if debug && clipped > 0 {
		log.Printf("epaper: %dx%d picture at (%d,%d) clipped in %d rows", w, h, x, y-h, clipped)
	}
	return nil
}

// ShowBitmap draws the set pixels of a packed bitmap with its top left corner at (x, y), see
// ShowPicture.
func (img *Image) ShowBitmap(x, y uint16, b *pixel.Bitmap, c pixel.Color) error {
	if b == nil {
		return nil
	}
	size := b.Bounds().Size()
	return img.ShowPicture(x, y, b.Pix, uint16(size.X), uint16(size.Y), c)
}

// ShowChar draws one character of f with its top left corner at (x, y).
func (img *Image) ShowChar(x, y uint16, ch byte, f Font, c pixel.Color) error {
	if err := img.ShowPicture(x, y, f.Glyph(ch), f.Width, f.Height, c); err != nil {
		return fmt.Errorf("epaper: character %q: %w", ch, err)
	}
	return nil
}

// ShowString draws s from left to right, one byte per character, advancing x by f.Advance.
// There is no wrapping.
func (img *Image) ShowString(x, y uint16, s string, f Font, c pixel.Color) error {
	for i := 0; i < len(s); i++ {
		if err := img.ShowChar(x, y, s[i], f, c); err != nil {
			return err
		}
		x += f.Advance
	}
	return nil
}
