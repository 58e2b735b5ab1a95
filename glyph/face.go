// Package glyph builds bitmap fonts for the e-paper blitter and draws text with scalable fonts.
//
// Any [font.Face] can be rasterized into an [epaper.Font] table with [FromFace]; [Basic],
// [GoMono] and [TrueType] cover the common sources. For anti-aliased or proportional text,
// [Text] renders TrueType fonts and [WriteLine] renders tinyfont fonts straight onto an image.
package glyph

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"

	"github.com/BeatGlow/epaper"
	"github.com/BeatGlow/epaper/pixel"
)

// First and Last are the characters stored in a font table.
const (
	First = ' '
	Last  = '~'
)

// Errors
var (
	ErrEmptyFace = errors.New("glyph: font face has no printable glyphs")
	ErrTooLarge  = errors.New("glyph: glyph cell is too large")
)

var debug = os.Getenv("EPAPER_DEBUG") != ""

// FromFace rasterizes the printable ASCII glyphs of face into a font table.
//
// The glyph cell is as wide as the widest glyph and as high as the face ascent plus descent. Glyph
// pixels with at least half coverage are set.
func FromFace(face font.Face) (*epaper.Font, error) {
	var (
		metrics = face.Metrics()
		ascent  = metrics.Ascent.Ceil()
		height  = ascent + metrics.Descent.Ceil()
		dot     = fixed.P(0, ascent)
		width   int
		advance int
	)
	for r := rune(First); r <= Last; r++ {
		dr, _, _, adv, ok := face.Glyph(dot, r)
		if !ok {
			continue
		}
		width = max(width, dr.Max.X)
		advance = max(advance, adv.Ceil())
	}
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyFace
	}
	if width > 0xffff || height > 0xffff || advance > 0xffff {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}

	var (
		stride = pixel.Stride(width)
		size   = stride * height
		cell   = image.Rect(0, 0, width, height)
		table  = make([]byte, size*(Last-First+1))
	)
	for r := rune(First); r <= Last; r++ {
		dr, mask, maskp, _, ok := face.Glyph(dot, r)
		if !ok || mask == nil {
			continue
		}
		offset := int(r-First) * size
		glyph := &pixel.Bitmap{
			Rect:   cell,
			Pix:    table[offset : offset+size],
			Stride: stride,
		}
		clip := dr.Intersect(cell)
		for y := clip.Min.Y; y < clip.Max.Y; y++ {
			for x := clip.Min.X; x < clip.Max.X; x++ {
				_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
				glyph.SetBit(x, y, a >= 0x8000)
			}
		}
	}

	if debug {
		log.Printf("glyph: built %dx%d font table, advance %d, %d bytes", width, height, advance, len(table))
	}
	return &epaper.Font{
		Table:   table,
		Width:   uint16(width),
		Height:  uint16(height),
		Advance: uint16(advance),
	}, nil
}

// Basic returns the 7x13 fixed font from golang.org/x/image/font/basicfont.
func Basic() *epaper.Font {
	f, err := FromFace(basicfont.Face7x13)
	if err != nil {
		panic(err)
	}
	return f
}

// TrueType rasterizes a TrueType or OpenType font at size points (72 DPI, one point per pixel).
func TrueType(ttf []byte, size float64) (*epaper.Font, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("glyph: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	return FromFace(face)
}

// GoMono rasterizes the Go Mono font at size points.
func GoMono(size float64) (*epaper.Font, error) {
	return TrueType(gomono.TTF, size)
}
