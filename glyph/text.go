package glyph

import (
	"fmt"
	"image"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/BeatGlow/epaper"
	"github.com/BeatGlow/epaper/pixel"
)

// Text draws TrueType text onto an image. Anti-aliased edges are resolved to the nearest panel
// color.
type Text struct {
	ctx  *freetype.Context
	font *truetype.Font
	size float64
}

// NewText prepares a text renderer for font f at size points onto dst.
func NewText(dst *epaper.Image, f *truetype.Font, size float64) *Text {
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetHinting(font.HintingFull)
	ctx.SetDst(dst)
	ctx.SetClip(dst.Bounds())
	ctx.SetSrc(image.NewUniform(pixel.Black))
	return &Text{
		ctx:  ctx,
		font: f,
		size: size,
	}
}

// NewGoText prepares a text renderer using the Go Regular font.
func NewGoText(dst *epaper.Image, size float64) (*Text, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("glyph: %w", err)
	}
	return NewText(dst, f, size), nil
}

// LineHeight is the distance between two base lines in pixels.
func (t *Text) LineHeight() int {
	return t.ctx.PointToFixed(t.size * 1.2).Ceil()
}

// Draw renders s in color c with its base line starting at pt, and returns the position of the
// next character.
func (t *Text) Draw(pt image.Point, s string, c pixel.Color) (image.Point, error) {
	if !c.Valid() {
		return pt, fmt.Errorf("glyph: %w: %d", pixel.ErrInvalidColor, uint8(c))
	}
	t.ctx.SetSrc(image.NewUniform(c))
	next, err := t.ctx.DrawString(s, freetype.Pt(pt.X, pt.Y))
	if err != nil {
		return pt, fmt.Errorf("glyph: %w", err)
	}
	return image.Pt(next.X.Round(), next.Y.Round()), nil
}
