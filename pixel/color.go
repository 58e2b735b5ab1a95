package pixel

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidColor is returned for values outside of the panel palette.
var ErrInvalidColor = errors.New("pixel: invalid color")

// Color is one of the three colors a tri-color e-paper panel can show.
//
// The value doubles as the two-plane encoding: bit 0 selects the black/white plane and bit 1
// the red plane.
type Color uint8

// Panel colors.
const (
	Black Color = iota // 0b00
	White              // 0b01
	Red                // 0b10

	colorCount
)

// Models for the panel color type.
var (
	Model color.Model = color.ModelFunc(model)

	// Palette is indexed by Color.
	Palette = color.Palette{Black, White, Red}
)

// NewColor returns the Color for v, or ErrInvalidColor if v is not a panel color.
func NewColor(v uint8) (Color, error) {
	c := Color(v)
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidColor, v)
	}
	return c, nil
}

// Valid reports if c is one of Black, White or Red.
func (c Color) Valid() bool {
	return c < colorCount
}

// BW is the bit stored in the black/white plane.
func (c Color) BW() bool {
	return c&0x1 != 0
}

// Red is the bit stored in the red plane.
func (c Color) Red() bool {
	return (c>>1)&0x1 != 0
}

// Fill returns the plane bytes used to fill both planes with c.
func (c Color) Fill() (bw, red byte) {
	return byte(c&0x1) * 0xff, byte((c>>1)&0x1) * 0xff
}

func (c Color) RGBA() (r, g, b, a uint32) {
	switch c {
	case White:
		return 0xffff, 0xffff, 0xffff, 0xffff
	case Red:
		return 0xffff, 0, 0, 0xffff
	default:
		return 0, 0, 0, 0xffff
	}
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	case Red:
		return "red"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}

func model(c color.Color) color.Color {
	if v, ok := c.(Color); ok && v.Valid() {
		return c
	}
	if _, _, _, a := c.RGBA(); a == 0 {
		// Fully transparent pixels leave the paper white.
		return White
	}
	return Color(Palette.Index(c))
}
