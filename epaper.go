// Package epaper implements an in-memory framebuffer for bi-color and tri-color e-paper displays.
//
// An [Image] keeps two bit-planes: one for black/white and one for red. Pixels are packed MSB-first
// in the layout expected by e-paper display controllers, so the planes returned by [Image.Planes]
// can be handed to a panel driver as-is.
package epaper

import (
	"errors"
	"fmt"
	"os"

	"github.com/BeatGlow/epaper/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("EPAPER_DEBUG") != ""
}

// Errors
var (
	ErrInvalidOrientation = errors.New("epaper: invalid orientation")
	ErrNilImage           = errors.New("epaper: nil image")
	ErrClosed             = errors.New("epaper: image is closed")
	ErrShortBitmap        = errors.New("epaper: bitmap is too short for its dimensions")
)

// Orientation defines the logical rotation of the coordinate space.
type Orientation uint8

// Supported orientations.
const (
	Normal    Orientation = iota
	Rotate90              // Rotate 90° clock wise
	Rotate180             // Rotate 180°
	Rotate270             // Rotate 270° clock wise

	orientationCount
)

// ParseOrientation returns the Orientation for v, or ErrInvalidOrientation.
func ParseOrientation(v uint8) (Orientation, error) {
	o := Orientation(v)
	if !o.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidOrientation, v)
	}
	return o, nil
}

// Valid reports if o is one of the supported orientations.
func (o Orientation) Valid() bool {
	return o < orientationCount
}

func (o Orientation) String() string {
	switch o {
	case Normal:
		return "0°"
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// Config is the image configuration.
type Config struct {
	// Width of the display in pixels.
	Width uint16

	// Height of the display in pixels.
	Height uint16

	// Orientation of the display.
	Orientation Orientation

	// Fill is the initial color of every pixel.
	Fill pixel.Color
}

// DefaultConfig describes a 2.13" 122x250 tri-color panel with white paper.
var DefaultConfig = Config{
	Width:       122,
	Height:      250,
	Orientation: Normal,
	Fill:        pixel.White,
}
