package epaper

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/BeatGlow/epaper/draw"
	"github.com/BeatGlow/epaper/pixel"
)

// Image is a tri-color framebuffer backed by a black/white plane and a red plane.
//
// An Image is not safe for concurrent use.
type Image struct {
	bw     []byte
	red    []byte
	layout layout

	width       uint16
	height      uint16
	orientation Orientation
	rows        int
	columns     int
	closed      bool
}

// New allocates an image for the provided configuration. A nil config uses DefaultConfig.
func New(config *Config) (*Image, error) {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}
	return NewImage(config.Width, config.Height, config.Orientation, config.Fill)
}

// NewImage allocates an image of w by h pixels with every pixel set to fill.
func NewImage(w, h uint16, orientation Orientation, fill pixel.Color) (*Image, error) {
	if !orientation.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrientation, uint8(orientation))
	}
	if !fill.Valid() {
		return nil, fmt.Errorf("epaper: %w: %d", pixel.ErrInvalidColor, uint8(fill))
	}

	img := &Image{
		layout:      layouts[orientation],
		width:       w,
		height:      h,
		orientation: orientation,
	}
	img.rows, img.columns = img.layout.geometry(w, h)

	size := img.rows * img.columns
	img.bw = make([]byte, size)
	img.red = make([]byte, size)
	img.Fill(fill)

	if debug {
		log.Printf("epaper: allocated %s: %d rows of %d bytes per plane", img, img.rows, img.columns)
	}
	return img, nil
}

// Close releases both planes. The image must not be used afterwards.
func (img *Image) Close() error {
	if img == nil {
		return ErrNilImage
	}
	if img.closed {
		return ErrClosed
	}
	if debug {
		log.Printf("epaper: releasing %s", img)
	}
	img.red = nil
	img.bw = nil
	img.closed = true
	return nil
}

func (img *Image) String() string {
	return fmt.Sprintf("e-paper image %dx%d %s", img.width, img.height, img.orientation)
}

// Resolution is the logical size in pixels.
func (img *Image) Resolution() (w, h uint16) {
	return img.width, img.height
}

// Orientation of the image.
func (img *Image) Orientation() Orientation {
	return img.orientation
}

// Rows is the number of rows in the buffer frame.
func (img *Image) Rows() int {
	return img.rows
}

// Columns is the number of bytes per row in the buffer frame.
func (img *Image) Columns() int {
	return img.columns
}

// Size is the number of bytes in each plane.
func (img *Image) Size() int {
	return img.rows * img.columns
}

// Planes returns the black/white and red planes. The slices are owned by the image and must not
// be retained after Close.
func (img *Image) Planes() (bw, red []byte) {
	return img.bw, img.red
}

// Fill sets every pixel to c. It does nothing for a nil image or an invalid color.
func (img *Image) Fill(c pixel.Color) {
	if img == nil || !c.Valid() {
		return
	}
	bw, red := c.Fill()
	for i := range img.bw {
		img.bw[i] = bw
	}
	for i := range img.red {
		img.red[i] = red
	}
}

// setPixel writes the two plane bits of (x, y). Red leaves the black/white plane untouched.
func (img *Image) setPixel(x, y uint16, c pixel.Color) {
	index, bit := img.layout.address(img.rows, img.columns, x, y)
	mask := byte(1) << bit
	switch c {
	case pixel.Black:
		img.bw[index] &^= mask
		img.red[index] &^= mask
	case pixel.White:
		img.bw[index] |= mask
		img.red[index] &^= mask
	case pixel.Red:
		img.red[index] |= mask
	}
}

// DrawPoint sets the pixel at (x, y) to c. Invalid colors are ignored.
//
// The coordinate is not range checked; the caller must keep it inside Bounds.
func (img *Image) DrawPoint(x, y uint16, c pixel.Color) {
	if !c.Valid() {
		return
	}
	img.setPixel(x, y, c)
}

// DrawLine draws a line from (x1,y1) to (x2,y2). Coordinates are not range checked.
func (img *Image) DrawLine(x1, y1, x2, y2 uint16, c pixel.Color) {
	draw.Line(img, x1, y1, x2, y2, c)
}

// DrawRectangle draws the rectangle spanned by (x1,y1) and (x2,y2). Coordinates are not range
// checked.
//
// An outline includes all four corners. A filled rectangle covers the rows y1 up to, but not
// including, y2.
func (img *Image) DrawRectangle(x1, y1, x2, y2 uint16, c pixel.Color, filled bool) {
	if filled {
		draw.Box(img, x1, y1, x2, y2, c)
	} else {
		draw.Rectangle(img, x1, y1, x2, y2, c)
	}
}

// In reports if (x, y) is inside the image.
func (img *Image) In(x, y int) bool {
	return (image.Point{X: x, Y: y}).In(img.Bounds())
}

// ColorAt decodes the color of the pixel at (x, y). The coordinate is not range checked.
func (img *Image) ColorAt(x, y uint16) pixel.Color {
	index, bit := img.layout.address(img.rows, img.columns, x, y)
	switch {
	case img.red[index]&(1<<bit) != 0:
		return pixel.Red
	case img.bw[index]&(1<<bit) != 0:
		return pixel.White
	default:
		return pixel.Black
	}
}

// Bounds is the logical image size.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(img.width), int(img.height))
}

// ColorModel used by the image.
func (img *Image) ColorModel() color.Model {
	return pixel.Model
}

// At returns the color of the pixel at (x, y), or transparent outside of the image.
func (img *Image) At(x, y int) color.Color {
	if !img.In(x, y) {
		return color.Transparent
	}
	return img.ColorAt(uint16(x), uint16(y))
}

// Set the pixel at (x, y) to the panel color nearest to c. Pixels outside of the image are ignored.
func (img *Image) Set(x, y int, c color.Color) {
	if !img.In(x, y) {
		return
	}
	img.setPixel(uint16(x), uint16(y), pixel.Model.Convert(c).(pixel.Color))
}
