package epaper

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/BeatGlow/epaper/pixel"
)

var testOrientations = []Orientation{Normal, Rotate90, Rotate180, Rotate270}

// testBits reads the plane bits of (x, y) using the documented buffer layout.
func testBits(t *testing.T, img *Image, x, y int) (bw, red bool) {
	t.Helper()
	var index, bit int
	switch img.Orientation() {
	case Rotate90, Rotate270:
		index, bit = (y/8)*img.Rows()+x, 7-y%8
	default:
		index, bit = x/8+y*img.Columns(), 7-x%8
	}
	planeBW, planeRed := img.Planes()
	return planeBW[index]&(1<<bit) != 0, planeRed[index]&(1<<bit) != 0
}

func testNewImage(t *testing.T, w, h uint16, o Orientation, fill pixel.Color) *Image {
	t.Helper()
	img, err := NewImage(w, h, o, fill)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = img.Close() })
	return img
}

func TestNewImageGeometry(t *testing.T) {
	sizes := []image.Point{
		{},
		image.Pt(1, 1),
		image.Pt(7, 9),
		image.Pt(8, 8),
		image.Pt(122, 250),
		image.Pt(250, 122),
		image.Pt(400, 300),
	}
	for _, o := range testOrientations {
		for _, size := range sizes {
			t.Run(fmt.Sprintf("%s/%s", o, size), func(it *testing.T) {
				img := testNewImage(it, uint16(size.X), uint16(size.Y), o, pixel.White)

				wantRows, wantColumns := size.Y, (size.X+7)/8
				if o == Rotate90 || o == Rotate270 {
					wantRows, wantColumns = size.X, (size.Y+7)/8
				}
				if img.Rows() != wantRows || img.Columns() != wantColumns {
					it.Errorf("expected %d rows of %d bytes, got %d rows of %d bytes", wantRows, wantColumns, img.Rows(), img.Columns())
				}

				bw, red := img.Planes()
				if len(bw) != img.Rows()*img.Columns() {
					it.Errorf("expected %d bytes in the bw plane, got %d", img.Rows()*img.Columns(), len(bw))
				}
				if len(bw) != len(red) || len(bw) != img.Size() {
					it.Errorf("plane sizes differ: bw %d, red %d, size %d", len(bw), len(red), img.Size())
				}
				if v := img.Bounds().Size(); !v.Eq(size) {
					it.Errorf("expected bounds %s, got %s", size, v)
				}
			})
		}
	}
}

func TestNewImageFill(t *testing.T) {
	tests := []struct {
		Color   pixel.Color
		BW, Red byte
	}{
		{pixel.Black, 0x00, 0x00},
		{pixel.White, 0xff, 0x00},
		{pixel.Red, 0x00, 0xff},
	}
	for _, test := range tests {
		for _, o := range testOrientations {
			t.Run(fmt.Sprintf("%s/%s", test.Color, o), func(it *testing.T) {
				img := testNewImage(it, 13, 21, o, test.Color)
				bw, red := img.Planes()
				if !bytes.Equal(bw, bytes.Repeat([]byte{test.BW}, img.Size())) {
					it.Errorf("expected bw plane filled with %#02x", test.BW)
				}
				if !bytes.Equal(red, bytes.Repeat([]byte{test.Red}, img.Size())) {
					it.Errorf("expected red plane filled with %#02x", test.Red)
				}
				for y := 0; y < 21; y++ {
					for x := 0; x < 13; x++ {
						if v := img.ColorAt(uint16(x), uint16(y)); v != test.Color {
							it.Fatalf("pixel (%d,%d) is %s, expected %s", x, y, v, test.Color)
						}
					}
				}
			})
		}
	}
}

func TestNewImageInvalid(t *testing.T) {
	if img, err := NewImage(8, 8, Orientation(4), pixel.White); !errors.Is(err, ErrInvalidOrientation) || img != nil {
		t.Errorf("expected ErrInvalidOrientation and no image, got %v, %v", img, err)
	}
	if img, err := NewImage(8, 8, Normal, pixel.Color(3)); !errors.Is(err, pixel.ErrInvalidColor) || img != nil {
		t.Errorf("expected ErrInvalidColor and no image, got %v, %v", img, err)
	}
	if _, err := ParseOrientation(4); !errors.Is(err, ErrInvalidOrientation) {
		t.Errorf("expected ErrInvalidOrientation, got %v", err)
	}
	if o, err := ParseOrientation(3); err != nil || o != Rotate270 {
		t.Errorf("expected %s, got %s, %v", Rotate270, o, err)
	}
}

func TestNew(t *testing.T) {
	img, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer img.Close()

	w, h := img.Resolution()
	if w != DefaultConfig.Width || h != DefaultConfig.Height {
		t.Errorf("expected %dx%d, got %dx%d", DefaultConfig.Width, DefaultConfig.Height, w, h)
	}
	if v := img.ColorAt(0, 0); v != DefaultConfig.Fill {
		t.Errorf("expected %s paper, got %s", DefaultConfig.Fill, v)
	}
}

func TestClose(t *testing.T) {
	var nilImage *Image
	if err := nilImage.Close(); !errors.Is(err, ErrNilImage) {
		t.Errorf("expected ErrNilImage, got %v", err)
	}

	img, err := NewImage(16, 16, Normal, pixel.White)
	if err != nil {
		t.Fatal(err)
	}
	if err = img.Close(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if bw, red := img.Planes(); bw != nil || red != nil {
		t.Error("expected planes to be released")
	}
	if err = img.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}

func TestFill(t *testing.T) {
	var nilImage *Image
	nilImage.Fill(pixel.Black) // must not panic

	img := testNewImage(t, 10, 10, Normal, pixel.White)
	img.Fill(pixel.Color(7))
	if v := img.ColorAt(5, 5); v != pixel.White {
		t.Errorf("invalid fill changed the image to %s", v)
	}

	img.Fill(pixel.Red)
	bw, red := img.Planes()
	if diff := cmp.Diff(make([]byte, img.Size()), bw); diff != "" {
		t.Errorf("bw plane mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(bytes.Repeat([]byte{0xff}, img.Size()), red); diff != "" {
		t.Errorf("red plane mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawPoint(t *testing.T) {
	for _, o := range testOrientations {
		t.Run(o.String(), func(it *testing.T) {
			img := testNewImage(it, 19, 11, o, pixel.Red)
			for y := 0; y < 11; y++ {
				for x := 0; x < 19; x++ {
					before := make([]byte, img.Size())
					copy(before, img.bw)

					img.DrawPoint(uint16(x), uint16(y), pixel.Black)
					img.DrawPoint(uint16(x), uint16(y), pixel.White)

					bw, red := testBits(it, img, x, y)
					if !bw || red {
						it.Fatalf("pixel (%d,%d): expected bw set and red clear, got bw=%t red=%t", x, y, bw, red)
					}
					if v := img.ColorAt(uint16(x), uint16(y)); v != pixel.White {
						it.Fatalf("pixel (%d,%d) is %s, expected white", x, y, v)
					}

					// Only the one bit may change.
					var changed int
					for i := range before {
						for diff := before[i] ^ img.bw[i]; diff != 0; diff &= diff - 1 {
							changed++
						}
					}
					if changed != 1 {
						it.Fatalf("pixel (%d,%d): %d bits changed in the bw plane", x, y, changed)
					}
				}
			}
		})
	}
}

func TestDrawPointRed(t *testing.T) {
	img := testNewImage(t, 8, 8, Normal, pixel.White)
	img.DrawPoint(3, 3, pixel.Red)
	if bw, red := testBits(t, img, 3, 3); !bw || !red {
		t.Errorf("red over white must keep the bw bit, got bw=%t red=%t", bw, red)
	}
	if v := img.ColorAt(3, 3); v != pixel.Red {
		t.Errorf("expected red, got %s", v)
	}

	img.DrawPoint(4, 4, pixel.Color(3))
	if v := img.ColorAt(4, 4); v != pixel.White {
		t.Errorf("invalid color changed the pixel to %s", v)
	}
}

func countPixels(img *Image, c pixel.Color) (points []image.Point) {
	w, h := img.Resolution()
	for y := uint16(0); y < h; y++ {
		for x := uint16(0); x < w; x++ {
			if img.ColorAt(x, y) == c {
				points = append(points, image.Pt(int(x), int(y)))
			}
		}
	}
	return
}

func TestDrawLine(t *testing.T) {
	img := testNewImage(t, 16, 16, Normal, pixel.White)
	img.DrawLine(0, 0, 0, 0, pixel.Black)
	if points := countPixels(img, pixel.Black); len(points) != 1 {
		t.Errorf("expected one pixel, got %v", points)
	}

	img.Fill(pixel.White)
	img.DrawLine(0, 0, 4, 0, pixel.Red)
	want := []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	if diff := cmp.Diff(want, countPixels(img, pixel.Red)); diff != "" {
		t.Errorf("line mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawRectangle(t *testing.T) {
	t.Run("filled", func(it *testing.T) {
		img := testNewImage(it, 8, 8, Normal, pixel.White)
		img.DrawRectangle(0, 0, 4, 4, pixel.Black, true)
		for _, p := range countPixels(img, pixel.Black) {
			if p.Y > 3 || p.X > 4 {
				it.Errorf("pixel %s outside of the filled rows", p)
			}
		}
		if n := len(countPixels(img, pixel.Black)); n != 4*5 {
			it.Errorf("expected 20 pixels, got %d", n)
		}
	})

	t.Run("outline", func(it *testing.T) {
		img := testNewImage(it, 8, 8, Rotate90, pixel.White)
		img.DrawRectangle(1, 1, 5, 4, pixel.Red, false)
		if n := len(countPixels(img, pixel.Red)); n != 2*5+2*2 {
			it.Errorf("expected 14 pixels, got %d", n)
		}
		for _, p := range []image.Point{{1, 1}, {5, 1}, {5, 4}, {1, 4}} {
			if v := img.ColorAt(uint16(p.X), uint16(p.Y)); v != pixel.Red {
				it.Errorf("corner %s is %s", p, v)
			}
		}
	})
}

func TestRoundTrip(t *testing.T) {
	img := testNewImage(t, 40, 30, Normal, pixel.Red)
	img.DrawRectangle(0, 0, 10, 10, pixel.Black, true)

	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			bw, red := testBits(t, img, x, y)
			inside := x <= 10 && y < 10
			if bw {
				t.Fatalf("pixel (%d,%d): bw bit set", x, y)
			}
			if red == inside {
				t.Fatalf("pixel (%d,%d): red bit %t, inside rectangle %t", x, y, red, inside)
			}
		}
	}
}

func TestDrawImage(t *testing.T) {
	img := testNewImage(t, 10, 10, Normal, pixel.White)
	img.Set(2, 3, color.RGBA{R: 0xff, A: 0xff})
	img.Set(-1, 3, color.Black)
	img.Set(3, 10, color.Black)
	img.Set(4, 4, color.Gray{Y: 0x10})

	if v := img.At(2, 3); v != pixel.Red {
		t.Errorf("expected red, got %v", v)
	}
	if v := img.At(4, 4); v != pixel.Black {
		t.Errorf("expected black, got %v", v)
	}
	if v := img.At(-1, 3); v != color.Transparent {
		t.Errorf("expected transparent, got %v", v)
	}
	if n := len(countPixels(img, pixel.White)); n != 98 {
		t.Errorf("expected 98 white pixels, got %d", n)
	}
}
