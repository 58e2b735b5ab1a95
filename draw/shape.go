package draw

import (
	"github.com/BeatGlow/epaper/pixel"
)

// Line draws a line from (x1,y1) to (x2,y2).
//
// The line stops once either axis reaches its end point, so the last pixel of a line that is not
// horizontal, vertical or diagonal may be left out.
func Line(dst Canvas, x1, y1, x2, y2 uint16, c pixel.Color) {
	var (
		x, y  = x1, y1
		dx    = absDiff(x1, x2)
		dy    = -absDiff(y1, y2)
		stepX = int32(-1)
		stepY = int32(-1)
	)
	if x1 < x2 {
		stepX = 1
	}
	if y1 < y2 {
		stepY = 1
	}

	// e tracks dx+dy scaled error; one loop covers every octant.
	e := dx + dy
	for {
		dst.DrawPoint(x, y, c)
		if 2*e >= dy {
			if x == x2 {
				break
			}
			e += dy
			x = uint16(int32(x) + stepX)
		}
		if 2*e <= dx {
			if y == y2 {
				break
			}
			e += dx
			y = uint16(int32(y) + stepY)
		}
	}
}

// Rectangle draws the four edges of the rectangle spanned by (x1,y1) and (x2,y2), corners included.
func Rectangle(dst Canvas, x1, y1, x2, y2 uint16, c pixel.Color) {
	Line(dst, x1, y1, x2, y1, c)
	Line(dst, x1, y1, x1, y2, c)
	Line(dst, x2, y2, x2, y1, c)
	Line(dst, x2, y2, x1, y2, c)
}

// Box draws a filled rectangle as horizontal lines for every row in [y1, y2).
//
// The row at y2 is not drawn.
func Box(dst Canvas, x1, y1, x2, y2 uint16, c pixel.Color) {
	for y := y1; y < y2; y++ {
		Line(dst, x1, y, x2, y, c)
	}
}

// Circle draws a circle outline around (x0,y0). Pixels outside of the canvas are skipped.
func Circle(dst Canvas, x0, y0, radius int, c pixel.Color) {
	if radius < 0 {
		return
	}
	plot(dst, x0, y0-radius, c)
	plot(dst, x0, y0+radius, c)
	plot(dst, x0-radius, y0, c)
	plot(dst, x0+radius, y0, c)
	roundedCorner(dst, x0, y0, radius, 1|2|4|8, c)
}

// RoundedRectangle draws a rectangle outline with radius pixels rounded corners. The corners
// (x1,y1) and (x2,y2) are inclusive. Pixels outside of the canvas are skipped.
func RoundedRectangle(dst Canvas, x1, y1, x2, y2, radius int, c pixel.Color) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	r := radius
	if m := min(x2-x1, y2-y1) / 2; r > m {
		r = m
	}
	if r < 0 {
		r = 0
	}

	for x := x1 + r; x <= x2-r; x++ {
		plot(dst, x, y1, c)
		plot(dst, x, y2, c)
	}
	for y := y1 + r; y <= y2-r; y++ {
		plot(dst, x1, y, c)
		plot(dst, x2, y, c)
	}
	roundedCorner(dst, x1+r, y1+r, r, 1, c)
	roundedCorner(dst, x2-r, y1+r, r, 2, c)
	roundedCorner(dst, x2-r, y2-r, r, 4, c)
	roundedCorner(dst, x1+r, y2-r, r, 8, c)
}

// roundedCorner plots the midpoint circle octants selected by quadrant: 1 top left, 2 top right,
// 4 bottom right, 8 bottom left. The points on the axes are not plotted.
func roundedCorner(dst Canvas, x0, y0, radius, quadrant int, c pixel.Color) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		if quadrant&4 != 0 {
			plot(dst, x0+x, y0+y, c)
			plot(dst, x0+y, y0+x, c)
		}
		if quadrant&2 != 0 {
			plot(dst, x0+x, y0-y, c)
			plot(dst, x0+y, y0-x, c)
		}
		if quadrant&8 != 0 {
			plot(dst, x0-y, y0+x, c)
			plot(dst, x0-x, y0+y, c)
		}
		if quadrant&1 != 0 {
			plot(dst, x0-y, y0-x, c)
			plot(dst, x0-x, y0-y, c)
		}
	}
}

func absDiff(a, b uint16) int32 {
	if a < b {
		return int32(b) - int32(a)
	}
	return int32(a) - int32(b)
}
