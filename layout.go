package epaper

// layout is the addressing strategy of one orientation.
type layout struct {
	// transform maps a logical coordinate onto the buffer frame.
	transform func(x, y uint16) (uint16, uint16)

	// transposed buffers store 8 vertical pixels per byte, with rows running along x.
	transposed bool
}

func identity(x, y uint16) (uint16, uint16) {
	return x, y
}

// The 180° and 270° layouts share the frame of 0° and 90°; no mirroring is applied.
var layouts = [orientationCount]layout{
	Normal:    {transform: identity},
	Rotate90:  {transform: identity, transposed: true},
	Rotate180: {transform: identity},
	Rotate270: {transform: identity, transposed: true},
}

// geometry returns the number of rows and bytes per row of the buffer frame.
func (l layout) geometry(w, h uint16) (rows, columns int) {
	if l.transposed {
		return int(w), (int(h) + 7) / 8
	}
	return int(h), (int(w) + 7) / 8
}

// address returns the plane byte index and bit offset of (x, y).
//
// No range checks are done: coordinates outside of the image give an index outside of the planes.
func (l layout) address(rows, columns int, x, y uint16) (index int, bit uint) {
	x, y = l.transform(x, y)
	if l.transposed {
		return int(y>>3)*rows + int(x), 7 - uint(y&7)
	}
	return int(x>>3) + int(y)*columns, 7 - uint(x&7)
}
