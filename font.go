package epaper

// Font is a fixed-size bitmap font.
//
// Table holds one glyph per printable ASCII character, starting at space (0x20). Every glyph is
// Height rows of ceil(Width/8) bytes, MSB-first, in the format accepted by Image.ShowPicture.
type Font struct {
	Table   []byte
	Width   uint16 // glyph width in pixels
	Height  uint16 // glyph height in pixels
	Advance uint16 // horizontal distance between characters
}

// GlyphSize is the number of bytes per glyph.
func (f Font) GlyphSize() int {
	return f.stride() * int(f.Height)
}

// Glyph returns the bitmap of ch. The result is short, or empty, for characters not in the table.
func (f Font) Glyph(ch byte) []byte {
	var (
		size   = f.GlyphSize()
		offset = size * int(ch-' ')
	)
	if offset >= len(f.Table) {
		return nil
	}
	return f.Table[offset:min(offset+size, len(f.Table))]
}

func (f Font) stride() int {
	return (int(f.Width) + 7) / 8
}
