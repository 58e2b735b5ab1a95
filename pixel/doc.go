// Package pixel implements the tri-color palette used by black/white/red e-paper panels.
//
// The [Color] type is compatible with Go's native [color.Color], and [Model] converts any color to
// the nearest panel color so that [image.Image] sources can be rendered onto the bit-planes.
package pixel
