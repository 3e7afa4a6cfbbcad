// Package images provides the pixel-level building blocks for the toolkit:
// premultiplied RGBA byte buffers, gamma-correct resampling, and conversions
// between image.Image and the raw buffer layout the filters operate on.
//
// Buffers are flat, row-major, interleaved 8-bit samples with
// stride = width * channels. RGBA buffers are premultiplied: R, G and B are
// already scaled by A.
package images

// Region identifies a sub-rectangle of a source buffer.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// In reports whether the region has positive extent and lies fully inside a
// source of the given dimensions.
func (r Region) In(srcWidth, srcHeight int) bool {
	return r.Width > 0 && r.Height > 0 &&
		r.X >= 0 && r.Y >= 0 &&
		r.X+r.Width <= srcWidth &&
		r.Y+r.Height <= srcHeight
}
