package images

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"
)

// FromImage converts an image.Image into the flat premultiplied RGBA buffer
// layout the filters consume.
//
// Arguments:
// - img: The source image in any color model.
//
// Returns:
// - []byte: A premultiplied RGBA buffer, row-major, 4 bytes per pixel.
// - int: The buffer width in pixels.
// - int: The buffer height in pixels.
func FromImage(img image.Image) ([]byte, int, int) {
	b := img.Bounds()
	// image.RGBA is Go's premultiplied representation; draw.Draw performs the
	// color model conversion.
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba.Pix, b.Dx(), b.Dy()
}

// ToImage wraps a premultiplied RGBA buffer as an *image.RGBA without
// copying. The caller must not reuse pix while the image is alive.
func ToImage(pix []byte, width, height int) *image.RGBA {
	return &image.RGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// Fit shrinks img to fit within maxWidth x maxHeight, preserving aspect
// ratio. Images already inside the bounds are returned unchanged. Useful for
// capping the working resolution of oversized frames before filtering.
func Fit(img image.Image, maxWidth, maxHeight int) image.Image {
	b := img.Bounds()
	if maxWidth <= 0 || maxHeight <= 0 {
		return img
	}
	if b.Dx() <= maxWidth && b.Dy() <= maxHeight {
		return img
	}
	return resize.Thumbnail(uint(maxWidth), uint(maxHeight), img, resize.Bilinear)
}
