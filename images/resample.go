package images

// CropScale crops region from src and resamples it into dst at
// dstWidth x dstHeight using bilinear interpolation. R, G and B are
// interpolated in linear light through the gamma tables; alpha is coverage,
// not light, and is interpolated directly in its encoded space.
//
// src is a premultiplied RGBA buffer of srcWidth x srcHeight. dst must hold
// at least dstWidth*dstHeight*4 bytes. The region must lie inside the source.
func CropScale(src []byte, srcWidth, srcHeight int, region Region, dst []byte, dstWidth, dstHeight int) {
	scaleX := float32(region.Width) / float32(dstWidth)
	scaleY := float32(region.Height) / float32(dstHeight)
	bilinear(src, srcWidth, srcHeight, float32(region.X), float32(region.Y), scaleX, scaleY, dst, dstWidth, dstHeight)
}

// Scale resamples the whole of src into dst at dstWidth x dstHeight with the
// same channel treatment as CropScale. It handles both up- and downscaling.
func Scale(src []byte, srcWidth, srcHeight int, dst []byte, dstWidth, dstHeight int) {
	scaleX := float32(srcWidth) / float32(dstWidth)
	scaleY := float32(srcHeight) / float32(dstHeight)
	bilinear(src, srcWidth, srcHeight, 0, 0, scaleX, scaleY, dst, dstWidth, dstHeight)
}

// bilinear samples the four nearest neighbors of each continuous source
// coordinate, clamped to the valid index range (replicate-edge, never
// wrapping or reading out of bounds). When a base index is clamped its
// partner collapses onto the same pixel, so the stale fraction cannot leak
// anything past the edge.
func bilinear(src []byte, srcWidth, srcHeight int, offX, offY, scaleX, scaleY float32, dst []byte, dstWidth, dstHeight int) {
	for y := 0; y < dstHeight; y++ {
		srcYf := offY + float32(y)*scaleY
		y0 := int(srcYf)
		if y0 > srcHeight-1 {
			y0 = srcHeight - 1
		}
		y1 := y0 + 1
		if y1 > srcHeight-1 {
			y1 = srcHeight - 1
		}
		yFrac := srcYf - float32(y0)

		row0 := src[y0*srcWidth*4:]
		row1 := src[y1*srcWidth*4:]
		out := dst[y*dstWidth*4 : (y+1)*dstWidth*4]

		for x := 0; x < dstWidth; x++ {
			srcXf := offX + float32(x)*scaleX
			x0 := int(srcXf)
			if x0 > srcWidth-1 {
				x0 = srcWidth - 1
			}
			x1 := x0 + 1
			if x1 > srcWidth-1 {
				x1 = srcWidth - 1
			}
			xFrac := srcXf - float32(x0)

			o0, o1 := x0*4, x1*4
			di := x * 4

			for c := 0; c < 3; c++ {
				p00 := srgbToLinear[row0[o0+c]]
				p10 := srgbToLinear[row0[o1+c]]
				p01 := srgbToLinear[row1[o0+c]]
				p11 := srgbToLinear[row1[o1+c]]
				top := p00 + (p10-p00)*xFrac
				bottom := p01 + (p11-p01)*xFrac
				out[di+c] = LinearToSRGB(top + (bottom-top)*yFrac)
			}

			a00 := float32(row0[o0+3])
			a10 := float32(row0[o1+3])
			a01 := float32(row1[o0+3])
			a11 := float32(row1[o1+3])
			top := a00 + (a10-a00)*xFrac
			bottom := a01 + (a11-a01)*xFrac
			a := top + (bottom-top)*yFrac + 0.5
			if a < 0 {
				a = 0
			} else if a > 255 {
				a = 255
			}
			out[di+3] = uint8(a)
		}
	}
}
