package images

import "math"

// linearTableSize is the quantization of the linear -> sRGB table. 12 bits is
// enough for an exact round trip of all 256 sRGB codes; an 8-bit reverse
// table would band in the dark range.
const linearTableSize = 4096

var (
	srgbToLinear [256]float32
	linearToSRGB [linearTableSize]uint8
)

// Tables are built once at package init and never written again, so
// concurrent readers need no synchronization.
func init() {
	for i := range srgbToLinear {
		c := float64(i) / 255.0
		if c <= 0.04045 {
			srgbToLinear[i] = float32(c / 12.92)
		} else {
			srgbToLinear[i] = float32(math.Pow((c+0.055)/1.055, 2.4))
		}
	}
	for i := range linearToSRGB {
		l := float64(i) / float64(linearTableSize-1)
		var c float64
		if l <= 0.0031308 {
			c = l * 12.92
		} else {
			c = 1.055*math.Pow(l, 1.0/2.4) - 0.055
		}
		linearToSRGB[i] = uint8(c*255.0 + 0.5)
	}
}

// SRGBToLinear converts an 8-bit sRGB sample to linear intensity in [0, 1].
func SRGBToLinear(s uint8) float32 {
	return srgbToLinear[s]
}

// LinearToSRGB converts a linear intensity back to an 8-bit sRGB sample.
// Inputs outside [0, 1] are clamped to the table domain.
func LinearToSRGB(l float32) uint8 {
	idx := int(l*(linearTableSize-1) + 0.5)
	if idx < 0 {
		idx = 0
	} else if idx > linearTableSize-1 {
		idx = linearTableSize - 1
	}
	return linearToSRGB[idx]
}
