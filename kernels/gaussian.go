// Package kernels implements the separable Gaussian blur: normalized weight
// generation, the low-level one-dimensional convolution primitives, and the
// row-parallel driver that sequences the vertical and horizontal passes.
//
// The convolution primitives exist in two bit-compatible implementations
// behind the Engine interface: a scalar reference and a batch-unrolled
// variant selected at init from CPU capabilities. All accumulation is
// single-precision; the float-to-byte conversion at the end of a horizontal
// pass truncates rather than rounds, which is the behavior downstream
// consumers were tuned against.
package kernels

import "github.com/chewxy/math32"

// MaxRadius is the largest supported blur radius.
const MaxRadius = 25

// Gaussian returns the 2*radius+1 normalized weights of a discrete Gaussian.
// The sigma mapping keeps the visual spread proportional to the radius across
// the supported range.
func Gaussian(radius int) []float32 {
	sigma := 0.4*float32(radius) + 0.6
	coeff1 := 1.0 / (math32.Sqrt(2*math32.Pi) * sigma)
	coeff2 := -1.0 / (2 * sigma * sigma)

	weights := make([]float32, 2*radius+1)
	var sum float32
	for i := -radius; i <= radius; i++ {
		w := coeff1 * math32.Exp(coeff2*float32(i*i))
		weights[i+radius] = w
		sum += w
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights
}

// EffectiveRadius rescales a blur radius to a downscaled working resolution,
// clamped to [1, MaxRadius].
func EffectiveRadius(radius int, scale float32) int {
	r := int(float32(radius)*scale + 0.5)
	if r < 1 {
		return 1
	}
	if r > MaxRadius {
		return MaxRadius
	}
	return r
}
