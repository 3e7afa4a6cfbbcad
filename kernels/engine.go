package kernels

// Engine is the strategy interface for the one-dimensional convolution
// primitives. Implementations only consume a precomputed weight array over a
// window that is fully in range; edge replication is the driver's concern.
//
// Every implementation must accumulate taps into each output value in the
// same sequence so that results are bit-identical across engines.
type Engine interface {
	Name() string

	// VertU4 computes a vertical weighted sum over 4-channel byte rows:
	// dst[i*4+c] = sum over t of gauss[t] * src[t*stride + i*4 + c],
	// for i in [0, n). src is positioned at the first tap row.
	VertU4(dst []float32, src []byte, stride int, gauss []float32, n int)

	// HorizU4 computes a horizontal weighted sum over an already-expanded
	// 4-channel float row. For i in [0, n), the window starts at src pixel i
	// and the truncated byte result is written at dst pixel i; the caller
	// offsets dst so windows and outputs line up.
	HorizU4(dst []byte, src []float32, gauss []float32, n int)

	// HorizU1 is HorizU4 for single-channel (alpha-only) float rows.
	HorizU1(dst []byte, src []float32, gauss []float32, n int)
}

// scalarEngine is the portable reference implementation.
type scalarEngine struct{}

func (scalarEngine) Name() string { return "scalar" }

func (scalarEngine) VertU4(dst []float32, src []byte, stride int, gauss []float32, n int) {
	for i := 0; i < n; i++ {
		o := i * 4
		var r, g, b, a float32
		si := o
		for _, w := range gauss {
			r += w * float32(src[si+0])
			g += w * float32(src[si+1])
			b += w * float32(src[si+2])
			a += w * float32(src[si+3])
			si += stride
		}
		dst[o+0] = r
		dst[o+1] = g
		dst[o+2] = b
		dst[o+3] = a
	}
}

func (scalarEngine) HorizU4(dst []byte, src []float32, gauss []float32, n int) {
	for i := 0; i < n; i++ {
		o := i * 4
		var r, g, b, a float32
		si := o
		for _, w := range gauss {
			r += w * src[si+0]
			g += w * src[si+1]
			b += w * src[si+2]
			a += w * src[si+3]
			si += 4
		}
		dst[o+0] = uint8(int32(r))
		dst[o+1] = uint8(int32(g))
		dst[o+2] = uint8(int32(b))
		dst[o+3] = uint8(int32(a))
	}
}

func (scalarEngine) HorizU1(dst []byte, src []float32, gauss []float32, n int) {
	for i := 0; i < n; i++ {
		var sum float32
		for t, w := range gauss {
			sum += w * src[i+t]
		}
		dst[i] = uint8(int32(sum))
	}
}
