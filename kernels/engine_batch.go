package kernels

// batchEngine unrolls the convolution loops so several output values or taps
// are in flight per iteration, letting the compiler keep whole pixel fans in
// registers. Tap order into each accumulator matches scalarEngine exactly,
// so the two produce bit-identical bytes.
type batchEngine struct{}

func (batchEngine) Name() string { return "batch" }

// VertU4 processes two output pixels (eight channels) per iteration.
func (batchEngine) VertU4(dst []float32, src []byte, stride int, gauss []float32, n int) {
	i := 0
	for ; i+2 <= n; i += 2 {
		o := i * 4
		var r0, g0, b0, a0 float32
		var r1, g1, b1, a1 float32
		si := o
		for _, w := range gauss {
			r0 += w * float32(src[si+0])
			g0 += w * float32(src[si+1])
			b0 += w * float32(src[si+2])
			a0 += w * float32(src[si+3])
			r1 += w * float32(src[si+4])
			g1 += w * float32(src[si+5])
			b1 += w * float32(src[si+6])
			a1 += w * float32(src[si+7])
			si += stride
		}
		dst[o+0], dst[o+1], dst[o+2], dst[o+3] = r0, g0, b0, a0
		dst[o+4], dst[o+5], dst[o+6], dst[o+7] = r1, g1, b1, a1
	}
	if i < n {
		scalarEngine{}.VertU4(dst[i*4:], src[i*4:], stride, gauss, n-i)
	}
}

// HorizU4 processes one output pixel per iteration with taps paired after
// the first, mirroring the original two-taps-per-step layout. The tap count
// is always odd (2*radius+1), so the pairs divide evenly.
func (batchEngine) HorizU4(dst []byte, src []float32, gauss []float32, n int) {
	rct := len(gauss)
	for i := 0; i < n; i++ {
		o := i * 4
		w := gauss[0]
		r := w * src[o+0]
		g := w * src[o+1]
		b := w * src[o+2]
		a := w * src[o+3]
		for t := 1; t < rct; t += 2 {
			w0 := gauss[t]
			w1 := gauss[t+1]
			s0 := o + t*4
			r += w0 * src[s0+0]
			g += w0 * src[s0+1]
			b += w0 * src[s0+2]
			a += w0 * src[s0+3]
			r += w1 * src[s0+4]
			g += w1 * src[s0+5]
			b += w1 * src[s0+6]
			a += w1 * src[s0+7]
		}
		dst[o+0] = uint8(int32(r))
		dst[o+1] = uint8(int32(g))
		dst[o+2] = uint8(int32(b))
		dst[o+3] = uint8(int32(a))
	}
}

// HorizU1 batches four output pixels per iteration for alpha-only rows.
func (batchEngine) HorizU1(dst []byte, src []float32, gauss []float32, n int) {
	i := 0
	for ; i+4 <= n; i += 4 {
		var s0, s1, s2, s3 float32
		for t, w := range gauss {
			p := src[i+t : i+t+4 : i+t+4]
			s0 += w * p[0]
			s1 += w * p[1]
			s2 += w * p[2]
			s3 += w * p[3]
		}
		dst[i+0] = uint8(int32(s0))
		dst[i+1] = uint8(int32(s1))
		dst[i+2] = uint8(int32(s2))
		dst[i+3] = uint8(int32(s3))
	}
	if i < n {
		scalarEngine{}.HorizU1(dst[i:], src[i:], gauss, n-i)
	}
}
