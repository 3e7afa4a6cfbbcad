package kernels

// Runner schedules the row loop of a blur pass. workerpool.Pool satisfies
// it; tests can pass a sequential runner for deterministic single-threaded
// execution.
type Runner interface {
	ParallelFor(n int, fn func(start, end int))
}

// Sequential is a Runner that executes the whole range in the calling
// goroutine.
type Sequential struct{}

func (Sequential) ParallelFor(n int, fn func(start, end int)) {
	if n > 0 {
		fn(0, n)
	}
}

// Restriction limits a blur to a rectangular subset of the output:
// [StartX, EndX) x [StartY, EndY). Output bytes outside it are not written.
type Restriction struct {
	StartX int
	EndX   int
	StartY int
	EndY   int
}

// Blur performs a separable Gaussian blur of in into out. Both buffers are
// sizeX x sizeY with vectorSize (1 or 4) bytes per pixel, row-major. Taps
// extending past an edge replicate the edge pixel. Rows are partitioned over
// the runner; each row writes only its own output bytes, so no
// synchronization beyond the runner's barrier is needed and results do not
// depend on the partitioning.
//
// The caller is responsible for argument validation; see toolkit.Blur.
func Blur(run Runner, in, out []byte, sizeX, sizeY, vectorSize, radius int, restrict *Restriction) {
	rest := Restriction{StartX: 0, EndX: sizeX, StartY: 0, EndY: sizeY}
	if restrict != nil {
		rest = *restrict
	}
	if rest.EndX <= rest.StartX || rest.EndY <= rest.StartY {
		return
	}
	gauss := Gaussian(radius)
	if vectorSize == 1 {
		blurU1(run, in, out, sizeX, sizeY, radius, gauss, rest)
		return
	}
	blurU4(run, in, out, sizeX, sizeY, radius, gauss, rest)
}

// interiorSpan clips the full-window column span [radius, sizeX-radius) to
// the restriction [x1, x2). When no full window fits, the returned span is
// empty at x1 and every column takes the clamped edge path.
func interiorSpan(sizeX, radius, x1, x2 int) (lo, hi int) {
	lo, hi = radius, sizeX-radius
	if lo < x1 {
		lo = x1
	}
	if hi > x2 {
		hi = x2
	}
	if hi < lo {
		lo, hi = x1, x1
	}
	return lo, hi
}

func blurU4(run Runner, in, out []byte, sizeX, sizeY, radius int, gauss []float32, rest Restriction) {
	stride := sizeX * 4
	run.ParallelFor(rest.EndY-rest.StartY, func(start, end int) {
		buf := make([]float32, stride)
		for y := rest.StartY + start; y < rest.StartY+end; y++ {
			vertRowU4(buf, in, sizeX, sizeY, stride, y, radius, gauss)
			horizRowU4(out[y*stride:(y+1)*stride], buf, sizeX, radius, gauss, rest.StartX, rest.EndX)
		}
	})
}

// vertRowU4 expands row y of in into a float row: each pixel is the
// weighted sum of the source column around y. Interior rows go through the
// engine; rows whose window crosses the top or bottom replicate the edge row
// tap by tap.
func vertRowU4(buf []float32, in []byte, sizeX, sizeY, stride, y, radius int, gauss []float32) {
	if y-radius >= 0 && y+radius < sizeY {
		current.VertU4(buf, in[(y-radius)*stride:], stride, gauss, sizeX)
		return
	}
	for i := 0; i < sizeX; i++ {
		o := i * 4
		var r, g, b, a float32
		for t, w := range gauss {
			sy := y + t - radius
			if sy < 0 {
				sy = 0
			} else if sy > sizeY-1 {
				sy = sizeY - 1
			}
			si := sy*stride + o
			r += w * float32(in[si+0])
			g += w * float32(in[si+1])
			b += w * float32(in[si+2])
			a += w * float32(in[si+3])
		}
		buf[o+0] = r
		buf[o+1] = g
		buf[o+2] = b
		buf[o+3] = a
	}
}

func horizRowU4(outRow []byte, buf []float32, sizeX, radius int, gauss []float32, x1, x2 int) {
	lo, hi := interiorSpan(sizeX, radius, x1, x2)
	for x := x1; x < lo; x++ {
		horizEdgeU4(outRow, buf, sizeX, x, radius, gauss)
	}
	if hi > lo {
		current.HorizU4(outRow[lo*4:], buf[(lo-radius)*4:], gauss, hi-lo)
	}
	for x := hi; x < x2; x++ {
		horizEdgeU4(outRow, buf, sizeX, x, radius, gauss)
	}
}

func horizEdgeU4(outRow []byte, buf []float32, sizeX, x, radius int, gauss []float32) {
	var r, g, b, a float32
	for t, w := range gauss {
		sx := x + t - radius
		if sx < 0 {
			sx = 0
		} else if sx > sizeX-1 {
			sx = sizeX - 1
		}
		si := sx * 4
		r += w * buf[si+0]
		g += w * buf[si+1]
		b += w * buf[si+2]
		a += w * buf[si+3]
	}
	o := x * 4
	outRow[o+0] = uint8(int32(r))
	outRow[o+1] = uint8(int32(g))
	outRow[o+2] = uint8(int32(b))
	outRow[o+3] = uint8(int32(a))
}

func blurU1(run Runner, in, out []byte, sizeX, sizeY, radius int, gauss []float32, rest Restriction) {
	run.ParallelFor(rest.EndY-rest.StartY, func(start, end int) {
		buf := make([]float32, sizeX)
		for y := rest.StartY + start; y < rest.StartY+end; y++ {
			vertRowU1(buf, in, sizeX, sizeY, y, radius, gauss)
			horizRowU1(out[y*sizeX:(y+1)*sizeX], buf, sizeX, radius, gauss, rest.StartX, rest.EndX)
		}
	})
}

func vertRowU1(buf []float32, in []byte, sizeX, sizeY, y, radius int, gauss []float32) {
	for i := range buf {
		buf[i] = 0
	}
	for t, w := range gauss {
		sy := y + t - radius
		if sy < 0 {
			sy = 0
		} else if sy > sizeY-1 {
			sy = sizeY - 1
		}
		row := in[sy*sizeX : sy*sizeX+sizeX]
		for i, v := range row {
			buf[i] += w * float32(v)
		}
	}
}

func horizRowU1(outRow []byte, buf []float32, sizeX, radius int, gauss []float32, x1, x2 int) {
	lo, hi := interiorSpan(sizeX, radius, x1, x2)
	for x := x1; x < lo; x++ {
		horizEdgeU1(outRow, buf, sizeX, x, radius, gauss)
	}
	if hi > lo {
		current.HorizU1(outRow[lo:], buf[lo-radius:], gauss, hi-lo)
	}
	for x := hi; x < x2; x++ {
		horizEdgeU1(outRow, buf, sizeX, x, radius, gauss)
	}
}

func horizEdgeU1(outRow []byte, buf []float32, sizeX, x, radius int, gauss []float32) {
	var sum float32
	for t, w := range gauss {
		sx := x + t - radius
		if sx < 0 {
			sx = 0
		} else if sx > sizeX-1 {
			sx = sizeX - 1
		}
		sum += w * buf[sx]
	}
	outRow[x] = uint8(int32(sum))
}
