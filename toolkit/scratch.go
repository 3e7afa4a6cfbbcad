package toolkit

// scratchBuffers is the pair of intermediate images of one pipeline run:
// the cropped downscale and the blur output. Instances live in the Toolkit's
// sync.Pool, so capacity is amortized across calls without any cross-call
// sharing of contents; capacity only grows.
type scratchBuffers struct {
	scaled  []byte
	blurred []byte
}

func (s *scratchBuffers) ensure(n int) {
	if cap(s.scaled) < n {
		s.scaled = make([]byte, n)
	} else {
		s.scaled = s.scaled[:n]
	}
	if cap(s.blurred) < n {
		s.blurred = make([]byte, n)
	} else {
		s.blurred = s.blurred[:n]
	}
}
