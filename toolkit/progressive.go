package toolkit

// applyProgressiveMask scales every pixel of the premultiplied buffer by a
// per-row fade alpha, in place. All four channels are scaled by the same
// factor: fading only alpha would leave stale premultiplied color that
// composites incorrectly against a different background.
func applyProgressiveMask(buf []byte, width, height int, dir ProgressiveDirection, fadeStart, fadeEnd float32) {
	if dir == ProgressiveNone {
		return
	}
	denom := float32(height - 1)
	if denom < 1 {
		denom = 1
	}
	for y := 0; y < height; y++ {
		alpha := rowAlpha(dir, float32(y)/denom, fadeStart, fadeEnd)
		if alpha >= 1 {
			continue
		}
		row := buf[y*width*4 : (y+1)*width*4]
		if alpha <= 0 {
			for i := range row {
				row[i] = 0
			}
			continue
		}
		for i, v := range row {
			row[i] = uint8(float32(v)*alpha + 0.5)
		}
	}
}

// rowAlpha computes the fade factor for a normalized vertical position.
// Zero-width ramps degenerate to full opacity instead of dividing by zero.
func rowAlpha(dir ProgressiveDirection, ny, fadeStart, fadeEnd float32) float32 {
	alpha := float32(1)
	switch dir {
	case ProgressiveTopToBottom:
		switch {
		case ny <= fadeStart:
			alpha = 1
		case ny >= fadeEnd:
			alpha = 0
		default:
			if span := fadeEnd - fadeStart; span > 0 {
				alpha = 1 - (ny-fadeStart)/span
			}
		}
	case ProgressiveBottomToTop:
		switch {
		case ny >= fadeStart:
			alpha = 1
		case ny <= fadeEnd:
			alpha = 0
		default:
			if span := fadeStart - fadeEnd; span > 0 {
				alpha = (ny - fadeEnd) / span
			}
		}
	case ProgressiveEdges:
		switch {
		case ny < fadeStart:
			if fadeStart > 0 {
				alpha = ny / fadeStart
			}
		case ny > fadeEnd:
			if span := 1 - fadeEnd; span > 0 {
				alpha = (1 - ny) / span
			}
		}
	}
	if alpha < 0 {
		return 0
	}
	if alpha > 1 {
		return 1
	}
	return alpha
}
