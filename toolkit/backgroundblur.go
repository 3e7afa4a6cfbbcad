package toolkit

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-toolkit/images"
	"github.com/nvr-ai/go-toolkit/kernels"
)

// ProgressiveDirection selects the gradient fade applied after blurring.
type ProgressiveDirection int

const (
	// ProgressiveNone applies no fade.
	ProgressiveNone ProgressiveDirection = iota
	// ProgressiveTopToBottom fades from opaque at the top to transparent at
	// the bottom.
	ProgressiveTopToBottom
	// ProgressiveBottomToTop fades from opaque at the bottom to transparent
	// at the top.
	ProgressiveBottomToTop
	// ProgressiveEdges fades out toward both the top and bottom edges.
	ProgressiveEdges
)

func (d ProgressiveDirection) String() string {
	switch d {
	case ProgressiveNone:
		return "none"
	case ProgressiveTopToBottom:
		return "top-to-bottom"
	case ProgressiveBottomToTop:
		return "bottom-to-top"
	case ProgressiveEdges:
		return "edges"
	default:
		return "unknown"
	}
}

// BackgroundBlurParams describes one background-blur call.
type BackgroundBlurParams struct {
	// SrcWidth and SrcHeight are the dimensions of the source buffer.
	SrcWidth  int
	SrcHeight int
	// Crop is the source region to blur; the destination has its dimensions.
	Crop images.Region
	// Radius is the blur radius in [1, 25], at full resolution.
	Radius int
	// Scale in (0, 1] shrinks the working resolution before blurring.
	Scale float32
	// Direction selects the progressive fade.
	Direction ProgressiveDirection
	// FadeStart and FadeEnd are normalized vertical positions in [0, 1].
	// TopToBottom and Edges require FadeStart < FadeEnd; BottomToTop requires
	// FadeEnd < FadeStart. Ignored when Direction is ProgressiveNone.
	FadeStart float32
	FadeEnd   float32
}

func (p BackgroundBlurParams) validate(src, dst []byte) error {
	if src == nil || dst == nil {
		return errors.New("nil buffer")
	}
	if !p.Crop.In(p.SrcWidth, p.SrcHeight) {
		return errors.Errorf("crop %+v exceeds source bounds %dx%d", p.Crop, p.SrcWidth, p.SrcHeight)
	}
	if p.Radius < 1 || p.Radius > kernels.MaxRadius {
		return errors.Errorf("radius must be in [1, %d], got %d", kernels.MaxRadius, p.Radius)
	}
	if !(p.Scale > 0 && p.Scale <= 1) {
		return errors.Errorf("scale must be in (0, 1], got %v", p.Scale)
	}
	if p.FadeStart < 0 || p.FadeStart > 1 || p.FadeEnd < 0 || p.FadeEnd > 1 {
		return errors.Errorf("fade positions must be in [0, 1], got start=%v end=%v", p.FadeStart, p.FadeEnd)
	}
	switch p.Direction {
	case ProgressiveNone:
	case ProgressiveTopToBottom, ProgressiveEdges:
		if p.FadeStart >= p.FadeEnd {
			return errors.Errorf("%v requires fadeStart < fadeEnd, got start=%v end=%v", p.Direction, p.FadeStart, p.FadeEnd)
		}
	case ProgressiveBottomToTop:
		if p.FadeEnd >= p.FadeStart {
			return errors.Errorf("%v requires fadeEnd < fadeStart, got start=%v end=%v", p.Direction, p.FadeStart, p.FadeEnd)
		}
	default:
		return errors.Errorf("unknown progressive direction %d", p.Direction)
	}
	if need := p.SrcWidth * p.SrcHeight * 4; len(src) < need {
		return errors.Errorf("source buffer holds %d bytes, need %d", len(src), need)
	}
	// The mask pass walks the whole destination, so the length must match
	// the crop exactly rather than merely cover it.
	if need := p.Crop.Width * p.Crop.Height * 4; len(dst) != need {
		return errors.Errorf("destination buffer holds %d bytes, want exactly %d", len(dst), need)
	}
	return nil
}

// BackgroundBlur blurs the crop region of src into dst with an optional
// progressive fade. src is premultiplied RGBA of SrcWidth x SrcHeight; dst
// receives Crop.Width x Crop.Height premultiplied RGBA.
//
// The pipeline crops and downscales the region (gamma-correct), blurs at the
// reduced resolution with a correspondingly reduced radius, upscales back
// into dst, and finally applies the fade at full resolution. Fading before
// the upscale would interpolate the alpha ramp and band at the transition,
// so the mask comes last.
//
// On any invalid argument the call logs a diagnostic, leaves dst untouched,
// and returns false. It never panics.
func (tk *Toolkit) BackgroundBlur(src, dst []byte, p BackgroundBlurParams) bool {
	if err := p.validate(src, dst); err != nil {
		tk.log.WithError(err).Error("backgroundBlur: rejecting call")
		return false
	}

	scaledW := scaledExtent(p.Crop.Width, p.Scale)
	scaledH := scaledExtent(p.Crop.Height, p.Scale)

	sb := tk.scratch.Get().(*scratchBuffers)
	defer tk.scratch.Put(sb)
	sb.ensure(scaledW * scaledH * 4)

	images.CropScale(src, p.SrcWidth, p.SrcHeight, p.Crop, sb.scaled, scaledW, scaledH)
	kernels.Blur(tk.run, sb.scaled, sb.blurred, scaledW, scaledH, 4,
		kernels.EffectiveRadius(p.Radius, p.Scale), nil)
	images.Scale(sb.blurred, scaledW, scaledH, dst, p.Crop.Width, p.Crop.Height)
	applyProgressiveMask(dst, p.Crop.Width, p.Crop.Height, p.Direction, p.FadeStart, p.FadeEnd)
	return true
}

func scaledExtent(extent int, scale float32) int {
	n := int(float32(extent)*scale + 0.5)
	if n < 1 {
		return 1
	}
	return n
}
