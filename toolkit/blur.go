package toolkit

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-toolkit/kernels"
)

// Blur performs a Gaussian blur of in into out. Both buffers are
// sizeX x sizeY cells of vectorSize bytes (4 for RGBA, 1 for alpha-only),
// row-major. When the radius extends past an edge the edge pixel is
// replicated. An optional restriction limits the operation to a rectangular
// subset of the output.
func (tk *Toolkit) Blur(in, out []byte, sizeX, sizeY, vectorSize, radius int, restrict *kernels.Restriction) error {
	if in == nil || out == nil {
		return errors.New("blur: nil buffer")
	}
	if sizeX <= 0 || sizeY <= 0 {
		return errors.Errorf("blur: invalid dimensions %dx%d", sizeX, sizeY)
	}
	if vectorSize != 1 && vectorSize != 4 {
		return errors.Errorf("blur: vectorSize must be 1 or 4, got %d", vectorSize)
	}
	if radius < 1 || radius > kernels.MaxRadius {
		return errors.Errorf("blur: radius must be in [1, %d], got %d", kernels.MaxRadius, radius)
	}
	need := sizeX * sizeY * vectorSize
	if len(in) < need {
		return errors.Errorf("blur: input buffer holds %d bytes, need %d", len(in), need)
	}
	if len(out) < need {
		return errors.Errorf("blur: output buffer holds %d bytes, need %d", len(out), need)
	}
	if restrict != nil {
		if restrict.StartX < 0 || restrict.StartY < 0 ||
			restrict.EndX > sizeX || restrict.EndY > sizeY ||
			restrict.StartX >= restrict.EndX || restrict.StartY >= restrict.EndY {
			return errors.Errorf("blur: restriction %+v outside %dx%d", *restrict, sizeX, sizeY)
		}
	}
	kernels.Blur(tk.run, in, out, sizeX, sizeY, vectorSize, radius, restrict)
	return nil
}
