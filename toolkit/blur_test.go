package toolkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-toolkit/kernels"
)

func TestBlurValidation(t *testing.T) {
	tk := newTestToolkit(t, WithRunner(kernels.Sequential{}))
	in := make([]byte, 16*16*4)
	out := make([]byte, 16*16*4)

	tests := []struct {
		name string
		call func() error
	}{
		{"nil input", func() error { return tk.Blur(nil, out, 16, 16, 4, 3, nil) }},
		{"nil output", func() error { return tk.Blur(in, nil, 16, 16, 4, 3, nil) }},
		{"zero width", func() error { return tk.Blur(in, out, 0, 16, 4, 3, nil) }},
		{"negative height", func() error { return tk.Blur(in, out, 16, -1, 4, 3, nil) }},
		{"vector size 3", func() error { return tk.Blur(in, out, 16, 16, 3, 3, nil) }},
		{"radius zero", func() error { return tk.Blur(in, out, 16, 16, 4, 0, nil) }},
		{"radius above cap", func() error { return tk.Blur(in, out, 16, 16, 4, 26, nil) }},
		{"short input", func() error { return tk.Blur(in[:100], out, 16, 16, 4, 3, nil) }},
		{"short output", func() error { return tk.Blur(in, out[:100], 16, 16, 4, 3, nil) }},
		{"restriction past edge", func() error {
			return tk.Blur(in, out, 16, 16, 4, 3, &kernels.Restriction{StartX: 0, EndX: 17, StartY: 0, EndY: 16})
		}},
		{"restriction inverted", func() error {
			return tk.Blur(in, out, 16, 16, 4, 3, &kernels.Restriction{StartX: 8, EndX: 8, StartY: 0, EndY: 16})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.call())
		})
	}
}

func TestBlurMatchesKernel(t *testing.T) {
	tk := newTestToolkit(t, WithRunner(kernels.Sequential{}))
	const sizeX, sizeY = 24, 18
	in := make([]byte, sizeX*sizeY*4)
	for i := range in {
		in[i] = byte(i * 29)
	}

	got := make([]byte, len(in))
	require.NoError(t, tk.Blur(in, got, sizeX, sizeY, 4, 6, nil))

	want := make([]byte, len(in))
	kernels.Blur(kernels.Sequential{}, in, want, sizeX, sizeY, 4, 6, nil)
	assert.Equal(t, want, got)
}

func TestToolkitCloseIdempotent(t *testing.T) {
	tk := New(WithThreads(2))
	tk.Close()
	assert.NotPanics(t, tk.Close)
}

func TestToolkitWithRunnerOwnsNoPool(t *testing.T) {
	tk := New(WithRunner(kernels.Sequential{}))
	// No owned pool to tear down; Close must still be safe.
	assert.NotPanics(t, tk.Close)
}
