//go:build amd64

package kernels

import "golang.org/x/sys/cpu"

func init() {
	if noAccelEnv() {
		return
	}
	// The batch layout was written for 128-bit lanes; SSE4.1 is the floor the
	// original intrinsics assumed.
	if cpu.X86.HasSSE41 {
		current = batchEngine{}
	}
}
