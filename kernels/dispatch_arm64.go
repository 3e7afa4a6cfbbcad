//go:build arm64

package kernels

import "golang.org/x/sys/cpu"

func init() {
	if noAccelEnv() {
		return
	}
	// NEON is baseline on arm64; the capability check guards exotic runtimes.
	if cpu.ARM64.HasASIMD {
		current = batchEngine{}
	}
}
