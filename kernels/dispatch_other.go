//go:build !amd64 && !arm64

package kernels

// Other architectures keep the scalar reference engine selected by default.
