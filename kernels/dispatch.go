package kernels

import "os"

// current is the engine used by the blur driver. It is selected once at init
// by the per-architecture dispatch files and only changed afterwards through
// SetEngine (tests).
var current Engine = scalarEngine{}

// noAccelEnv reports whether TOOLKIT_NO_SIMD is set, forcing the scalar
// reference engine regardless of CPU capabilities.
func noAccelEnv() bool {
	return os.Getenv("TOOLKIT_NO_SIMD") != ""
}

// Current returns the engine in use.
func Current() Engine {
	return current
}

// SetEngine swaps the active engine and returns the previous one. Not safe
// to call concurrently with running blurs; intended for tests and
// benchmarks.
func SetEngine(e Engine) Engine {
	prev := current
	current = e
	return prev
}

// Engines returns every available implementation, reference first.
func Engines() []Engine {
	return []Engine{scalarEngine{}, batchEngine{}}
}
