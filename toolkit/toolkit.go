// Package toolkit is the public surface of the filter library. A Toolkit
// owns the worker pool the blur convolution is scheduled on, the logger that
// receives diagnostics, and the scratch buffers reused across calls.
//
// Instantiate one Toolkit and share it; methods may be called from multiple
// goroutines as long as each call supplies distinct source and destination
// buffers. Closing the Toolkit while calls are in flight leaves their
// destination buffers in an undefined partial state - that is a caller
// contract, not a runtime-checked condition.
package toolkit

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/nvr-ai/go-toolkit/kernels"
	"github.com/nvr-ai/go-toolkit/workerpool"
)

// Toolkit executes the filter operations.
type Toolkit struct {
	log     *logrus.Logger
	pool    *workerpool.Pool
	run     kernels.Runner
	threads int
	scratch sync.Pool
}

// Option configures a Toolkit.
type Option func(*Toolkit)

// WithThreads limits the number of pool workers. n <= 0 means GOMAXPROCS.
func WithThreads(n int) Option {
	return func(tk *Toolkit) { tk.threads = n }
}

// WithLogger sets the logger diagnostics are emitted to.
func WithLogger(log *logrus.Logger) Option {
	return func(tk *Toolkit) { tk.log = log }
}

// WithRunner injects the scheduler the blur rows are partitioned over,
// instead of an owned pool. kernels.Sequential{} gives deterministic
// single-threaded execution.
func WithRunner(run kernels.Runner) Option {
	return func(tk *Toolkit) { tk.run = run }
}

// New creates a Toolkit. Unless WithRunner is given, it spawns a worker pool
// that lives until Close.
func New(opts ...Option) *Toolkit {
	tk := &Toolkit{
		log: logrus.StandardLogger(),
	}
	tk.scratch.New = func() any { return new(scratchBuffers) }
	for _, opt := range opts {
		opt(tk)
	}
	if tk.run == nil {
		tk.pool = workerpool.New(tk.threads)
		tk.run = tk.pool
	}
	return tk
}

// Close destroys the owned worker pool, if any. Safe to call more than once.
// Must not race with in-flight calls; see the package comment.
func (tk *Toolkit) Close() {
	if tk.pool != nil {
		tk.pool.Close()
	}
}
