package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToGOMAXPROCS(t *testing.T) {
	p := New(0)
	defer p.Close()
	assert.Equal(t, runtime.GOMAXPROCS(0), p.NumWorkers())

	p2 := New(-3)
	defer p2.Close()
	assert.Equal(t, runtime.GOMAXPROCS(0), p2.NumWorkers())
}

func TestParallelForCoversEveryIndexOnce(t *testing.T) {
	p := New(4)
	defer p.Close()

	for _, n := range []int{1, 2, 3, 4, 5, 7, 100, 1000} {
		hits := make([]int32, n)
		p.ParallelFor(n, func(start, end int) {
			require.LessOrEqual(t, start, end)
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			require.Equal(t, int32(1), h, "n=%d index %d", n, i)
		}
	}
}

func TestParallelForZeroAndNegative(t *testing.T) {
	p := New(2)
	defer p.Close()

	called := false
	p.ParallelFor(0, func(start, end int) { called = true })
	p.ParallelFor(-5, func(start, end int) { called = true })
	assert.False(t, called)
}

func TestParallelForSingleWorkerRunsInline(t *testing.T) {
	p := New(1)
	defer p.Close()

	var spans [][2]int
	p.ParallelFor(10, func(start, end int) {
		spans = append(spans, [2]int{start, end})
	})
	// One worker means one inline call, no goroutine handoff, so appending
	// without a lock above is safe.
	require.Equal(t, [][2]int{{0, 10}}, spans)
}

func TestParallelForAfterCloseFallsBackSequential(t *testing.T) {
	p := New(3)
	p.Close()

	var spans [][2]int
	p.ParallelFor(8, func(start, end int) {
		spans = append(spans, [2]int{start, end})
	})
	require.Equal(t, [][2]int{{0, 8}}, spans)
}

func TestCloseIdempotent(t *testing.T) {
	p := New(2)
	p.Close()
	assert.NotPanics(t, func() { p.Close() })
}

func TestParallelForChunksAreContiguous(t *testing.T) {
	p := New(4)
	defer p.Close()

	var mu atomic.Int64
	type span struct{ start, end int }
	spanC := make(chan span, 8)
	p.ParallelFor(10, func(start, end int) {
		mu.Add(int64(end - start))
		spanC <- span{start, end}
	})
	close(spanC)

	assert.Equal(t, int64(10), mu.Load())
	covered := make([]bool, 10)
	for s := range spanC {
		for i := s.start; i < s.end; i++ {
			require.False(t, covered[i], "index %d covered twice", i)
			covered[i] = true
		}
	}
	for i, c := range covered {
		assert.True(t, c, "index %d not covered", i)
	}
}
