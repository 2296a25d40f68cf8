package batch

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPoolDefaultsToGOMAXPROCS(t *testing.T) {
	p := newPool(0)
	defer p.close()
	assert.Equal(t, runtime.GOMAXPROCS(0), p.numWorkers)
}

func TestParallelForCoversEveryIndex(t *testing.T) {
	p := newPool(4)
	defer p.close()

	n := 100
	results := make([]int, n)
	p.parallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		assert.Equal(t, i*2, results[i])
	}
}

func TestParallelForSingleWorkerRunsInline(t *testing.T) {
	p := newPool(1)
	defer p.close()

	called := false
	p.parallelFor(10, func(start, end int) {
		called = true
		assert.Equal(t, 0, start)
		assert.Equal(t, 10, end)
	})
	assert.True(t, called)
}

func TestParallelForZeroIsNoop(t *testing.T) {
	p := newPool(4)
	defer p.close()

	p.parallelFor(0, func(start, end int) {
		t.Fatal("fn should not be called for n <= 0")
	})
}
