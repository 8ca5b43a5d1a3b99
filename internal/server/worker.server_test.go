package serverApp

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPoolRunsEveryTask(t *testing.T) {
	pool, err := NewWorkerPool(2)
	require.NoError(t, err)
	defer pool.Release()

	var (
		wg   sync.WaitGroup
		done atomic.Int32
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		require.NoError(t, pool.Submit(func() {
			defer wg.Done()
			done.Add(1)
		}))
	}
	wg.Wait()

	assert.Equal(t, int32(20), done.Load())
	assert.Equal(t, 2, pool.Cap())
}

func TestWorkerPoolUnboundedSize(t *testing.T) {
	_, err := NewWorkerPool(-1)
	// ants treats a negative size as unbounded
	assert.NoError(t, err)
}
