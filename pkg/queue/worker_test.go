package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civiclens/civiclens/pkg/batch"
	"github.com/civiclens/civiclens/pkg/config"
)

// blockingExecutor hangs until its context expires, standing in for an LLM
// call that never returns.
type blockingExecutor struct{}

func (blockingExecutor) ExecuteBatch(ctx context.Context, _ string, _ LLMClient, _ batch.Batch) (int, error) {
	<-ctx.Done()
	return 0, ctx.Err()
}

// instantExecutor succeeds immediately.
type instantExecutor struct{ events int }

func (e instantExecutor) ExecuteBatch(context.Context, string, LLMClient, batch.Batch) (int, error) {
	return e.events, nil
}

func TestProcessEnforcesBatchResultTimeout(t *testing.T) {
	w := NewWorker("worker_0", 0, nil, blockingExecutor{}, config.QueueConfig{
		BatchResultTimeout: 20 * time.Millisecond,
	})

	done := make(chan BatchResult, 1)
	go func() { done <- w.process(context.Background(), job{index: 3}) }()

	select {
	case result := <-done:
		require.Error(t, result.Err)
		assert.ErrorIs(t, result.Err, context.DeadlineExceeded)
		assert.Equal(t, 3, result.BatchIndex)
	case <-time.After(2 * time.Second):
		t.Fatal("batch was not cut off by the result timeout")
	}
}

func TestProcessWithoutTimeoutPassesContextThrough(t *testing.T) {
	w := NewWorker("worker_0", 0, nil, instantExecutor{events: 2}, config.QueueConfig{})

	result := w.process(context.Background(), job{index: 1, batch: batch.Batch{}})

	require.NoError(t, result.Err)
	assert.Equal(t, 2, result.EventsPersisted)
	assert.Equal(t, "worker_0", result.WorkerID)
}

func TestStartupDelayBounds(t *testing.T) {
	cfg := config.QueueConfig{
		StaggerMin: 30 * time.Second,
		StaggerMax: 90 * time.Second,
	}

	first := NewWorker("worker_0", 0, nil, nil, cfg)
	assert.Zero(t, first.startupDelay())

	later := NewWorker("worker_3", 3, nil, nil, cfg)
	for i := 0; i < 50; i++ {
		delay := later.startupDelay()
		assert.GreaterOrEqual(t, delay, cfg.StaggerMin)
		assert.LessOrEqual(t, delay, cfg.StaggerMax)
	}
}
