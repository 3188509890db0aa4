// Package queue runs the extraction worker pool: one worker per API key,
// each with an independent cooldown, pulling batches from a shared queue
// with staggered startup.
package queue

import (
	"context"
	"errors"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/civiclens/civiclens/pkg/batch"
	"github.com/civiclens/civiclens/pkg/llm"
)

// ErrPoolTimeout is returned when the outer pool deadline expires before the
// queue drains.
var ErrPoolTimeout = errors.New("worker pool timed out")

// LLMClient is the per-worker LLM surface handed to the batch executor.
// The implementation enforces the worker's cooldown before every call.
type LLMClient interface {
	Chat(ctx context.Context, messages []openai.ChatCompletionMessage, opts llm.ChatOptions) (*openai.ChatCompletionMessage, error)
	Embed(ctx context.Context, text string) ([]float64, error)
	KeyLabel() string
	Model() string
}

// BatchExecutor processes one batch end to end and reports how many events
// were persisted. A returned error means the batch's posts stay unprocessed.
type BatchExecutor interface {
	ExecuteBatch(ctx context.Context, workerID string, client LLMClient, b batch.Batch) (int, error)
}

// CancelCheck reports whether the current job has been cancelled. Workers
// consult it before starting each new batch; in-flight batches finish.
type CancelCheck func(ctx context.Context) bool

// BatchResult is one batch's outcome.
type BatchResult struct {
	BatchIndex      int
	WorkerID        string
	EventsPersisted int
	Posts           int
	Duration        time.Duration
	Err             error
}

// PoolStats summarizes a pool run.
type PoolStats struct {
	BatchesProcessed int
	BatchesFailed    int
	BatchesSkipped   int
	EventsPersisted  int
	Cancelled        bool
}
