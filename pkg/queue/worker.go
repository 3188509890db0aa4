package queue

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/civiclens/civiclens/pkg/batch"
	"github.com/civiclens/civiclens/pkg/config"
)

type job struct {
	index int
	batch batch.Batch
}

// Worker owns one API key and processes batches pulled from the shared
// queue. Workers after the first delay their start by a random interval so
// they do not all hit the API at the same moment.
type Worker struct {
	id       string
	index    int
	client   *keyClient
	executor BatchExecutor
	cfg      config.QueueConfig

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWorker builds a worker bound to one key client.
func NewWorker(id string, index int, client *keyClient, executor BatchExecutor, cfg config.QueueConfig) *Worker {
	return &Worker{
		id:       id,
		index:    index,
		client:   client,
		executor: executor,
		cfg:      cfg,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the worker loop over the jobs channel.
func (w *Worker) Start(ctx context.Context, jobs <-chan job, results chan<- BatchResult) {
	w.wg.Add(1)
	go w.run(ctx, jobs, results)
}

// Stop signals the worker to stop after its current batch and waits for it.
// Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Wait blocks until the worker's loop exits (queue drained or stopped).
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) run(ctx context.Context, jobs <-chan job, results chan<- BatchResult) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)

	if delay := w.startupDelay(); delay > 0 {
		log.Info("Worker staggering startup", "delay", delay)
		select {
		case <-time.After(delay):
		case <-w.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
	log.Info("Worker started", "key", w.client.KeyLabel())

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		case j, ok := <-jobs:
			if !ok {
				log.Info("Queue drained, worker done",
					"requests_made", w.client.RequestsMade())
				return
			}
			result := w.process(ctx, j)
			select {
			case results <- result:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (w *Worker) process(ctx context.Context, j job) BatchResult {
	log := slog.With("worker_id", w.id, "batch", j.index)
	log.Info("Processing batch",
		"posts", len(j.batch.Posts), "estimated_tokens", j.batch.EstimatedTokens)

	// Bound each batch so a hung call cannot stall the worker past the
	// per-batch budget.
	batchCtx := ctx
	if w.cfg.BatchResultTimeout > 0 {
		var cancel context.CancelFunc
		batchCtx, cancel = context.WithTimeout(ctx, w.cfg.BatchResultTimeout)
		defer cancel()
	}

	start := time.Now()
	events, err := w.executor.ExecuteBatch(batchCtx, w.id, w.client, j.batch)
	elapsed := time.Since(start)

	if err != nil {
		log.Error("Batch failed, posts stay unprocessed",
			"duration", elapsed, "error", err)
	} else {
		log.Info("Batch complete", "events", events, "duration", elapsed)
	}
	return BatchResult{
		BatchIndex:      j.index,
		WorkerID:        w.id,
		EventsPersisted: events,
		Posts:           len(j.batch.Posts),
		Duration:        elapsed,
		Err:             err,
	}
}

// startupDelay is zero for worker 0 and a random duration in
// [StaggerMin, StaggerMax] for the rest.
func (w *Worker) startupDelay() time.Duration {
	if w.index == 0 {
		return 0
	}
	span := w.cfg.StaggerMax - w.cfg.StaggerMin
	if span <= 0 {
		return w.cfg.StaggerMin
	}
	return w.cfg.StaggerMin + time.Duration(rand.Int64N(int64(span)))
}
