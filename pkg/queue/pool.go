package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/civiclens/civiclens/pkg/batch"
	"github.com/civiclens/civiclens/pkg/config"
	"github.com/civiclens/civiclens/pkg/llm"
)

// Pool dispatches batches to workers and aggregates results. One pool run
// processes one queue of batches to completion or cancellation.
type Pool struct {
	cfg      config.QueueConfig
	executor BatchExecutor
	workers  []*Worker
	clients  []*keyClient
}

// NewPool builds a pool with one worker per LLM client, capped by the
// effective worker count.
func NewPool(cfg config.QueueConfig, llmCfg config.LLMConfig, executor BatchExecutor, explicitWorkers int) (*Pool, error) {
	if len(llmCfg.APIKeys) == 0 {
		return nil, fmt.Errorf("no LLM API keys configured")
	}
	count := cfg.WorkerCount(explicitWorkers, len(llmCfg.APIKeys))

	p := &Pool{cfg: cfg, executor: executor}
	for i := 0; i < count; i++ {
		label := fmt.Sprintf("key-%d", i+1)
		client := newKeyClient(llm.NewClient(llmCfg, llmCfg.APIKeys[i], label), cfg.Cooldown)
		p.clients = append(p.clients, client)
		p.workers = append(p.workers, NewWorker(
			fmt.Sprintf("worker-%d", i), i, client, executor, cfg))
	}
	return p, nil
}

// WorkerCount returns the number of live workers.
func (p *Pool) WorkerCount() int {
	return len(p.workers)
}

// Run processes every batch and returns aggregate stats. cancelled (may be
// nil) is polled before each dispatch; on cancellation in-flight batches
// finish, remaining batches are skipped, and their posts stay unprocessed.
func (p *Pool) Run(ctx context.Context, batches []batch.Batch, cancelled CancelCheck) (PoolStats, error) {
	stats := PoolStats{}
	if len(batches) == 0 {
		return stats, nil
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.PoolTimeout)
	defer cancel()

	slog.Info("Starting worker pool",
		"workers", len(p.workers), "batches", len(batches),
		"cooldown", p.cfg.Cooldown)

	jobs := make(chan job)
	results := make(chan BatchResult, len(batches))
	for _, w := range p.workers {
		w.Start(ctx, jobs, results)
	}

	// Feed the queue, checking cancellation between dispatches. Workers pull;
	// nothing buffers beyond the unprocessed batch list itself.
	go func() {
		defer close(jobs)
		lastPoll := time.Time{}
		cancelSeen := false
		for i, b := range batches {
			if cancelled != nil && time.Since(lastPoll) >= p.cfg.CancelPollInterval {
				cancelSeen = cancelled(ctx)
				lastPoll = time.Now()
			}
			if cancelSeen {
				slog.Info("Cancellation requested, skipping remaining batches",
					"skipped", len(batches)-i)
				return
			}
			select {
			case jobs <- job{index: i, batch: b}:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Collect until every worker exits, then drain what they produced.
	// Workers stop on their own once the jobs channel closes.
	done := make(chan struct{})
	go func() {
		for _, w := range p.workers {
			w.Wait()
		}
		close(done)
	}()

	collected := 0
	for {
		select {
		case r := <-results:
			collected++
			if r.Err != nil {
				stats.BatchesFailed++
			} else {
				stats.BatchesProcessed++
				stats.EventsPersisted += r.EventsPersisted
			}
		case <-done:
			for {
				select {
				case r := <-results:
					collected++
					if r.Err != nil {
						stats.BatchesFailed++
					} else {
						stats.BatchesProcessed++
						stats.EventsPersisted += r.EventsPersisted
					}
				default:
					stats.BatchesSkipped = len(batches) - collected
					stats.Cancelled = cancelled != nil && cancelled(context.WithoutCancel(ctx))
					p.logSummary(stats)
					if ctx.Err() == context.DeadlineExceeded {
						return stats, ErrPoolTimeout
					}
					return stats, nil
				}
			}
		}
	}
}

func (p *Pool) logSummary(stats PoolStats) {
	slog.Info("Worker pool finished",
		"processed", stats.BatchesProcessed,
		"failed", stats.BatchesFailed,
		"skipped", stats.BatchesSkipped,
		"events", stats.EventsPersisted,
		"cancelled", stats.Cancelled)
}
