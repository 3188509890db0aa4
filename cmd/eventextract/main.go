// Event-process stage: pack unprocessed posts into batches and run the LLM
// extraction worker pool over them.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/civiclens/civiclens/pkg/batch"
	"github.com/civiclens/civiclens/pkg/config"
	"github.com/civiclens/civiclens/pkg/database"
	"github.com/civiclens/civiclens/pkg/extract"
	"github.com/civiclens/civiclens/pkg/queue"
	"github.com/civiclens/civiclens/pkg/storage"
	"github.com/civiclens/civiclens/pkg/version"
)

func main() {
	maxWorkers := flag.Int("max-workers", 0, "Worker count override (0 = use MAX_WORKERS)")
	cooldownSeconds := flag.Int("cooldown-seconds", 0, "Per-key cooldown override in seconds (0 = use env)")
	jobLimit := flag.Int("job-limit", 0, "Maximum posts to pull into batches (0 = unlimited)")
	batchSize := flag.Int("batch-size", 0, "Max posts per batch override (0 = use env)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, using existing environment", "error", err)
	}
	slog.Info("Starting event extraction", "version", version.Full())

	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *cooldownSeconds > 0 {
		cfg.Queue.Cooldown = time.Duration(*cooldownSeconds) * time.Second
	}
	if *batchSize > 0 {
		cfg.Batch.MaxPostsPerBatch = *batchSize
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = dbClient.Close() }()

	store, err := storage.NewS3Store(ctx, cfg.Storage)
	if err != nil {
		slog.Error("Failed to initialize object store", "error", err)
		os.Exit(1)
	}
	gateway := storage.NewGateway(dbClient, store, cfg.Storage)

	builder := batch.NewBuilder(gateway, cfg.Batch)
	batches, err := builder.Build(ctx, *jobLimit)
	if err != nil {
		slog.Error("Batch building failed", "error", err)
		os.Exit(1)
	}
	if len(batches) == 0 {
		slog.Info("No unprocessed posts, nothing to do")
		return
	}

	slugs := extract.NewSlugCache(gateway)
	engine := extract.NewEngine(gateway, slugs, cfg.LLM.UseFunctionTools)
	pool, err := queue.NewPool(cfg.Queue, cfg.LLM, engine, *maxWorkers)
	if err != nil {
		slog.Error("Worker pool setup failed", "error", err)
		os.Exit(1)
	}

	stats, err := pool.Run(ctx, batches, cancelPredicate(gateway))
	slog.Info("Extraction finished",
		"batches_processed", stats.BatchesProcessed,
		"batches_failed", stats.BatchesFailed,
		"batches_skipped", stats.BatchesSkipped,
		"events_persisted", stats.EventsPersisted,
		"cancelled", stats.Cancelled)
	if err != nil {
		slog.Error("Worker pool failed", "error", err)
		os.Exit(1)
	}
	if stats.BatchesFailed > 0 {
		os.Exit(1)
	}
}

// cancelPredicate consults the owning pipeline run's cancel flag when this
// stage runs under the orchestrator; standalone invocations never cancel.
func cancelPredicate(gateway *storage.Gateway) queue.CancelCheck {
	runID := os.Getenv("PIPELINE_RUN_ID")
	if runID == "" {
		return func(ctx context.Context) bool { return false }
	}
	return func(ctx context.Context) bool {
		cancelled, err := gateway.RunCancelRequested(ctx, runID)
		if err != nil {
			slog.Warn("Cancel check failed", "run_id", runID, "error", err)
			return false
		}
		return cancelled
	}
}
