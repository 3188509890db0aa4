// Event-dedup stage: refresh the similarity views and merge
// LLM-adjudicated duplicate events.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/civiclens/civiclens/pkg/config"
	"github.com/civiclens/civiclens/pkg/database"
	"github.com/civiclens/civiclens/pkg/dedup"
	"github.com/civiclens/civiclens/pkg/llm"
	"github.com/civiclens/civiclens/pkg/storage"
	"github.com/civiclens/civiclens/pkg/version"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "Log planned merges without writing")
	jobLimit := flag.Int("job-limit", 0, "Maximum duplicate groups to process (0 = unlimited)")
	minGroupSize := flag.Int("min-group-size", 2, "Smallest group size worth adjudicating")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, using existing environment", "error", err)
	}
	slog.Info("Starting event dedup", "version", version.Full(), "dry_run", *dryRun)

	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
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

	// Dedup never touches the object store.
	gateway := storage.NewGateway(dbClient, nil, cfg.Storage)

	client := llm.NewClient(cfg.LLM, cfg.LLM.APIKeys[0], "dedup")
	deduper := dedup.New(gateway, client, *dryRun, *minGroupSize)

	stats, err := deduper.Run(ctx, *jobLimit)
	if stats != nil {
		slog.Info("Dedup finished",
			"groups", stats.GroupsExamined,
			"groups_skipped", stats.GroupsSkipped,
			"merges_planned", stats.MergesPlanned,
			"merges_executed", stats.MergesExecuted,
			"merges_failed", stats.MergesFailed,
			"events_deleted", stats.EventsDeleted)
	}
	if err != nil {
		slog.Error("Dedup failed", "error", err)
		os.Exit(1)
	}
}
