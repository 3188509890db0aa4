// Post-process stage: normalize raw scrape files from the object store into
// canonical posts, discover unknown actors, and archive processed files.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/civiclens/civiclens/pkg/config"
	"github.com/civiclens/civiclens/pkg/database"
	"github.com/civiclens/civiclens/pkg/ingest"
	"github.com/civiclens/civiclens/pkg/storage"
	"github.com/civiclens/civiclens/pkg/version"
)

func main() {
	platform := flag.String("platform", "all", "Platform to ingest: twitter, instagram, or all")
	migrationRun := flag.Bool("migration-run", false, "Re-process files without archiving them")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, using existing environment", "error", err)
	}
	slog.Info("Starting ingest", "version", version.Full(), "platform", *platform)

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

	store, err := storage.NewS3Store(ctx, cfg.Storage)
	if err != nil {
		slog.Error("Failed to initialize object store", "error", err)
		os.Exit(1)
	}
	gateway := storage.NewGateway(dbClient, store, cfg.Storage)

	type source struct {
		bucket   string
		platform string
	}
	var sources []source
	if *platform == "twitter" || *platform == "all" {
		sources = append(sources, source{cfg.Storage.TwitterBucket, "twitter"})
	}
	if *platform == "instagram" || *platform == "all" {
		sources = append(sources, source{cfg.Storage.InstagramBucket, "instagram"})
	}
	if len(sources) == 0 {
		slog.Error("Unknown platform", "platform", *platform)
		os.Exit(2)
	}

	ingestor := ingest.NewIngestor(gateway, *migrationRun)
	failed := false
	for _, src := range sources {
		stats, err := ingestor.Run(ctx, src.bucket, src.platform)
		if err != nil {
			slog.Error("Ingest failed", "bucket", src.bucket, "error", err)
			failed = true
			continue
		}
		slog.Info("Ingest finished",
			"bucket", src.bucket,
			"files", stats.FilesProcessed,
			"file_errors", stats.FilesFailed,
			"posts_inserted", stats.PostsInserted,
			"duplicates", stats.PostsDuplicate,
			"unknown_actors", stats.UnknownActors)
		if stats.FilesFailed > 0 {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
