// Image-download stage: fetch post media into the media bucket with bounded
// concurrency and deterministic keys.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/civiclens/civiclens/pkg/config"
	"github.com/civiclens/civiclens/pkg/database"
	"github.com/civiclens/civiclens/pkg/media"
	"github.com/civiclens/civiclens/pkg/storage"
	"github.com/civiclens/civiclens/pkg/version"
)

func main() {
	platform := flag.String("platform", "instagram", "Platform whose posts need media")
	pageSize := flag.Int("page-size", 500, "Posts fetched per selection page")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, using existing environment", "error", err)
	}
	slog.Info("Starting media fetch", "version", version.Full(), "platform", *platform)

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

	fetcher := media.NewFetcher(gateway, cfg.Media, cfg.Storage.MediaBucket)
	stats, err := fetcher.Run(ctx, *platform, *pageSize)
	if err != nil {
		slog.Error("Media fetch failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Media fetch finished",
		"posts", stats.PostsSeen,
		"downloaded", stats.Downloaded,
		"already_stored", stats.AlreadyStored,
		"expired", stats.Expired,
		"permanently_expired", stats.PermExpired,
		"failed", stats.Failed)
}
