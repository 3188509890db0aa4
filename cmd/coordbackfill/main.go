// Coordinate-backfill stage: resolve missing event coordinates through the
// location cache and the geocoding provider.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/civiclens/civiclens/pkg/config"
	"github.com/civiclens/civiclens/pkg/database"
	"github.com/civiclens/civiclens/pkg/geocode"
	"github.com/civiclens/civiclens/pkg/storage"
	"github.com/civiclens/civiclens/pkg/version"
)

func main() {
	pageSize := flag.Int("page-size", 500, "Events fetched per selection page")
	dryRun := flag.Bool("dry-run", false, "Report what would change without writing or geocoding")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, using existing environment", "error", err)
	}
	slog.Info("Starting coordinate backfill", "version", version.Full())

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

	// Backfill never touches the object store.
	gateway := storage.NewGateway(dbClient, nil, cfg.Storage)

	provider := geocode.NewNominatimProvider(os.Getenv("GEOCODER_BASE_URL"))
	backfiller := geocode.NewBackfiller(gateway, provider, *pageSize, *dryRun)

	stats, err := backfiller.Run(ctx)
	if stats != nil {
		slog.Info("Backfill finished",
			"virtual_cleared", stats.VirtualCleared,
			"cache_hits", stats.CacheHits,
			"provider_calls", stats.ProviderCalls,
			"events_updated", stats.EventsUpdated,
			"unresolved", stats.Unresolved)
	}
	if err != nil {
		slog.Error("Coordinate backfill failed", "error", err)
		os.Exit(1)
	}
}
