// Pipeline daemon: claims queued pipeline runs and drives each through the
// fixed stage sequence as child processes, with resumable step states.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/civiclens/civiclens/pkg/config"
	"github.com/civiclens/civiclens/pkg/database"
	"github.com/civiclens/civiclens/pkg/pipeline"
	"github.com/civiclens/civiclens/pkg/storage"
	"github.com/civiclens/civiclens/pkg/version"
)

// resolvePodID determines this daemon's identifier for run claiming.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	enqueue := flag.Bool("enqueue", false, "Insert one queued run and exit")
	includeInstagram := flag.Bool("include-instagram", true, "Run Instagram stages in the enqueued run")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, using existing environment", "error", err)
	}

	podID := resolvePodID()
	slog.Info("Starting pipeline daemon", "version", version.Full(), "pod_id", podID)

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

	// The daemon itself never touches the object store; stage binaries do.
	gateway := storage.NewGateway(dbClient, nil, cfg.Storage)

	if *enqueue {
		run, err := gateway.EnqueueRun(ctx, *includeInstagram, version.Full())
		if err != nil {
			slog.Error("Failed to enqueue run", "error", err)
			os.Exit(1)
		}
		slog.Info("Run enqueued", "run_id", run.ID, "include_instagram", *includeInstagram)
		return
	}

	orchestrator := pipeline.NewOrchestrator(gateway, cfg.Pipeline, podID, version.Full())

	// SIGTERM/SIGINT stop the daemon after the current run finishes.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-signals
		slog.Info("Signal received, stopping after current run", "signal", sig)
		orchestrator.RequestStop()
	}()

	if err := orchestrator.Run(ctx); err != nil && err != context.Canceled {
		slog.Error("Pipeline daemon failed", "error", err)
		os.Exit(1)
	}
}
