// Package storage provides the gateway every component uses to reach the
// database and the object store: bounded request rate, bounded retries with
// geometric back-off, duplicate-key swallowing, and chunked batch helpers.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/time/rate"

	"github.com/civiclens/civiclens/pkg/config"
	"github.com/civiclens/civiclens/pkg/database"
)

// Gateway mediates all database and object-store access. A single Gateway is
// shared process-wide; its rate limiter enforces the DB_RPS ceiling across
// all callers.
type Gateway struct {
	db      *database.Client
	store   ObjectStore
	limiter *rate.Limiter

	maxRetries int
	chunkSize  int
}

// NewGateway builds a gateway around an open database client and object
// store. store may be nil for stages that never touch object storage.
func NewGateway(db *database.Client, store ObjectStore, cfg config.StorageConfig) *Gateway {
	return &Gateway{
		db:         db,
		store:      store,
		limiter:    rate.NewLimiter(rate.Limit(cfg.DBRPS), 1),
		maxRetries: cfg.MaxRetries,
		chunkSize:  cfg.UpsertChunkSize,
	}
}

// DB exposes the wrapped client for query construction. Callers run the
// resulting operations through Do so rate limiting and retries apply.
func (g *Gateway) DB() *database.Client {
	return g.db
}

// Store returns the object store, or nil when not configured.
func (g *Gateway) Store() ObjectStore {
	return g.store
}

// ChunkSize returns the configured batch-upsert chunk bound.
func (g *Gateway) ChunkSize() int {
	return g.chunkSize
}

// Do runs op under the gateway's rate limiter, retrying transient errors
// with geometric back-off (1s * 2^attempt) up to the configured bound.
// Duplicate-key errors are not retried; they surface to the caller, which
// usually swallows them via SwallowDuplicate. Cancellation is checked before
// each attempt.
func (g *Gateway) Do(ctx context.Context, name string, op func(ctx context.Context) error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.Multiplier = 2
	bo.MaxInterval = 2 * time.Minute
	bo.MaxElapsedTime = 0 // bounded by retry count, not wall clock

	attempt := 0
	run := func() error {
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}
		if err := g.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}
		err := op(ctx)
		if err == nil {
			return nil
		}
		if IsDuplicateKey(err) || !IsTransient(err) {
			return backoff.Permanent(err)
		}
		attempt++
		if attempt >= g.maxRetries {
			return backoff.Permanent(fmt.Errorf("%s: retries exhausted after %d attempts: %w", name, attempt, err))
		}
		slog.Warn("Transient storage error, retrying",
			"op", name, "attempt", attempt, "error", err)
		return err
	}

	return backoff.Retry(run, backoff.WithContext(bo, ctx))
}

// IsTransient reports whether an error is worth retrying: server
// disconnects, connection resets, timeouts, and the PostgreSQL connection
// and cancellation error classes.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 08 - connection exceptions; 57014 - query_canceled;
		// 40001 - serialization_failure.
		if strings.HasPrefix(pgErr.Code, "08") || pgErr.Code == "57014" || pgErr.Code == "40001" {
			return true
		}
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"server disconnected",
		"connection reset",
		"connection refused",
		"broken pipe",
		"timeout",
		"timed out",
		"unexpected eof",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// IsDuplicateKey reports whether an error is a unique-constraint violation.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate key")
}

// SwallowDuplicate converts a duplicate-key error into success with empty
// data; every other error passes through.
func SwallowDuplicate(err error) error {
	if IsDuplicateKey(err) {
		return nil
	}
	return err
}
