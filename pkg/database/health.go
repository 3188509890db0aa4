package database

import (
	"context"
	"fmt"
	"time"
)

// HealthCheck verifies database connectivity with a bounded ping.
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// RefreshDuplicateGroups recomputes the duplicate-pair and duplicate-group
// materialized views. Called before a dedup pass so groups reflect the
// extractor's latest output.
func (c *Client) RefreshDuplicateGroups(ctx context.Context) error {
	for _, view := range []string{"event_duplicate_pairs", "event_duplicate_groups"} {
		if _, err := c.db.ExecContext(ctx, "REFRESH MATERIALIZED VIEW "+view); err != nil {
			return fmt.Errorf("refresh %s: %w", view, err)
		}
	}
	return nil
}
