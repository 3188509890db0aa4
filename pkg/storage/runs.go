package storage

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/civiclens/civiclens/ent"
	entrun "github.com/civiclens/civiclens/ent/pipelinerun"
	"github.com/civiclens/civiclens/pkg/models"
)

// ClaimNextRun locks and claims the oldest queued or running pipeline run.
// Queued runs are transitioned to running; running runs are adopted as-is so
// a crashed daemon's work is resumed. Returns (nil, nil) when no run is
// eligible. SKIP LOCKED keeps concurrent daemons from fighting over one row.
func (g *Gateway) ClaimNextRun(ctx context.Context, podID string) (*ent.PipelineRun, error) {
	var claimed *ent.PipelineRun
	err := g.Do(ctx, "runs.claim", func(ctx context.Context) error {
		tx, err := g.db.Tx(ctx)
		if err != nil {
			return fmt.Errorf("begin claim transaction: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		run, err := tx.PipelineRun.Query().
			Where(entrun.StatusIn(entrun.StatusQueued, entrun.StatusRunning)).
			Order(ent.Asc(entrun.FieldCreatedAt)).
			ForUpdate(sql.WithLockAction(sql.SkipLocked)).
			First(ctx)
		if ent.IsNotFound(err) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("query eligible run: %w", err)
		}

		update := tx.PipelineRun.UpdateOneID(run.ID).
			SetPodID(podID)
		if run.Status == entrun.StatusQueued {
			update.
				SetStatus(entrun.StatusRunning).
				SetStartedAt(time.Now().UTC())
		}
		claimed, err = update.Save(ctx)
		if err != nil {
			return fmt.Errorf("claim run %s: %w", run.ID, err)
		}
		return tx.Commit()
	})
	return claimed, err
}

// SaveRunProgress persists the run's step states and current step.
func (g *Gateway) SaveRunProgress(ctx context.Context, runID, currentStep string, states map[string]models.StepState) error {
	return g.Do(ctx, "runs.progress", func(ctx context.Context) error {
		return g.db.PipelineRun.UpdateOneID(runID).
			SetCurrentStep(currentStep).
			SetStepStates(states).
			Exec(ctx)
	})
}

// FinishRun records the run's terminal status. errorMessage is stored only
// for failures.
func (g *Gateway) FinishRun(ctx context.Context, runID string, status entrun.Status, errorMessage string) error {
	return g.Do(ctx, "runs.finish", func(ctx context.Context) error {
		update := g.db.PipelineRun.UpdateOneID(runID).
			SetStatus(status).
			SetCompletedAt(time.Now().UTC())
		if errorMessage != "" {
			update.SetErrorMessage(errorMessage)
		}
		return update.Exec(ctx)
	})
}

// RunCancelRequested re-reads the run's cancellation flag.
func (g *Gateway) RunCancelRequested(ctx context.Context, runID string) (bool, error) {
	var cancelled bool
	err := g.Do(ctx, "runs.cancel_check", func(ctx context.Context) error {
		run, queryErr := g.db.PipelineRun.Query().
			Where(entrun.ID(runID)).
			Select(entrun.FieldCancelRequested).
			Only(ctx)
		if queryErr != nil {
			return queryErr
		}
		cancelled = run.CancelRequested
		return nil
	})
	return cancelled, err
}

// EnqueueRun inserts a new queued pipeline run.
func (g *Gateway) EnqueueRun(ctx context.Context, includeInstagram bool, version string) (*ent.PipelineRun, error) {
	var run *ent.PipelineRun
	err := g.Do(ctx, "runs.enqueue", func(ctx context.Context) error {
		var createErr error
		run, createErr = g.db.PipelineRun.Create().
			SetIncludeInstagram(includeInstagram).
			SetPipelineVersion(version).
			Save(ctx)
		return createErr
	})
	return run, err
}
