package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/civiclens/civiclens/ent"
	entrun "github.com/civiclens/civiclens/ent/pipelinerun"
	"github.com/civiclens/civiclens/pkg/config"
	"github.com/civiclens/civiclens/pkg/models"
	"github.com/civiclens/civiclens/pkg/storage"
)

// Orchestrator is the pipeline daemon loop. It claims one run at a time and
// drives it through the stage sequence, persisting step states after every
// transition so a crash resumes instead of repeating work.
type Orchestrator struct {
	gateway *storage.Gateway
	cfg     config.PipelineConfig
	podID   string
	version string

	stopRequested atomic.Bool
}

// NewOrchestrator builds the daemon. podID identifies this instance in
// claimed runs.
func NewOrchestrator(gateway *storage.Gateway, cfg config.PipelineConfig, podID, version string) *Orchestrator {
	return &Orchestrator{
		gateway: gateway,
		cfg:     cfg,
		podID:   podID,
		version: version,
	}
}

// RequestStop makes the daemon exit after the current run finishes. Safe to
// call from a signal handler goroutine.
func (o *Orchestrator) RequestStop() {
	o.stopRequested.Store(true)
}

// Run polls for eligible runs until the context ends or a stop is requested.
func (o *Orchestrator) Run(ctx context.Context) error {
	slog.Info("Pipeline daemon started",
		"pod_id", o.podID, "poll_interval", o.cfg.PollInterval)
	for {
		if o.stopRequested.Load() {
			slog.Info("Stop requested, daemon exiting")
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		run, err := o.gateway.ClaimNextRun(ctx, o.podID)
		if err != nil {
			slog.Error("Run claim failed", "error", err)
		} else if run != nil {
			o.executeRun(ctx, run)
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(o.cfg.PollInterval):
		}
	}
}

// executeRun drives one run through the stage sequence. Completed steps from
// a previous attempt are skipped.
func (o *Orchestrator) executeRun(ctx context.Context, run *ent.PipelineRun) {
	slog.Info("Executing pipeline run",
		"run_id", run.ID, "include_instagram", run.IncludeInstagram,
		"resumed", run.StartedAt != nil && len(run.StepStates) > 0)

	states := run.StepStates
	if states == nil {
		states = make(map[string]models.StepState)
	}

	for _, stage := range config.StageOrder {
		if o.stopRequested.Load() {
			// Leave the run in running state; the next daemon resumes it.
			slog.Info("Stop requested mid-run, leaving run resumable",
				"run_id", run.ID, "next_stage", stage)
			return
		}
		if cancelled, err := o.gateway.RunCancelRequested(ctx, run.ID); err != nil {
			slog.Warn("Cancel check failed", "run_id", run.ID, "error", err)
		} else if cancelled {
			slog.Info("Run cancelled", "run_id", run.ID)
			o.finish(ctx, run.ID, entrun.StatusCancelled, "cancel requested")
			return
		}

		if states[stage].Status == models.StepStatusCompleted {
			continue
		}
		if config.InstagramStages[stage] && !run.IncludeInstagram {
			states[stage] = models.StepState{Status: models.StepStatusSkipped}
			o.saveProgress(ctx, run.ID, stage, states)
			continue
		}
		argv := o.cfg.StageCommand(stage)
		if len(argv) == 0 {
			slog.Info("Stage has no configured command, skipping",
				"run_id", run.ID, "stage", stage)
			states[stage] = models.StepState{Status: models.StepStatusSkipped}
			o.saveProgress(ctx, run.ID, stage, states)
			continue
		}

		if err := o.executeStage(ctx, run.ID, stage, argv, states); err != nil {
			o.finish(ctx, run.ID, entrun.StatusFailed, err.Error())
			return
		}
	}

	o.finish(ctx, run.ID, entrun.StatusSucceeded, "")
	slog.Info("Pipeline run succeeded", "run_id", run.ID)
}

// executeStage runs one stage and records its step state. A non-zero exit
// code is a stage failure.
func (o *Orchestrator) executeStage(ctx context.Context, runID, stage string, argv []string, states map[string]models.StepState) error {
	started := time.Now().UTC()
	states[stage] = models.StepState{
		Status:    models.StepStatusRunning,
		StartedAt: &started,
	}
	o.saveProgress(ctx, runID, stage, states)
	slog.Info("Stage started", "run_id", runID, "stage", stage, "command", argv[0])

	result, err := runStage(ctx, runID, stage, argv, o.cfg.LogTailLines)
	completed := time.Now().UTC()
	if err != nil {
		states[stage] = models.StepState{
			Status:          models.StepStatusFailed,
			StartedAt:       &started,
			CompletedAt:     &completed,
			DurationSeconds: completed.Sub(started).Seconds(),
		}
		o.saveProgress(ctx, runID, stage, states)
		return fmt.Errorf("stage %s: %w", stage, err)
	}

	state := models.StepState{
		StartedAt:       &started,
		CompletedAt:     &completed,
		DurationSeconds: result.duration.Seconds(),
		ReturnCode:      &result.returnCode,
		LogTail:         result.logTail,
	}
	if result.returnCode == 0 {
		state.Status = models.StepStatusCompleted
	} else {
		state.Status = models.StepStatusFailed
	}
	states[stage] = state
	o.saveProgress(ctx, runID, stage, states)

	if result.returnCode != 0 {
		return fmt.Errorf("stage %s exited with code %d", stage, result.returnCode)
	}
	slog.Info("Stage completed",
		"run_id", runID, "stage", stage, "duration", result.duration)
	return nil
}

func (o *Orchestrator) saveProgress(ctx context.Context, runID, stage string, states map[string]models.StepState) {
	if err := o.gateway.SaveRunProgress(ctx, runID, stage, states); err != nil {
		slog.Error("Step state persistence failed",
			"run_id", runID, "stage", stage, "error", err)
	}
}

func (o *Orchestrator) finish(ctx context.Context, runID string, status entrun.Status, message string) {
	if err := o.gateway.FinishRun(ctx, runID, status, message); err != nil {
		slog.Error("Run finish persistence failed",
			"run_id", runID, "status", status, "error", err)
	}
}
