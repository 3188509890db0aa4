package models

import "time"

// Step status values recorded in PipelineRun.step_states.
const (
	StepStatusRunning   = "running"
	StepStatusCompleted = "completed"
	StepStatusSkipped   = "skipped"
	StepStatusFailed    = "failed"
)

// StepState is the durable per-stage record inside a pipeline run.
// LogTail holds at most the last N stdout lines (default 200).
type StepState struct {
	Status          string     `json:"status"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	DurationSeconds float64    `json:"duration_seconds,omitempty"`
	ReturnCode      *int       `json:"return_code,omitempty"`
	LogTail         []string   `json:"log_tail,omitempty"`
}

// MergeGroup is one merge decision emitted by the dedup adjudicator.
type MergeGroup struct {
	MasterEventID     string   `json:"master_event_id"`
	DuplicateEventIDs []string `json:"duplicate_event_ids"`
	Reason            string   `json:"reason,omitempty"`
}

// MergeDecision is the LLM's partition of a duplicate group.
// Confidence gates execution: only "high" and "medium" merges run.
type MergeDecision struct {
	MergeGroups  []MergeGroup `json:"merge_groups"`
	KeepSeparate []string     `json:"keep_separate,omitempty"`
	Confidence   string       `json:"confidence"`
	Reasoning    string       `json:"reasoning,omitempty"`
}

// Actionable reports whether the decision confidence permits merging.
func (d *MergeDecision) Actionable() bool {
	return d.Confidence == "high" || d.Confidence == "medium"
}

// DuplicateGroup is one row set read from the precomputed duplicate-group
// materialized view. Pairs enumerate the pairwise similarity details.
type DuplicateGroup struct {
	GroupID            string
	EventIDs           []string
	MaxSimilarityScore float64
	AvgSimilarityScore float64
	ConfidenceLevel    string
	GroupSize          int
	Pairs              []DuplicatePair
}

// DuplicatePair is one scored pair inside a duplicate group.
type DuplicatePair struct {
	EventID1   string
	EventID2   string
	Similarity float64
}
