package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/civiclens/civiclens/pkg/models"
)

// PipelineRun is one durable end-to-end invocation of the stage sequence.
// step_states makes crashed runs resumable without repeating completed steps.
type PipelineRun struct {
	ent.Schema
}

// Fields of the PipelineRun.
func (PipelineRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.Enum("status").
			Values("queued", "running", "succeeded", "failed", "cancelled").
			Default("queued"),
		field.Bool("include_instagram").
			Default(true),
		field.JSON("step_states", map[string]models.StepState{}).
			Optional(),
		field.String("current_step").
			Optional(),
		field.Bool("cancel_requested").
			Default(false),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Daemon instance that claimed the run"),
		field.String("pipeline_version").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional(),
	}
}

// Indexes of the PipelineRun.
func (PipelineRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
	}
}
