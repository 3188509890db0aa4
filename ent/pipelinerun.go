// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/civiclens/civiclens/ent/pipelinerun"
	"github.com/civiclens/civiclens/pkg/models"
)

// PipelineRun is the model entity for the PipelineRun schema.
type PipelineRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Status holds the value of the "status" field.
	Status pipelinerun.Status `json:"status,omitempty"`
	// IncludeInstagram holds the value of the "include_instagram" field.
	IncludeInstagram bool `json:"include_instagram,omitempty"`
	// StepStates holds the value of the "step_states" field.
	StepStates map[string]models.StepState `json:"step_states,omitempty"`
	// CurrentStep holds the value of the "current_step" field.
	CurrentStep string `json:"current_step,omitempty"`
	// CancelRequested holds the value of the "cancel_requested" field.
	CancelRequested bool `json:"cancel_requested,omitempty"`
	// Daemon instance that claimed the run
	PodID *string `json:"pod_id,omitempty"`
	// PipelineVersion holds the value of the "pipeline_version" field.
	PipelineVersion string `json:"pipeline_version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinerun.FieldStepStates:
			values[i] = new([]byte)
		case pipelinerun.FieldIncludeInstagram, pipelinerun.FieldCancelRequested:
			values[i] = new(sql.NullBool)
		case pipelinerun.FieldID, pipelinerun.FieldStatus, pipelinerun.FieldCurrentStep, pipelinerun.FieldPodID, pipelinerun.FieldPipelineVersion, pipelinerun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case pipelinerun.FieldCreatedAt, pipelinerun.FieldStartedAt, pipelinerun.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineRun fields.
func (_m *PipelineRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinerun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pipelinerun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pipelinerun.Status(value.String)
			}
		case pipelinerun.FieldIncludeInstagram:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field include_instagram", values[i])
			} else if value.Valid {
				_m.IncludeInstagram = value.Bool
			}
		case pipelinerun.FieldStepStates:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field step_states", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StepStates); err != nil {
					return fmt.Errorf("unmarshal field step_states: %w", err)
				}
			}
		case pipelinerun.FieldCurrentStep:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_step", values[i])
			} else if value.Valid {
				_m.CurrentStep = value.String
			}
		case pipelinerun.FieldCancelRequested:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_requested", values[i])
			} else if value.Valid {
				_m.CancelRequested = value.Bool
			}
		case pipelinerun.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case pipelinerun.FieldPipelineVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_version", values[i])
			} else if value.Valid {
				_m.PipelineVersion = value.String
			}
		case pipelinerun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pipelinerun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case pipelinerun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case pipelinerun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineRun.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PipelineRun.
// Note that you need to call PipelineRun.Unwrap() before calling this method if this PipelineRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineRun) Update() *PipelineRunUpdateOne {
	return NewPipelineRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineRun) Unwrap() *PipelineRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineRun) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("include_instagram=")
	builder.WriteString(fmt.Sprintf("%v", _m.IncludeInstagram))
	builder.WriteString(", ")
	builder.WriteString("step_states=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepStates))
	builder.WriteString(", ")
	builder.WriteString("current_step=")
	builder.WriteString(_m.CurrentStep)
	builder.WriteString(", ")
	builder.WriteString("cancel_requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancelRequested))
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("pipeline_version=")
	builder.WriteString(_m.PipelineVersion)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteByte(')')
	return builder.String()
}

// PipelineRuns is a parsable slice of PipelineRun.
type PipelineRuns []*PipelineRun
