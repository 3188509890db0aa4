// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civiclens/civiclens/ent/pipelinerun"
	"github.com/civiclens/civiclens/pkg/models"
)

// PipelineRunCreate is the builder for creating a PipelineRun entity.
type PipelineRunCreate struct {
	config
	mutation *PipelineRunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStatus sets the "status" field.
func (_c *PipelineRunCreate) SetStatus(v pipelinerun.Status) *PipelineRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableStatus(v *pipelinerun.Status) *PipelineRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIncludeInstagram sets the "include_instagram" field.
func (_c *PipelineRunCreate) SetIncludeInstagram(v bool) *PipelineRunCreate {
	_c.mutation.SetIncludeInstagram(v)
	return _c
}

// SetNillableIncludeInstagram sets the "include_instagram" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableIncludeInstagram(v *bool) *PipelineRunCreate {
	if v != nil {
		_c.SetIncludeInstagram(*v)
	}
	return _c
}

// SetStepStates sets the "step_states" field.
func (_c *PipelineRunCreate) SetStepStates(v map[string]models.StepState) *PipelineRunCreate {
	_c.mutation.SetStepStates(v)
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *PipelineRunCreate) SetCurrentStep(v string) *PipelineRunCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableCurrentStep(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetCurrentStep(*v)
	}
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *PipelineRunCreate) SetCancelRequested(v bool) *PipelineRunCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableCancelRequested(v *bool) *PipelineRunCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *PipelineRunCreate) SetPodID(v string) *PipelineRunCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillablePodID(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetPipelineVersion sets the "pipeline_version" field.
func (_c *PipelineRunCreate) SetPipelineVersion(v string) *PipelineRunCreate {
	_c.mutation.SetPipelineVersion(v)
	return _c
}

// SetNillablePipelineVersion sets the "pipeline_version" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillablePipelineVersion(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetPipelineVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineRunCreate) SetCreatedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableCreatedAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PipelineRunCreate) SetStartedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableStartedAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PipelineRunCreate) SetCompletedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableCompletedAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PipelineRunCreate) SetErrorMessage(v string) *PipelineRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableErrorMessage(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineRunCreate) SetID(v string) *PipelineRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableID(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_c *PipelineRunCreate) Mutation() *PipelineRunMutation {
	return _c.mutation
}

// Save creates the PipelineRun in the database.
func (_c *PipelineRunCreate) Save(ctx context.Context) (*PipelineRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineRunCreate) SaveX(ctx context.Context) *PipelineRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pipelinerun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IncludeInstagram(); !ok {
		v := pipelinerun.DefaultIncludeInstagram
		_c.mutation.SetIncludeInstagram(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := pipelinerun.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelinerun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pipelinerun.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineRunCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PipelineRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IncludeInstagram(); !ok {
		return &ValidationError{Name: "include_instagram", err: errors.New(`ent: missing required field "PipelineRun.include_instagram"`)}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "PipelineRun.cancel_requested"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineRun.created_at"`)}
	}
	return nil
}

func (_c *PipelineRunCreate) sqlSave(ctx context.Context) (*PipelineRun, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PipelineRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineRunCreate) createSpec() (*PipelineRun, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinerun.Table, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.IncludeInstagram(); ok {
		_spec.SetField(pipelinerun.FieldIncludeInstagram, field.TypeBool, value)
		_node.IncludeInstagram = value
	}
	if value, ok := _c.mutation.StepStates(); ok {
		_spec.SetField(pipelinerun.FieldStepStates, field.TypeJSON, value)
		_node.StepStates = value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(pipelinerun.FieldCurrentStep, field.TypeString, value)
		_node.CurrentStep = value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(pipelinerun.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(pipelinerun.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.PipelineVersion(); ok {
		_spec.SetField(pipelinerun.FieldPipelineVersion, field.TypeString, value)
		_node.PipelineVersion = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinerun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinerun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineRun.Create().
//		SetStatus(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineRunUpsert) {
//			SetStatus(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineRunCreate) OnConflict(opts ...sql.ConflictOption) *PipelineRunUpsertOne {
	_c.conflict = opts
	return &PipelineRunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineRunCreate) OnConflictColumns(columns ...string) *PipelineRunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineRunUpsertOne{
		create: _c,
	}
}

type (
	// PipelineRunUpsertOne is the builder for "upsert"-ing
	//  one PipelineRun node.
	PipelineRunUpsertOne struct {
		create *PipelineRunCreate
	}

	// PipelineRunUpsert is the "OnConflict" setter.
	PipelineRunUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *PipelineRunUpsert) SetStatus(v pipelinerun.Status) *PipelineRunUpsert {
	u.Set(pipelinerun.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PipelineRunUpsert) UpdateStatus() *PipelineRunUpsert {
	u.SetExcluded(pipelinerun.FieldStatus)
	return u
}

// SetIncludeInstagram sets the "include_instagram" field.
func (u *PipelineRunUpsert) SetIncludeInstagram(v bool) *PipelineRunUpsert {
	u.Set(pipelinerun.FieldIncludeInstagram, v)
	return u
}

// UpdateIncludeInstagram sets the "include_instagram" field to the value that was provided on create.
func (u *PipelineRunUpsert) UpdateIncludeInstagram() *PipelineRunUpsert {
	u.SetExcluded(pipelinerun.FieldIncludeInstagram)
	return u
}

// SetStepStates sets the "step_states" field.
func (u *PipelineRunUpsert) SetStepStates(v map[string]models.StepState) *PipelineRunUpsert {
	u.Set(pipelinerun.FieldStepStates, v)
	return u
}

// UpdateStepStates sets the "step_states" field to the value that was provided on create.
func (u *PipelineRunUpsert) UpdateStepStates() *PipelineRunUpsert {
	u.SetExcluded(pipelinerun.FieldStepStates)
	return u
}

// ClearStepStates clears the value of the "step_states" field.
func (u *PipelineRunUpsert) ClearStepStates() *PipelineRunUpsert {
	u.SetNull(pipelinerun.FieldStepStates)
	return u
}

// SetCurrentStep sets the "current_step" field.
func (u *PipelineRunUpsert) SetCurrentStep(v string) *PipelineRunUpsert {
	u.Set(pipelinerun.FieldCurrentStep, v)
	return u
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *PipelineRunUpsert) UpdateCurrentStep() *PipelineRunUpsert {
	u.SetExcluded(pipelinerun.FieldCurrentStep)
	return u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (u *PipelineRunUpsert) ClearCurrentStep() *PipelineRunUpsert {
	u.SetNull(pipelinerun.FieldCurrentStep)
	return u
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *PipelineRunUpsert) SetCancelRequested(v bool) *PipelineRunUpsert {
	u.Set(pipelinerun.FieldCancelRequested, v)
	return u
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *PipelineRunUpsert) UpdateCancelRequested() *PipelineRunUpsert {
	u.SetExcluded(pipelinerun.FieldCancelRequested)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *PipelineRunUpsert) SetPodID(v string) *PipelineRunUpsert {
	u.Set(pipelinerun.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *PipelineRunUpsert) UpdatePodID() *PipelineRunUpsert {
	u.SetExcluded(pipelinerun.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *PipelineRunUpsert) ClearPodID() *PipelineRunUpsert {
	u.SetNull(pipelinerun.FieldPodID)
	return u
}

// SetPipelineVersion sets the "pipeline_version" field.
func (u *PipelineRunUpsert) SetPipelineVersion(v string) *PipelineRunUpsert {
	u.Set(pipelinerun.FieldPipelineVersion, v)
	return u
}

// UpdatePipelineVersion sets the "pipeline_version" field to the value that was provided on create.
func (u *PipelineRunUpsert) UpdatePipelineVersion() *PipelineRunUpsert {
	u.SetExcluded(pipelinerun.FieldPipelineVersion)
	return u
}

// ClearPipelineVersion clears the value of the "pipeline_version" field.
func (u *PipelineRunUpsert) ClearPipelineVersion() *PipelineRunUpsert {
	u.SetNull(pipelinerun.FieldPipelineVersion)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *PipelineRunUpsert) SetStartedAt(v time.Time) *PipelineRunUpsert {
	u.Set(pipelinerun.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PipelineRunUpsert) UpdateStartedAt() *PipelineRunUpsert {
	u.SetExcluded(pipelinerun.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PipelineRunUpsert) ClearStartedAt() *PipelineRunUpsert {
	u.SetNull(pipelinerun.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *PipelineRunUpsert) SetCompletedAt(v time.Time) *PipelineRunUpsert {
	u.Set(pipelinerun.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PipelineRunUpsert) UpdateCompletedAt() *PipelineRunUpsert {
	u.SetExcluded(pipelinerun.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PipelineRunUpsert) ClearCompletedAt() *PipelineRunUpsert {
	u.SetNull(pipelinerun.FieldCompletedAt)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *PipelineRunUpsert) SetErrorMessage(v string) *PipelineRunUpsert {
	u.Set(pipelinerun.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PipelineRunUpsert) UpdateErrorMessage() *PipelineRunUpsert {
	u.SetExcluded(pipelinerun.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PipelineRunUpsert) ClearErrorMessage() *PipelineRunUpsert {
	u.SetNull(pipelinerun.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PipelineRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pipelinerun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PipelineRunUpsertOne) UpdateNewValues() *PipelineRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pipelinerun.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pipelinerun.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineRun.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PipelineRunUpsertOne) Ignore() *PipelineRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineRunUpsertOne) DoNothing() *PipelineRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineRunCreate.OnConflict
// documentation for more info.
func (u *PipelineRunUpsertOne) Update(set func(*PipelineRunUpsert)) *PipelineRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *PipelineRunUpsertOne) SetStatus(v pipelinerun.Status) *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PipelineRunUpsertOne) UpdateStatus() *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.UpdateStatus()
	})
}

// SetIncludeInstagram sets the "include_instagram" field.
func (u *PipelineRunUpsertOne) SetIncludeInstagram(v bool) *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.SetIncludeInstagram(v)
	})
}

// UpdateIncludeInstagram sets the "include_instagram" field to the value that was provided on create.
func (u *PipelineRunUpsertOne) UpdateIncludeInstagram() *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.UpdateIncludeInstagram()
	})
}

// SetStepStates sets the "step_states" field.
func (u *PipelineRunUpsertOne) SetStepStates(v map[string]models.StepState) *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.SetStepStates(v)
	})
}

// UpdateStepStates sets the "step_states" field to the value that was provided on create.
func (u *PipelineRunUpsertOne) UpdateStepStates() *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.UpdateStepStates()
	})
}

// ClearStepStates clears the value of the "step_states" field.
func (u *PipelineRunUpsertOne) ClearStepStates() *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.ClearStepStates()
	})
}

// SetCurrentStep sets the "current_step" field.
func (u *PipelineRunUpsertOne) SetCurrentStep(v string) *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.SetCurrentStep(v)
	})
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *PipelineRunUpsertOne) UpdateCurrentStep() *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.UpdateCurrentStep()
	})
}

// ClearCurrentStep clears the value of the "current_step" field.
func (u *PipelineRunUpsertOne) ClearCurrentStep() *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.ClearCurrentStep()
	})
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *PipelineRunUpsertOne) SetCancelRequested(v bool) *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.SetCancelRequested(v)
	})
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *PipelineRunUpsertOne) UpdateCancelRequested() *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.UpdateCancelRequested()
	})
}

// SetPodID sets the "pod_id" field.
func (u *PipelineRunUpsertOne) SetPodID(v string) *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *PipelineRunUpsertOne) UpdatePodID() *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *PipelineRunUpsertOne) ClearPodID() *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.ClearPodID()
	})
}

// SetPipelineVersion sets the "pipeline_version" field.
func (u *PipelineRunUpsertOne) SetPipelineVersion(v string) *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.SetPipelineVersion(v)
	})
}

// UpdatePipelineVersion sets the "pipeline_version" field to the value that was provided on create.
func (u *PipelineRunUpsertOne) UpdatePipelineVersion() *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.UpdatePipelineVersion()
	})
}

// ClearPipelineVersion clears the value of the "pipeline_version" field.
func (u *PipelineRunUpsertOne) ClearPipelineVersion() *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.ClearPipelineVersion()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *PipelineRunUpsertOne) SetStartedAt(v time.Time) *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PipelineRunUpsertOne) UpdateStartedAt() *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PipelineRunUpsertOne) ClearStartedAt() *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PipelineRunUpsertOne) SetCompletedAt(v time.Time) *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PipelineRunUpsertOne) UpdateCompletedAt() *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PipelineRunUpsertOne) ClearCompletedAt() *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.ClearCompletedAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *PipelineRunUpsertOne) SetErrorMessage(v string) *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PipelineRunUpsertOne) UpdateErrorMessage() *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PipelineRunUpsertOne) ClearErrorMessage() *PipelineRunUpsertOne {
	return u.Update(func(s *PipelineRunUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *PipelineRunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineRunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineRunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PipelineRunUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PipelineRunUpsertOne.ID is not supported by MySQL driver. Use PipelineRunUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PipelineRunUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PipelineRunCreateBulk is the builder for creating many PipelineRun entities in bulk.
type PipelineRunCreateBulk struct {
	config
	err      error
	builders []*PipelineRunCreate
	conflict []sql.ConflictOption
}

// Save creates the PipelineRun entities in the database.
func (_c *PipelineRunCreateBulk) Save(ctx context.Context) ([]*PipelineRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineRunMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PipelineRunCreateBulk) SaveX(ctx context.Context) []*PipelineRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineRun.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineRunUpsert) {
//			SetStatus(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineRunCreateBulk) OnConflict(opts ...sql.ConflictOption) *PipelineRunUpsertBulk {
	_c.conflict = opts
	return &PipelineRunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineRunCreateBulk) OnConflictColumns(columns ...string) *PipelineRunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineRunUpsertBulk{
		create: _c,
	}
}

// PipelineRunUpsertBulk is the builder for "upsert"-ing
// a bulk of PipelineRun nodes.
type PipelineRunUpsertBulk struct {
	create *PipelineRunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PipelineRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pipelinerun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PipelineRunUpsertBulk) UpdateNewValues() *PipelineRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pipelinerun.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pipelinerun.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineRun.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PipelineRunUpsertBulk) Ignore() *PipelineRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineRunUpsertBulk) DoNothing() *PipelineRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineRunCreateBulk.OnConflict
// documentation for more info.
func (u *PipelineRunUpsertBulk) Update(set func(*PipelineRunUpsert)) *PipelineRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *PipelineRunUpsertBulk) SetStatus(v pipelinerun.Status) *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PipelineRunUpsertBulk) UpdateStatus() *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.UpdateStatus()
	})
}

// SetIncludeInstagram sets the "include_instagram" field.
func (u *PipelineRunUpsertBulk) SetIncludeInstagram(v bool) *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.SetIncludeInstagram(v)
	})
}

// UpdateIncludeInstagram sets the "include_instagram" field to the value that was provided on create.
func (u *PipelineRunUpsertBulk) UpdateIncludeInstagram() *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.UpdateIncludeInstagram()
	})
}

// SetStepStates sets the "step_states" field.
func (u *PipelineRunUpsertBulk) SetStepStates(v map[string]models.StepState) *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.SetStepStates(v)
	})
}

// UpdateStepStates sets the "step_states" field to the value that was provided on create.
func (u *PipelineRunUpsertBulk) UpdateStepStates() *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.UpdateStepStates()
	})
}

// ClearStepStates clears the value of the "step_states" field.
func (u *PipelineRunUpsertBulk) ClearStepStates() *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.ClearStepStates()
	})
}

// SetCurrentStep sets the "current_step" field.
func (u *PipelineRunUpsertBulk) SetCurrentStep(v string) *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.SetCurrentStep(v)
	})
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *PipelineRunUpsertBulk) UpdateCurrentStep() *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.UpdateCurrentStep()
	})
}

// ClearCurrentStep clears the value of the "current_step" field.
func (u *PipelineRunUpsertBulk) ClearCurrentStep() *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.ClearCurrentStep()
	})
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *PipelineRunUpsertBulk) SetCancelRequested(v bool) *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.SetCancelRequested(v)
	})
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *PipelineRunUpsertBulk) UpdateCancelRequested() *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.UpdateCancelRequested()
	})
}

// SetPodID sets the "pod_id" field.
func (u *PipelineRunUpsertBulk) SetPodID(v string) *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *PipelineRunUpsertBulk) UpdatePodID() *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *PipelineRunUpsertBulk) ClearPodID() *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.ClearPodID()
	})
}

// SetPipelineVersion sets the "pipeline_version" field.
func (u *PipelineRunUpsertBulk) SetPipelineVersion(v string) *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.SetPipelineVersion(v)
	})
}

// UpdatePipelineVersion sets the "pipeline_version" field to the value that was provided on create.
func (u *PipelineRunUpsertBulk) UpdatePipelineVersion() *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.UpdatePipelineVersion()
	})
}

// ClearPipelineVersion clears the value of the "pipeline_version" field.
func (u *PipelineRunUpsertBulk) ClearPipelineVersion() *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.ClearPipelineVersion()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *PipelineRunUpsertBulk) SetStartedAt(v time.Time) *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PipelineRunUpsertBulk) UpdateStartedAt() *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PipelineRunUpsertBulk) ClearStartedAt() *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PipelineRunUpsertBulk) SetCompletedAt(v time.Time) *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PipelineRunUpsertBulk) UpdateCompletedAt() *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PipelineRunUpsertBulk) ClearCompletedAt() *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.ClearCompletedAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *PipelineRunUpsertBulk) SetErrorMessage(v string) *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PipelineRunUpsertBulk) UpdateErrorMessage() *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PipelineRunUpsertBulk) ClearErrorMessage() *PipelineRunUpsertBulk {
	return u.Update(func(s *PipelineRunUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *PipelineRunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PipelineRunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineRunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineRunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
