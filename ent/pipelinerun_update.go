// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civiclens/civiclens/ent/pipelinerun"
	"github.com/civiclens/civiclens/ent/predicate"
	"github.com/civiclens/civiclens/pkg/models"
)

// PipelineRunUpdate is the builder for updating PipelineRun entities.
type PipelineRunUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineRunMutation
}

// Where appends a list predicates to the PipelineRunUpdate builder.
func (_u *PipelineRunUpdate) Where(ps ...predicate.PipelineRun) *PipelineRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineRunUpdate) SetStatus(v pipelinerun.Status) *PipelineRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableStatus(v *pipelinerun.Status) *PipelineRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIncludeInstagram sets the "include_instagram" field.
func (_u *PipelineRunUpdate) SetIncludeInstagram(v bool) *PipelineRunUpdate {
	_u.mutation.SetIncludeInstagram(v)
	return _u
}

// SetNillableIncludeInstagram sets the "include_instagram" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableIncludeInstagram(v *bool) *PipelineRunUpdate {
	if v != nil {
		_u.SetIncludeInstagram(*v)
	}
	return _u
}

// SetStepStates sets the "step_states" field.
func (_u *PipelineRunUpdate) SetStepStates(v map[string]models.StepState) *PipelineRunUpdate {
	_u.mutation.SetStepStates(v)
	return _u
}

// ClearStepStates clears the value of the "step_states" field.
func (_u *PipelineRunUpdate) ClearStepStates() *PipelineRunUpdate {
	_u.mutation.ClearStepStates()
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *PipelineRunUpdate) SetCurrentStep(v string) *PipelineRunUpdate {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableCurrentStep(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *PipelineRunUpdate) ClearCurrentStep() *PipelineRunUpdate {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *PipelineRunUpdate) SetCancelRequested(v bool) *PipelineRunUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableCancelRequested(v *bool) *PipelineRunUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *PipelineRunUpdate) SetPodID(v string) *PipelineRunUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillablePodID(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *PipelineRunUpdate) ClearPodID() *PipelineRunUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetPipelineVersion sets the "pipeline_version" field.
func (_u *PipelineRunUpdate) SetPipelineVersion(v string) *PipelineRunUpdate {
	_u.mutation.SetPipelineVersion(v)
	return _u
}

// SetNillablePipelineVersion sets the "pipeline_version" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillablePipelineVersion(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetPipelineVersion(*v)
	}
	return _u
}

// ClearPipelineVersion clears the value of the "pipeline_version" field.
func (_u *PipelineRunUpdate) ClearPipelineVersion() *PipelineRunUpdate {
	_u.mutation.ClearPipelineVersion()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PipelineRunUpdate) SetStartedAt(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableStartedAt(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PipelineRunUpdate) ClearStartedAt() *PipelineRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineRunUpdate) SetCompletedAt(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableCompletedAt(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PipelineRunUpdate) ClearCompletedAt() *PipelineRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PipelineRunUpdate) SetErrorMessage(v string) *PipelineRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableErrorMessage(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PipelineRunUpdate) ClearErrorMessage() *PipelineRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_u *PipelineRunUpdate) Mutation() *PipelineRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IncludeInstagram(); ok {
		_spec.SetField(pipelinerun.FieldIncludeInstagram, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StepStates(); ok {
		_spec.SetField(pipelinerun.FieldStepStates, field.TypeJSON, value)
	}
	if _u.mutation.StepStatesCleared() {
		_spec.ClearField(pipelinerun.FieldStepStates, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(pipelinerun.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(pipelinerun.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(pipelinerun.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(pipelinerun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(pipelinerun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.PipelineVersion(); ok {
		_spec.SetField(pipelinerun.FieldPipelineVersion, field.TypeString, value)
	}
	if _u.mutation.PipelineVersionCleared() {
		_spec.ClearField(pipelinerun.FieldPipelineVersion, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(pipelinerun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pipelinerun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinerun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(pipelinerun.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineRunUpdateOne is the builder for updating a single PipelineRun entity.
type PipelineRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineRunMutation
}

// SetStatus sets the "status" field.
func (_u *PipelineRunUpdateOne) SetStatus(v pipelinerun.Status) *PipelineRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableStatus(v *pipelinerun.Status) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIncludeInstagram sets the "include_instagram" field.
func (_u *PipelineRunUpdateOne) SetIncludeInstagram(v bool) *PipelineRunUpdateOne {
	_u.mutation.SetIncludeInstagram(v)
	return _u
}

// SetNillableIncludeInstagram sets the "include_instagram" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableIncludeInstagram(v *bool) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetIncludeInstagram(*v)
	}
	return _u
}

// SetStepStates sets the "step_states" field.
func (_u *PipelineRunUpdateOne) SetStepStates(v map[string]models.StepState) *PipelineRunUpdateOne {
	_u.mutation.SetStepStates(v)
	return _u
}

// ClearStepStates clears the value of the "step_states" field.
func (_u *PipelineRunUpdateOne) ClearStepStates() *PipelineRunUpdateOne {
	_u.mutation.ClearStepStates()
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *PipelineRunUpdateOne) SetCurrentStep(v string) *PipelineRunUpdateOne {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableCurrentStep(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *PipelineRunUpdateOne) ClearCurrentStep() *PipelineRunUpdateOne {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *PipelineRunUpdateOne) SetCancelRequested(v bool) *PipelineRunUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableCancelRequested(v *bool) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *PipelineRunUpdateOne) SetPodID(v string) *PipelineRunUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillablePodID(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *PipelineRunUpdateOne) ClearPodID() *PipelineRunUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetPipelineVersion sets the "pipeline_version" field.
func (_u *PipelineRunUpdateOne) SetPipelineVersion(v string) *PipelineRunUpdateOne {
	_u.mutation.SetPipelineVersion(v)
	return _u
}

// SetNillablePipelineVersion sets the "pipeline_version" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillablePipelineVersion(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetPipelineVersion(*v)
	}
	return _u
}

// ClearPipelineVersion clears the value of the "pipeline_version" field.
func (_u *PipelineRunUpdateOne) ClearPipelineVersion() *PipelineRunUpdateOne {
	_u.mutation.ClearPipelineVersion()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PipelineRunUpdateOne) SetStartedAt(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableStartedAt(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PipelineRunUpdateOne) ClearStartedAt() *PipelineRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineRunUpdateOne) SetCompletedAt(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableCompletedAt(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PipelineRunUpdateOne) ClearCompletedAt() *PipelineRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PipelineRunUpdateOne) SetErrorMessage(v string) *PipelineRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableErrorMessage(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PipelineRunUpdateOne) ClearErrorMessage() *PipelineRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_u *PipelineRunUpdateOne) Mutation() *PipelineRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the PipelineRunUpdate builder.
func (_u *PipelineRunUpdateOne) Where(ps ...predicate.PipelineRun) *PipelineRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineRunUpdateOne) Select(field string, fields ...string) *PipelineRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineRun entity.
func (_u *PipelineRunUpdateOne) Save(ctx context.Context) (*PipelineRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunUpdateOne) SaveX(ctx context.Context) *PipelineRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineRunUpdateOne) sqlSave(ctx context.Context) (_node *PipelineRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinerun.FieldID)
		for _, f := range fields {
			if !pipelinerun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinerun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IncludeInstagram(); ok {
		_spec.SetField(pipelinerun.FieldIncludeInstagram, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StepStates(); ok {
		_spec.SetField(pipelinerun.FieldStepStates, field.TypeJSON, value)
	}
	if _u.mutation.StepStatesCleared() {
		_spec.ClearField(pipelinerun.FieldStepStates, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(pipelinerun.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(pipelinerun.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(pipelinerun.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(pipelinerun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(pipelinerun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.PipelineVersion(); ok {
		_spec.SetField(pipelinerun.FieldPipelineVersion, field.TypeString, value)
	}
	if _u.mutation.PipelineVersionCleared() {
		_spec.ClearField(pipelinerun.FieldPipelineVersion, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(pipelinerun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pipelinerun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinerun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(pipelinerun.FieldErrorMessage, field.TypeString)
	}
	_node = &PipelineRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
