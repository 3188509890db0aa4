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
	"github.com/civiclens/civiclens/ent/locationcoordinate"
	"github.com/civiclens/civiclens/ent/predicate"
)

// LocationCoordinateUpdate is the builder for updating LocationCoordinate entities.
type LocationCoordinateUpdate struct {
	config
	hooks    []Hook
	mutation *LocationCoordinateMutation
}

// Where appends a list predicates to the LocationCoordinateUpdate builder.
func (_u *LocationCoordinateUpdate) Where(ps ...predicate.LocationCoordinate) *LocationCoordinateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCity sets the "city" field.
func (_u *LocationCoordinateUpdate) SetCity(v string) *LocationCoordinateUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *LocationCoordinateUpdate) SetNillableCity(v *string) *LocationCoordinateUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *LocationCoordinateUpdate) ClearCity() *LocationCoordinateUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetState sets the "state" field.
func (_u *LocationCoordinateUpdate) SetState(v string) *LocationCoordinateUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *LocationCoordinateUpdate) SetNillableState(v *string) *LocationCoordinateUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetLocationType sets the "location_type" field.
func (_u *LocationCoordinateUpdate) SetLocationType(v locationcoordinate.LocationType) *LocationCoordinateUpdate {
	_u.mutation.SetLocationType(v)
	return _u
}

// SetNillableLocationType sets the "location_type" field if the given value is not nil.
func (_u *LocationCoordinateUpdate) SetNillableLocationType(v *locationcoordinate.LocationType) *LocationCoordinateUpdate {
	if v != nil {
		_u.SetLocationType(*v)
	}
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *LocationCoordinateUpdate) SetLatitude(v float64) *LocationCoordinateUpdate {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *LocationCoordinateUpdate) SetNillableLatitude(v *float64) *LocationCoordinateUpdate {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *LocationCoordinateUpdate) AddLatitude(v float64) *LocationCoordinateUpdate {
	_u.mutation.AddLatitude(v)
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *LocationCoordinateUpdate) SetLongitude(v float64) *LocationCoordinateUpdate {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *LocationCoordinateUpdate) SetNillableLongitude(v *float64) *LocationCoordinateUpdate {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *LocationCoordinateUpdate) AddLongitude(v float64) *LocationCoordinateUpdate {
	_u.mutation.AddLongitude(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *LocationCoordinateUpdate) SetSource(v string) *LocationCoordinateUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LocationCoordinateUpdate) SetNillableSource(v *string) *LocationCoordinateUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *LocationCoordinateUpdate) ClearSource() *LocationCoordinateUpdate {
	_u.mutation.ClearSource()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *LocationCoordinateUpdate) SetConfidence(v float64) *LocationCoordinateUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *LocationCoordinateUpdate) SetNillableConfidence(v *float64) *LocationCoordinateUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *LocationCoordinateUpdate) AddConfidence(v float64) *LocationCoordinateUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetLastVerified sets the "last_verified" field.
func (_u *LocationCoordinateUpdate) SetLastVerified(v time.Time) *LocationCoordinateUpdate {
	_u.mutation.SetLastVerified(v)
	return _u
}

// SetNillableLastVerified sets the "last_verified" field if the given value is not nil.
func (_u *LocationCoordinateUpdate) SetNillableLastVerified(v *time.Time) *LocationCoordinateUpdate {
	if v != nil {
		_u.SetLastVerified(*v)
	}
	return _u
}

// Mutation returns the LocationCoordinateMutation object of the builder.
func (_u *LocationCoordinateUpdate) Mutation() *LocationCoordinateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LocationCoordinateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LocationCoordinateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LocationCoordinateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LocationCoordinateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LocationCoordinateUpdate) check() error {
	if v, ok := _u.mutation.LocationType(); ok {
		if err := locationcoordinate.LocationTypeValidator(v); err != nil {
			return &ValidationError{Name: "location_type", err: fmt.Errorf(`ent: validator failed for field "LocationCoordinate.location_type": %w`, err)}
		}
	}
	return nil
}

func (_u *LocationCoordinateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(locationcoordinate.Table, locationcoordinate.Columns, sqlgraph.NewFieldSpec(locationcoordinate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(locationcoordinate.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(locationcoordinate.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(locationcoordinate.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.LocationType(); ok {
		_spec.SetField(locationcoordinate.FieldLocationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(locationcoordinate.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(locationcoordinate.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(locationcoordinate.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(locationcoordinate.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(locationcoordinate.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(locationcoordinate.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(locationcoordinate.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(locationcoordinate.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastVerified(); ok {
		_spec.SetField(locationcoordinate.FieldLastVerified, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{locationcoordinate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LocationCoordinateUpdateOne is the builder for updating a single LocationCoordinate entity.
type LocationCoordinateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LocationCoordinateMutation
}

// SetCity sets the "city" field.
func (_u *LocationCoordinateUpdateOne) SetCity(v string) *LocationCoordinateUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *LocationCoordinateUpdateOne) SetNillableCity(v *string) *LocationCoordinateUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *LocationCoordinateUpdateOne) ClearCity() *LocationCoordinateUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetState sets the "state" field.
func (_u *LocationCoordinateUpdateOne) SetState(v string) *LocationCoordinateUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *LocationCoordinateUpdateOne) SetNillableState(v *string) *LocationCoordinateUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetLocationType sets the "location_type" field.
func (_u *LocationCoordinateUpdateOne) SetLocationType(v locationcoordinate.LocationType) *LocationCoordinateUpdateOne {
	_u.mutation.SetLocationType(v)
	return _u
}

// SetNillableLocationType sets the "location_type" field if the given value is not nil.
func (_u *LocationCoordinateUpdateOne) SetNillableLocationType(v *locationcoordinate.LocationType) *LocationCoordinateUpdateOne {
	if v != nil {
		_u.SetLocationType(*v)
	}
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *LocationCoordinateUpdateOne) SetLatitude(v float64) *LocationCoordinateUpdateOne {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *LocationCoordinateUpdateOne) SetNillableLatitude(v *float64) *LocationCoordinateUpdateOne {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *LocationCoordinateUpdateOne) AddLatitude(v float64) *LocationCoordinateUpdateOne {
	_u.mutation.AddLatitude(v)
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *LocationCoordinateUpdateOne) SetLongitude(v float64) *LocationCoordinateUpdateOne {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *LocationCoordinateUpdateOne) SetNillableLongitude(v *float64) *LocationCoordinateUpdateOne {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *LocationCoordinateUpdateOne) AddLongitude(v float64) *LocationCoordinateUpdateOne {
	_u.mutation.AddLongitude(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *LocationCoordinateUpdateOne) SetSource(v string) *LocationCoordinateUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LocationCoordinateUpdateOne) SetNillableSource(v *string) *LocationCoordinateUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *LocationCoordinateUpdateOne) ClearSource() *LocationCoordinateUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *LocationCoordinateUpdateOne) SetConfidence(v float64) *LocationCoordinateUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *LocationCoordinateUpdateOne) SetNillableConfidence(v *float64) *LocationCoordinateUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *LocationCoordinateUpdateOne) AddConfidence(v float64) *LocationCoordinateUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetLastVerified sets the "last_verified" field.
func (_u *LocationCoordinateUpdateOne) SetLastVerified(v time.Time) *LocationCoordinateUpdateOne {
	_u.mutation.SetLastVerified(v)
	return _u
}

// SetNillableLastVerified sets the "last_verified" field if the given value is not nil.
func (_u *LocationCoordinateUpdateOne) SetNillableLastVerified(v *time.Time) *LocationCoordinateUpdateOne {
	if v != nil {
		_u.SetLastVerified(*v)
	}
	return _u
}

// Mutation returns the LocationCoordinateMutation object of the builder.
func (_u *LocationCoordinateUpdateOne) Mutation() *LocationCoordinateMutation {
	return _u.mutation
}

// Where appends a list predicates to the LocationCoordinateUpdate builder.
func (_u *LocationCoordinateUpdateOne) Where(ps ...predicate.LocationCoordinate) *LocationCoordinateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LocationCoordinateUpdateOne) Select(field string, fields ...string) *LocationCoordinateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LocationCoordinate entity.
func (_u *LocationCoordinateUpdateOne) Save(ctx context.Context) (*LocationCoordinate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LocationCoordinateUpdateOne) SaveX(ctx context.Context) *LocationCoordinate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LocationCoordinateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LocationCoordinateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LocationCoordinateUpdateOne) check() error {
	if v, ok := _u.mutation.LocationType(); ok {
		if err := locationcoordinate.LocationTypeValidator(v); err != nil {
			return &ValidationError{Name: "location_type", err: fmt.Errorf(`ent: validator failed for field "LocationCoordinate.location_type": %w`, err)}
		}
	}
	return nil
}

func (_u *LocationCoordinateUpdateOne) sqlSave(ctx context.Context) (_node *LocationCoordinate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(locationcoordinate.Table, locationcoordinate.Columns, sqlgraph.NewFieldSpec(locationcoordinate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LocationCoordinate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, locationcoordinate.FieldID)
		for _, f := range fields {
			if !locationcoordinate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != locationcoordinate.FieldID {
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
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(locationcoordinate.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(locationcoordinate.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(locationcoordinate.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.LocationType(); ok {
		_spec.SetField(locationcoordinate.FieldLocationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(locationcoordinate.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(locationcoordinate.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(locationcoordinate.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(locationcoordinate.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(locationcoordinate.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(locationcoordinate.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(locationcoordinate.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(locationcoordinate.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastVerified(); ok {
		_spec.SetField(locationcoordinate.FieldLastVerified, field.TypeTime, value)
	}
	_node = &LocationCoordinate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{locationcoordinate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
