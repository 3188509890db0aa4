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
	"github.com/civiclens/civiclens/ent/locationcoordinate"
)

// LocationCoordinateCreate is the builder for creating a LocationCoordinate entity.
type LocationCoordinateCreate struct {
	config
	mutation *LocationCoordinateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCity sets the "city" field.
func (_c *LocationCoordinateCreate) SetCity(v string) *LocationCoordinateCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *LocationCoordinateCreate) SetNillableCity(v *string) *LocationCoordinateCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *LocationCoordinateCreate) SetState(v string) *LocationCoordinateCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetLocationType sets the "location_type" field.
func (_c *LocationCoordinateCreate) SetLocationType(v locationcoordinate.LocationType) *LocationCoordinateCreate {
	_c.mutation.SetLocationType(v)
	return _c
}

// SetLatitude sets the "latitude" field.
func (_c *LocationCoordinateCreate) SetLatitude(v float64) *LocationCoordinateCreate {
	_c.mutation.SetLatitude(v)
	return _c
}

// SetLongitude sets the "longitude" field.
func (_c *LocationCoordinateCreate) SetLongitude(v float64) *LocationCoordinateCreate {
	_c.mutation.SetLongitude(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *LocationCoordinateCreate) SetSource(v string) *LocationCoordinateCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *LocationCoordinateCreate) SetNillableSource(v *string) *LocationCoordinateCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *LocationCoordinateCreate) SetConfidence(v float64) *LocationCoordinateCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *LocationCoordinateCreate) SetNillableConfidence(v *float64) *LocationCoordinateCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetLastVerified sets the "last_verified" field.
func (_c *LocationCoordinateCreate) SetLastVerified(v time.Time) *LocationCoordinateCreate {
	_c.mutation.SetLastVerified(v)
	return _c
}

// SetNillableLastVerified sets the "last_verified" field if the given value is not nil.
func (_c *LocationCoordinateCreate) SetNillableLastVerified(v *time.Time) *LocationCoordinateCreate {
	if v != nil {
		_c.SetLastVerified(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LocationCoordinateCreate) SetID(v string) *LocationCoordinateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LocationCoordinateCreate) SetNillableID(v *string) *LocationCoordinateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the LocationCoordinateMutation object of the builder.
func (_c *LocationCoordinateCreate) Mutation() *LocationCoordinateMutation {
	return _c.mutation
}

// Save creates the LocationCoordinate in the database.
func (_c *LocationCoordinateCreate) Save(ctx context.Context) (*LocationCoordinate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LocationCoordinateCreate) SaveX(ctx context.Context) *LocationCoordinate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LocationCoordinateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LocationCoordinateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LocationCoordinateCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := locationcoordinate.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.LastVerified(); !ok {
		v := locationcoordinate.DefaultLastVerified()
		_c.mutation.SetLastVerified(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := locationcoordinate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LocationCoordinateCreate) check() error {
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "LocationCoordinate.state"`)}
	}
	if _, ok := _c.mutation.LocationType(); !ok {
		return &ValidationError{Name: "location_type", err: errors.New(`ent: missing required field "LocationCoordinate.location_type"`)}
	}
	if v, ok := _c.mutation.LocationType(); ok {
		if err := locationcoordinate.LocationTypeValidator(v); err != nil {
			return &ValidationError{Name: "location_type", err: fmt.Errorf(`ent: validator failed for field "LocationCoordinate.location_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Latitude(); !ok {
		return &ValidationError{Name: "latitude", err: errors.New(`ent: missing required field "LocationCoordinate.latitude"`)}
	}
	if _, ok := _c.mutation.Longitude(); !ok {
		return &ValidationError{Name: "longitude", err: errors.New(`ent: missing required field "LocationCoordinate.longitude"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "LocationCoordinate.confidence"`)}
	}
	if _, ok := _c.mutation.LastVerified(); !ok {
		return &ValidationError{Name: "last_verified", err: errors.New(`ent: missing required field "LocationCoordinate.last_verified"`)}
	}
	return nil
}

func (_c *LocationCoordinateCreate) sqlSave(ctx context.Context) (*LocationCoordinate, error) {
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
			return nil, fmt.Errorf("unexpected LocationCoordinate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LocationCoordinateCreate) createSpec() (*LocationCoordinate, *sqlgraph.CreateSpec) {
	var (
		_node = &LocationCoordinate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(locationcoordinate.Table, sqlgraph.NewFieldSpec(locationcoordinate.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(locationcoordinate.FieldCity, field.TypeString, value)
		_node.City = &value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(locationcoordinate.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.LocationType(); ok {
		_spec.SetField(locationcoordinate.FieldLocationType, field.TypeEnum, value)
		_node.LocationType = value
	}
	if value, ok := _c.mutation.Latitude(); ok {
		_spec.SetField(locationcoordinate.FieldLatitude, field.TypeFloat64, value)
		_node.Latitude = value
	}
	if value, ok := _c.mutation.Longitude(); ok {
		_spec.SetField(locationcoordinate.FieldLongitude, field.TypeFloat64, value)
		_node.Longitude = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(locationcoordinate.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(locationcoordinate.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.LastVerified(); ok {
		_spec.SetField(locationcoordinate.FieldLastVerified, field.TypeTime, value)
		_node.LastVerified = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LocationCoordinate.Create().
//		SetCity(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LocationCoordinateUpsert) {
//			SetCity(v+v).
//		}).
//		Exec(ctx)
func (_c *LocationCoordinateCreate) OnConflict(opts ...sql.ConflictOption) *LocationCoordinateUpsertOne {
	_c.conflict = opts
	return &LocationCoordinateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LocationCoordinate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LocationCoordinateCreate) OnConflictColumns(columns ...string) *LocationCoordinateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LocationCoordinateUpsertOne{
		create: _c,
	}
}

type (
	// LocationCoordinateUpsertOne is the builder for "upsert"-ing
	//  one LocationCoordinate node.
	LocationCoordinateUpsertOne struct {
		create *LocationCoordinateCreate
	}

	// LocationCoordinateUpsert is the "OnConflict" setter.
	LocationCoordinateUpsert struct {
		*sql.UpdateSet
	}
)

// SetCity sets the "city" field.
func (u *LocationCoordinateUpsert) SetCity(v string) *LocationCoordinateUpsert {
	u.Set(locationcoordinate.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *LocationCoordinateUpsert) UpdateCity() *LocationCoordinateUpsert {
	u.SetExcluded(locationcoordinate.FieldCity)
	return u
}

// ClearCity clears the value of the "city" field.
func (u *LocationCoordinateUpsert) ClearCity() *LocationCoordinateUpsert {
	u.SetNull(locationcoordinate.FieldCity)
	return u
}

// SetState sets the "state" field.
func (u *LocationCoordinateUpsert) SetState(v string) *LocationCoordinateUpsert {
	u.Set(locationcoordinate.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *LocationCoordinateUpsert) UpdateState() *LocationCoordinateUpsert {
	u.SetExcluded(locationcoordinate.FieldState)
	return u
}

// SetLocationType sets the "location_type" field.
func (u *LocationCoordinateUpsert) SetLocationType(v locationcoordinate.LocationType) *LocationCoordinateUpsert {
	u.Set(locationcoordinate.FieldLocationType, v)
	return u
}

// UpdateLocationType sets the "location_type" field to the value that was provided on create.
func (u *LocationCoordinateUpsert) UpdateLocationType() *LocationCoordinateUpsert {
	u.SetExcluded(locationcoordinate.FieldLocationType)
	return u
}

// SetLatitude sets the "latitude" field.
func (u *LocationCoordinateUpsert) SetLatitude(v float64) *LocationCoordinateUpsert {
	u.Set(locationcoordinate.FieldLatitude, v)
	return u
}

// UpdateLatitude sets the "latitude" field to the value that was provided on create.
func (u *LocationCoordinateUpsert) UpdateLatitude() *LocationCoordinateUpsert {
	u.SetExcluded(locationcoordinate.FieldLatitude)
	return u
}

// AddLatitude adds v to the "latitude" field.
func (u *LocationCoordinateUpsert) AddLatitude(v float64) *LocationCoordinateUpsert {
	u.Add(locationcoordinate.FieldLatitude, v)
	return u
}

// SetLongitude sets the "longitude" field.
func (u *LocationCoordinateUpsert) SetLongitude(v float64) *LocationCoordinateUpsert {
	u.Set(locationcoordinate.FieldLongitude, v)
	return u
}

// UpdateLongitude sets the "longitude" field to the value that was provided on create.
func (u *LocationCoordinateUpsert) UpdateLongitude() *LocationCoordinateUpsert {
	u.SetExcluded(locationcoordinate.FieldLongitude)
	return u
}

// AddLongitude adds v to the "longitude" field.
func (u *LocationCoordinateUpsert) AddLongitude(v float64) *LocationCoordinateUpsert {
	u.Add(locationcoordinate.FieldLongitude, v)
	return u
}

// SetSource sets the "source" field.
func (u *LocationCoordinateUpsert) SetSource(v string) *LocationCoordinateUpsert {
	u.Set(locationcoordinate.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *LocationCoordinateUpsert) UpdateSource() *LocationCoordinateUpsert {
	u.SetExcluded(locationcoordinate.FieldSource)
	return u
}

// ClearSource clears the value of the "source" field.
func (u *LocationCoordinateUpsert) ClearSource() *LocationCoordinateUpsert {
	u.SetNull(locationcoordinate.FieldSource)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *LocationCoordinateUpsert) SetConfidence(v float64) *LocationCoordinateUpsert {
	u.Set(locationcoordinate.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *LocationCoordinateUpsert) UpdateConfidence() *LocationCoordinateUpsert {
	u.SetExcluded(locationcoordinate.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *LocationCoordinateUpsert) AddConfidence(v float64) *LocationCoordinateUpsert {
	u.Add(locationcoordinate.FieldConfidence, v)
	return u
}

// SetLastVerified sets the "last_verified" field.
func (u *LocationCoordinateUpsert) SetLastVerified(v time.Time) *LocationCoordinateUpsert {
	u.Set(locationcoordinate.FieldLastVerified, v)
	return u
}

// UpdateLastVerified sets the "last_verified" field to the value that was provided on create.
func (u *LocationCoordinateUpsert) UpdateLastVerified() *LocationCoordinateUpsert {
	u.SetExcluded(locationcoordinate.FieldLastVerified)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LocationCoordinate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(locationcoordinate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LocationCoordinateUpsertOne) UpdateNewValues() *LocationCoordinateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(locationcoordinate.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LocationCoordinate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LocationCoordinateUpsertOne) Ignore() *LocationCoordinateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LocationCoordinateUpsertOne) DoNothing() *LocationCoordinateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LocationCoordinateCreate.OnConflict
// documentation for more info.
func (u *LocationCoordinateUpsertOne) Update(set func(*LocationCoordinateUpsert)) *LocationCoordinateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LocationCoordinateUpsert{UpdateSet: update})
	}))
	return u
}

// SetCity sets the "city" field.
func (u *LocationCoordinateUpsertOne) SetCity(v string) *LocationCoordinateUpsertOne {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *LocationCoordinateUpsertOne) UpdateCity() *LocationCoordinateUpsertOne {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *LocationCoordinateUpsertOne) ClearCity() *LocationCoordinateUpsertOne {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.ClearCity()
	})
}

// SetState sets the "state" field.
func (u *LocationCoordinateUpsertOne) SetState(v string) *LocationCoordinateUpsertOne {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *LocationCoordinateUpsertOne) UpdateState() *LocationCoordinateUpsertOne {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.UpdateState()
	})
}

// SetLocationType sets the "location_type" field.
func (u *LocationCoordinateUpsertOne) SetLocationType(v locationcoordinate.LocationType) *LocationCoordinateUpsertOne {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.SetLocationType(v)
	})
}

// UpdateLocationType sets the "location_type" field to the value that was provided on create.
func (u *LocationCoordinateUpsertOne) UpdateLocationType() *LocationCoordinateUpsertOne {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.UpdateLocationType()
	})
}

// SetLatitude sets the "latitude" field.
func (u *LocationCoordinateUpsertOne) SetLatitude(v float64) *LocationCoordinateUpsertOne {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.SetLatitude(v)
	})
}

// AddLatitude adds v to the "latitude" field.
func (u *LocationCoordinateUpsertOne) AddLatitude(v float64) *LocationCoordinateUpsertOne {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.AddLatitude(v)
	})
}

// UpdateLatitude sets the "latitude" field to the value that was provided on create.
func (u *LocationCoordinateUpsertOne) UpdateLatitude() *LocationCoordinateUpsertOne {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.UpdateLatitude()
	})
}

// SetLongitude sets the "longitude" field.
func (u *LocationCoordinateUpsertOne) SetLongitude(v float64) *LocationCoordinateUpsertOne {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.SetLongitude(v)
	})
}

// AddLongitude adds v to the "longitude" field.
func (u *LocationCoordinateUpsertOne) AddLongitude(v float64) *LocationCoordinateUpsertOne {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.AddLongitude(v)
	})
}

// UpdateLongitude sets the "longitude" field to the value that was provided on create.
func (u *LocationCoordinateUpsertOne) UpdateLongitude() *LocationCoordinateUpsertOne {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.UpdateLongitude()
	})
}

// SetSource sets the "source" field.
func (u *LocationCoordinateUpsertOne) SetSource(v string) *LocationCoordinateUpsertOne {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *LocationCoordinateUpsertOne) UpdateSource() *LocationCoordinateUpsertOne {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.UpdateSource()
	})
}

// ClearSource clears the value of the "source" field.
func (u *LocationCoordinateUpsertOne) ClearSource() *LocationCoordinateUpsertOne {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.ClearSource()
	})
}

// SetConfidence sets the "confidence" field.
func (u *LocationCoordinateUpsertOne) SetConfidence(v float64) *LocationCoordinateUpsertOne {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *LocationCoordinateUpsertOne) AddConfidence(v float64) *LocationCoordinateUpsertOne {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *LocationCoordinateUpsertOne) UpdateConfidence() *LocationCoordinateUpsertOne {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.UpdateConfidence()
	})
}

// SetLastVerified sets the "last_verified" field.
func (u *LocationCoordinateUpsertOne) SetLastVerified(v time.Time) *LocationCoordinateUpsertOne {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.SetLastVerified(v)
	})
}

// UpdateLastVerified sets the "last_verified" field to the value that was provided on create.
func (u *LocationCoordinateUpsertOne) UpdateLastVerified() *LocationCoordinateUpsertOne {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.UpdateLastVerified()
	})
}

// Exec executes the query.
func (u *LocationCoordinateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LocationCoordinateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LocationCoordinateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LocationCoordinateUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LocationCoordinateUpsertOne.ID is not supported by MySQL driver. Use LocationCoordinateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LocationCoordinateUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LocationCoordinateCreateBulk is the builder for creating many LocationCoordinate entities in bulk.
type LocationCoordinateCreateBulk struct {
	config
	err      error
	builders []*LocationCoordinateCreate
	conflict []sql.ConflictOption
}

// Save creates the LocationCoordinate entities in the database.
func (_c *LocationCoordinateCreateBulk) Save(ctx context.Context) ([]*LocationCoordinate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LocationCoordinate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LocationCoordinateMutation)
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
func (_c *LocationCoordinateCreateBulk) SaveX(ctx context.Context) []*LocationCoordinate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LocationCoordinateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LocationCoordinateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LocationCoordinate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LocationCoordinateUpsert) {
//			SetCity(v+v).
//		}).
//		Exec(ctx)
func (_c *LocationCoordinateCreateBulk) OnConflict(opts ...sql.ConflictOption) *LocationCoordinateUpsertBulk {
	_c.conflict = opts
	return &LocationCoordinateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LocationCoordinate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LocationCoordinateCreateBulk) OnConflictColumns(columns ...string) *LocationCoordinateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LocationCoordinateUpsertBulk{
		create: _c,
	}
}

// LocationCoordinateUpsertBulk is the builder for "upsert"-ing
// a bulk of LocationCoordinate nodes.
type LocationCoordinateUpsertBulk struct {
	create *LocationCoordinateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LocationCoordinate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(locationcoordinate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LocationCoordinateUpsertBulk) UpdateNewValues() *LocationCoordinateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(locationcoordinate.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LocationCoordinate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LocationCoordinateUpsertBulk) Ignore() *LocationCoordinateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LocationCoordinateUpsertBulk) DoNothing() *LocationCoordinateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LocationCoordinateCreateBulk.OnConflict
// documentation for more info.
func (u *LocationCoordinateUpsertBulk) Update(set func(*LocationCoordinateUpsert)) *LocationCoordinateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LocationCoordinateUpsert{UpdateSet: update})
	}))
	return u
}

// SetCity sets the "city" field.
func (u *LocationCoordinateUpsertBulk) SetCity(v string) *LocationCoordinateUpsertBulk {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *LocationCoordinateUpsertBulk) UpdateCity() *LocationCoordinateUpsertBulk {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *LocationCoordinateUpsertBulk) ClearCity() *LocationCoordinateUpsertBulk {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.ClearCity()
	})
}

// SetState sets the "state" field.
func (u *LocationCoordinateUpsertBulk) SetState(v string) *LocationCoordinateUpsertBulk {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *LocationCoordinateUpsertBulk) UpdateState() *LocationCoordinateUpsertBulk {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.UpdateState()
	})
}

// SetLocationType sets the "location_type" field.
func (u *LocationCoordinateUpsertBulk) SetLocationType(v locationcoordinate.LocationType) *LocationCoordinateUpsertBulk {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.SetLocationType(v)
	})
}

// UpdateLocationType sets the "location_type" field to the value that was provided on create.
func (u *LocationCoordinateUpsertBulk) UpdateLocationType() *LocationCoordinateUpsertBulk {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.UpdateLocationType()
	})
}

// SetLatitude sets the "latitude" field.
func (u *LocationCoordinateUpsertBulk) SetLatitude(v float64) *LocationCoordinateUpsertBulk {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.SetLatitude(v)
	})
}

// AddLatitude adds v to the "latitude" field.
func (u *LocationCoordinateUpsertBulk) AddLatitude(v float64) *LocationCoordinateUpsertBulk {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.AddLatitude(v)
	})
}

// UpdateLatitude sets the "latitude" field to the value that was provided on create.
func (u *LocationCoordinateUpsertBulk) UpdateLatitude() *LocationCoordinateUpsertBulk {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.UpdateLatitude()
	})
}

// SetLongitude sets the "longitude" field.
func (u *LocationCoordinateUpsertBulk) SetLongitude(v float64) *LocationCoordinateUpsertBulk {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.SetLongitude(v)
	})
}

// AddLongitude adds v to the "longitude" field.
func (u *LocationCoordinateUpsertBulk) AddLongitude(v float64) *LocationCoordinateUpsertBulk {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.AddLongitude(v)
	})
}

// UpdateLongitude sets the "longitude" field to the value that was provided on create.
func (u *LocationCoordinateUpsertBulk) UpdateLongitude() *LocationCoordinateUpsertBulk {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.UpdateLongitude()
	})
}

// SetSource sets the "source" field.
func (u *LocationCoordinateUpsertBulk) SetSource(v string) *LocationCoordinateUpsertBulk {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *LocationCoordinateUpsertBulk) UpdateSource() *LocationCoordinateUpsertBulk {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.UpdateSource()
	})
}

// ClearSource clears the value of the "source" field.
func (u *LocationCoordinateUpsertBulk) ClearSource() *LocationCoordinateUpsertBulk {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.ClearSource()
	})
}

// SetConfidence sets the "confidence" field.
func (u *LocationCoordinateUpsertBulk) SetConfidence(v float64) *LocationCoordinateUpsertBulk {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *LocationCoordinateUpsertBulk) AddConfidence(v float64) *LocationCoordinateUpsertBulk {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *LocationCoordinateUpsertBulk) UpdateConfidence() *LocationCoordinateUpsertBulk {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.UpdateConfidence()
	})
}

// SetLastVerified sets the "last_verified" field.
func (u *LocationCoordinateUpsertBulk) SetLastVerified(v time.Time) *LocationCoordinateUpsertBulk {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.SetLastVerified(v)
	})
}

// UpdateLastVerified sets the "last_verified" field to the value that was provided on create.
func (u *LocationCoordinateUpsertBulk) UpdateLastVerified() *LocationCoordinateUpsertBulk {
	return u.Update(func(s *LocationCoordinateUpsert) {
		s.UpdateLastVerified()
	})
}

// Exec executes the query.
func (u *LocationCoordinateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LocationCoordinateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LocationCoordinateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LocationCoordinateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
