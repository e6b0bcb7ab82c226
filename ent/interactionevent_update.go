// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lidra0530/petskills/ent/interactionevent"
	"github.com/lidra0530/petskills/ent/predicate"
)

// InteractionEventUpdate is the builder for updating InteractionEvent entities.
type InteractionEventUpdate struct {
	config
	hooks    []Hook
	mutation *InteractionEventMutation
}

// Where appends a list predicates to the InteractionEventUpdate builder.
func (_u *InteractionEventUpdate) Where(ps ...predicate.InteractionEvent) *InteractionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInteractionType sets the "interaction_type" field.
func (_u *InteractionEventUpdate) SetInteractionType(v string) *InteractionEventUpdate {
	_u.mutation.SetInteractionType(v)
	return _u
}

// SetNillableInteractionType sets the "interaction_type" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableInteractionType(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetInteractionType(*v)
	}
	return _u
}

// SetIntensity sets the "intensity" field.
func (_u *InteractionEventUpdate) SetIntensity(v int) *InteractionEventUpdate {
	_u.mutation.ResetIntensity()
	_u.mutation.SetIntensity(v)
	return _u
}

// SetNillableIntensity sets the "intensity" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableIntensity(v *int) *InteractionEventUpdate {
	if v != nil {
		_u.SetIntensity(*v)
	}
	return _u
}

// AddIntensity adds value to the "intensity" field.
func (_u *InteractionEventUpdate) AddIntensity(v int) *InteractionEventUpdate {
	_u.mutation.AddIntensity(v)
	return _u
}

// SetDurationMins sets the "duration_mins" field.
func (_u *InteractionEventUpdate) SetDurationMins(v int) *InteractionEventUpdate {
	_u.mutation.ResetDurationMins()
	_u.mutation.SetDurationMins(v)
	return _u
}

// SetNillableDurationMins sets the "duration_mins" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableDurationMins(v *int) *InteractionEventUpdate {
	if v != nil {
		_u.SetDurationMins(*v)
	}
	return _u
}

// AddDurationMins adds value to the "duration_mins" field.
func (_u *InteractionEventUpdate) AddDurationMins(v int) *InteractionEventUpdate {
	_u.mutation.AddDurationMins(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InteractionEventUpdate) SetSessionID(v string) *InteractionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableSessionID(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *InteractionEventUpdate) ClearSessionID() *InteractionEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_u *InteractionEventUpdate) Mutation() *InteractionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InteractionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InteractionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionEventUpdate) check() error {
	if v, ok := _u.mutation.InteractionType(); ok {
		if err := interactionevent.InteractionTypeValidator(v); err != nil {
			return &ValidationError{Name: "interaction_type", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.interaction_type": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interactionevent.Table, interactionevent.Columns, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InteractionType(); ok {
		_spec.SetField(interactionevent.FieldInteractionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Intensity(); ok {
		_spec.SetField(interactionevent.FieldIntensity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntensity(); ok {
		_spec.AddField(interactionevent.FieldIntensity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMins(); ok {
		_spec.SetField(interactionevent.FieldDurationMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMins(); ok {
		_spec.AddField(interactionevent.FieldDurationMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interactionevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(interactionevent.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InteractionEventUpdateOne is the builder for updating a single InteractionEvent entity.
type InteractionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InteractionEventMutation
}

// SetInteractionType sets the "interaction_type" field.
func (_u *InteractionEventUpdateOne) SetInteractionType(v string) *InteractionEventUpdateOne {
	_u.mutation.SetInteractionType(v)
	return _u
}

// SetNillableInteractionType sets the "interaction_type" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableInteractionType(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetInteractionType(*v)
	}
	return _u
}

// SetIntensity sets the "intensity" field.
func (_u *InteractionEventUpdateOne) SetIntensity(v int) *InteractionEventUpdateOne {
	_u.mutation.ResetIntensity()
	_u.mutation.SetIntensity(v)
	return _u
}

// SetNillableIntensity sets the "intensity" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableIntensity(v *int) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetIntensity(*v)
	}
	return _u
}

// AddIntensity adds value to the "intensity" field.
func (_u *InteractionEventUpdateOne) AddIntensity(v int) *InteractionEventUpdateOne {
	_u.mutation.AddIntensity(v)
	return _u
}

// SetDurationMins sets the "duration_mins" field.
func (_u *InteractionEventUpdateOne) SetDurationMins(v int) *InteractionEventUpdateOne {
	_u.mutation.ResetDurationMins()
	_u.mutation.SetDurationMins(v)
	return _u
}

// SetNillableDurationMins sets the "duration_mins" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableDurationMins(v *int) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetDurationMins(*v)
	}
	return _u
}

// AddDurationMins adds value to the "duration_mins" field.
func (_u *InteractionEventUpdateOne) AddDurationMins(v int) *InteractionEventUpdateOne {
	_u.mutation.AddDurationMins(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InteractionEventUpdateOne) SetSessionID(v string) *InteractionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableSessionID(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *InteractionEventUpdateOne) ClearSessionID() *InteractionEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_u *InteractionEventUpdateOne) Mutation() *InteractionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the InteractionEventUpdate builder.
func (_u *InteractionEventUpdateOne) Where(ps ...predicate.InteractionEvent) *InteractionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InteractionEventUpdateOne) Select(field string, fields ...string) *InteractionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InteractionEvent entity.
func (_u *InteractionEventUpdateOne) Save(ctx context.Context) (*InteractionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionEventUpdateOne) SaveX(ctx context.Context) *InteractionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InteractionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionEventUpdateOne) check() error {
	if v, ok := _u.mutation.InteractionType(); ok {
		if err := interactionevent.InteractionTypeValidator(v); err != nil {
			return &ValidationError{Name: "interaction_type", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.interaction_type": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionEventUpdateOne) sqlSave(ctx context.Context) (_node *InteractionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interactionevent.Table, interactionevent.Columns, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InteractionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interactionevent.FieldID)
		for _, f := range fields {
			if !interactionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interactionevent.FieldID {
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
	if value, ok := _u.mutation.InteractionType(); ok {
		_spec.SetField(interactionevent.FieldInteractionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Intensity(); ok {
		_spec.SetField(interactionevent.FieldIntensity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntensity(); ok {
		_spec.AddField(interactionevent.FieldIntensity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMins(); ok {
		_spec.SetField(interactionevent.FieldDurationMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMins(); ok {
		_spec.AddField(interactionevent.FieldDurationMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interactionevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(interactionevent.FieldSessionID, field.TypeString)
	}
	_node = &InteractionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
