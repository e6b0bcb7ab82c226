// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lidra0530/petskills/ent/experienceevent"
	"github.com/lidra0530/petskills/ent/predicate"
)

// ExperienceEventUpdate is the builder for updating ExperienceEvent entities.
type ExperienceEventUpdate struct {
	config
	hooks    []Hook
	mutation *ExperienceEventMutation
}

// Where appends a list predicates to the ExperienceEventUpdate builder.
func (_u *ExperienceEventUpdate) Where(ps ...predicate.ExperienceEvent) *ExperienceEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *ExperienceEventUpdate) SetSkillID(v string) *ExperienceEventUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *ExperienceEventUpdate) SetNillableSkillID(v *string) *ExperienceEventUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ExperienceEventUpdate) SetAmount(v int) *ExperienceEventUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ExperienceEventUpdate) SetNillableAmount(v *int) *ExperienceEventUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ExperienceEventUpdate) AddAmount(v int) *ExperienceEventUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *ExperienceEventUpdate) SetLevel(v int) *ExperienceEventUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ExperienceEventUpdate) SetNillableLevel(v *int) *ExperienceEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *ExperienceEventUpdate) AddLevel(v int) *ExperienceEventUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetLeveledUp sets the "leveled_up" field.
func (_u *ExperienceEventUpdate) SetLeveledUp(v bool) *ExperienceEventUpdate {
	_u.mutation.SetLeveledUp(v)
	return _u
}

// SetNillableLeveledUp sets the "leveled_up" field if the given value is not nil.
func (_u *ExperienceEventUpdate) SetNillableLeveledUp(v *bool) *ExperienceEventUpdate {
	if v != nil {
		_u.SetLeveledUp(*v)
	}
	return _u
}

// SetInteractionType sets the "interaction_type" field.
func (_u *ExperienceEventUpdate) SetInteractionType(v string) *ExperienceEventUpdate {
	_u.mutation.SetInteractionType(v)
	return _u
}

// SetNillableInteractionType sets the "interaction_type" field if the given value is not nil.
func (_u *ExperienceEventUpdate) SetNillableInteractionType(v *string) *ExperienceEventUpdate {
	if v != nil {
		_u.SetInteractionType(*v)
	}
	return _u
}

// ClearInteractionType clears the value of the "interaction_type" field.
func (_u *ExperienceEventUpdate) ClearInteractionType() *ExperienceEventUpdate {
	_u.mutation.ClearInteractionType()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ExperienceEventUpdate) SetSessionID(v string) *ExperienceEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExperienceEventUpdate) SetNillableSessionID(v *string) *ExperienceEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ExperienceEventUpdate) ClearSessionID() *ExperienceEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the ExperienceEventMutation object of the builder.
func (_u *ExperienceEventUpdate) Mutation() *ExperienceEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExperienceEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExperienceEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExperienceEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExperienceEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExperienceEventUpdate) check() error {
	if v, ok := _u.mutation.SkillID(); ok {
		if err := experienceevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "ExperienceEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := experienceevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ExperienceEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *ExperienceEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(experienceevent.Table, experienceevent.Columns, sqlgraph.NewFieldSpec(experienceevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(experienceevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(experienceevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(experienceevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(experienceevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(experienceevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LeveledUp(); ok {
		_spec.SetField(experienceevent.FieldLeveledUp, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InteractionType(); ok {
		_spec.SetField(experienceevent.FieldInteractionType, field.TypeString, value)
	}
	if _u.mutation.InteractionTypeCleared() {
		_spec.ClearField(experienceevent.FieldInteractionType, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(experienceevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(experienceevent.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{experienceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExperienceEventUpdateOne is the builder for updating a single ExperienceEvent entity.
type ExperienceEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExperienceEventMutation
}

// SetSkillID sets the "skill_id" field.
func (_u *ExperienceEventUpdateOne) SetSkillID(v string) *ExperienceEventUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *ExperienceEventUpdateOne) SetNillableSkillID(v *string) *ExperienceEventUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ExperienceEventUpdateOne) SetAmount(v int) *ExperienceEventUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ExperienceEventUpdateOne) SetNillableAmount(v *int) *ExperienceEventUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ExperienceEventUpdateOne) AddAmount(v int) *ExperienceEventUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *ExperienceEventUpdateOne) SetLevel(v int) *ExperienceEventUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ExperienceEventUpdateOne) SetNillableLevel(v *int) *ExperienceEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *ExperienceEventUpdateOne) AddLevel(v int) *ExperienceEventUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetLeveledUp sets the "leveled_up" field.
func (_u *ExperienceEventUpdateOne) SetLeveledUp(v bool) *ExperienceEventUpdateOne {
	_u.mutation.SetLeveledUp(v)
	return _u
}

// SetNillableLeveledUp sets the "leveled_up" field if the given value is not nil.
func (_u *ExperienceEventUpdateOne) SetNillableLeveledUp(v *bool) *ExperienceEventUpdateOne {
	if v != nil {
		_u.SetLeveledUp(*v)
	}
	return _u
}

// SetInteractionType sets the "interaction_type" field.
func (_u *ExperienceEventUpdateOne) SetInteractionType(v string) *ExperienceEventUpdateOne {
	_u.mutation.SetInteractionType(v)
	return _u
}

// SetNillableInteractionType sets the "interaction_type" field if the given value is not nil.
func (_u *ExperienceEventUpdateOne) SetNillableInteractionType(v *string) *ExperienceEventUpdateOne {
	if v != nil {
		_u.SetInteractionType(*v)
	}
	return _u
}

// ClearInteractionType clears the value of the "interaction_type" field.
func (_u *ExperienceEventUpdateOne) ClearInteractionType() *ExperienceEventUpdateOne {
	_u.mutation.ClearInteractionType()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ExperienceEventUpdateOne) SetSessionID(v string) *ExperienceEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExperienceEventUpdateOne) SetNillableSessionID(v *string) *ExperienceEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ExperienceEventUpdateOne) ClearSessionID() *ExperienceEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the ExperienceEventMutation object of the builder.
func (_u *ExperienceEventUpdateOne) Mutation() *ExperienceEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExperienceEventUpdate builder.
func (_u *ExperienceEventUpdateOne) Where(ps ...predicate.ExperienceEvent) *ExperienceEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExperienceEventUpdateOne) Select(field string, fields ...string) *ExperienceEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExperienceEvent entity.
func (_u *ExperienceEventUpdateOne) Save(ctx context.Context) (*ExperienceEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExperienceEventUpdateOne) SaveX(ctx context.Context) *ExperienceEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExperienceEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExperienceEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExperienceEventUpdateOne) check() error {
	if v, ok := _u.mutation.SkillID(); ok {
		if err := experienceevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "ExperienceEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := experienceevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ExperienceEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *ExperienceEventUpdateOne) sqlSave(ctx context.Context) (_node *ExperienceEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(experienceevent.Table, experienceevent.Columns, sqlgraph.NewFieldSpec(experienceevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExperienceEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, experienceevent.FieldID)
		for _, f := range fields {
			if !experienceevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != experienceevent.FieldID {
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
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(experienceevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(experienceevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(experienceevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(experienceevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(experienceevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LeveledUp(); ok {
		_spec.SetField(experienceevent.FieldLeveledUp, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InteractionType(); ok {
		_spec.SetField(experienceevent.FieldInteractionType, field.TypeString, value)
	}
	if _u.mutation.InteractionTypeCleared() {
		_spec.ClearField(experienceevent.FieldInteractionType, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(experienceevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(experienceevent.FieldSessionID, field.TypeString)
	}
	_node = &ExperienceEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{experienceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
