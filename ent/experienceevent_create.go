// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lidra0530/petskills/ent/experienceevent"
)

// ExperienceEventCreate is the builder for creating a ExperienceEvent entity.
type ExperienceEventCreate struct {
	config
	mutation *ExperienceEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ExperienceEventCreate) SetSequence(v int64) *ExperienceEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ExperienceEventCreate) SetTimestamp(v time.Time) *ExperienceEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ExperienceEventCreate) SetNillableTimestamp(v *time.Time) *ExperienceEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *ExperienceEventCreate) SetSkillID(v string) *ExperienceEventCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *ExperienceEventCreate) SetAmount(v int) *ExperienceEventCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *ExperienceEventCreate) SetLevel(v int) *ExperienceEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetLeveledUp sets the "leveled_up" field.
func (_c *ExperienceEventCreate) SetLeveledUp(v bool) *ExperienceEventCreate {
	_c.mutation.SetLeveledUp(v)
	return _c
}

// SetInteractionType sets the "interaction_type" field.
func (_c *ExperienceEventCreate) SetInteractionType(v string) *ExperienceEventCreate {
	_c.mutation.SetInteractionType(v)
	return _c
}

// SetNillableInteractionType sets the "interaction_type" field if the given value is not nil.
func (_c *ExperienceEventCreate) SetNillableInteractionType(v *string) *ExperienceEventCreate {
	if v != nil {
		_c.SetInteractionType(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ExperienceEventCreate) SetSessionID(v string) *ExperienceEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *ExperienceEventCreate) SetNillableSessionID(v *string) *ExperienceEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// Mutation returns the ExperienceEventMutation object of the builder.
func (_c *ExperienceEventCreate) Mutation() *ExperienceEventMutation {
	return _c.mutation
}

// Save creates the ExperienceEvent in the database.
func (_c *ExperienceEventCreate) Save(ctx context.Context) (*ExperienceEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExperienceEventCreate) SaveX(ctx context.Context) *ExperienceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExperienceEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExperienceEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExperienceEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := experienceevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExperienceEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ExperienceEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ExperienceEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "ExperienceEvent.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := experienceevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "ExperienceEvent.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "ExperienceEvent.amount"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "ExperienceEvent.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := experienceevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ExperienceEvent.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LeveledUp(); !ok {
		return &ValidationError{Name: "leveled_up", err: errors.New(`ent: missing required field "ExperienceEvent.leveled_up"`)}
	}
	return nil
}

func (_c *ExperienceEventCreate) sqlSave(ctx context.Context) (*ExperienceEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExperienceEventCreate) createSpec() (*ExperienceEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ExperienceEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(experienceevent.Table, sqlgraph.NewFieldSpec(experienceevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(experienceevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(experienceevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(experienceevent.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(experienceevent.FieldAmount, field.TypeInt, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(experienceevent.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.LeveledUp(); ok {
		_spec.SetField(experienceevent.FieldLeveledUp, field.TypeBool, value)
		_node.LeveledUp = value
	}
	if value, ok := _c.mutation.InteractionType(); ok {
		_spec.SetField(experienceevent.FieldInteractionType, field.TypeString, value)
		_node.InteractionType = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(experienceevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// ExperienceEventCreateBulk is the builder for creating many ExperienceEvent entities in bulk.
type ExperienceEventCreateBulk struct {
	config
	err      error
	builders []*ExperienceEventCreate
}

// Save creates the ExperienceEvent entities in the database.
func (_c *ExperienceEventCreateBulk) Save(ctx context.Context) ([]*ExperienceEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExperienceEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExperienceEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ExperienceEventCreateBulk) SaveX(ctx context.Context) []*ExperienceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExperienceEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExperienceEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
