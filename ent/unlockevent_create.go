// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lidra0530/petskills/ent/unlockevent"
)

// UnlockEventCreate is the builder for creating a UnlockEvent entity.
type UnlockEventCreate struct {
	config
	mutation *UnlockEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *UnlockEventCreate) SetSequence(v int64) *UnlockEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *UnlockEventCreate) SetTimestamp(v time.Time) *UnlockEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *UnlockEventCreate) SetNillableTimestamp(v *time.Time) *UnlockEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *UnlockEventCreate) SetSkillID(v string) *UnlockEventCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetOverallProgress sets the "overall_progress" field.
func (_c *UnlockEventCreate) SetOverallProgress(v float64) *UnlockEventCreate {
	_c.mutation.SetOverallProgress(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *UnlockEventCreate) SetSessionID(v string) *UnlockEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *UnlockEventCreate) SetNillableSessionID(v *string) *UnlockEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// Mutation returns the UnlockEventMutation object of the builder.
func (_c *UnlockEventCreate) Mutation() *UnlockEventMutation {
	return _c.mutation
}

// Save creates the UnlockEvent in the database.
func (_c *UnlockEventCreate) Save(ctx context.Context) (*UnlockEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UnlockEventCreate) SaveX(ctx context.Context) *UnlockEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnlockEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnlockEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UnlockEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := unlockevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UnlockEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "UnlockEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "UnlockEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "UnlockEvent.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := unlockevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "UnlockEvent.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OverallProgress(); !ok {
		return &ValidationError{Name: "overall_progress", err: errors.New(`ent: missing required field "UnlockEvent.overall_progress"`)}
	}
	return nil
}

func (_c *UnlockEventCreate) sqlSave(ctx context.Context) (*UnlockEvent, error) {
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

func (_c *UnlockEventCreate) createSpec() (*UnlockEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &UnlockEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(unlockevent.Table, sqlgraph.NewFieldSpec(unlockevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(unlockevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(unlockevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(unlockevent.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.OverallProgress(); ok {
		_spec.SetField(unlockevent.FieldOverallProgress, field.TypeFloat64, value)
		_node.OverallProgress = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(unlockevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// UnlockEventCreateBulk is the builder for creating many UnlockEvent entities in bulk.
type UnlockEventCreateBulk struct {
	config
	err      error
	builders []*UnlockEventCreate
}

// Save creates the UnlockEvent entities in the database.
func (_c *UnlockEventCreateBulk) Save(ctx context.Context) ([]*UnlockEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UnlockEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UnlockEventMutation)
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
func (_c *UnlockEventCreateBulk) SaveX(ctx context.Context) []*UnlockEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnlockEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnlockEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
