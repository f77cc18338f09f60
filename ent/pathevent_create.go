// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathcraft/ent/pathevent"
)

// PathEventCreate is the builder for creating a PathEvent entity.
type PathEventCreate struct {
	config
	mutation *PathEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PathEventCreate) SetSequence(v int64) *PathEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PathEventCreate) SetTimestamp(v time.Time) *PathEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PathEventCreate) SetNillableTimestamp(v *time.Time) *PathEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetPathID sets the "path_id" field.
func (_c *PathEventCreate) SetPathID(v string) *PathEventCreate {
	_c.mutation.SetPathID(v)
	return _c
}

// SetGoal sets the "goal" field.
func (_c *PathEventCreate) SetGoal(v string) *PathEventCreate {
	_c.mutation.SetGoal(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *PathEventCreate) SetDomain(v string) *PathEventCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_c *PathEventCreate) SetNillableDomain(v *string) *PathEventCreate {
	if v != nil {
		_c.SetDomain(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PathEventCreate) SetStatus(v string) *PathEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetMilestones sets the "milestones" field.
func (_c *PathEventCreate) SetMilestones(v int) *PathEventCreate {
	_c.mutation.SetMilestones(v)
	return _c
}

// SetNillableMilestones sets the "milestones" field if the given value is not nil.
func (_c *PathEventCreate) SetNillableMilestones(v *int) *PathEventCreate {
	if v != nil {
		_c.SetMilestones(*v)
	}
	return _c
}

// SetEffortHours sets the "effort_hours" field.
func (_c *PathEventCreate) SetEffortHours(v float64) *PathEventCreate {
	_c.mutation.SetEffortHours(v)
	return _c
}

// SetNillableEffortHours sets the "effort_hours" field if the given value is not nil.
func (_c *PathEventCreate) SetNillableEffortHours(v *float64) *PathEventCreate {
	if v != nil {
		_c.SetEffortHours(*v)
	}
	return _c
}

// SetCalendarDays sets the "calendar_days" field.
func (_c *PathEventCreate) SetCalendarDays(v float64) *PathEventCreate {
	_c.mutation.SetCalendarDays(v)
	return _c
}

// SetNillableCalendarDays sets the "calendar_days" field if the given value is not nil.
func (_c *PathEventCreate) SetNillableCalendarDays(v *float64) *PathEventCreate {
	if v != nil {
		_c.SetCalendarDays(*v)
	}
	return _c
}

// SetOverallDifficulty sets the "overall_difficulty" field.
func (_c *PathEventCreate) SetOverallDifficulty(v string) *PathEventCreate {
	_c.mutation.SetOverallDifficulty(v)
	return _c
}

// SetNillableOverallDifficulty sets the "overall_difficulty" field if the given value is not nil.
func (_c *PathEventCreate) SetNillableOverallDifficulty(v *string) *PathEventCreate {
	if v != nil {
		_c.SetOverallDifficulty(*v)
	}
	return _c
}

// SetPathJSON sets the "path_json" field.
func (_c *PathEventCreate) SetPathJSON(v string) *PathEventCreate {
	_c.mutation.SetPathJSON(v)
	return _c
}

// Mutation returns the PathEventMutation object of the builder.
func (_c *PathEventCreate) Mutation() *PathEventMutation {
	return _c.mutation
}

// Save creates the PathEvent in the database.
func (_c *PathEventCreate) Save(ctx context.Context) (*PathEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PathEventCreate) SaveX(ctx context.Context) *PathEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PathEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := pathevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Domain(); !ok {
		v := pathevent.DefaultDomain
		_c.mutation.SetDomain(v)
	}
	if _, ok := _c.mutation.Milestones(); !ok {
		v := pathevent.DefaultMilestones
		_c.mutation.SetMilestones(v)
	}
	if _, ok := _c.mutation.EffortHours(); !ok {
		v := pathevent.DefaultEffortHours
		_c.mutation.SetEffortHours(v)
	}
	if _, ok := _c.mutation.CalendarDays(); !ok {
		v := pathevent.DefaultCalendarDays
		_c.mutation.SetCalendarDays(v)
	}
	if _, ok := _c.mutation.OverallDifficulty(); !ok {
		v := pathevent.DefaultOverallDifficulty
		_c.mutation.SetOverallDifficulty(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PathEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PathEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PathEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.PathID(); !ok {
		return &ValidationError{Name: "path_id", err: errors.New(`ent: missing required field "PathEvent.path_id"`)}
	}
	if _, ok := _c.mutation.Goal(); !ok {
		return &ValidationError{Name: "goal", err: errors.New(`ent: missing required field "PathEvent.goal"`)}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "PathEvent.domain"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PathEvent.status"`)}
	}
	if _, ok := _c.mutation.Milestones(); !ok {
		return &ValidationError{Name: "milestones", err: errors.New(`ent: missing required field "PathEvent.milestones"`)}
	}
	if _, ok := _c.mutation.EffortHours(); !ok {
		return &ValidationError{Name: "effort_hours", err: errors.New(`ent: missing required field "PathEvent.effort_hours"`)}
	}
	if _, ok := _c.mutation.CalendarDays(); !ok {
		return &ValidationError{Name: "calendar_days", err: errors.New(`ent: missing required field "PathEvent.calendar_days"`)}
	}
	if _, ok := _c.mutation.OverallDifficulty(); !ok {
		return &ValidationError{Name: "overall_difficulty", err: errors.New(`ent: missing required field "PathEvent.overall_difficulty"`)}
	}
	if _, ok := _c.mutation.PathJSON(); !ok {
		return &ValidationError{Name: "path_json", err: errors.New(`ent: missing required field "PathEvent.path_json"`)}
	}
	return nil
}

func (_c *PathEventCreate) sqlSave(ctx context.Context) (*PathEvent, error) {
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

func (_c *PathEventCreate) createSpec() (*PathEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PathEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pathevent.Table, sqlgraph.NewFieldSpec(pathevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(pathevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(pathevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.PathID(); ok {
		_spec.SetField(pathevent.FieldPathID, field.TypeString, value)
		_node.PathID = value
	}
	if value, ok := _c.mutation.Goal(); ok {
		_spec.SetField(pathevent.FieldGoal, field.TypeString, value)
		_node.Goal = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(pathevent.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pathevent.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Milestones(); ok {
		_spec.SetField(pathevent.FieldMilestones, field.TypeInt, value)
		_node.Milestones = value
	}
	if value, ok := _c.mutation.EffortHours(); ok {
		_spec.SetField(pathevent.FieldEffortHours, field.TypeFloat64, value)
		_node.EffortHours = value
	}
	if value, ok := _c.mutation.CalendarDays(); ok {
		_spec.SetField(pathevent.FieldCalendarDays, field.TypeFloat64, value)
		_node.CalendarDays = value
	}
	if value, ok := _c.mutation.OverallDifficulty(); ok {
		_spec.SetField(pathevent.FieldOverallDifficulty, field.TypeString, value)
		_node.OverallDifficulty = value
	}
	if value, ok := _c.mutation.PathJSON(); ok {
		_spec.SetField(pathevent.FieldPathJSON, field.TypeString, value)
		_node.PathJSON = value
	}
	return _node, _spec
}

// PathEventCreateBulk is the builder for creating many PathEvent entities in bulk.
type PathEventCreateBulk struct {
	config
	err      error
	builders []*PathEventCreate
}

// Save creates the PathEvent entities in the database.
func (_c *PathEventCreateBulk) Save(ctx context.Context) ([]*PathEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PathEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PathEventMutation)
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
func (_c *PathEventCreateBulk) SaveX(ctx context.Context) []*PathEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
