// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathcraft/ent/pathevent"
	"github.com/abhisek/pathcraft/ent/predicate"
)

// PathEventUpdate is the builder for updating PathEvent entities.
type PathEventUpdate struct {
	config
	hooks    []Hook
	mutation *PathEventMutation
}

// Where appends a list predicates to the PathEventUpdate builder.
func (_u *PathEventUpdate) Where(ps ...predicate.PathEvent) *PathEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPathID sets the "path_id" field.
func (_u *PathEventUpdate) SetPathID(v string) *PathEventUpdate {
	_u.mutation.SetPathID(v)
	return _u
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillablePathID(v *string) *PathEventUpdate {
	if v != nil {
		_u.SetPathID(*v)
	}
	return _u
}

// SetGoal sets the "goal" field.
func (_u *PathEventUpdate) SetGoal(v string) *PathEventUpdate {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableGoal(v *string) *PathEventUpdate {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *PathEventUpdate) SetDomain(v string) *PathEventUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableDomain(v *string) *PathEventUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PathEventUpdate) SetStatus(v string) *PathEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableStatus(v *string) *PathEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMilestones sets the "milestones" field.
func (_u *PathEventUpdate) SetMilestones(v int) *PathEventUpdate {
	_u.mutation.ResetMilestones()
	_u.mutation.SetMilestones(v)
	return _u
}

// SetNillableMilestones sets the "milestones" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableMilestones(v *int) *PathEventUpdate {
	if v != nil {
		_u.SetMilestones(*v)
	}
	return _u
}

// AddMilestones adds value to the "milestones" field.
func (_u *PathEventUpdate) AddMilestones(v int) *PathEventUpdate {
	_u.mutation.AddMilestones(v)
	return _u
}

// SetEffortHours sets the "effort_hours" field.
func (_u *PathEventUpdate) SetEffortHours(v float64) *PathEventUpdate {
	_u.mutation.ResetEffortHours()
	_u.mutation.SetEffortHours(v)
	return _u
}

// SetNillableEffortHours sets the "effort_hours" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableEffortHours(v *float64) *PathEventUpdate {
	if v != nil {
		_u.SetEffortHours(*v)
	}
	return _u
}

// AddEffortHours adds value to the "effort_hours" field.
func (_u *PathEventUpdate) AddEffortHours(v float64) *PathEventUpdate {
	_u.mutation.AddEffortHours(v)
	return _u
}

// SetCalendarDays sets the "calendar_days" field.
func (_u *PathEventUpdate) SetCalendarDays(v float64) *PathEventUpdate {
	_u.mutation.ResetCalendarDays()
	_u.mutation.SetCalendarDays(v)
	return _u
}

// SetNillableCalendarDays sets the "calendar_days" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableCalendarDays(v *float64) *PathEventUpdate {
	if v != nil {
		_u.SetCalendarDays(*v)
	}
	return _u
}

// AddCalendarDays adds value to the "calendar_days" field.
func (_u *PathEventUpdate) AddCalendarDays(v float64) *PathEventUpdate {
	_u.mutation.AddCalendarDays(v)
	return _u
}

// SetOverallDifficulty sets the "overall_difficulty" field.
func (_u *PathEventUpdate) SetOverallDifficulty(v string) *PathEventUpdate {
	_u.mutation.SetOverallDifficulty(v)
	return _u
}

// SetNillableOverallDifficulty sets the "overall_difficulty" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableOverallDifficulty(v *string) *PathEventUpdate {
	if v != nil {
		_u.SetOverallDifficulty(*v)
	}
	return _u
}

// SetPathJSON sets the "path_json" field.
func (_u *PathEventUpdate) SetPathJSON(v string) *PathEventUpdate {
	_u.mutation.SetPathJSON(v)
	return _u
}

// SetNillablePathJSON sets the "path_json" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillablePathJSON(v *string) *PathEventUpdate {
	if v != nil {
		_u.SetPathJSON(*v)
	}
	return _u
}

// Mutation returns the PathEventMutation object of the builder.
func (_u *PathEventUpdate) Mutation() *PathEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PathEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PathEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PathEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(pathevent.Table, pathevent.Columns, sqlgraph.NewFieldSpec(pathevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PathID(); ok {
		_spec.SetField(pathevent.FieldPathID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(pathevent.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(pathevent.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pathevent.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Milestones(); ok {
		_spec.SetField(pathevent.FieldMilestones, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMilestones(); ok {
		_spec.AddField(pathevent.FieldMilestones, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EffortHours(); ok {
		_spec.SetField(pathevent.FieldEffortHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEffortHours(); ok {
		_spec.AddField(pathevent.FieldEffortHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CalendarDays(); ok {
		_spec.SetField(pathevent.FieldCalendarDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCalendarDays(); ok {
		_spec.AddField(pathevent.FieldCalendarDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OverallDifficulty(); ok {
		_spec.SetField(pathevent.FieldOverallDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.PathJSON(); ok {
		_spec.SetField(pathevent.FieldPathJSON, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PathEventUpdateOne is the builder for updating a single PathEvent entity.
type PathEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PathEventMutation
}

// SetPathID sets the "path_id" field.
func (_u *PathEventUpdateOne) SetPathID(v string) *PathEventUpdateOne {
	_u.mutation.SetPathID(v)
	return _u
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillablePathID(v *string) *PathEventUpdateOne {
	if v != nil {
		_u.SetPathID(*v)
	}
	return _u
}

// SetGoal sets the "goal" field.
func (_u *PathEventUpdateOne) SetGoal(v string) *PathEventUpdateOne {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableGoal(v *string) *PathEventUpdateOne {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *PathEventUpdateOne) SetDomain(v string) *PathEventUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableDomain(v *string) *PathEventUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PathEventUpdateOne) SetStatus(v string) *PathEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableStatus(v *string) *PathEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMilestones sets the "milestones" field.
func (_u *PathEventUpdateOne) SetMilestones(v int) *PathEventUpdateOne {
	_u.mutation.ResetMilestones()
	_u.mutation.SetMilestones(v)
	return _u
}

// SetNillableMilestones sets the "milestones" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableMilestones(v *int) *PathEventUpdateOne {
	if v != nil {
		_u.SetMilestones(*v)
	}
	return _u
}

// AddMilestones adds value to the "milestones" field.
func (_u *PathEventUpdateOne) AddMilestones(v int) *PathEventUpdateOne {
	_u.mutation.AddMilestones(v)
	return _u
}

// SetEffortHours sets the "effort_hours" field.
func (_u *PathEventUpdateOne) SetEffortHours(v float64) *PathEventUpdateOne {
	_u.mutation.ResetEffortHours()
	_u.mutation.SetEffortHours(v)
	return _u
}

// SetNillableEffortHours sets the "effort_hours" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableEffortHours(v *float64) *PathEventUpdateOne {
	if v != nil {
		_u.SetEffortHours(*v)
	}
	return _u
}

// AddEffortHours adds value to the "effort_hours" field.
func (_u *PathEventUpdateOne) AddEffortHours(v float64) *PathEventUpdateOne {
	_u.mutation.AddEffortHours(v)
	return _u
}

// SetCalendarDays sets the "calendar_days" field.
func (_u *PathEventUpdateOne) SetCalendarDays(v float64) *PathEventUpdateOne {
	_u.mutation.ResetCalendarDays()
	_u.mutation.SetCalendarDays(v)
	return _u
}

// SetNillableCalendarDays sets the "calendar_days" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableCalendarDays(v *float64) *PathEventUpdateOne {
	if v != nil {
		_u.SetCalendarDays(*v)
	}
	return _u
}

// AddCalendarDays adds value to the "calendar_days" field.
func (_u *PathEventUpdateOne) AddCalendarDays(v float64) *PathEventUpdateOne {
	_u.mutation.AddCalendarDays(v)
	return _u
}

// SetOverallDifficulty sets the "overall_difficulty" field.
func (_u *PathEventUpdateOne) SetOverallDifficulty(v string) *PathEventUpdateOne {
	_u.mutation.SetOverallDifficulty(v)
	return _u
}

// SetNillableOverallDifficulty sets the "overall_difficulty" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableOverallDifficulty(v *string) *PathEventUpdateOne {
	if v != nil {
		_u.SetOverallDifficulty(*v)
	}
	return _u
}

// SetPathJSON sets the "path_json" field.
func (_u *PathEventUpdateOne) SetPathJSON(v string) *PathEventUpdateOne {
	_u.mutation.SetPathJSON(v)
	return _u
}

// SetNillablePathJSON sets the "path_json" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillablePathJSON(v *string) *PathEventUpdateOne {
	if v != nil {
		_u.SetPathJSON(*v)
	}
	return _u
}

// Mutation returns the PathEventMutation object of the builder.
func (_u *PathEventUpdateOne) Mutation() *PathEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PathEventUpdate builder.
func (_u *PathEventUpdateOne) Where(ps ...predicate.PathEvent) *PathEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PathEventUpdateOne) Select(field string, fields ...string) *PathEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PathEvent entity.
func (_u *PathEventUpdateOne) Save(ctx context.Context) (*PathEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathEventUpdateOne) SaveX(ctx context.Context) *PathEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PathEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PathEventUpdateOne) sqlSave(ctx context.Context) (_node *PathEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(pathevent.Table, pathevent.Columns, sqlgraph.NewFieldSpec(pathevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PathEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pathevent.FieldID)
		for _, f := range fields {
			if !pathevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pathevent.FieldID {
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
	if value, ok := _u.mutation.PathID(); ok {
		_spec.SetField(pathevent.FieldPathID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(pathevent.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(pathevent.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pathevent.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Milestones(); ok {
		_spec.SetField(pathevent.FieldMilestones, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMilestones(); ok {
		_spec.AddField(pathevent.FieldMilestones, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EffortHours(); ok {
		_spec.SetField(pathevent.FieldEffortHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEffortHours(); ok {
		_spec.AddField(pathevent.FieldEffortHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CalendarDays(); ok {
		_spec.SetField(pathevent.FieldCalendarDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCalendarDays(); ok {
		_spec.AddField(pathevent.FieldCalendarDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OverallDifficulty(); ok {
		_spec.SetField(pathevent.FieldOverallDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.PathJSON(); ok {
		_spec.SetField(pathevent.FieldPathJSON, field.TypeString, value)
	}
	_node = &PathEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
