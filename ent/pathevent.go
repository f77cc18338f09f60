// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pathcraft/ent/pathevent"
)

// PathEvent is the model entity for the PathEvent schema.
type PathEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the generated path
	PathID string `json:"path_id,omitempty"`
	// Normalized goal text
	Goal string `json:"goal,omitempty"`
	// Matched taxonomy domain, empty when unmapped
	Domain string `json:"domain,omitempty"`
	// Validation outcome: valid, repaired, degraded
	Status string `json:"status,omitempty"`
	// Number of milestones in the path
	Milestones int `json:"milestones,omitempty"`
	// Total estimated effort
	EffortHours float64 `json:"effort_hours,omitempty"`
	// Total estimated calendar time
	CalendarDays float64 `json:"calendar_days,omitempty"`
	// Derived overall difficulty
	OverallDifficulty string `json:"overall_difficulty,omitempty"`
	// Full path document as JSON
	PathJSON     string `json:"path_json,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PathEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pathevent.FieldEffortHours, pathevent.FieldCalendarDays:
			values[i] = new(sql.NullFloat64)
		case pathevent.FieldID, pathevent.FieldSequence, pathevent.FieldMilestones:
			values[i] = new(sql.NullInt64)
		case pathevent.FieldPathID, pathevent.FieldGoal, pathevent.FieldDomain, pathevent.FieldStatus, pathevent.FieldOverallDifficulty, pathevent.FieldPathJSON:
			values[i] = new(sql.NullString)
		case pathevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PathEvent fields.
func (_m *PathEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pathevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pathevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case pathevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case pathevent.FieldPathID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field path_id", values[i])
			} else if value.Valid {
				_m.PathID = value.String
			}
		case pathevent.FieldGoal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal", values[i])
			} else if value.Valid {
				_m.Goal = value.String
			}
		case pathevent.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case pathevent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case pathevent.FieldMilestones:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field milestones", values[i])
			} else if value.Valid {
				_m.Milestones = int(value.Int64)
			}
		case pathevent.FieldEffortHours:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field effort_hours", values[i])
			} else if value.Valid {
				_m.EffortHours = value.Float64
			}
		case pathevent.FieldCalendarDays:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field calendar_days", values[i])
			} else if value.Valid {
				_m.CalendarDays = value.Float64
			}
		case pathevent.FieldOverallDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field overall_difficulty", values[i])
			} else if value.Valid {
				_m.OverallDifficulty = value.String
			}
		case pathevent.FieldPathJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field path_json", values[i])
			} else if value.Valid {
				_m.PathJSON = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PathEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PathEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PathEvent.
// Note that you need to call PathEvent.Unwrap() before calling this method if this PathEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PathEvent) Update() *PathEventUpdateOne {
	return NewPathEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PathEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PathEvent) Unwrap() *PathEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PathEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PathEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PathEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("path_id=")
	builder.WriteString(_m.PathID)
	builder.WriteString(", ")
	builder.WriteString("goal=")
	builder.WriteString(_m.Goal)
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("milestones=")
	builder.WriteString(fmt.Sprintf("%v", _m.Milestones))
	builder.WriteString(", ")
	builder.WriteString("effort_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.EffortHours))
	builder.WriteString(", ")
	builder.WriteString("calendar_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.CalendarDays))
	builder.WriteString(", ")
	builder.WriteString("overall_difficulty=")
	builder.WriteString(_m.OverallDifficulty)
	builder.WriteString(", ")
	builder.WriteString("path_json=")
	builder.WriteString(_m.PathJSON)
	builder.WriteByte(')')
	return builder.String()
}

// PathEvents is a parsable slice of PathEvent.
type PathEvents []*PathEvent
