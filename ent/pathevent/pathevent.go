// Code generated by ent, DO NOT EDIT.

package pathevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pathevent type in the database.
	Label = "path_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldPathID holds the string denoting the path_id field in the database.
	FieldPathID = "path_id"
	// FieldGoal holds the string denoting the goal field in the database.
	FieldGoal = "goal"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMilestones holds the string denoting the milestones field in the database.
	FieldMilestones = "milestones"
	// FieldEffortHours holds the string denoting the effort_hours field in the database.
	FieldEffortHours = "effort_hours"
	// FieldCalendarDays holds the string denoting the calendar_days field in the database.
	FieldCalendarDays = "calendar_days"
	// FieldOverallDifficulty holds the string denoting the overall_difficulty field in the database.
	FieldOverallDifficulty = "overall_difficulty"
	// FieldPathJSON holds the string denoting the path_json field in the database.
	FieldPathJSON = "path_json"
	// Table holds the table name of the pathevent in the database.
	Table = "path_events"
)

// Columns holds all SQL columns for pathevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldPathID,
	FieldGoal,
	FieldDomain,
	FieldStatus,
	FieldMilestones,
	FieldEffortHours,
	FieldCalendarDays,
	FieldOverallDifficulty,
	FieldPathJSON,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultDomain holds the default value on creation for the "domain" field.
	DefaultDomain string
	// DefaultMilestones holds the default value on creation for the "milestones" field.
	DefaultMilestones int
	// DefaultEffortHours holds the default value on creation for the "effort_hours" field.
	DefaultEffortHours float64
	// DefaultCalendarDays holds the default value on creation for the "calendar_days" field.
	DefaultCalendarDays float64
	// DefaultOverallDifficulty holds the default value on creation for the "overall_difficulty" field.
	DefaultOverallDifficulty string
)

// OrderOption defines the ordering options for the PathEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByPathID orders the results by the path_id field.
func ByPathID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPathID, opts...).ToFunc()
}

// ByGoal orders the results by the goal field.
func ByGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoal, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByMilestones orders the results by the milestones field.
func ByMilestones(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMilestones, opts...).ToFunc()
}

// ByEffortHours orders the results by the effort_hours field.
func ByEffortHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffortHours, opts...).ToFunc()
}

// ByCalendarDays orders the results by the calendar_days field.
func ByCalendarDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalendarDays, opts...).ToFunc()
}

// ByOverallDifficulty orders the results by the overall_difficulty field.
func ByOverallDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallDifficulty, opts...).ToFunc()
}

// ByPathJSON orders the results by the path_json field.
func ByPathJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPathJSON, opts...).ToFunc()
}
