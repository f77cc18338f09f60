// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PathEventsColumns holds the columns for the "path_events" table.
	PathEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "path_id", Type: field.TypeString},
		{Name: "goal", Type: field.TypeString},
		{Name: "domain", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeString},
		{Name: "milestones", Type: field.TypeInt, Default: 0},
		{Name: "effort_hours", Type: field.TypeFloat64, Default: 0},
		{Name: "calendar_days", Type: field.TypeFloat64, Default: 0},
		{Name: "overall_difficulty", Type: field.TypeString, Default: ""},
		{Name: "path_json", Type: field.TypeString, Size: 2147483647},
	}
	// PathEventsTable holds the schema information for the "path_events" table.
	PathEventsTable = &schema.Table{
		Name:       "path_events",
		Columns:    PathEventsColumns,
		PrimaryKey: []*schema.Column{PathEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pathevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PathEventsColumns[1]},
			},
			{
				Name:    "pathevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PathEventsColumns[2]},
			},
			{
				Name:    "pathevent_path_id",
				Unique:  false,
				Columns: []*schema.Column{PathEventsColumns[3]},
			},
			{
				Name:    "pathevent_goal",
				Unique:  false,
				Columns: []*schema.Column{PathEventsColumns[4]},
			},
			{
				Name:    "pathevent_status",
				Unique:  false,
				Columns: []*schema.Column{PathEventsColumns[6]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profile_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProfilesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		PathEventsTable,
		ProfilesTable,
	}
)

func init() {
}
