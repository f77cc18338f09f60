package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PathEvent records every completed path generation, including the full
// path document, so past paths can be listed and re-rendered.
type PathEvent struct {
	ent.Schema
}

func (PathEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PathEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("path_id").
			Comment("UUID of the generated path"),
		field.String("goal").
			Comment("Normalized goal text"),
		field.String("domain").
			Default("").
			Comment("Matched taxonomy domain, empty when unmapped"),
		field.String("status").
			Comment("Validation outcome: valid, repaired, degraded"),
		field.Int("milestones").
			Default(0).
			Comment("Number of milestones in the path"),
		field.Float("effort_hours").
			Default(0).
			Comment("Total estimated effort"),
		field.Float("calendar_days").
			Default(0).
			Comment("Total estimated calendar time"),
		field.String("overall_difficulty").
			Default("").
			Comment("Derived overall difficulty"),
		field.Text("path_json").
			Comment("Full path document as JSON"),
	}
}

func (PathEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("path_id"),
		index.Fields("goal"),
		index.Fields("status"),
	}
}
