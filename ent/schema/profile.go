package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile is a point-in-time save of the learner's skill state and
// preferences. The newest row is the active profile.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the profile was saved"),
		field.JSON("data", map[string]any{}).
			Comment("Skill levels and preferences as JSON"),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
