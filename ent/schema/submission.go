package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Submission is a lead document in a named collection.
type Submission struct {
	ent.Schema
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.String("uuid").
			Unique().
			Immutable(),
		field.String("collection"),
		field.JSON("data", map[string]any{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("collection", "created_at"),
	}
}
