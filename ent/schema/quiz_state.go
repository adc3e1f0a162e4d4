package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// QuizState holds the persisted record under a fixed key.
type QuizState struct {
	ent.Schema
}

func (QuizState) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique(),
		field.JSON("data", map[string]any{}).
			Comment("Quiz record as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
