package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeliveryEvent is the outcome of one collaborator for one submission.
type DeliveryEvent struct {
	ent.Schema
}

func (DeliveryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DeliveryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("channel").
			Comment("email, webhook or docstore"),
		field.String("status").
			Comment("ok, skipped or error"),
		field.String("reason").
			Default(""),
		field.String("mode").
			Default(""),
		field.Int64("latency_ms").
			Default(0),
		field.String("error_message").
			Default(""),
	}
}

func (DeliveryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel"),
		index.Fields("status"),
	}
}
