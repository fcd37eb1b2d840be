package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records assessment lifecycle events (start/complete).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("learner_id").
			NotEmpty(),
		field.String("topic_id").
			NotEmpty(),
		field.String("topic_title").
			Default(""),
		field.String("action").
			NotEmpty().
			Comment("start or complete"),
		field.Int("rounds").
			Default(0).
			Comment("Questions answered (on complete only)"),
		field.Float("start_mastery").
			Default(0),
		field.Float("final_mastery").
			Default(0).
			Comment("Mastery reported to the completion sink (on complete only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("learner_id", "topic_id"),
		index.Fields("action"),
	}
}
