package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoundEvent records one graded question/answer round.
type RoundEvent struct {
	ent.Schema
}

func (RoundEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RoundEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("learner_id").
			NotEmpty(),
		field.String("topic_id").
			NotEmpty(),
		field.Int("round").
			Min(1).
			Comment("1-based round number within the session"),
		field.String("question").
			NotEmpty(),
		field.String("answer").
			NotEmpty(),
		field.String("correct_answer").
			NotEmpty(),
		field.Float("score").
			Min(0).
			Max(1),
		field.Float("mastery_before"),
		field.Float("mastery_after"),
		field.String("level").
			Default("").
			Comment("Provider-supplied difficulty label for this round"),
	}
}

func (RoundEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("learner_id", "topic_id"),
	}
}
