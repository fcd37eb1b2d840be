package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryRecord persists the proficiency estimate for one (learner, topic)
// pair. Written only as a side effect of answer evaluation; session
// initialization reads it.
type MasteryRecord struct {
	ent.Schema
}

func (MasteryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("topic_id").
			NotEmpty(),
		field.Float("mastery").
			Min(0).
			Max(1).
			Comment("Proficiency estimate in [0,1]"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (MasteryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "topic_id").
			Unique(),
	}
}
