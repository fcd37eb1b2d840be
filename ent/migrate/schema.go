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
		{Name: "purpose", Type: field.TypeString, Default: "unknown"},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "error_message", Type: field.TypeString, Default: ""},
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
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
		},
	}
	// MasteryRecordsColumns holds the columns for the "mastery_records" table.
	MasteryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "mastery", Type: field.TypeFloat64},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MasteryRecordsTable holds the schema information for the "mastery_records" table.
	MasteryRecordsTable = &schema.Table{
		Name:       "mastery_records",
		Columns:    MasteryRecordsColumns,
		PrimaryKey: []*schema.Column{MasteryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryrecord_learner_id_topic_id",
				Unique:  true,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[2]},
			},
		},
	}
	// RoundEventsColumns holds the columns for the "round_events" table.
	RoundEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "round", Type: field.TypeInt},
		{Name: "question", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "mastery_before", Type: field.TypeFloat64},
		{Name: "mastery_after", Type: field.TypeFloat64},
		{Name: "level", Type: field.TypeString, Default: ""},
	}
	// RoundEventsTable holds the schema information for the "round_events" table.
	RoundEventsTable = &schema.Table{
		Name:       "round_events",
		Columns:    RoundEventsColumns,
		PrimaryKey: []*schema.Column{RoundEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "roundevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RoundEventsColumns[1]},
			},
			{
				Name:    "roundevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RoundEventsColumns[2]},
			},
			{
				Name:    "roundevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{RoundEventsColumns[3]},
			},
			{
				Name:    "roundevent_learner_id_topic_id",
				Unique:  false,
				Columns: []*schema.Column{RoundEventsColumns[4], RoundEventsColumns[5]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "topic_title", Type: field.TypeString, Default: ""},
		{Name: "action", Type: field.TypeString},
		{Name: "rounds", Type: field.TypeInt, Default: 0},
		{Name: "start_mastery", Type: field.TypeFloat64, Default: 0},
		{Name: "final_mastery", Type: field.TypeFloat64, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_learner_id_topic_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4], SessionEventsColumns[5]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		MasteryRecordsTable,
		RoundEventsTable,
		SessionEventsTable,
	}
)

func init() {
}
