// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldTopicTitle holds the string denoting the topic_title field in the database.
	FieldTopicTitle = "topic_title"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldRounds holds the string denoting the rounds field in the database.
	FieldRounds = "rounds"
	// FieldStartMastery holds the string denoting the start_mastery field in the database.
	FieldStartMastery = "start_mastery"
	// FieldFinalMastery holds the string denoting the final_mastery field in the database.
	FieldFinalMastery = "final_mastery"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldLearnerID,
	FieldTopicID,
	FieldTopicTitle,
	FieldAction,
	FieldRounds,
	FieldStartMastery,
	FieldFinalMastery,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	TopicIDValidator func(string) error
	// DefaultTopicTitle holds the default value on creation for the "topic_title" field.
	DefaultTopicTitle string
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultRounds holds the default value on creation for the "rounds" field.
	DefaultRounds int
	// DefaultStartMastery holds the default value on creation for the "start_mastery" field.
	DefaultStartMastery float64
	// DefaultFinalMastery holds the default value on creation for the "final_mastery" field.
	DefaultFinalMastery float64
)

// OrderOption defines the ordering options for the SessionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByTopicTitle orders the results by the topic_title field.
func ByTopicTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicTitle, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByRounds orders the results by the rounds field.
func ByRounds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRounds, opts...).ToFunc()
}

// ByStartMastery orders the results by the start_mastery field.
func ByStartMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartMastery, opts...).ToFunc()
}

// ByFinalMastery orders the results by the final_mastery field.
func ByFinalMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalMastery, opts...).ToFunc()
}
