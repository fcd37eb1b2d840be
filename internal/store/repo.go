package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int    // max results (0 = unlimited)
	After     int64  // sequence > After
	LearnerID string // filter by learner
	TopicID   string // filter by topic
}

// MasteryEntry is one persisted (learner, topic) proficiency estimate.
type MasteryEntry struct {
	LearnerID string
	TopicID   string
	Mastery   float64
	UpdatedAt time.Time
}

// MasteryRepo manages persisted proficiency estimates. Reads feed session
// initialization; writes happen only as a side effect of answer evaluation.
type MasteryRepo interface {
	// ReadMastery returns the stored estimate for (learnerID, topicID).
	// The bool is false when no record exists.
	ReadMastery(ctx context.Context, learnerID, topicID string) (float64, bool, error)

	// WriteMastery upserts the estimate for (learnerID, topicID).
	WriteMastery(ctx context.Context, learnerID, topicID string, mastery float64) error

	// All returns every stored estimate for a learner, newest first.
	All(ctx context.Context, learnerID string) ([]MasteryEntry, error)
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID    string
	LearnerID    string
	TopicID      string
	TopicTitle   string
	Action       string // "start" or "complete"
	Rounds       int
	StartMastery float64
	FinalMastery float64
}

// SessionEventRecord is a stored session event with its log position.
type SessionEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// RoundEventData captures one graded question/answer round.
type RoundEventData struct {
	SessionID     string
	LearnerID     string
	TopicID       string
	Round         int
	Question      string
	Answer        string
	CorrectAnswer string
	Score         float64
	MasteryBefore float64
	MasteryAfter  float64
	Level         string
}

// RoundEventRecord is a stored round event with its log position.
type RoundEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	RoundEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEventRecord is a stored LLM request event with its log position.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates LLM usage per purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendRoundEvent records a graded round.
	AppendRoundEvent(ctx context.Context, data RoundEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QuerySessionEvents returns session events matching opts, oldest first.
	QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEventRecord, error)

	// QueryRoundEvents returns round events matching opts, oldest first.
	QueryRoundEvents(ctx context.Context, opts QueryOpts) ([]RoundEventRecord, error)

	// RoundsForSession returns the rounds of one session in play order.
	RoundsForSession(ctx context.Context, sessionID string) ([]RoundEventRecord, error)

	// QueryLLMEvents returns recent LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)
}
