package assess

import "context"

// QuestionProvider generates one question appropriate to the topic and the
// learner's current mastery. The returned level is an opaque difficulty
// label chosen by the provider as a function of mastery; the controller
// displays it but never reimplements the thresholds behind it.
//
// The provider must return a question whose Options contain CorrectAnswer
// exactly once.
type QuestionProvider interface {
	GenerateQuestion(ctx context.Context, topic string, mastery float64) (*Question, string, error)
}

// EvaluateInput carries everything the evaluator needs to grade one answer.
type EvaluateInput struct {
	Question      string
	Answer        string
	CorrectAnswer string
	Topic         string
	LearnerID     string
	TopicID       string
	Mastery       float64
}

// AnswerEvaluator grades a submitted answer and proposes an updated mastery
// value. The scoring and mastery-update formula is owned entirely by the
// evaluator; newMastery must lie in [0, 1] but the controller clamps it
// defensively regardless. Persistence of the updated mastery is the
// evaluator's side effect, never the controller's.
type AnswerEvaluator interface {
	Evaluate(ctx context.Context, input EvaluateInput) (*Evaluation, float64, error)
}

// MasteryStore returns the persisted mastery for a (learner, topic) pair.
// Read-only from the controller's perspective. The second return value is
// false when no record exists; the controller then starts from 0.0.
type MasteryStore interface {
	ReadMastery(ctx context.Context, learnerID, topicID string) (float64, bool, error)
}

// CompletionSink receives the final mastery value. Invoked exactly once per
// session, only on the transition into StatusCompleted.
type CompletionSink func(finalMastery float64)
