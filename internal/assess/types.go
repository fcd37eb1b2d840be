package assess

// RoundLimit is the number of answered questions that completes a session.
const RoundLimit = 5

// NoCorrection is the sentinel the evaluator returns when there is no
// correction to display. It must be treated as absence, not feedback text.
const NoCorrection = "None needed"

// Status is the lifecycle state of a session.
type Status int

const (
	// StatusInitializing means mastery has been read and the first
	// question has been requested but not yet received.
	StatusInitializing Status = iota

	// StatusAwaitingAnswer means a question is displayed and no answer
	// has been accepted yet.
	StatusAwaitingAnswer

	// StatusEvaluated means the most recent answer has been graded and
	// mastery updated.
	StatusEvaluated

	// StatusCompleted is terminal. The completion sink has been invoked.
	StatusCompleted
)

// String returns the status name for display and logging.
func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusAwaitingAnswer:
		return "awaiting-answer"
	case StatusEvaluated:
		return "evaluated"
	case StatusCompleted:
		return "completed"
	}
	return "unknown"
}

// Session is the unit of work: one learner assessed on one topic.
// It is owned exclusively by the Controller; no other component mutates it.
type Session struct {
	// TopicID and TopicTitle identify the subject under assessment.
	TopicID    string
	TopicTitle string

	// LearnerID identifies the learner. Never empty once a session exists.
	LearnerID string

	// Mastery is the proficiency estimate, always within [0, 1].
	// Initialized from the mastery store (0.0 when absent) and mutated
	// only by successful evaluator responses.
	Mastery float64

	// QuestionsAnswered counts graded rounds. Monotone, never above RoundLimit.
	QuestionsAnswered int

	// Level is the difficulty label supplied by the question provider
	// alongside each question. Opaque: never computed locally.
	Level string

	// Status is the current lifecycle state.
	Status Status
}

// Question is one round's prompt. Created by the provider, held until the
// round's evaluation completes, then discarded.
type Question struct {
	// Prompt is the question text.
	Prompt string

	// Options are the candidate answers in display order.
	Options []string

	// CorrectAnswer is the element of Options that grades as correct.
	CorrectAnswer string
}

// HasOption reports whether choice is one of the question's options.
func (q *Question) HasOption(choice string) bool {
	for _, opt := range q.Options {
		if opt == choice {
			return true
		}
	}
	return false
}

// Evaluation is the graded result of one answered round.
type Evaluation struct {
	// Score is the grade for this single answer, within [0, 1].
	Score float64

	// Feedback is free text shown to the learner.
	Feedback string

	// Correction explains the right answer, or holds the NoCorrection
	// sentinel when nothing needs correcting.
	Correction string
}

// HasCorrection reports whether the correction should be displayed.
func (e *Evaluation) HasCorrection() bool {
	return e.Correction != "" && e.Correction != NoCorrection
}

// Clamp bounds a mastery or score value to [0, 1]. The controller clamps
// every evaluator-supplied value regardless of the evaluator's contract.
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
