package quizgen

import "github.com/rsahni/topiq/internal/assess"

// AnswerKeyValidator checks that the correct answer appears among the
// options exactly once, by exact string match. Answer matching downstream
// is also exact, so any drift here would make the question unanswerable.
type AnswerKeyValidator struct{}

func (v *AnswerKeyValidator) Name() string { return "answer-key" }

func (v *AnswerKeyValidator) Validate(q *assess.Question, _ string) *ValidationError {
	if q.CorrectAnswer == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "correct_answer is empty",
			Retryable: true,
		}
	}

	count := 0
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			count++
		}
	}
	if count != 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "correct_answer must match exactly one option verbatim",
			Retryable: true,
		}
	}
	return nil
}
