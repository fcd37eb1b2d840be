package quizgen

import "github.com/rsahni/topiq/internal/assess"

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *assess.Question, level string) *ValidationError {
	if q.Prompt == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question is empty",
			Retryable: true,
		}
	}
	if len(q.Prompt) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question exceeds 500 characters",
			Retryable: true,
		}
	}
	if len(q.Options) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "options must contain exactly 4 entries",
			Retryable: true,
		}
	}
	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if opt == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "option is empty",
				Retryable: true,
			}
		}
		if seen[opt] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "options contain duplicates",
				Retryable: true,
			}
		}
		seen[opt] = true
	}
	if level != "easy" && level != "medium" && level != "hard" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "level must be \"easy\", \"medium\", or \"hard\"",
			Retryable: true,
		}
	}
	return nil
}
