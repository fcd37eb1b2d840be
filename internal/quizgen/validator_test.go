package quizgen

import (
	"testing"

	"github.com/rsahni/topiq/internal/assess"
)

func goodQuestion() *assess.Question {
	return &assess.Question{
		Prompt:        "Which keyword starts a goroutine?",
		Options:       []string{"go", "async", "spawn", "thread"},
		CorrectAnswer: "go",
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}

	if err := v.Validate(goodQuestion(), "easy"); err != nil {
		t.Errorf("valid question rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(q *assess.Question) string // returns level
	}{
		{"empty prompt", func(q *assess.Question) string {
			q.Prompt = ""
			return "easy"
		}},
		{"three options", func(q *assess.Question) string {
			q.Options = q.Options[:3]
			return "easy"
		}},
		{"empty option", func(q *assess.Question) string {
			q.Options[2] = ""
			return "easy"
		}},
		{"duplicate options", func(q *assess.Question) string {
			q.Options[1] = q.Options[0]
			return "easy"
		}},
		{"bad level", func(q *assess.Question) string {
			return "impossible"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := goodQuestion()
			level := tt.mutate(q)
			if err := v.Validate(q, level); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestAnswerKeyValidator(t *testing.T) {
	v := &AnswerKeyValidator{}

	if err := v.Validate(goodQuestion(), "easy"); err != nil {
		t.Errorf("valid question rejected: %v", err)
	}

	q := goodQuestion()
	q.CorrectAnswer = "Go" // case differs; matching is exact
	if err := v.Validate(q, "easy"); err == nil {
		t.Error("expected error for answer absent from options")
	}

	q = goodQuestion()
	q.CorrectAnswer = ""
	if err := v.Validate(q, "easy"); err == nil {
		t.Error("expected error for empty answer")
	}

	q = goodQuestion()
	q.Options[1] = "go" // duplicate of the key
	if err := v.Validate(q, "easy"); err == nil {
		t.Error("expected error when answer matches two options")
	}
}
