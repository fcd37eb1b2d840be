package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rsahni/topiq/internal/llm"
)

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"question": "Which declaration creates a buffered channel of ints?",
		"options": ["make(chan int, 8)", "make(chan int)", "new(chan int)", "var c chan int"],
		"correct_answer": "make(chan int, 8)",
		"level": "medium"
	}`)
}

func TestGenerateQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	q, level, err := gen.GenerateQuestion(context.Background(), "Go channels", 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Prompt != "Which declaration creates a buffered channel of ints?" {
		t.Errorf("unexpected prompt: %q", q.Prompt)
	}
	if len(q.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(q.Options))
	}
	if q.CorrectAnswer != "make(chan int, 8)" {
		t.Errorf("unexpected correct answer: %q", q.CorrectAnswer)
	}
	if level != "medium" {
		t.Errorf("level = %q, want medium", level)
	}
}

func TestGenerateQuestion_PromptCarriesTopicAndMastery(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	_, _, err := gen.GenerateQuestion(context.Background(), "Go channels", 0.82)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Go channels") {
		t.Errorf("prompt missing topic: %q", msg)
	}
	if !strings.Contains(msg, "0.82") {
		t.Errorf("prompt missing mastery: %q", msg)
	}
	if !strings.Contains(msg, "hard") {
		t.Errorf("prompt missing difficulty band: %q", msg)
	}
	if mock.Calls[0].Schema != QuestionSchema {
		t.Error("expected request to carry the question schema")
	}
}

func TestGenerateQuestion_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	gen := New(mock, DefaultConfig())

	_, _, err := gen.GenerateQuestion(context.Background(), "Go channels", 0.5)
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestGenerateQuestion_AnswerNotInOptions(t *testing.T) {
	raw := json.RawMessage(`{
		"question": "Which declaration creates a buffered channel of ints?",
		"options": ["make(chan int)", "new(chan int)", "var c chan int", "chan int{}"],
		"correct_answer": "make(chan int, 8)",
		"level": "easy"
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, _, err := gen.GenerateQuestion(context.Background(), "Go channels", 0.2)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Validator != "answer-key" {
		t.Errorf("validator = %q, want answer-key", verr.Validator)
	}
}

func TestDifficultyBand(t *testing.T) {
	tests := []struct {
		mastery float64
		want    string
	}{
		{0.0, "easy"},
		{0.34, "easy"},
		{0.35, "medium"},
		{0.5, "medium"},
		{0.69, "medium"},
		{0.7, "hard"},
		{1.0, "hard"},
	}
	for _, tt := range tests {
		if got := difficultyBand(tt.mastery); got != tt.want {
			t.Errorf("difficultyBand(%v) = %q, want %q", tt.mastery, got, tt.want)
		}
	}
}
