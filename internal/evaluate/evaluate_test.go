package evaluate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rsahni/topiq/internal/assess"
	"github.com/rsahni/topiq/internal/llm"
)

type fakeWriter struct {
	writes []struct {
		learnerID, topicID string
		mastery            float64
	}
	err error
}

func (w *fakeWriter) WriteMastery(_ context.Context, learnerID, topicID string, mastery float64) error {
	if w.err != nil {
		return w.err
	}
	w.writes = append(w.writes, struct {
		learnerID, topicID string
		mastery            float64
	}{learnerID, topicID, mastery})
	return nil
}

func testInput() assess.EvaluateInput {
	return assess.EvaluateInput{
		Question:      "Which keyword starts a goroutine?",
		Answer:        "go",
		CorrectAnswer: "go",
		Topic:         "Go concurrency",
		LearnerID:     "learner-1",
		TopicID:       "go-concurrency",
		Mastery:       0.4,
	}
}

func correctEvalJSON() json.RawMessage {
	return json.RawMessage(`{
		"score": 1.0,
		"feedback": "Right: the go keyword launches the function in a new goroutine.",
		"correction": "None needed",
		"new_mastery": 0.5
	}`)
}

func TestEvaluate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: correctEvalJSON()})
	w := &fakeWriter{}
	ev := New(mock, w, DefaultConfig())

	eval, mastery, err := ev.Evaluate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eval.Score != 1.0 {
		t.Errorf("score = %v, want 1.0", eval.Score)
	}
	if eval.Correction != assess.NoCorrection {
		t.Errorf("correction = %q, want sentinel", eval.Correction)
	}
	if eval.HasCorrection() {
		t.Error("sentinel correction should read as no correction")
	}
	if mastery != 0.5 {
		t.Errorf("mastery = %v, want 0.5", mastery)
	}
}

func TestEvaluate_PersistsMastery(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: correctEvalJSON()})
	w := &fakeWriter{}
	ev := New(mock, w, DefaultConfig())

	_, _, err := ev.Evaluate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.writes) != 1 {
		t.Fatalf("writes = %d, want 1", len(w.writes))
	}
	got := w.writes[0]
	if got.learnerID != "learner-1" || got.topicID != "go-concurrency" {
		t.Errorf("wrote to %s/%s", got.learnerID, got.topicID)
	}
	if got.mastery != 0.5 {
		t.Errorf("wrote mastery %v, want 0.5", got.mastery)
	}
}

func TestEvaluate_PersistFailureFailsEvaluation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: correctEvalJSON()})
	w := &fakeWriter{err: errors.New("disk full")}
	ev := New(mock, w, DefaultConfig())

	_, _, err := ev.Evaluate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error when persistence fails")
	}
	if !strings.Contains(err.Error(), "persist mastery") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEvaluate_ClampsOutOfRangeValues(t *testing.T) {
	raw := json.RawMessage(`{
		"score": 1.4,
		"feedback": "Close enough.",
		"correction": "None needed",
		"new_mastery": -0.2
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	ev := New(mock, &fakeWriter{}, DefaultConfig())

	eval, mastery, err := ev.Evaluate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eval.Score != 1.0 {
		t.Errorf("score = %v, want clamped 1.0", eval.Score)
	}
	if mastery != 0.0 {
		t.Errorf("mastery = %v, want clamped 0.0", mastery)
	}
}

func TestEvaluate_EmptyFeedbackRejected(t *testing.T) {
	raw := json.RawMessage(`{
		"score": 0.0,
		"feedback": "",
		"correction": "Channels are typed.",
		"new_mastery": 0.3
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	w := &fakeWriter{}
	ev := New(mock, w, DefaultConfig())

	_, _, err := ev.Evaluate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error for empty feedback")
	}
	if len(w.writes) != 0 {
		t.Error("mastery must not be written on a failed evaluation")
	}
}

func TestEvaluate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	w := &fakeWriter{}
	ev := New(mock, w, DefaultConfig())

	_, _, err := ev.Evaluate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}
	if len(w.writes) != 0 {
		t.Error("mastery must not be written on provider failure")
	}
}

func TestEvaluate_PromptCarriesInput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: correctEvalJSON()})
	ev := New(mock, &fakeWriter{}, DefaultConfig())

	_, _, err := ev.Evaluate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"Which keyword starts a goroutine?",
		"Correct answer: go",
		"Learner's answer: go",
		"Go concurrency",
		"0.40",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
	if mock.Calls[0].Schema != EvaluationSchema {
		t.Error("expected request to carry the evaluation schema")
	}
}
