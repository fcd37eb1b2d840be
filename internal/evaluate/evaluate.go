// Package evaluate grades a learner's answer with the LLM provider and
// re-estimates mastery. Persisting the new estimate is part of a
// successful evaluation: a graded answer that didn't reach the store is
// reported as a failure, never as a partial success.
package evaluate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rsahni/topiq/internal/assess"
	"github.com/rsahni/topiq/internal/llm"
)

// MasteryWriter persists the updated mastery estimate.
type MasteryWriter interface {
	WriteMastery(ctx context.Context, learnerID, topicID string, mastery float64) error
}

// Evaluator implements assess.AnswerEvaluator using the LLM provider.
type Evaluator struct {
	provider llm.Provider
	mastery  MasteryWriter
	config   Config
}

// New creates a new Evaluator with the given provider, mastery writer,
// and config.
func New(provider llm.Provider, mastery MasteryWriter, cfg Config) *Evaluator {
	return &Evaluator{provider: provider, mastery: mastery, config: cfg}
}

// evalOutput is the raw LLM response before normalization.
type evalOutput struct {
	Score      float64 `json:"score"`
	Feedback   string  `json:"feedback"`
	Correction string  `json:"correction"`
	NewMastery float64 `json:"new_mastery"`
}

// Evaluate grades the answer and returns the evaluation together with the
// re-estimated mastery. The new estimate is persisted before returning;
// a persistence failure fails the whole evaluation.
func (e *Evaluator) Evaluate(ctx context.Context, input assess.EvaluateInput) (*assess.Evaluation, float64, error) {
	ctx = llm.WithPurpose(ctx, "answer-eval")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, 0, fmt.Errorf("LLM evaluation failed: %w", err)
	}

	var raw evalOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, 0, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	if raw.Feedback == "" {
		return nil, 0, fmt.Errorf("evaluation feedback is empty")
	}

	eval := &assess.Evaluation{
		Score:      assess.Clamp(raw.Score),
		Feedback:   raw.Feedback,
		Correction: raw.Correction,
	}
	newMastery := assess.Clamp(raw.NewMastery)

	if e.mastery != nil {
		if err := e.mastery.WriteMastery(ctx, input.LearnerID, input.TopicID, newMastery); err != nil {
			return nil, 0, fmt.Errorf("persist mastery: %w", err)
		}
	}

	return eval, newMastery, nil
}
