// Package quizgen produces multiple-choice quiz questions for a topic
// using the LLM provider, calibrated to the learner's current mastery.
package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rsahni/topiq/internal/assess"
	"github.com/rsahni/topiq/internal/llm"
)

// Generator implements assess.QuestionProvider using the LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a new Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Level         string   `json:"level"`
}

// GenerateQuestion produces a single validated question for the topic at a
// difficulty matching the mastery estimate. The returned string is the
// provider's difficulty label for the question.
func (g *Generator) GenerateQuestion(ctx context.Context, topic string, mastery float64) (*assess.Question, string, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(topic, mastery)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, "", fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, "", fmt.Errorf("failed to parse LLM response: %w", err)
	}

	q := &assess.Question{
		Prompt:        raw.Question,
		Options:       raw.Options,
		CorrectAnswer: raw.CorrectAnswer,
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, raw.Level); verr != nil {
			return nil, "", verr
		}
	}

	return q, raw.Level, nil
}
