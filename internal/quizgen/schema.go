package quizgen

import "github.com/rsahni/topiq/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single multiple-choice quiz question with its answer key",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the learner, self-contained plain text",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 answer options. Distractors should reflect plausible misconceptions, not random values.",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"description": "The correct option, copied verbatim from the options array",
			},
			"level": map[string]any{
				"type":        "string",
				"enum":        []any{"easy", "medium", "hard"},
				"description": "The difficulty the question was pitched at",
			},
		},
		"required":             []any{"question", "options", "correct_answer", "level"},
		"additionalProperties": false,
	},
}
