package evaluate

import "github.com/rsahni/topiq/internal/llm"

// EvaluationSchema defines the JSON schema for LLM answer evaluation responses.
var EvaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "A graded answer with feedback and an updated mastery estimate",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "How correct the answer is: 1.0 for the right option, 0.0 for a wrong one",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two sentences telling the learner why their answer was right or wrong",
			},
			"correction": map[string]any{
				"type":        "string",
				"description": "The key fact the learner got wrong, or \"None needed\" when the answer was correct",
			},
			"new_mastery": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Updated mastery estimate given the prior estimate and this answer",
			},
		},
		"required":             []any{"score", "feedback", "correction", "new_mastery"},
		"additionalProperties": false,
	},
}
