package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a quiz author writing assessment questions for self-directed learners.

Rules:
- Generate a single multiple-choice question on the given topic at the requested difficulty.
- The question must be self-contained: no references to diagrams, prior questions, or external material.
- Provide exactly 4 options where exactly one is correct. Distractors should reflect common misconceptions about the topic, not random values.
- The correct_answer field must be copied verbatim from the options array.
- Use plain text. No markdown, no LaTeX.
- Keep the question focused on understanding, not trivia or memorized definitions.`

// buildUserMessage constructs the user message for a topic and mastery level.
func buildUserMessage(topic string, mastery float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Learner mastery estimate: %.2f (0 = beginner, 1 = expert)\n", mastery)
	fmt.Fprintf(&b, "Target difficulty: %s\n", difficultyBand(mastery))
	return b.String()
}

// difficultyBand maps a mastery estimate to the difficulty the next
// question should be pitched at.
func difficultyBand(mastery float64) string {
	switch {
	case mastery < 0.35:
		return "easy"
	case mastery < 0.7:
		return "medium"
	default:
		return "hard"
	}
}
