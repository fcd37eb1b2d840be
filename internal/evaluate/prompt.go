package evaluate

import (
	"fmt"
	"strings"

	"github.com/rsahni/topiq/internal/assess"
)

const systemPrompt = `You are grading a learner's answer to a multiple-choice quiz question.

Rules:
- Score 1.0 when the learner picked the correct option, 0.0 otherwise. Partial credit only when the chosen option is defensibly half-right.
- Feedback is one or two sentences addressed to the learner: say why the answer is right or wrong, not just that it is.
- When the answer is wrong, the correction states the single key fact the learner missed. When the answer is correct, set correction to exactly "None needed".
- new_mastery adjusts the prior estimate: nudge it up for a correct answer, down for an incorrect one. Move it more when the answer contradicts the prior estimate. Keep it between 0 and 1.`

// buildUserMessage constructs the grading request for one answer.
func buildUserMessage(input assess.EvaluateInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Question: %s\n", input.Question)
	fmt.Fprintf(&b, "Correct answer: %s\n", input.CorrectAnswer)
	fmt.Fprintf(&b, "Learner's answer: %s\n", input.Answer)
	fmt.Fprintf(&b, "Prior mastery estimate: %.2f\n", input.Mastery)
	return b.String()
}
