package assessscreen

import "time"

// sessionReadyMsg is sent when controller initialization finishes.
type sessionReadyMsg struct {
	Err error
}

// answerEvaluatedMsg is sent when the evaluator returns.
type answerEvaluatedMsg struct {
	Err error
}

// advancedMsg is sent when the controller finishes advancing, either to a
// new question or to completion.
type advancedMsg struct {
	Err error
}

// spinnerTickMsg animates the waiting spinner.
type spinnerTickMsg time.Time
