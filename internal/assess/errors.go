package assess

import (
	"errors"
	"fmt"
)

// ErrMissingIdentity means a session cannot initialize because no learner
// identity was supplied. Fatal to initialization: no session is created.
var ErrMissingIdentity = errors.New("learner identity is required")

// ErrBusy means a collaborator request is already outstanding. The
// controller permits at most one in-flight request per session.
var ErrBusy = errors.New("a request is already in flight")

// ValidationError means an invalid answer selection was submitted.
// Local: no collaborator is contacted and session state is unchanged.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid answer: " + e.Reason
}

// ProviderError means a question-generation call failed. The controller
// remains in its prior state; re-invoking the same operation retries.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("question provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// EvaluatorError means an evaluation call failed. Mastery and counters are
// untouched, so retrying the submission is safe.
type EvaluatorError struct {
	Err error
}

func (e *EvaluatorError) Error() string {
	return fmt.Sprintf("answer evaluator: %v", e.Err)
}

func (e *EvaluatorError) Unwrap() error { return e.Err }
