package assess

import (
	"context"
	"fmt"
	"sync"
)

// Controller sequences one assessment session: it initializes mastery from
// the store, requests questions, forwards answers to the evaluator, absorbs
// mastery updates, and invokes the completion sink after RoundLimit rounds.
//
// At most one collaborator request may be outstanding at a time. While a
// request is pending, SubmitAnswer and Advance fail with ErrBusy so a slow
// response can never race a re-entrant operation. No request is cancelled by
// the controller itself; callers bound collaborator calls with the context
// they pass in.
type Controller struct {
	provider  QuestionProvider
	evaluator AnswerEvaluator
	store     MasteryStore
	sink      CompletionSink

	mu         sync.Mutex
	session    *Session
	question   *Question
	evaluation *Evaluation
	inFlight   bool
}

// NewController creates a Controller with injected collaborators.
// sink may be nil when the caller does not care about completion.
func NewController(provider QuestionProvider, evaluator AnswerEvaluator, store MasteryStore, sink CompletionSink) *Controller {
	return &Controller{
		provider:  provider,
		evaluator: evaluator,
		store:     store,
		sink:      sink,
	}
}

// Initialize starts a session for the learner on the given topic. It reads
// the persisted mastery (0.0 when absent), resets the round counter, and
// requests the first question using that mastery.
//
// An empty learnerID fails with ErrMissingIdentity before anything else
// happens: no session is created and no request is issued. A store or
// provider failure leaves the controller re-enterable; calling Initialize
// again retries the whole entry sequence.
func (c *Controller) Initialize(ctx context.Context, topicID, topicTitle, learnerID string) error {
	if learnerID == "" {
		return ErrMissingIdentity
	}

	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrBusy
	}
	if c.session != nil && c.session.Status != StatusInitializing {
		c.mu.Unlock()
		return fmt.Errorf("session already started (status %s)", c.session.Status)
	}
	c.session = &Session{
		TopicID:    topicID,
		TopicTitle: topicTitle,
		LearnerID:  learnerID,
		Status:     StatusInitializing,
	}
	c.inFlight = true
	c.mu.Unlock()

	mastery, ok, err := c.store.ReadMastery(ctx, learnerID, topicID)
	if err != nil {
		c.clearInFlight()
		return fmt.Errorf("read mastery: %w", err)
	}
	if !ok {
		mastery = 0.0
	}

	c.mu.Lock()
	c.session.Mastery = Clamp(mastery)
	c.mu.Unlock()

	return c.fetchQuestion(ctx)
}

// SubmitAnswer forwards the learner's choice to the evaluator.
//
// The choice must be a non-empty member of the current question's options;
// anything else fails with a ValidationError and the evaluator is never
// contacted. On success the session's mastery is replaced by the clamped
// evaluator value, the round counter increments, and the status becomes
// StatusEvaluated. On evaluator failure nothing changes and the same
// submission can be retried.
func (c *Controller) SubmitAnswer(ctx context.Context, choice string) error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrBusy
	}
	if c.session == nil || c.session.Status != StatusAwaitingAnswer {
		c.mu.Unlock()
		return &ValidationError{Reason: "no question awaiting an answer"}
	}
	if choice == "" {
		c.mu.Unlock()
		return &ValidationError{Reason: "empty selection"}
	}
	if !c.question.HasOption(choice) {
		c.mu.Unlock()
		return &ValidationError{Reason: fmt.Sprintf("%q is not one of the options", choice)}
	}

	input := EvaluateInput{
		Question:      c.question.Prompt,
		Answer:        choice,
		CorrectAnswer: c.question.CorrectAnswer,
		Topic:         c.session.TopicTitle,
		LearnerID:     c.session.LearnerID,
		TopicID:       c.session.TopicID,
		Mastery:       c.session.Mastery,
	}
	c.inFlight = true
	c.mu.Unlock()

	eval, newMastery, err := c.evaluator.Evaluate(ctx, input)
	if err != nil {
		c.clearInFlight()
		return &EvaluatorError{Err: err}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false
	c.evaluation = eval
	c.session.Mastery = Clamp(newMastery)
	c.session.QuestionsAnswered++
	c.session.Status = StatusEvaluated
	return nil
}

// Advance moves past an evaluated round. Once RoundLimit rounds have been
// answered it transitions to StatusCompleted and invokes the completion sink
// with the final mastery, exactly once. Otherwise it discards the previous
// question and evaluation and requests the next question with the current
// mastery.
//
// Calling Advance in any state other than StatusEvaluated, including after
// completion, is a no-op.
func (c *Controller) Advance(ctx context.Context) error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrBusy
	}
	if c.session == nil || c.session.Status != StatusEvaluated {
		c.mu.Unlock()
		return nil
	}

	if c.session.QuestionsAnswered >= RoundLimit {
		c.session.Status = StatusCompleted
		c.question = nil
		c.evaluation = nil
		final := c.session.Mastery
		sink := c.sink
		c.mu.Unlock()
		if sink != nil {
			sink(final)
		}
		return nil
	}

	c.inFlight = true
	c.mu.Unlock()

	return c.fetchQuestion(ctx)
}

// fetchQuestion requests a question with the session's current mastery and,
// on success, installs it and transitions to StatusAwaitingAnswer.
// The in-flight flag must be set by the caller; it is cleared here.
func (c *Controller) fetchQuestion(ctx context.Context) error {
	c.mu.Lock()
	topic := c.session.TopicTitle
	mastery := c.session.Mastery
	c.mu.Unlock()

	q, level, err := c.provider.GenerateQuestion(ctx, topic, mastery)
	if err != nil {
		c.clearInFlight()
		return &ProviderError{Err: err}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false
	c.question = q
	c.evaluation = nil
	c.session.Level = level
	c.session.Status = StatusAwaitingAnswer
	return nil
}

func (c *Controller) clearInFlight() {
	c.mu.Lock()
	c.inFlight = false
	c.mu.Unlock()
}

// Session returns a copy of the current session state, or nil before
// Initialize has created one.
func (c *Controller) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

// Question returns the current round's question, or nil between rounds.
func (c *Controller) Question() *Question {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.question
}

// Evaluation returns the most recent graded evaluation, or nil when the
// current question has not been answered yet.
func (c *Controller) Evaluation() *Evaluation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evaluation
}
