// Package assessscreen drives one assessment session: five questions on a
// topic, each graded by the evaluator, with mastery updated as it goes.
package assessscreen

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rsahni/topiq/internal/assess"
	"github.com/rsahni/topiq/internal/router"
	"github.com/rsahni/topiq/internal/screen"
	"github.com/rsahni/topiq/internal/screens/summary"
	"github.com/rsahni/topiq/internal/store"
	"github.com/rsahni/topiq/internal/topics"
	"github.com/rsahni/topiq/internal/ui/components"
	"github.com/rsahni/topiq/internal/ui/layout"

	"github.com/google/uuid"
)

type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseEvaluating
	phaseFeedback
	phaseError
)

// Deps carries the collaborators an assessment session needs.
type Deps struct {
	Provider  assess.QuestionProvider
	Evaluator assess.AnswerEvaluator
	Mastery   assess.MasteryStore
	Events    store.EventRepo
}

// AssessScreen runs one session against the controller.
type AssessScreen struct {
	deps      Deps
	ctrl      *assess.Controller
	topic     topics.Topic
	learnerID string
	sessionID string

	phase        phase
	quitConfirm  bool
	errMsg       string
	transientErr string

	mc           components.MultiChoice
	startMastery float64
	rounds       []summary.RoundResult
	spinnerFrame int
}

var _ screen.Screen = (*AssessScreen)(nil)
var _ screen.KeyHintProvider = (*AssessScreen)(nil)

// New creates an AssessScreen for the learner and topic.
func New(deps Deps, learnerID string, topic topics.Topic) *AssessScreen {
	s := &AssessScreen{
		deps:      deps,
		topic:     topic,
		learnerID: learnerID,
		sessionID: uuid.New().String(),
		phase:     phaseLoading,
	}
	s.ctrl = assess.NewController(deps.Provider, deps.Evaluator, deps.Mastery, s.onComplete)
	return s
}

// onComplete records the completion event. The controller guarantees it
// runs exactly once per session.
func (s *AssessScreen) onComplete(finalMastery float64) {
	if s.deps.Events == nil {
		return
	}
	_ = s.deps.Events.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:    s.sessionID,
		LearnerID:    s.learnerID,
		TopicID:      s.topic.ID,
		TopicTitle:   s.topic.Title,
		Action:       "complete",
		Rounds:       assess.RoundLimit,
		StartMastery: s.startMastery,
		FinalMastery: finalMastery,
	})
}

func (s *AssessScreen) Init() tea.Cmd {
	return tea.Batch(s.initSession(), spinnerTick())
}

func (s *AssessScreen) Title() string {
	return s.topic.Title
}

func (s *AssessScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.phase {
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	case phaseError:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

// initSession initializes the controller and records the start event.
func (s *AssessScreen) initSession() tea.Cmd {
	ctrl := s.ctrl
	topic := s.topic
	learnerID := s.learnerID
	return func() tea.Msg {
		err := ctrl.Initialize(context.Background(), topic.ID, topic.Title, learnerID)
		return sessionReadyMsg{Err: err}
	}
}

func (s *AssessScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		return s.handleSessionReady(msg)

	case answerEvaluatedMsg:
		return s.handleEvaluated(msg)

	case advancedMsg:
		return s.handleAdvanced(msg)

	case spinnerTickMsg:
		if s.phase == phaseLoading || s.phase == phaseEvaluating {
			s.spinnerFrame++
			return s, spinnerTick()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *AssessScreen) handleSessionReady(msg sessionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.phase = phaseError
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	sess := s.ctrl.Session()
	s.startMastery = sess.Mastery

	if s.deps.Events != nil {
		_ = s.deps.Events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:    s.sessionID,
			LearnerID:    s.learnerID,
			TopicID:      s.topic.ID,
			TopicTitle:   s.topic.Title,
			Action:       "start",
			StartMastery: sess.Mastery,
		})
	}

	s.showQuestion()
	return s, nil
}

// showQuestion installs the controller's current question into the selector.
func (s *AssessScreen) showQuestion() {
	q := s.ctrl.Question()
	if q == nil {
		s.phase = phaseError
		s.errMsg = "no question available"
		return
	}
	correct := 0
	for i, opt := range q.Options {
		if opt == q.CorrectAnswer {
			correct = i
			break
		}
	}
	s.mc = components.NewMultiChoice(q.Prompt, q.Options, correct)
	s.transientErr = ""
	s.phase = phaseQuestion
}

func (s *AssessScreen) handleEvaluated(msg answerEvaluatedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// Evaluator failures leave the round intact; let the learner
		// resubmit the same answer.
		if errors.Is(msg.Err, assess.ErrBusy) {
			return s, nil
		}
		s.transientErr = "Grading failed. Press Enter to retry."
		s.mc.Submitted = false
		s.phase = phaseQuestion
		return s, nil
	}

	sess := s.ctrl.Session()
	eval := s.ctrl.Evaluation()
	q := s.ctrl.Question()

	s.rounds = append(s.rounds, summary.RoundResult{
		Round:    sess.QuestionsAnswered,
		Question: q.Prompt,
		Answer:   s.mc.Chosen(),
		Score:    eval.Score,
		Mastery:  sess.Mastery,
		Level:    sess.Level,
	})

	if s.deps.Events != nil {
		_ = s.deps.Events.AppendRoundEvent(context.Background(), store.RoundEventData{
			SessionID:     s.sessionID,
			LearnerID:     s.learnerID,
			TopicID:       s.topic.ID,
			Round:         sess.QuestionsAnswered,
			Question:      q.Prompt,
			Answer:        s.mc.Chosen(),
			CorrectAnswer: q.CorrectAnswer,
			Score:         eval.Score,
			MasteryBefore: s.masteryBefore(),
			MasteryAfter:  sess.Mastery,
			Level:         sess.Level,
		})
	}

	s.phase = phaseFeedback
	return s, nil
}

// masteryBefore returns the mastery going into the current round.
func (s *AssessScreen) masteryBefore() float64 {
	if len(s.rounds) > 1 {
		return s.rounds[len(s.rounds)-2].Mastery
	}
	return s.startMastery
}

func (s *AssessScreen) handleAdvanced(msg advancedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, assess.ErrBusy) {
			return s, nil
		}
		// Question fetch failed; stay on feedback so the learner can retry.
		s.transientErr = "Couldn't fetch the next question. Press any key to retry."
		s.phase = phaseFeedback
		return s, nil
	}

	sess := s.ctrl.Session()
	if sess.Status == assess.StatusCompleted {
		sum := summary.New(s.topic, s.startMastery, sess.Mastery, s.rounds)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: sum}
		}
	}

	s.showQuestion()
	return s, nil
}

func (s *AssessScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	switch s.phase {
	case phaseError:
		switch key {
		case "r", "R":
			s.phase = phaseLoading
			s.errMsg = ""
			return s, tea.Batch(s.initSession(), spinnerTick())
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil

	case phaseFeedback:
		s.transientErr = ""
		s.phase = phaseEvaluating
		ctrl := s.ctrl
		return s, tea.Batch(
			func() tea.Msg { return advancedMsg{Err: ctrl.Advance(context.Background())} },
			spinnerTick(),
		)

	case phaseQuestion:
		if key == "esc" {
			s.quitConfirm = true
			return s, nil
		}

		// Number keys select and submit directly.
		switch key {
		case "1", "2", "3", "4":
			idx := int(key[0] - '1')
			if idx < len(s.mc.Options) {
				s.mc.Selected = idx
				s.mc.Submitted = true
				s.mc.ChosenIndex = idx
				return s.submitAnswer()
			}
			return s, nil
		}

		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			return s.submitAnswer()
		}
		return s, cmd
	}

	return s, nil
}

// submitAnswer sends the chosen option to the evaluator.
func (s *AssessScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	choice := s.mc.Chosen()
	if choice == "" {
		return s, nil
	}
	s.phase = phaseEvaluating
	ctrl := s.ctrl
	return s, tea.Batch(
		func() tea.Msg { return answerEvaluatedMsg{Err: ctrl.SubmitAnswer(context.Background(), choice)} },
		spinnerTick(),
	)
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
