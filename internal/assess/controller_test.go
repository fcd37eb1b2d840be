package assess

import (
	"context"
	"errors"
	"testing"
)

// fakeProvider returns canned questions in FIFO order.
type fakeProvider struct {
	questions []*Question
	levels    []string
	errs      []error
	calls     int
	masteries []float64
}

func (f *fakeProvider) GenerateQuestion(_ context.Context, _ string, mastery float64) (*Question, string, error) {
	f.calls++
	f.masteries = append(f.masteries, mastery)
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return nil, "", err
		}
	}
	q := f.questions[0]
	if len(f.questions) > 1 {
		f.questions = f.questions[1:]
	}
	level := "Beginner"
	if len(f.levels) > 0 {
		level = f.levels[0]
		if len(f.levels) > 1 {
			f.levels = f.levels[1:]
		}
	}
	return q, level, nil
}

// fakeEvaluator returns canned evaluations in FIFO order.
type fakeEvaluator struct {
	evals  []*Evaluation
	scores []float64
	errs   []error
	calls  int
	inputs []EvaluateInput
}

func (f *fakeEvaluator) Evaluate(_ context.Context, input EvaluateInput) (*Evaluation, float64, error) {
	f.calls++
	f.inputs = append(f.inputs, input)
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return nil, 0, err
		}
	}
	eval := f.evals[0]
	score := f.scores[0]
	if len(f.evals) > 1 {
		f.evals = f.evals[1:]
		f.scores = f.scores[1:]
	}
	return eval, score, nil
}

// fakeStore returns a fixed mastery value, or absence.
type fakeStore struct {
	mastery float64
	ok      bool
	err     error
}

func (f *fakeStore) ReadMastery(_ context.Context, _, _ string) (float64, bool, error) {
	return f.mastery, f.ok, f.err
}

func testQuestion() *Question {
	return &Question{
		Prompt:        "Which layer of the OSI model handles routing?",
		Options:       []string{"Transport", "Network", "Data link", "Session"},
		CorrectAnswer: "Network",
	}
}

func newTestController(p *fakeProvider, e AnswerEvaluator, s *fakeStore, sink CompletionSink) *Controller {
	if p == nil {
		p = &fakeProvider{questions: []*Question{testQuestion()}}
	}
	if e == nil {
		e = &fakeEvaluator{
			evals:  []*Evaluation{{Score: 1.0, Feedback: "Correct", Correction: NoCorrection}},
			scores: []float64{0.5},
		}
	}
	if s == nil {
		s = &fakeStore{}
	}
	return NewController(p, e, s, sink)
}

func TestInitialize_MissingIdentity(t *testing.T) {
	p := &fakeProvider{questions: []*Question{testQuestion()}}
	c := newTestController(p, nil, nil, nil)

	err := c.Initialize(context.Background(), "topic-1", "Networking", "")
	if !errors.Is(err, ErrMissingIdentity) {
		t.Fatalf("err = %v, want ErrMissingIdentity", err)
	}
	if c.Session() != nil {
		t.Error("expected no session to be created")
	}
	if p.calls != 0 {
		t.Errorf("provider calls = %d, want 0", p.calls)
	}
}

func TestInitialize_AbsentMasteryDefaultsToZero(t *testing.T) {
	p := &fakeProvider{questions: []*Question{testQuestion()}}
	store := &fakeStore{mastery: 0.7, ok: false} // value present but marked absent
	c := newTestController(p, nil, store, nil)

	if err := c.Initialize(context.Background(), "topic-1", "Networking", "learner-1"); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	s := c.Session()
	if s.Mastery != 0.0 {
		t.Errorf("mastery = %v, want 0.0", s.Mastery)
	}
	if s.Status != StatusAwaitingAnswer {
		t.Errorf("status = %v, want awaiting-answer", s.Status)
	}
	// First question must have been requested with the default mastery.
	if len(p.masteries) != 1 || p.masteries[0] != 0.0 {
		t.Errorf("provider masteries = %v, want [0]", p.masteries)
	}
}

func TestInitialize_StoredMasteryUsed(t *testing.T) {
	p := &fakeProvider{questions: []*Question{testQuestion()}, levels: []string{"Advanced"}}
	store := &fakeStore{mastery: 0.6, ok: true}
	c := newTestController(p, nil, store, nil)

	if err := c.Initialize(context.Background(), "topic-1", "Networking", "learner-1"); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	s := c.Session()
	if s.Mastery != 0.6 {
		t.Errorf("mastery = %v, want 0.6", s.Mastery)
	}
	if s.Level != "Advanced" {
		t.Errorf("level = %q, want %q (provider-supplied)", s.Level, "Advanced")
	}
	if p.masteries[0] != 0.6 {
		t.Errorf("first question requested with mastery %v, want 0.6", p.masteries[0])
	}
}

func TestInitialize_ProviderFailureIsRetryable(t *testing.T) {
	p := &fakeProvider{
		questions: []*Question{testQuestion()},
		errs:      []error{errors.New("boom")},
	}
	c := newTestController(p, nil, nil, nil)

	err := c.Initialize(context.Background(), "topic-1", "Networking", "learner-1")
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want ProviderError", err)
	}
	if got := c.Session().Status; got != StatusInitializing {
		t.Fatalf("status = %v, want initializing", got)
	}

	// Re-invoking the same operation is the recovery path.
	if err := c.Initialize(context.Background(), "topic-1", "Networking", "learner-1"); err != nil {
		t.Fatalf("retry initialize: %v", err)
	}
	if got := c.Session().Status; got != StatusAwaitingAnswer {
		t.Errorf("status after retry = %v, want awaiting-answer", got)
	}
}

func TestSubmitAnswer_EmptyChoiceRejected(t *testing.T) {
	e := &fakeEvaluator{}
	c := newTestController(nil, e, nil, nil)
	mustInitialize(t, c)

	err := c.SubmitAnswer(context.Background(), "")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if e.calls != 0 {
		t.Errorf("evaluator calls = %d, want 0 (never contacted with invalid input)", e.calls)
	}

	s := c.Session()
	if s.Status != StatusAwaitingAnswer {
		t.Errorf("status = %v, want awaiting-answer", s.Status)
	}
	if s.Mastery != 0 || s.QuestionsAnswered != 0 {
		t.Errorf("mastery/counter changed: %v/%d", s.Mastery, s.QuestionsAnswered)
	}
}

func TestSubmitAnswer_OutOfSetChoiceRejected(t *testing.T) {
	e := &fakeEvaluator{}
	c := newTestController(nil, e, nil, nil)
	mustInitialize(t, c)

	err := c.SubmitAnswer(context.Background(), "Presentation")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if e.calls != 0 {
		t.Errorf("evaluator calls = %d, want 0", e.calls)
	}
}

func TestSubmitAnswer_WrongStateRejected(t *testing.T) {
	e := &fakeEvaluator{}
	c := newTestController(nil, e, nil, nil)

	// No session at all.
	err := c.SubmitAnswer(context.Background(), "Network")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if e.calls != 0 {
		t.Errorf("evaluator calls = %d, want 0", e.calls)
	}
}

func TestSubmitAnswer_Success(t *testing.T) {
	e := &fakeEvaluator{
		evals: []*Evaluation{
			{Score: 0.8, Feedback: "Well done", Correction: NoCorrection},
		},
		scores: []float64{0.32},
	}
	store := &fakeStore{mastery: 0.2, ok: true}
	c := newTestController(nil, e, store, nil)
	mustInitialize(t, c)

	if err := c.SubmitAnswer(context.Background(), "Network"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	s := c.Session()
	if s.Mastery != 0.32 {
		t.Errorf("mastery = %v, want 0.32", s.Mastery)
	}
	if s.QuestionsAnswered != 1 {
		t.Errorf("questionsAnswered = %d, want 1", s.QuestionsAnswered)
	}
	if s.Status != StatusEvaluated {
		t.Errorf("status = %v, want evaluated", s.Status)
	}

	eval := c.Evaluation()
	if eval == nil {
		t.Fatal("expected an evaluation")
	}
	if eval.HasCorrection() {
		t.Error("sentinel correction must be treated as absent")
	}

	// Evaluator receives the full grading context.
	in := e.inputs[0]
	if in.Answer != "Network" || in.CorrectAnswer != "Network" || in.Mastery != 0.2 {
		t.Errorf("unexpected evaluate input: %+v", in)
	}
	if in.LearnerID != "learner-1" || in.TopicID != "topic-1" {
		t.Errorf("identity not forwarded: %+v", in)
	}
}

func TestSubmitAnswer_MasteryClamped(t *testing.T) {
	cases := []struct {
		raw  float64
		want float64
	}{
		{1.4, 1.0},
		{-0.2, 0.0},
		{0.5, 0.5},
	}
	for _, tc := range cases {
		e := &fakeEvaluator{
			evals:  []*Evaluation{{Score: 1, Feedback: "ok", Correction: NoCorrection}},
			scores: []float64{tc.raw},
		}
		c := newTestController(nil, e, nil, nil)
		mustInitialize(t, c)
		if err := c.SubmitAnswer(context.Background(), "Network"); err != nil {
			t.Fatalf("submit: %v", err)
		}
		if got := c.Session().Mastery; got != tc.want {
			t.Errorf("mastery for raw %v = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestSubmitAnswer_EvaluatorFailureLeavesStateUntouched(t *testing.T) {
	e := &fakeEvaluator{
		errs: []error{errors.New("network down")},
		evals: []*Evaluation{
			{Score: 1, Feedback: "ok", Correction: NoCorrection},
		},
		scores: []float64{0.4},
	}
	store := &fakeStore{mastery: 0.25, ok: true}
	c := newTestController(nil, e, store, nil)
	mustInitialize(t, c)

	err := c.SubmitAnswer(context.Background(), "Network")
	var ee *EvaluatorError
	if !errors.As(err, &ee) {
		t.Fatalf("err = %v, want EvaluatorError", err)
	}

	s := c.Session()
	if s.Status != StatusAwaitingAnswer {
		t.Errorf("status = %v, want awaiting-answer", s.Status)
	}
	if s.Mastery != 0.25 || s.QuestionsAnswered != 0 {
		t.Errorf("state changed on failure: mastery=%v count=%d", s.Mastery, s.QuestionsAnswered)
	}

	// A retry with identical inputs behaves as if the failure never happened.
	if err := c.SubmitAnswer(context.Background(), "Network"); err != nil {
		t.Fatalf("retry submit: %v", err)
	}
	s = c.Session()
	if s.Mastery != 0.4 || s.QuestionsAnswered != 1 || s.Status != StatusEvaluated {
		t.Errorf("retry state: mastery=%v count=%d status=%v", s.Mastery, s.QuestionsAnswered, s.Status)
	}
}

func TestAdvance_OutsideEvaluatedIsNoop(t *testing.T) {
	p := &fakeProvider{questions: []*Question{testQuestion()}}
	c := newTestController(p, nil, nil, nil)
	mustInitialize(t, c)

	if err := c.Advance(context.Background()); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if got := c.Session().Status; got != StatusAwaitingAnswer {
		t.Errorf("status = %v, want awaiting-answer (unchanged)", got)
	}
	if p.calls != 1 {
		t.Errorf("provider calls = %d, want 1 (no new request)", p.calls)
	}
}

func TestAdvance_RequestsNextQuestionWithCurrentMastery(t *testing.T) {
	p := &fakeProvider{questions: []*Question{testQuestion()}}
	e := &fakeEvaluator{
		evals:  []*Evaluation{{Score: 1, Feedback: "ok", Correction: NoCorrection}},
		scores: []float64{0.44},
	}
	c := newTestController(p, e, nil, nil)
	mustInitialize(t, c)
	mustSubmit(t, c, "Network")

	if err := c.Advance(context.Background()); err != nil {
		t.Fatalf("advance: %v", err)
	}

	s := c.Session()
	if s.Status != StatusAwaitingAnswer {
		t.Errorf("status = %v, want awaiting-answer", s.Status)
	}
	if c.Evaluation() != nil {
		t.Error("expected previous evaluation to be discarded")
	}
	if got := p.masteries[len(p.masteries)-1]; got != 0.44 {
		t.Errorf("next question requested with mastery %v, want 0.44", got)
	}
}

func TestAdvance_ProviderFailureStaysEvaluated(t *testing.T) {
	p := &fakeProvider{
		questions: []*Question{testQuestion()},
		errs:      []error{nil, errors.New("unavailable")},
	}
	c := newTestController(p, nil, nil, nil)
	mustInitialize(t, c)
	mustSubmit(t, c, "Network")

	err := c.Advance(context.Background())
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want ProviderError", err)
	}
	s := c.Session()
	if s.Status != StatusEvaluated {
		t.Errorf("status = %v, want evaluated (prior state)", s.Status)
	}
	if s.QuestionsAnswered != 1 {
		t.Errorf("counter = %d, want 1 (unchanged)", s.QuestionsAnswered)
	}

	// Manual retry.
	if err := c.Advance(context.Background()); err != nil {
		t.Fatalf("retry advance: %v", err)
	}
	if got := c.Session().Status; got != StatusAwaitingAnswer {
		t.Errorf("status after retry = %v, want awaiting-answer", got)
	}
}

func TestFullSession_CompletionSinkExactlyOnce(t *testing.T) {
	masteries := []float64{0.1, 0.2, 0.3, 0.4, 0.55}
	e := &fakeEvaluator{}
	for _, m := range masteries {
		e.evals = append(e.evals, &Evaluation{Score: 1, Feedback: "ok", Correction: NoCorrection})
		e.scores = append(e.scores, m)
	}

	var sinkCalls int
	var finalMastery float64
	c := newTestController(nil, e, nil, func(m float64) {
		sinkCalls++
		finalMastery = m
	})
	mustInitialize(t, c)

	for round := 0; round < RoundLimit; round++ {
		mustSubmit(t, c, "Network")

		s := c.Session()
		if s.Mastery != masteries[round] {
			t.Fatalf("round %d mastery = %v, want %v", round, s.Mastery, masteries[round])
		}
		if s.QuestionsAnswered != round+1 {
			t.Fatalf("round %d counter = %d, want %d", round, s.QuestionsAnswered, round+1)
		}

		if err := c.Advance(context.Background()); err != nil {
			t.Fatalf("advance round %d: %v", round, err)
		}
	}

	s := c.Session()
	if s.Status != StatusCompleted {
		t.Fatalf("status = %v, want completed", s.Status)
	}
	if sinkCalls != 1 {
		t.Fatalf("sink calls = %d, want exactly 1", sinkCalls)
	}
	if finalMastery != 0.55 {
		t.Errorf("final mastery = %v, want 0.55 (round 5's evaluation)", finalMastery)
	}

	// Idempotence: advancing a completed session changes nothing.
	for i := 0; i < 3; i++ {
		if err := c.Advance(context.Background()); err != nil {
			t.Fatalf("advance after completion: %v", err)
		}
	}
	if sinkCalls != 1 {
		t.Errorf("sink calls after repeat advances = %d, want 1", sinkCalls)
	}
	if got := c.Session().Status; got != StatusCompleted {
		t.Errorf("status = %v, want completed", got)
	}
}

func TestCounterNeverExceedsRoundLimit(t *testing.T) {
	e := &fakeEvaluator{
		evals:  []*Evaluation{{Score: 1, Feedback: "ok", Correction: NoCorrection}},
		scores: []float64{0.5},
	}
	c := newTestController(nil, e, nil, nil)
	mustInitialize(t, c)

	for round := 0; round < RoundLimit; round++ {
		mustSubmit(t, c, "Network")
		if err := c.Advance(context.Background()); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	// Session is completed; a further submit must be rejected and the
	// counter must stay at the limit.
	err := c.SubmitAnswer(context.Background(), "Network")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if got := c.Session().QuestionsAnswered; got != RoundLimit {
		t.Errorf("counter = %d, want %d", got, RoundLimit)
	}
}

// reentrantEvaluator calls back into the controller while its own request
// is still outstanding, which must be rejected.
type reentrantEvaluator struct {
	c       *Controller
	busyErr error
}

func (r *reentrantEvaluator) Evaluate(ctx context.Context, _ EvaluateInput) (*Evaluation, float64, error) {
	r.busyErr = r.c.SubmitAnswer(ctx, "Network")
	return &Evaluation{Score: 1, Feedback: "ok", Correction: NoCorrection}, 0.5, nil
}

func TestSubmitAnswer_RejectedWhileRequestOutstanding(t *testing.T) {
	r := &reentrantEvaluator{}
	c := newTestController(nil, r, nil, nil)
	r.c = c
	mustInitialize(t, c)

	if err := c.SubmitAnswer(context.Background(), "Network"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !errors.Is(r.busyErr, ErrBusy) {
		t.Errorf("re-entrant submit err = %v, want ErrBusy", r.busyErr)
	}
	// The outer submission still lands exactly once.
	if got := c.Session().QuestionsAnswered; got != 1 {
		t.Errorf("counter = %d, want 1", got)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{3.7, 1},
	}
	for _, tc := range cases {
		if got := Clamp(tc.in); got != tc.want {
			t.Errorf("Clamp(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestQuestionHasOption(t *testing.T) {
	q := testQuestion()
	if !q.HasOption("Network") {
		t.Error("expected HasOption to find a member")
	}
	if q.HasOption("network") {
		t.Error("option matching is exact, not case-folded")
	}
	if q.HasOption("") {
		t.Error("empty string is never an option")
	}
}

func TestEvaluationHasCorrection(t *testing.T) {
	cases := []struct {
		correction string
		want       bool
	}{
		{"None needed", false},
		{"", false},
		{"The Network layer routes packets.", true},
	}
	for _, tc := range cases {
		e := &Evaluation{Correction: tc.correction}
		if got := e.HasCorrection(); got != tc.want {
			t.Errorf("HasCorrection(%q) = %v, want %v", tc.correction, got, tc.want)
		}
	}
}

func mustInitialize(t *testing.T, c *Controller) {
	t.Helper()
	if err := c.Initialize(context.Background(), "topic-1", "Networking", "learner-1"); err != nil {
		t.Fatalf("initialize: %v", err)
	}
}

func mustSubmit(t *testing.T, c *Controller, choice string) {
	t.Helper()
	if err := c.SubmitAnswer(context.Background(), choice); err != nil {
		t.Fatalf("submit %q: %v", choice, err)
	}
}
