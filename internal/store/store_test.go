package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestReadMasteryAbsent(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	m, ok, err := repo.ReadMastery(ctx, "learner-1", "go-basics")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if ok {
		t.Error("expected ok=false for absent record")
	}
	if m != 0 {
		t.Errorf("mastery = %v, want 0", m)
	}
}

func TestWriteMasteryUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	if err := repo.WriteMastery(ctx, "learner-1", "go-basics", 0.4); err != nil {
		t.Fatalf("write: %v", err)
	}

	m, ok, err := repo.ReadMastery(ctx, "learner-1", "go-basics")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true after write")
	}
	if m != 0.4 {
		t.Errorf("mastery = %v, want 0.4", m)
	}

	// Second write updates in place.
	if err := repo.WriteMastery(ctx, "learner-1", "go-basics", 0.65); err != nil {
		t.Fatalf("second write: %v", err)
	}
	m, _, err = repo.ReadMastery(ctx, "learner-1", "go-basics")
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if m != 0.65 {
		t.Errorf("mastery = %v, want 0.65", m)
	}

	count, err := s.Client().MasteryRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("record count = %d, want 1 (upsert, not insert)", count)
	}
}

func TestMasteryRecordsAreIndependentPerTopic(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	if err := repo.WriteMastery(ctx, "learner-1", "go-basics", 0.3); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := repo.WriteMastery(ctx, "learner-1", "concurrency", 0.8); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := repo.WriteMastery(ctx, "learner-2", "go-basics", 0.5); err != nil {
		t.Fatalf("write: %v", err)
	}

	m, _, err := repo.ReadMastery(ctx, "learner-1", "go-basics")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if m != 0.3 {
		t.Errorf("learner-1/go-basics = %v, want 0.3", m)
	}

	entries, err := repo.All(ctx, "learner-1")
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("learner-1 entries = %d, want 2", len(entries))
	}
}

func TestAppendAndQuerySessionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	start := SessionEventData{
		SessionID:    "sess-1",
		LearnerID:    "learner-1",
		TopicID:      "go-basics",
		TopicTitle:   "Go Basics",
		Action:       "start",
		StartMastery: 0.2,
	}
	if err := repo.AppendSessionEvent(ctx, start); err != nil {
		t.Fatalf("append start: %v", err)
	}

	complete := start
	complete.Action = "complete"
	complete.Rounds = 5
	complete.FinalMastery = 0.55
	if err := repo.AppendSessionEvent(ctx, complete); err != nil {
		t.Fatalf("append complete: %v", err)
	}

	events, err := repo.QuerySessionEvents(ctx, QueryOpts{LearnerID: "learner-1"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Action != "start" || events[1].Action != "complete" {
		t.Errorf("order = %q, %q; want start, complete", events[0].Action, events[1].Action)
	}
	if events[1].FinalMastery != 0.55 {
		t.Errorf("final mastery = %v, want 0.55", events[1].FinalMastery)
	}
	if events[0].Sequence >= events[1].Sequence {
		t.Errorf("sequences not increasing: %d, %d", events[0].Sequence, events[1].Sequence)
	}
}

func TestRoundsForSessionOrderedByRound(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 3; i >= 1; i-- {
		err := repo.AppendRoundEvent(ctx, RoundEventData{
			SessionID:     "sess-1",
			LearnerID:     "learner-1",
			TopicID:       "go-basics",
			Round:         i,
			Question:      "q",
			Answer:        "a",
			CorrectAnswer: "a",
			Score:         1,
			MasteryBefore: 0.2,
			MasteryAfter:  0.3,
			Level:         "easy",
		})
		if err != nil {
			t.Fatalf("append round %d: %v", i, err)
		}
	}

	rounds, err := repo.RoundsForSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("rounds: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("rounds = %d, want 3", len(rounds))
	}
	for i, r := range rounds {
		if r.Round != i+1 {
			t.Errorf("rounds[%d].Round = %d, want %d", i, r.Round, i+1)
		}
	}
}

func TestQueryRoundEventsLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		err := repo.AppendRoundEvent(ctx, RoundEventData{
			SessionID:     "sess-1",
			LearnerID:     "learner-1",
			TopicID:       "go-basics",
			Round:         i,
			Question:      "q",
			Answer:        "a",
			CorrectAnswer: "a",
			Score:         0.5,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	rounds, err := repo.QueryRoundEvents(ctx, QueryOpts{LearnerID: "learner-1", Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rounds) != 2 {
		t.Errorf("rounds = %d, want 2", len(rounds))
	}
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "question-gen",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    950,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestQueryLLMEventsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"question-gen", "answer-eval", "question-gen"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "anthropic",
			Model:    "claude-sonnet-4-5",
			Purpose:  purpose,
			Success:  true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("expected newest first, got sequences %d, %d",
			events[0].Sequence, events[1].Sequence)
	}
	if events[0].Purpose != "question-gen" {
		t.Errorf("purpose = %q, want question-gen", events[0].Purpose)
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true},
		{Provider: "anthropic", Model: "m", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 1200, Success: true},
		{Provider: "anthropic", Model: "m", Purpose: "answer-eval", InputTokens: 40, OutputTokens: 20, LatencyMs: 500, Success: true},
	}
	for _, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("len = %d, want 2", len(stats))
	}

	byPurpose := make(map[string]LLMUsageStat)
	for _, st := range stats {
		byPurpose[st.Purpose] = st
	}

	qg := byPurpose["question-gen"]
	if qg.Calls != 2 || qg.InputTokens != 200 || qg.OutputTokens != 100 {
		t.Errorf("question-gen stats = %+v", qg)
	}
	if qg.AvgLatencyMs != 1000 {
		t.Errorf("avg latency = %d, want 1000", qg.AvgLatencyMs)
	}

	ae := byPurpose["answer-eval"]
	if ae.Calls != 1 || ae.InputTokens != 40 {
		t.Errorf("answer-eval stats = %+v", ae)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "sess-1", LearnerID: "l", TopicID: "t", Action: "start",
	}); err != nil {
		t.Fatalf("append session: %v", err)
	}
	if err := repo.AppendRoundEvent(ctx, RoundEventData{
		SessionID: "sess-1", LearnerID: "l", TopicID: "t",
		Round: 1, Question: "q", Answer: "a", CorrectAnswer: "a", Score: 1,
	}); err != nil {
		t.Fatalf("append round: %v", err)
	}

	sessions, err := repo.QuerySessionEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query sessions: %v", err)
	}
	rounds, err := repo.QueryRoundEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query rounds: %v", err)
	}
	if sessions[0].Sequence >= rounds[0].Sequence {
		t.Errorf("expected session sequence %d < round sequence %d",
			sessions[0].Sequence, rounds[0].Sequence)
	}
}
