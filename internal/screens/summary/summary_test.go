package summary

import (
	"strings"
	"testing"

	"github.com/rsahni/topiq/internal/topics"
)

func testRounds() []RoundResult {
	return []RoundResult{
		{Round: 1, Question: "Q1", Answer: "a", Score: 1.0, Mastery: 0.3, Level: "easy"},
		{Round: 2, Question: "Q2", Answer: "b", Score: 0.0, Mastery: 0.25, Level: "easy"},
		{Round: 3, Question: "Q3", Answer: "c", Score: 1.0, Mastery: 0.35, Level: "medium"},
	}
}

func TestViewShowsMasteryMovement(t *testing.T) {
	s := New(topics.Topic{ID: "go-basics", Title: "Go Basics"}, 0.2, 0.35, testRounds())
	out := s.View(100, 40)

	if !strings.Contains(out, "Session complete!") {
		t.Error("missing title")
	}
	if !strings.Contains(out, "Go Basics") {
		t.Error("missing topic title")
	}
	if !strings.Contains(out, "0.20") || !strings.Contains(out, "0.35") {
		t.Errorf("missing mastery movement:\n%s", out)
	}
}

func TestViewListsEachRound(t *testing.T) {
	s := New(topics.Topic{Title: "Go Basics"}, 0.2, 0.35, testRounds())
	out := s.View(100, 40)

	for _, q := range []string{"Q1", "Q2", "Q3"} {
		if !strings.Contains(out, q) {
			t.Errorf("missing round question %s", q)
		}
	}
}

func TestViewMarksDecline(t *testing.T) {
	s := New(topics.Topic{Title: "Go Basics"}, 0.6, 0.4, testRounds())
	out := s.View(100, 40)

	if !strings.Contains(out, "▼") {
		t.Error("expected decline marker for falling mastery")
	}
}
