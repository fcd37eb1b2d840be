// Package history lists past assessment sessions with drill-down into
// their rounds.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/rsahni/topiq/internal/router"
	"github.com/rsahni/topiq/internal/screen"
	"github.com/rsahni/topiq/internal/store"
	"github.com/rsahni/topiq/internal/ui/layout"
	"github.com/rsahni/topiq/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []store.SessionEventRecord
	Rounds   map[string][]store.RoundEventRecord // sessionID → rounds
	Err      error
}

// HistoryScreen displays completed sessions, newest last.
type HistoryScreen struct {
	eventRepo store.EventRepo
	learnerID string
	sessions  []store.SessionEventRecord
	rounds    map[string][]store.RoundEventRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen for one learner.
func New(eventRepo store.EventRepo, learnerID string) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		learnerID: learnerID,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		all, err := s.eventRepo.QuerySessionEvents(ctx, store.QueryOpts{
			LearnerID: s.learnerID,
			Limit:     200,
		})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// Only completed sessions are worth listing.
		var completed []store.SessionEventRecord
		for _, e := range all {
			if e.Action == "complete" {
				completed = append(completed, e)
			}
		}

		rounds := make(map[string][]store.RoundEventRecord)
		for _, e := range completed {
			rs, err := s.eventRepo.RoundsForSession(ctx, e.SessionID)
			if err != nil {
				continue
			}
			rounds[e.SessionID] = rs
		}

		return historyLoadedMsg{Sessions: completed, Rounds: rounds}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.rounds = msg.Rounds
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No completed sessions yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		dateStr := sess.Timestamp.Format("Jan 02, 2006")

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-20s mastery %.2f → %.2f",
			prefix, dateStr, sess.TopicTitle, sess.StartMastery, sess.FinalMastery)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, r := range s.rounds[sess.SessionID] {
				mark := "✗"
				markStyle := lipgloss.NewStyle().Foreground(theme.Error)
				if r.Score >= 0.5 {
					mark = "✓"
					markStyle = lipgloss.NewStyle().Foreground(theme.Success)
				}
				q := r.Question
				if len(q) > 56 {
					q = q[:53] + "..."
				}
				roundLine := fmt.Sprintf("    %s %d. %s (%s)",
					markStyle.Render(mark), r.Round, q, r.Level)
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(roundLine)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
