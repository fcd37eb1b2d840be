// Package stats shows per-topic mastery as a bar chart.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rsahni/topiq/internal/router"
	"github.com/rsahni/topiq/internal/screen"
	"github.com/rsahni/topiq/internal/store"
	"github.com/rsahni/topiq/internal/topics"
	"github.com/rsahni/topiq/internal/ui/components"
	"github.com/rsahni/topiq/internal/ui/layout"
	"github.com/rsahni/topiq/internal/ui/theme"
)

type masteryLoadedMsg struct {
	Entries []store.MasteryEntry
	Err     error
}

// StatsScreen lists every assessed topic with its mastery estimate.
type StatsScreen struct {
	mastery   store.MasteryRepo
	learnerID string
	entries   []store.MasteryEntry
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen for one learner.
func New(mastery store.MasteryRepo, learnerID string) *StatsScreen {
	return &StatsScreen{
		mastery:   mastery,
		learnerID: learnerID,
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		entries, err := s.mastery.All(context.Background(), s.learnerID)
		return masteryLoadedMsg{Entries: entries, Err: err}
	}
}

func (s *StatsScreen) Title() string {
	return "Topic Mastery"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case masteryLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading...")
	}
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No topics assessed yet. Complete a session first.")
	}

	barWidth := min(width-12, 60)

	var b strings.Builder
	b.WriteString("\n")
	for _, e := range s.entries {
		title := e.TopicID
		if t, err := topics.Get(e.TopicID); err == nil {
			title = t.Title
		}
		bar := components.NewProgressBar(fmt.Sprintf("%-24s", title), e.Mastery, true, barWidth)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
