// Package summary shows the result of a completed assessment session.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rsahni/topiq/internal/router"
	"github.com/rsahni/topiq/internal/screen"
	"github.com/rsahni/topiq/internal/topics"
	"github.com/rsahni/topiq/internal/ui/components"
	"github.com/rsahni/topiq/internal/ui/layout"
	"github.com/rsahni/topiq/internal/ui/theme"
)

// RoundResult is one graded round, as shown in the recap.
type RoundResult struct {
	Round    int
	Question string
	Answer   string
	Score    float64
	Mastery  float64 // estimate after this round
	Level    string
}

// SummaryScreen displays the session outcome.
type SummaryScreen struct {
	topic        topics.Topic
	startMastery float64
	finalMastery float64
	rounds       []RoundResult
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for a finished session.
func New(topic topics.Topic, startMastery, finalMastery float64, rounds []RoundResult) *SummaryScreen {
	return &SummaryScreen{
		topic:        topic,
		startMastery: startMastery,
		finalMastery: finalMastery,
		rounds:       rounds,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(s.topic.Title))
	b.WriteString("\n\n")

	// Mastery movement.
	delta := s.finalMastery - s.startMastery
	deltaStyle := theme.Correct
	arrow := "▲"
	if delta < 0 {
		deltaStyle = theme.Incorrect
		arrow = "▼"
	}
	masteryLine := fmt.Sprintf("Mastery  %.2f → %.2f   %s",
		s.startMastery, s.finalMastery,
		deltaStyle.Render(fmt.Sprintf("%s %.2f", arrow, abs(delta))))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Render(masteryLine)))
	b.WriteString("\n\n")

	barWidth := min(width-8, 50)
	bar := components.NewProgressBar("", s.finalMastery, true, barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// Rounds divider.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Rounds")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, r := range s.rounds {
		mark := theme.Incorrect.Render("✗")
		if r.Score >= 0.5 {
			mark = theme.Correct.Render("✓")
		}
		q := r.Question
		maxQ := min(width-30, 56)
		if len(q) > maxQ && maxQ > 3 {
			q = q[:maxQ-3] + "..."
		}
		line := fmt.Sprintf("%s  %d. %s  (%s)", mark, r.Round, q, r.Level)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
