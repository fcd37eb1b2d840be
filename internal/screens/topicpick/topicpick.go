// Package topicpick lets the learner choose which topic to be assessed on.
package topicpick

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rsahni/topiq/internal/router"
	"github.com/rsahni/topiq/internal/screen"
	assessscreen "github.com/rsahni/topiq/internal/screens/assess"
	"github.com/rsahni/topiq/internal/topics"
	"github.com/rsahni/topiq/internal/ui/layout"
	"github.com/rsahni/topiq/internal/ui/theme"
)

// TopicPickScreen shows the catalog grouped by category.
type TopicPickScreen struct {
	deps      assessscreen.Deps
	learnerID string
	all       []topics.Topic
	selected  int
}

var _ screen.Screen = (*TopicPickScreen)(nil)
var _ screen.KeyHintProvider = (*TopicPickScreen)(nil)

// New creates a TopicPickScreen.
func New(deps assessscreen.Deps, learnerID string) *TopicPickScreen {
	return &TopicPickScreen{
		deps:      deps,
		learnerID: learnerID,
		all:       topics.All(),
	}
}

func (s *TopicPickScreen) Init() tea.Cmd {
	return nil
}

func (s *TopicPickScreen) Title() string {
	return "Choose a Topic"
}

func (s *TopicPickScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TopicPickScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.all)-1 {
			s.selected++
		}
	case "enter":
		topic := s.all[s.selected]
		return s, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: assessscreen.New(s.deps, s.learnerID, topic),
			}
		}
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return s, nil
}

func (s *TopicPickScreen) View(width, height int) string {
	var b strings.Builder

	lastCategory := ""
	for i, t := range s.all {
		if t.Category != lastCategory {
			if lastCategory != "" {
				b.WriteString("\n")
			}
			b.WriteString("  " + lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Bold(true).
				Render(strings.ToUpper(t.Category)))
			b.WriteString("\n")
			lastCategory = t.Category
		}

		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "  ▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%-24s %s", prefix, t.Title,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Description))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
