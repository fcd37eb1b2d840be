// Package home is the main navigation screen.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rsahni/topiq/internal/router"
	"github.com/rsahni/topiq/internal/screen"
	assessscreen "github.com/rsahni/topiq/internal/screens/assess"
	"github.com/rsahni/topiq/internal/screens/history"
	"github.com/rsahni/topiq/internal/screens/stats"
	"github.com/rsahni/topiq/internal/screens/topicpick"
	"github.com/rsahni/topiq/internal/store"
	"github.com/rsahni/topiq/internal/topics"
	"github.com/rsahni/topiq/internal/ui/components"
	"github.com/rsahni/topiq/internal/ui/theme"
)

type statsLoadedMsg struct {
	assessed int
	avg      float64
}

// HomeScreen is the main navigation screen.
type HomeScreen struct {
	menu      components.Menu
	mastery   store.MasteryRepo
	learnerID string
	assessed  int
	avg       float64
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen wired to the assessment dependencies.
func New(deps assessscreen.Deps, mastery store.MasteryRepo, learnerID string) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START ASSESSMENT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: topicpick.New(deps, learnerID)}
			}
		}},
		{Label: "TOPIC MASTERY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(mastery, learnerID)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Events, learnerID)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		mastery:   mastery,
		learnerID: learnerID,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	mastery := h.mastery
	learnerID := h.learnerID
	return func() tea.Msg {
		if mastery == nil {
			return statsLoadedMsg{}
		}
		entries, err := mastery.All(context.Background(), learnerID)
		if err != nil || len(entries) == 0 {
			return statsLoadedMsg{}
		}
		sum := 0.0
		for _, e := range entries {
			sum += e.Mastery
		}
		return statsLoadedMsg{
			assessed: len(entries),
			avg:      sum / float64(len(entries)),
		}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(statsLoadedMsg); ok {
		h.assessed = m.assessed
		h.avg = m.avg
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("T O P I Q")
	sections = append(sections, title)
	sections = append(sections, theme.Subtitle.Render("adaptive topic assessment"))
	sections = append(sections, "")

	statsLine := fmt.Sprintf("%d of %d topics assessed", h.assessed, len(topics.All()))
	if h.assessed > 0 {
		statsLine += fmt.Sprintf("   avg mastery %.2f", h.avg)
	}
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(statsLine))
	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
