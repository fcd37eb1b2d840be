// Package welcome collects the learner's identity on first run.
// Every assessment is keyed to a learner, so the app cannot proceed
// to the home screen without a name.
package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rsahni/topiq/internal/router"
	"github.com/rsahni/topiq/internal/screen"
	"github.com/rsahni/topiq/internal/ui/components"
	"github.com/rsahni/topiq/internal/ui/layout"
	"github.com/rsahni/topiq/internal/ui/theme"
)

// WelcomeScreen prompts for a learner name and hands it to onSubmit.
type WelcomeScreen struct {
	input       components.TextInput
	onSubmit    func(name string) screen.Screen
	showedEmpty bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. onSubmit receives the entered name and
// returns the screen to replace this one with.
func New(onSubmit func(name string) screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		input:    components.NewTextInput("Your name...", 32),
		onSubmit: onSubmit,
	}
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		name := strings.TrimSpace(w.input.Value())
		if name == "" {
			w.showedEmpty = true
			return w, nil
		}
		next := w.onSubmit(name)
		return w, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")
	sections = append(sections, theme.Body.Render("Pick a topic, answer five questions, watch your mastery move."))
	sections = append(sections, "")
	sections = append(sections, theme.Subtitle.Render("What should we call you?"))
	sections = append(sections, "")
	sections = append(sections, w.input.View())

	if w.showedEmpty {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("A name is required to track your progress."))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
