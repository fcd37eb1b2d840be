package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rsahni/topiq/internal/evaluate"
	"github.com/rsahni/topiq/internal/llm"
	"github.com/rsahni/topiq/internal/quizgen"
	"github.com/rsahni/topiq/internal/router"
	"github.com/rsahni/topiq/internal/screen"
	assessscreen "github.com/rsahni/topiq/internal/screens/assess"
	"github.com/rsahni/topiq/internal/screens/home"
	"github.com/rsahni/topiq/internal/screens/welcome"
	"github.com/rsahni/topiq/internal/store"
	"github.com/rsahni/topiq/internal/ui/layout"
)

// Options configures an application run.
type Options struct {
	// DBPath overrides the default database location.
	DBPath string

	// Learner overrides the saved learner identity.
	Learner string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	learner *string
	width   int
	height  int
}

// newAppModel wires the dependency graph and picks the initial screen:
// welcome when no learner identity is known, home otherwise.
func newAppModel(deps assessscreen.Deps, mastery store.MasteryRepo, learnerName string) AppModel {
	learner := new(string)
	*learner = learnerName

	var initial screen.Screen
	if learnerName == "" {
		initial = welcome.New(func(name string) screen.Screen {
			*learner = name
			if err := SaveLearner(name); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not save profile: %v\n", err)
			}
			return home.New(deps, mastery, name)
		})
	} else {
		initial = home.New(deps, mastery, learnerName)
	}

	return AppModel{
		router:  router.New(initial),
		learner: learner,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, *m.learner, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run opens the store, builds the LLM pipeline, and starts the TUI.
func Run(opts Options) error {
	dbPath := opts.DBPath
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	masteryRepo := st.MasteryRepo()

	provider, err := llm.NewProviderFromEnv(context.Background(), eventRepo)
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}

	deps := assessscreen.Deps{
		Provider:  quizgen.New(provider, quizgen.DefaultConfig()),
		Evaluator: evaluate.New(provider, masteryRepo, evaluate.DefaultConfig()),
		Mastery:   masteryRepo,
		Events:    eventRepo,
	}

	learner := ResolveLearner(opts.Learner)

	p := tea.NewProgram(newAppModel(deps, masteryRepo, learner))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
