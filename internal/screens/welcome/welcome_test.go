package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/rsahni/topiq/internal/router"
	"github.com/rsahni/topiq/internal/screen"
)

// stubScreen stands in for the home screen handed back by onSubmit.
type stubScreen struct{ name string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "" }
func (s *stubScreen) Title() string                           { return "stub" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func typeName(w *WelcomeScreen, name string) *WelcomeScreen {
	for _, r := range name {
		scr, _ := w.Update(keyPress(r))
		w = scr.(*WelcomeScreen)
	}
	return w
}

func TestSubmitReplacesWithOnSubmitScreen(t *testing.T) {
	var submitted string
	w := New(func(name string) screen.Screen {
		submitted = name
		return &stubScreen{name: name}
	})

	w = typeName(w, "ada")
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command after submit")
	}

	msg := cmd()
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := rep.Screen.(*stubScreen); !ok {
		t.Fatalf("expected onSubmit's screen, got %T", rep.Screen)
	}
	if submitted != "ada" {
		t.Errorf("expected submitted name 'ada', got %q", submitted)
	}
}

func TestSubmitTrimsWhitespace(t *testing.T) {
	var submitted string
	w := New(func(name string) screen.Screen {
		submitted = name
		return &stubScreen{}
	})

	w = typeName(w, "  ada  ")
	w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if submitted != "ada" {
		t.Errorf("expected trimmed name 'ada', got %q", submitted)
	}
}

func TestEmptyNameRejected(t *testing.T) {
	called := false
	w := New(func(name string) screen.Screen {
		called = true
		return &stubScreen{}
	})

	scr, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if called {
		t.Error("onSubmit must not run for an empty name")
	}
	if cmd != nil {
		t.Error("expected no command for an empty name")
	}

	out := scr.(*WelcomeScreen).View(100, 40)
	if !strings.Contains(out, "name is required") {
		t.Errorf("expected empty-name error in view:\n%s", out)
	}
}

func TestViewShowsPrompt(t *testing.T) {
	w := New(func(string) screen.Screen { return &stubScreen{} })
	out := w.View(100, 40)

	if !strings.Contains(out, "What should we call you?") {
		t.Error("missing name prompt")
	}
}
