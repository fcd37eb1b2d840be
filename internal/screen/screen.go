// Package screen defines the contract every routed view satisfies.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/rsahni/topiq/internal/ui/layout"
)

// Screen is one view in the router's stack. The app model owns the
// header and footer; a screen renders only the content between them.
type Screen interface {
	// Init returns the command to run when the screen becomes active.
	Init() tea.Cmd

	// Update handles one message and returns the (possibly replaced)
	// screen plus a follow-up command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area at the given size.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen override the default footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
