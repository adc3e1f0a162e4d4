// Package screen defines the screen interface and the intent messages
// screens emit. Screens never mutate the session; the app applies intents
// to the state machine and then replaces the screen.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/checkup/internal/flow"
	"github.com/abhisek/checkup/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is shown.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Intents.
type (
	StartMsg      struct{}
	SubmitLeadMsg struct{ Lead flow.Lead }
	AnswerMsg     struct{ QuestionID, Points int }
	BackMsg       struct{}
	RestartMsg    struct{}
	CTAMsg        struct{}
)

// ValidationMsg carries a lead validation failure back to the lead form.
type ValidationMsg struct {
	Err *flow.ValidationError
}

// Emit wraps msg in a command.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
