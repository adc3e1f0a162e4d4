// Package invalid is shown when the session points at a step with no
// question. The only way out is back.
package invalid

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/checkup/internal/screen"
	"github.com/abhisek/checkup/internal/ui/components"
	"github.com/abhisek/checkup/internal/ui/layout"
	"github.com/abhisek/checkup/internal/ui/theme"
)

type InvalidScreen struct {
	step int
}

var _ screen.Screen = (*InvalidScreen)(nil)

func New(step int) *InvalidScreen {
	return &InvalidScreen{step: step}
}

func (s *InvalidScreen) Title() string { return "Not found" }

func (s *InvalidScreen) Init() tea.Cmd { return nil }

func (s *InvalidScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		switch k.String() {
		case "esc", "b", "enter":
			return s, screen.Emit(screen.BackMsg{})
		}
	}
	return s, nil
}

func (s *InvalidScreen) View(width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.ErrorText.Render("Question not found"),
		"",
		theme.Subtitle.Render(fmt.Sprintf("Step %d has no question.", s.step)),
		"",
		components.NewButton("Back", "enter", true).View(),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// KeyHints implements screen.KeyHintProvider.
func (s *InvalidScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
