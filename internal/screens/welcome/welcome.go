// Package welcome is the first screen: the quiz pitch, the four pillars
// and the start button.
package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/checkup/internal/quiz"
	"github.com/abhisek/checkup/internal/screen"
	"github.com/abhisek/checkup/internal/ui/components"
	"github.com/abhisek/checkup/internal/ui/layout"
	"github.com/abhisek/checkup/internal/ui/theme"
)

const (
	tickInterval = 120 * time.Millisecond
	chipCount    = 4
)

const tagline = "Find out in 3 minutes how solid your structure is and where your profit is leaking."

type tickMsg time.Time

// WelcomeScreen reveals the category chips one per tick and waits for the
// respondent to start.
type WelcomeScreen struct {
	questions int
	revealed  int
	started   bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates the welcome screen for a catalog of the given size.
func New(questions int) *WelcomeScreen {
	return &WelcomeScreen{questions: questions}
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.revealed >= chipCount {
			return w, nil
		}
		w.revealed++
		return w, tick()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter", "space", "s":
			if w.started {
				return w, nil
			}
			w.started = true
			w.revealed = chipCount
			return w, screen.Emit(screen.StartMsg{})
		}
	}
	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{
		RenderBanner(width),
		"",
		lipgloss.NewStyle().Width(min(width-8, 70)).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).Render(tagline),
		"",
		w.renderChips(width),
		"",
		theme.Subtitle.Render(fmt.Sprintf("%d questions · one answer each · results on screen", w.questions)),
		"",
		components.NewButton("Start the check-up", "enter", true).View(),
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (w *WelcomeScreen) renderChips(width int) string {
	chipWidth := 30
	perRow := 2
	if width < 2*chipWidth+8 {
		perRow = 1
	}

	var chips []string
	for i, c := range quiz.AllCategories() {
		info := c.Info()
		body := theme.Selected.Render(info.Icon+" "+info.Letter+" · "+info.Label) + "\n" +
			theme.Hint.Render(info.Subtitle)
		style := theme.Card.Width(chipWidth).Padding(0, 1)
		if i >= w.revealed {
			body = strings.Repeat(" ", chipWidth-4) + "\n"
			style = style.BorderForeground(theme.BgCard)
		}
		chips = append(chips, style.Render(body))
	}

	var rows []string
	for i := 0; i < len(chips); i += perRow {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, chips[i:min(i+perRow, len(chips))]...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

// KeyHints implements screen.KeyHintProvider.
func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
