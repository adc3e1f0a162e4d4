// Package question renders one quiz question and reports the chosen option
// after a short feedback pause.
package question

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/checkup/internal/quiz"
	"github.com/abhisek/checkup/internal/screen"
	"github.com/abhisek/checkup/internal/ui/components"
	"github.com/abhisek/checkup/internal/ui/layout"
	"github.com/abhisek/checkup/internal/ui/theme"
)

// DefaultFeedbackDelay is how long the chosen option stays highlighted
// before the answer is applied.
const DefaultFeedbackDelay = 500 * time.Millisecond

// feedbackDoneMsg ends the pause for the question with the given id.
type feedbackDoneMsg struct{ questionID int }

// QuestionScreen shows a question and its three options.
type QuestionScreen struct {
	question quiz.Question
	number   int
	count    int
	delay    time.Duration
	options  components.OptionList
}

var _ screen.Screen = (*QuestionScreen)(nil)

// New creates the screen for q, shown as "Question number of count".
// previous is the points already recorded for q, or -1.
func New(q quiz.Question, number, count, previous int, delay time.Duration) *QuestionScreen {
	labels := make([]string, len(q.Options))
	preselect := -1
	for i, o := range q.Options {
		labels[i] = o.Label
		if o.Points == previous {
			preselect = i
		}
	}
	return &QuestionScreen{
		question: q,
		number:   number,
		count:    count,
		delay:    delay,
		options:  components.NewOptionList(labels, preselect),
	}
}

func (s *QuestionScreen) Title() string {
	return s.question.Category.Info().Label
}

func (s *QuestionScreen) Init() tea.Cmd {
	return nil
}

// Pending reports whether an option was chosen and the pause is running.
func (s *QuestionScreen) Pending() bool {
	return s.options.Locked()
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		if msg.questionID != s.question.ID || !s.Pending() {
			return s, nil
		}
		return s, s.answer()

	case tea.KeyPressMsg:
		if s.Pending() {
			return s, nil
		}
		switch msg.String() {
		case "esc", "b":
			return s, screen.Emit(screen.BackMsg{})
		}
		var chose bool
		s.options, chose = s.options.Update(msg)
		if !chose {
			return s, nil
		}
		if s.delay <= 0 {
			return s, s.answer()
		}
		id := s.question.ID
		return s, tea.Tick(s.delay, func(time.Time) tea.Msg {
			return feedbackDoneMsg{questionID: id}
		})
	}
	return s, nil
}

func (s *QuestionScreen) answer() tea.Cmd {
	return screen.Emit(screen.AnswerMsg{
		QuestionID: s.question.ID,
		Points:     s.question.Options[s.options.Chosen].Points,
	})
}

func (s *QuestionScreen) View(width, height int) string {
	info := s.question.Category.Info()
	innerWidth := min(width-4, 84)

	badge := theme.Badge.Render(fmt.Sprintf("%s %s · %s", info.Icon, info.Letter, info.Label))
	counter := theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", s.number, s.count))
	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(innerWidth - 6).
		Render(s.question.Prompt)

	sections := []string{
		badge + "  " + counter,
		"",
		prompt,
		"",
		s.options.View(innerWidth - 4),
	}
	if s.Pending() {
		sections = append(sections, theme.Hint.Render("Saving your answer..."))
	}

	card := theme.Card.Width(innerWidth).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// KeyHints implements screen.KeyHintProvider.
func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "1-3", Description: "Pick"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
