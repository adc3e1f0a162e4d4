// Package report is the completion screen: tier, diagnosis, priorities,
// score bars and the call to action.
package report

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/checkup/internal/advice"
	"github.com/abhisek/checkup/internal/quiz"
	rep "github.com/abhisek/checkup/internal/report"
	"github.com/abhisek/checkup/internal/scoring"
	"github.com/abhisek/checkup/internal/screen"
	"github.com/abhisek/checkup/internal/ui/components"
	"github.com/abhisek/checkup/internal/ui/layout"
	"github.com/abhisek/checkup/internal/ui/theme"
)

// StatusDirecting is shown while the delivery runs.
const StatusDirecting = "Directing..."

// Params is everything the report shows.
type Params struct {
	Name   string
	Result scoring.Result
	Note   *advice.Note

	// Status is the delivery hint under the buttons. Busy disables the CTA
	// while a submission is running.
	Status string
	Busy   bool
}

// ReportScreen is scrollable; the content is usually taller than the terminal.
type ReportScreen struct {
	params Params
	offset int
}

var _ screen.Screen = (*ReportScreen)(nil)

// New creates the completion screen.
func New(p Params) *ReportScreen {
	return &ReportScreen{params: p}
}

func (s *ReportScreen) Title() string {
	return "Your result"
}

func (s *ReportScreen) Init() tea.Cmd {
	return nil
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "c", "enter":
		if s.params.Busy {
			return s, nil
		}
		return s, screen.Emit(screen.CTAMsg{})
	case "r":
		return s, screen.Emit(screen.RestartMsg{})
	case "esc", "b":
		return s, screen.Emit(screen.BackMsg{})
	case "down", "j":
		s.offset++
	case "up", "k":
		s.offset = max(s.offset-1, 0)
	case "pgdown", "space":
		s.offset += 10
	case "pgup":
		s.offset = max(s.offset-10, 0)
	case "home", "g":
		s.offset = 0
	}
	return s, nil
}

func (s *ReportScreen) View(width, height int) string {
	lines := strings.Split(s.render(min(width-4, 90)), "\n")

	maxOffset := max(len(lines)-height, 0)
	s.offset = min(s.offset, maxOffset)
	end := min(s.offset+height, len(lines))

	return lipgloss.NewStyle().PaddingLeft(2).Render(strings.Join(lines[s.offset:end], "\n"))
}

func (s *ReportScreen) render(width int) string {
	res := s.params.Result
	content := rep.ContentFor(res.Tier)
	tierStyle := theme.TierColor(res.Tier.Key())
	text := lipgloss.NewStyle().Foreground(theme.Text).Width(width)

	var sections []string

	greeting := "Here is your result"
	if first := firstName(s.params.Name); first != "" {
		greeting += ", " + first
	}
	sections = append(sections,
		theme.Subtitle.Render(greeting),
		tierStyle.Render("■ "+content.Title),
		"",
		text.Render(content.Diagnosis),
		"",
		theme.Title.Render("Score"),
		components.NewScoreBar("Total", res.Total, scoring.MaxTotal, 24, width).View(),
	)
	for _, c := range quiz.AllCategories() {
		info := c.Info()
		label := info.Letter + " " + info.Label
		sections = append(sections, components.NewScoreBar(label, res.ByCategory[c], scoring.MaxPerCategory, 24, width).View())
	}

	sections = append(sections, "", theme.Title.Render("Priorities"))
	for _, p := range content.Priorities {
		sections = append(sections, text.Render("• "+p))
	}

	if n := s.params.Note; n != nil {
		sections = append(sections, "", theme.Title.Render("Next steps for you"), text.Render(n.Headline))
		for i, a := range n.Actions {
			sections = append(sections, text.Render(fmt.Sprintf("%d. %s", i+1, a)))
		}
	}

	sections = append(sections,
		"",
		text.Render(content.Institutional),
		"",
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(content.Closing),
		"",
		components.NewButton("Book my Strategic Session", "c", !s.params.Busy).View()+"  "+
			components.NewButton("Redo the check-up", "r", false).View(),
	)
	if s.params.Status != "" {
		sections = append(sections, "", theme.Hint.Render(s.params.Status))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func firstName(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return ""
}

// KeyHints implements screen.KeyHintProvider.
func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "c", Description: "Book session"},
		{Key: "r", Description: "Redo"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// SetStatus updates the delivery hint in place, keeping the scroll position.
func (s *ReportScreen) SetStatus(status string, busy bool) {
	s.params.Status = status
	s.params.Busy = busy
}

// SetNote shows a generated advice note.
func (s *ReportScreen) SetNote(n *advice.Note) {
	s.params.Note = n
}
