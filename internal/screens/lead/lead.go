// Package lead is the contact form shown before the first question.
package lead

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/checkup/internal/flow"
	"github.com/abhisek/checkup/internal/screen"
	"github.com/abhisek/checkup/internal/ui/components"
	"github.com/abhisek/checkup/internal/ui/layout"
	"github.com/abhisek/checkup/internal/ui/theme"
)

const (
	fieldName = iota
	fieldCompany
	fieldPhone
	fieldCount
)

// LeadScreen collects name, company and WhatsApp number.
type LeadScreen struct {
	fields [fieldCount]components.Field
	focus  int
	hint   string
}

var _ screen.Screen = (*LeadScreen)(nil)

// New creates the form pre-filled with l.
func New(l flow.Lead) *LeadScreen {
	s := &LeadScreen{}
	s.fields[fieldName] = components.NewField("Your name", "Full name", l.Name, 80)
	s.fields[fieldCompany] = components.NewField("Company", "Company or brand", l.Company, 80)
	s.fields[fieldPhone] = components.NewField("WhatsApp", "(DD) 00000-0000", flow.FormatPhone(l.Phone), 16)
	s.fields[fieldPhone].Mask = flow.FormatPhone
	return s
}

func (s *LeadScreen) Title() string {
	return "Your details"
}

func (s *LeadScreen) Init() tea.Cmd {
	return s.fields[s.focus].Focus()
}

// Lead returns the values currently typed.
func (s *LeadScreen) Lead() flow.Lead {
	return flow.Lead{
		Name:    s.fields[fieldName].Value(),
		Company: s.fields[fieldCompany].Value(),
		Phone:   s.fields[fieldPhone].Value(),
	}
}

// Hint returns the validation message on display, if any.
func (s *LeadScreen) Hint() string {
	return s.hint
}

func (s *LeadScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.ValidationMsg:
		return s, s.showError(msg.Err)

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, screen.Emit(screen.BackMsg{})
		case "tab", "down":
			return s, s.moveFocus(1)
		case "shift+tab", "up":
			return s, s.moveFocus(-1)
		case "enter":
			if verr := flow.ValidateLead(s.Lead()); verr != nil {
				return s, s.showError(verr)
			}
			s.hint = ""
			return s, screen.Emit(screen.SubmitLeadMsg{Lead: s.Lead()})
		}
	}

	var cmd tea.Cmd
	s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
	return s, cmd
}

func (s *LeadScreen) moveFocus(delta int) tea.Cmd {
	return s.focusField((s.focus + delta + fieldCount) % fieldCount)
}

func (s *LeadScreen) focusField(i int) tea.Cmd {
	s.fields[s.focus].Blur()
	s.focus = i
	return s.fields[s.focus].Focus()
}

func (s *LeadScreen) showError(verr *flow.ValidationError) tea.Cmd {
	for i := range s.fields {
		s.fields[i].Error = false
	}
	if verr == nil {
		s.hint = ""
		return nil
	}
	s.hint = verr.Message

	target := s.focus
	switch verr.Field {
	case flow.FieldName:
		target = fieldName
	case flow.FieldCompany:
		target = fieldCompany
	case flow.FieldPhone:
		target = fieldPhone
	}
	s.fields[target].Error = true
	return s.focusField(target)
}

func (s *LeadScreen) View(width, height int) string {
	sections := []string{
		theme.Title.Render("Before we start"),
		theme.Subtitle.Render("Tell us who you are so we can send your results."),
		"",
	}
	for i := range s.fields {
		sections = append(sections, s.fields[i].View(), "")
	}
	if s.hint != "" {
		sections = append(sections, theme.ErrorText.Render(s.hint), "")
	}
	sections = append(sections, components.NewButton("Go to the questions", "enter", true).View())

	card := theme.Card.Width(min(width-4, 64)).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// KeyHints implements screen.KeyHintProvider.
func (s *LeadScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
