package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/checkup/internal/ui/theme"
)

// Field is a labelled text input. Mask, when set, rewrites the value after
// every keystroke.
type Field struct {
	Label string
	Model textinput.Model
	Mask  func(string) string
	Error bool
}

// NewField creates an unfocused field.
func NewField(label, placeholder, value string, limit int) Field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	if limit > 0 {
		ti.CharLimit = limit
	}
	ti.SetValue(value)
	return Field{Label: label, Model: ti}
}

// Focus focuses the field and returns the cursor blink command.
func (f *Field) Focus() tea.Cmd {
	return f.Model.Focus()
}

// Blur removes focus.
func (f *Field) Blur() {
	f.Model.Blur()
}

// Update forwards msg to the input and applies the mask.
func (f Field) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	if f.Mask != nil {
		if masked := f.Mask(f.Model.Value()); masked != f.Model.Value() {
			f.Model.SetValue(masked)
			f.Model.CursorEnd()
		}
	}
	return f, cmd
}

// View renders the label above the input.
func (f Field) View() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(f.Label)
	if f.Error {
		label = theme.ErrorText.Render(f.Label + " ✗")
	}
	return label + "\n" + f.Model.View()
}

// Value returns the current input value.
func (f Field) Value() string {
	return f.Model.Value()
}
