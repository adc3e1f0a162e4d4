package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/checkup/internal/ui/theme"
)

// OptionList is a single-choice selector. Options can be picked with
// up/down + enter or directly with their number.
type OptionList struct {
	Options  []string
	Selected int

	// Chosen is the picked index, -1 until a choice is made. After a choice
	// the list ignores further keys.
	Chosen int
}

// NewOptionList creates a list with the cursor on preselect, or on the
// first option when preselect is out of range.
func NewOptionList(options []string, preselect int) OptionList {
	if preselect < 0 || preselect >= len(options) {
		preselect = 0
	}
	return OptionList{Options: options, Selected: preselect, Chosen: -1}
}

// Locked reports whether a choice has been made.
func (o OptionList) Locked() bool { return o.Chosen >= 0 }

// Update handles navigation. The bool is true on the key that made the choice.
func (o OptionList) Update(msg tea.Msg) (OptionList, bool) {
	if o.Locked() {
		return o, false
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return o, false
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	case "enter", "space":
		o.Chosen = o.Selected
		return o, true
	default:
		if len(key) == 1 && key[0] >= '1' && int(key[0]-'1') < len(o.Options) {
			o.Selected = int(key[0] - '1')
			o.Chosen = o.Selected
			return o, true
		}
	}
	return o, false
}

// View renders the options, one per line.
func (o OptionList) View(width int) string {
	var b strings.Builder
	wrap := lipgloss.NewStyle().Width(max(width-6, 20))

	for i, opt := range o.Options {
		prefix := "  "
		style := theme.Unselected
		switch {
		case o.Locked() && i == o.Chosen:
			prefix = "✓ "
			style = theme.Chosen
		case o.Locked():
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == o.Selected:
			prefix = "▸ "
			style = theme.Selected
		}
		line := wrap.Render(fmt.Sprintf("%s%d) %s", prefix, i+1, opt))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
