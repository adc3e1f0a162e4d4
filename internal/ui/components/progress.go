package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/checkup/internal/ui/theme"
)

// ScoreBar is a labelled horizontal bar for value out of maxValue.
type ScoreBar struct {
	Label      string
	Value      int
	Max        int
	LabelWidth int
	Width      int
}

// NewScoreBar creates a bar of the given total width.
func NewScoreBar(label string, value, maxValue, labelWidth, width int) ScoreBar {
	return ScoreBar{Label: label, Value: value, Max: maxValue, LabelWidth: labelWidth, Width: width}
}

// Fraction returns Value/Max clamped to 0..1.
func (p ScoreBar) Fraction() float64 {
	if p.Max <= 0 {
		return 0
	}
	return min(max(float64(p.Value)/float64(p.Max), 0), 1)
}

// View renders the bar.
func (p ScoreBar) View() string {
	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(p.LabelWidth).
		Render(p.Label)
	suffix := fmt.Sprintf("  %d/%d", p.Value, p.Max)

	barWidth := max(p.Width-lipgloss.Width(label)-len(suffix)-2, 4)
	filled := int(float64(barWidth) * p.Fraction())

	return label + "  " +
		lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)
}
