package report

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/checkup/internal/advice"
	"github.com/abhisek/checkup/internal/quiz"
	rep "github.com/abhisek/checkup/internal/report"
	"github.com/abhisek/checkup/internal/scoring"
	"github.com/abhisek/checkup/internal/screen"
)

func allAnswered(points int) scoring.Result {
	c := quiz.Default()
	answers := quiz.Answers{}
	for _, q := range c.Questions() {
		answers[q.ID] = points
	}
	return scoring.Score(answers, c.Questions())
}

func TestViewShowsTierContent(t *testing.T) {
	res := allAnswered(quiz.PointsStrategic)
	s := New(Params{Name: "Ana Souza", Result: res})

	view := s.View(100, 200)
	content := rep.ContentFor(res.Tier)
	assert.Contains(t, view, content.Title)
	assert.Contains(t, view, "Ana")
	assert.Contains(t, view, "24/24")
	assert.Contains(t, view, content.Priorities[0])
}

func TestViewShowsNoteAndStatus(t *testing.T) {
	s := New(Params{
		Result: allAnswered(quiz.PointsCritical),
		Note:   &advice.Note{Headline: "Fix cash first", Actions: []string{"Weekly cash review"}},
		Status: StatusDirecting,
		Busy:   true,
	})
	view := s.View(100, 200)
	assert.Contains(t, view, "Fix cash first")
	assert.Contains(t, view, "1. Weekly cash review")
	assert.Contains(t, view, StatusDirecting)
}

func TestKeys(t *testing.T) {
	tests := []struct {
		key  tea.KeyPressMsg
		want tea.Msg
	}{
		{tea.KeyPressMsg{Code: 'c', Text: "c"}, screen.CTAMsg{}},
		{tea.KeyPressMsg{Code: 'r', Text: "r"}, screen.RestartMsg{}},
		{tea.KeyPressMsg{Code: 'b', Text: "b"}, screen.BackMsg{}},
		{tea.KeyPressMsg{Code: tea.KeyEscape}, screen.BackMsg{}},
	}
	for _, tt := range tests {
		s := New(Params{Result: allAnswered(1)})
		_, cmd := s.Update(tt.key)
		require.NotNil(t, cmd, tt.key.String())
		assert.Equal(t, tt.want, cmd(), tt.key.String())
	}
}

func TestCTADisabledWhileBusy(t *testing.T) {
	s := New(Params{Result: allAnswered(1), Busy: true})
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	assert.Nil(t, cmd)
}

func TestScrollIsClamped(t *testing.T) {
	s := New(Params{Result: allAnswered(1)})
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, s.offset)

	for range 500 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	s.View(100, 10)
	assert.Less(t, s.offset, 500)
}
