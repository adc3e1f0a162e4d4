package invalid

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/checkup/internal/screen"
)

func TestOnlyBack(t *testing.T) {
	s := New(40)
	if !strings.Contains(s.View(80, 24), "Step 40") {
		t.Error("view should name the step")
	}

	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"}); cmd != nil {
		t.Error("r must do nothing here")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should go back")
	}
	if _, ok := cmd().(screen.BackMsg); !ok {
		t.Fatalf("got %T", cmd())
	}
}
