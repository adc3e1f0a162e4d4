package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

func TestOptionList_Navigate(t *testing.T) {
	o := NewOptionList([]string{"a", "b", "c"}, -1)
	o, _ = o.Update(key("down"))
	o, _ = o.Update(key("down"))
	o, _ = o.Update(key("down"))
	if o.Selected != 2 {
		t.Fatalf("selected = %d", o.Selected)
	}
	o, _ = o.Update(key("up"))

	o, chose := o.Update(key("enter"))
	if !chose || o.Chosen != 1 {
		t.Fatalf("chose=%v chosen=%d", chose, o.Chosen)
	}

	o, chose = o.Update(key("3"))
	if chose || o.Chosen != 1 {
		t.Fatal("locked list must ignore keys")
	}
}

func TestOptionList_NumberKey(t *testing.T) {
	o := NewOptionList([]string{"a", "b", "c"}, 0)
	o, chose := o.Update(key("3"))
	if !chose || o.Chosen != 2 {
		t.Fatalf("chose=%v chosen=%d", chose, o.Chosen)
	}

	o = NewOptionList([]string{"a", "b"}, 0)
	if _, chose := o.Update(key("3")); chose {
		t.Fatal("out-of-range number must be ignored")
	}
}

func TestOptionList_Preselect(t *testing.T) {
	if o := NewOptionList([]string{"a", "b"}, 1); o.Selected != 1 {
		t.Fatalf("selected = %d", o.Selected)
	}
	view := NewOptionList([]string{"first", "second"}, 0).View(60)
	if !strings.Contains(view, "1) first") || !strings.Contains(view, "2) second") {
		t.Fatalf("view = %q", view)
	}
}

func TestField_Mask(t *testing.T) {
	f := NewField("Phone", "", "", 0)
	f.Mask = strings.ToUpper
	f.Focus()
	f, _ = f.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if f.Value() != "X" {
		t.Fatalf("value = %q", f.Value())
	}
}

func TestScoreBar_Fraction(t *testing.T) {
	tests := []struct {
		v, m int
		want float64
	}{
		{3, 6, 0.5},
		{9, 6, 1},
		{-1, 6, 0},
		{1, 0, 0},
	}
	for _, tt := range tests {
		if got := NewScoreBar("", tt.v, tt.m, 10, 40).Fraction(); got != tt.want {
			t.Errorf("Fraction(%d/%d) = %v, want %v", tt.v, tt.m, got, tt.want)
		}
	}
}
