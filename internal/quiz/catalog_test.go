package quiz

import "testing"

func TestDefaultCatalog_Shape(t *testing.T) {
	c := Default()

	if c.QuestionCount() != 12 {
		t.Fatalf("QuestionCount = %d, want 12", c.QuestionCount())
	}
	if c.TotalSteps() != 13 {
		t.Errorf("TotalSteps = %d, want 13", c.TotalSteps())
	}

	for _, cat := range AllCategories() {
		qs := c.ByCategory(cat)
		if len(qs) != 3 {
			t.Errorf("category %s has %d questions, want 3", cat, len(qs))
		}
	}

	for _, q := range c.Questions() {
		for _, want := range []int{0, 1, 2} {
			if _, ok := q.OptionFor(want); !ok {
				t.Errorf("question %d has no option worth %d", q.ID, want)
			}
		}
	}
}

func TestQuestionByStep(t *testing.T) {
	c := Default()

	tests := []struct {
		step   int
		wantID int
		wantOK bool
	}{
		{0, 0, false},
		{1, 0, false},
		{2, 1, true},
		{7, 6, true},
		{13, 12, true},
		{14, 0, false},
	}

	for _, tt := range tests {
		q, ok := c.QuestionByStep(tt.step)
		if ok != tt.wantOK {
			t.Errorf("QuestionByStep(%d) ok = %v, want %v", tt.step, ok, tt.wantOK)
			continue
		}
		if ok && q.ID != tt.wantID {
			t.Errorf("QuestionByStep(%d) id = %d, want %d", tt.step, q.ID, tt.wantID)
		}
	}
}

func TestStepOfRoundTrip(t *testing.T) {
	c := Default()
	for _, q := range c.Questions() {
		step, ok := c.StepOf(q.ID)
		if !ok {
			t.Fatalf("StepOf(%d) not found", q.ID)
		}
		got, ok := c.QuestionByStep(step)
		if !ok || got.ID != q.ID {
			t.Errorf("QuestionByStep(StepOf(%d)) = %d", q.ID, got.ID)
		}
	}
}

func TestValid(t *testing.T) {
	c := Default()

	if !c.Valid(1, 0) || !c.Valid(12, 2) {
		t.Error("expected in-range answers to be valid")
	}
	if c.Valid(13, 1) {
		t.Error("unknown question should be invalid")
	}
	if c.Valid(1, 3) || c.Valid(1, -1) {
		t.Error("points outside 0..2 should be invalid")
	}
}

func TestNewCatalog_Rejects(t *testing.T) {
	good := Option{Label: "ok", Points: 2}

	tests := []struct {
		name string
		qs   []Question
	}{
		{"empty", nil},
		{"duplicate", []Question{
			{ID: 1, Category: CategoryFinance, Options: []Option{good}},
			{ID: 1, Category: CategoryFinance, Options: []Option{good}},
		}},
		{"bad category", []Question{{ID: 1, Category: "x", Options: []Option{good}}}},
		{"bad points", []Question{{ID: 1, Category: CategoryFinance, Options: []Option{{Label: "x", Points: 3}}}}},
		{"no options", []Question{{ID: 1, Category: CategoryFinance}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(tt.qs); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	if c, ok := ParseCategory("C"); !ok || c != CategoryFinance {
		t.Errorf("ParseCategory(C) = %q, %v", c, ok)
	}
	if c, ok := ParseCategory("culture"); !ok || c != CategoryCulture {
		t.Errorf("ParseCategory(culture) = %q, %v", c, ok)
	}
	if _, ok := ParseCategory("E"); ok {
		t.Error("ParseCategory(E) should fail")
	}
}
