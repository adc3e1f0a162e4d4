package flow

import (
	"errors"
	"testing"

	"github.com/abhisek/checkup/internal/quiz"
)

var validLead = Lead{Name: "Ana", Company: "Acme", Phone: "13999999999"}

func atQuestion(c quiz.Catalog, step int, answers quiz.Answers) Session {
	if answers == nil {
		answers = quiz.Answers{}
	}
	return Session{Step: step, Lead: normalizeLead(validLead), Answers: answers}
}

func allAnswered(c quiz.Catalog, points int) quiz.Answers {
	a := quiz.Answers{}
	for _, q := range c.Questions() {
		a[q.ID] = points
	}
	return a
}

func TestAdvanceFromWelcome(t *testing.T) {
	next, err := AdvanceFromWelcome(NewSession())
	if err != nil {
		t.Fatalf("AdvanceFromWelcome: %v", err)
	}
	if next.Step != quiz.StepLead {
		t.Errorf("Step = %d, want %d", next.Step, quiz.StepLead)
	}

	if _, err := AdvanceFromWelcome(Session{Step: 4}); !errors.Is(err, ErrWrongStep) {
		t.Errorf("from step 4: err = %v, want ErrWrongStep", err)
	}
}

func TestSubmitLead_Validation(t *testing.T) {
	tests := []struct {
		name      string
		lead      Lead
		wantField string
	}{
		{"missing name", Lead{Company: "Acme", Phone: "13999999999"}, FieldName},
		{"blank name", Lead{Name: "   ", Company: "Acme", Phone: "13999999999"}, FieldName},
		{"missing company", Lead{Name: "Ana", Phone: "13999999999"}, FieldCompany},
		{"missing phone", Lead{Name: "Ana", Company: "Acme"}, FieldPhone},
		{"ten digit phone", Lead{Name: "Ana", Company: "Acme", Phone: "1399999999"}, FieldPhone},
		{"twelve digit phone", Lead{Name: "Ana", Company: "Acme", Phone: "139999999990"}, FieldPhone},
		{"name checked before phone", Lead{Phone: "12"}, FieldName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{Step: quiz.StepLead, Answers: quiz.Answers{}}
			next, err := SubmitLead(s, tt.lead)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
			if verr.Message == "" {
				t.Error("Message is empty")
			}
			if next.Step != quiz.StepLead {
				t.Errorf("Step = %d, session must stay on the lead form", next.Step)
			}
		})
	}
}

func TestSubmitLead_TenDigitPhoneStaysOnLead(t *testing.T) {
	s := Session{Step: quiz.StepLead, Answers: quiz.Answers{}}
	next, err := SubmitLead(s, Lead{Name: "Ana", Company: "Acme", Phone: "1399999999"})

	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != FieldPhone {
		t.Fatalf("err = %v, want phone validation error", err)
	}
	if next.Step != quiz.StepLead || !next.Lead.Empty() {
		t.Errorf("session changed: %+v", next)
	}
}

func TestSubmitLead_Success(t *testing.T) {
	s := Session{Step: quiz.StepLead, Answers: quiz.Answers{}}
	next, err := SubmitLead(s, Lead{Name: " Ana ", Company: "Acme ", Phone: "13 99999-9999"})
	if err != nil {
		t.Fatalf("SubmitLead: %v", err)
	}
	if next.Step != quiz.StepFirstQuestion {
		t.Errorf("Step = %d, want %d", next.Step, quiz.StepFirstQuestion)
	}
	want := Lead{Name: "Ana", Company: "Acme", Phone: "(13) 99999-9999"}
	if next.Lead != want {
		t.Errorf("Lead = %+v, want %+v", next.Lead, want)
	}
	if s.Lead != (Lead{}) {
		t.Error("input session was mutated")
	}
}

func TestSubmitLead_WrongStep(t *testing.T) {
	_, err := SubmitLead(NewSession(), validLead)
	if !errors.Is(err, ErrNotAtLead) || !errors.Is(err, ErrWrongStep) {
		t.Errorf("err = %v, want ErrNotAtLead wrapping ErrWrongStep", err)
	}
}

func TestAnswerQuestion_AdvancesAndOverwrites(t *testing.T) {
	c := quiz.Default()
	s := atQuestion(c, quiz.StepFirstQuestion, nil)

	next, err := AnswerQuestion(s, c, 1, quiz.PointsIntermediate)
	if err != nil {
		t.Fatalf("AnswerQuestion: %v", err)
	}
	if next.Step != 3 || next.Answers[1] != 1 {
		t.Errorf("after answer: step=%d answers=%v", next.Step, next.Answers)
	}
	if len(s.Answers) != 0 {
		t.Error("input session was mutated")
	}

	back := GoBack(next, c)
	again, err := AnswerQuestion(back, c, 1, quiz.PointsStrategic)
	if err != nil {
		t.Fatalf("re-answer: %v", err)
	}
	if again.Answers[1] != 2 || len(again.Answers) != 1 {
		t.Errorf("answers = %v, want {1:2}", again.Answers)
	}
}

func TestAnswerQuestion_Errors(t *testing.T) {
	c := quiz.Default()
	s := atQuestion(c, quiz.StepFirstQuestion, nil)

	tests := []struct {
		name    string
		s       Session
		id      int
		points  int
		wantErr error
	}{
		{"unknown id", s, 42, 1, ErrUnknownQuestion},
		{"points too high", s, 1, 3, ErrInvalidPoints},
		{"negative points", s, 1, -1, ErrInvalidPoints},
		{"not on screen", s, 2, 1, ErrWrongStep},
		{"on lead form", Session{Step: quiz.StepLead}, 1, 1, ErrWrongStep},
		{"on completion", Session{Step: c.LastStep(), Completed: true, Answers: allAnswered(c, 1)}, 12, 1, ErrWrongStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AnswerQuestion(tt.s, c, tt.id, tt.points)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAnswerQuestion_LastQuestionCompletes(t *testing.T) {
	c := quiz.Default()
	answers := allAnswered(c, 2)
	delete(answers, 12)
	s := atQuestion(c, c.LastStep(), answers)

	next, err := AnswerQuestion(s, c, 12, 0)
	if err != nil {
		t.Fatalf("AnswerQuestion: %v", err)
	}
	if !next.Completed || next.Step != c.LastStep() {
		t.Errorf("step=%d completed=%v, want %d true", next.Step, next.Completed, c.LastStep())
	}
	if PhaseOf(next, c) != PhaseCompletion {
		t.Errorf("phase = %v, want completion", PhaseOf(next, c))
	}
}

func TestAnswerQuestion_LastQuestionWithGapsJumpsBack(t *testing.T) {
	c := quiz.Default()
	answers := allAnswered(c, 1)
	delete(answers, 5)
	delete(answers, 9)
	delete(answers, 12)
	s := atQuestion(c, c.LastStep(), answers)

	next, err := AnswerQuestion(s, c, 12, 2)
	if err != nil {
		t.Fatalf("AnswerQuestion: %v", err)
	}
	wantStep, _ := c.StepOf(5)
	if next.Completed || next.Step != wantStep {
		t.Errorf("step=%d completed=%v, want %d false", next.Step, next.Completed, wantStep)
	}
}

func TestGoBack(t *testing.T) {
	c := quiz.Default()

	tests := []struct {
		name     string
		s        Session
		wantStep int
	}{
		{"welcome is a no-op", NewSession(), quiz.StepWelcome},
		{"lead to welcome", Session{Step: quiz.StepLead}, quiz.StepWelcome},
		{"first question to lead", atQuestion(c, quiz.StepFirstQuestion, nil), quiz.StepLead},
		{"question to previous", atQuestion(c, 7, nil), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GoBack(tt.s, c); got.Step != tt.wantStep {
				t.Errorf("Step = %d, want %d", got.Step, tt.wantStep)
			}
		})
	}
}

func TestGoBack_FromCompletionReopensLastQuestion(t *testing.T) {
	c := quiz.Default()
	s := atQuestion(c, c.LastStep(), allAnswered(c, 2))
	s.Completed = true

	next := GoBack(s, c)
	if next.Completed {
		t.Error("Completed should be cleared")
	}
	if next.Step != c.LastStep() {
		t.Errorf("Step = %d, want last question step %d", next.Step, c.LastStep())
	}
	if PhaseOf(next, c) != PhaseQuestion {
		t.Errorf("phase = %v, want question", PhaseOf(next, c))
	}
	if q, _ := c.QuestionByStep(next.Step); q.ID != 12 {
		t.Errorf("question on screen = %d, want 12", q.ID)
	}
}

func TestRestart(t *testing.T) {
	c := quiz.Default()
	s := atQuestion(c, c.LastStep(), allAnswered(c, 2))
	s.Completed = true

	next := Restart(s)
	if next.Step != quiz.StepLead || next.Completed || len(next.Answers) != 0 || !next.Lead.Empty() {
		t.Errorf("Restart = %+v", next)
	}
	if len(s.Answers) != c.QuestionCount() {
		t.Error("input session was mutated")
	}
}

func TestPhaseOf(t *testing.T) {
	c := quiz.Default()
	tests := []struct {
		s    Session
		want Phase
	}{
		{Session{Step: 0}, PhaseWelcome},
		{Session{Step: 1}, PhaseLead},
		{Session{Step: 2}, PhaseQuestion},
		{Session{Step: c.LastStep()}, PhaseQuestion},
		{Session{Step: c.LastStep(), Completed: true}, PhaseCompletion},
		{Session{Step: c.LastStep() + 1}, PhaseInvalid},
	}
	for _, tt := range tests {
		if got := PhaseOf(tt.s, c); got != tt.want {
			t.Errorf("PhaseOf(step=%d completed=%v) = %v, want %v", tt.s.Step, tt.s.Completed, got, tt.want)
		}
	}
}

func TestStepInvariantHoldsAcrossWalk(t *testing.T) {
	c := quiz.Default()
	s, _ := AdvanceFromWelcome(NewSession())
	s, err := SubmitLead(s, validLead)
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range c.Questions() {
		s, err = AnswerQuestion(s, c, q.ID, q.ID%3)
		if err != nil {
			t.Fatalf("answer %d: %v", q.ID, err)
		}
		if s.Step < 0 || s.Step > c.TotalSteps() {
			t.Fatalf("step %d out of range", s.Step)
		}
		if s.Step > quiz.StepLead && !s.Lead.Complete() {
			t.Fatal("past the lead form without a complete lead")
		}
	}
	if !s.Completed {
		t.Error("walk did not complete")
	}
	for i := 0; i < c.TotalSteps()+3; i++ {
		s = GoBack(s, c)
		if s.Step < 0 {
			t.Fatalf("step %d out of range", s.Step)
		}
	}
	if s.Step != quiz.StepWelcome {
		t.Errorf("Step = %d, want welcome after backing out", s.Step)
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"1", "(1"},
		{"13", "(13"},
		{"139", "(13) 9"},
		{"1399999", "(13) 99999"},
		{"13999999", "(13) 99999-9"},
		{"13999999999", "(13) 99999-9999"},
		{"(13) 99999-99991234", "(13) 99999-9999"},
		{"abc", ""},
	}
	for _, tt := range tests {
		if got := FormatPhone(tt.in); got != tt.want {
			t.Errorf("FormatPhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
