package flow

import (
	"github.com/abhisek/checkup/internal/quiz"
)

// Rule is one load-time repair applied to a persisted session.
type Rule struct {
	Name  string
	Apply func(Session, quiz.Catalog) Session
}

// DefaultRules returns the reconciliation rules in the order they must run.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "clamp-step", Apply: ClampStep},
		{Name: "drop-invalid-answers", Apply: DropInvalidAnswers},
		{Name: "fresh-session", Apply: FreshSession},
		{Name: "lead-gate", Apply: LeadGate},
		{Name: "completion-gate", Apply: CompletionGate},
	}
}

// Reconcile applies DefaultRules once, in order.
func Reconcile(s Session, c quiz.Catalog) Session {
	out := s.Clone()
	if out.Answers == nil {
		out.Answers = quiz.Answers{}
	}
	for _, r := range DefaultRules() {
		out = r.Apply(out, c)
	}
	return out
}

// ClampStep keeps the step inside [0, TotalSteps].
func ClampStep(s Session, c quiz.Catalog) Session {
	s.Step = clampStep(s.Step, c)
	return s
}

// DropInvalidAnswers removes answers for unknown questions and point values
// outside 0..2.
func DropInvalidAnswers(s Session, c quiz.Catalog) Session {
	clean := make(quiz.Answers, len(s.Answers))
	for id, p := range s.Answers {
		if c.Valid(id, p) {
			clean[id] = p
		}
	}
	s.Answers = clean
	return s
}

// FreshSession sends a session that never got past the default step back
// to the welcome screen. Step 1 is the stored default, so "step 1, no lead,
// no answers, not completed" means the respondent never started.
func FreshSession(s Session, _ quiz.Catalog) Session {
	if s.Step == quiz.StepLead && !s.Lead.Complete() && len(s.Answers) == 0 && !s.Completed {
		s.Step = quiz.StepWelcome
	}
	return s
}

// LeadGate sends a session that is past the lead form without a complete
// lead back to the lead form.
func LeadGate(s Session, _ quiz.Catalog) Session {
	if s.Step > quiz.StepLead && !s.Lead.Complete() {
		s.Step = quiz.StepLead
		s.Completed = false
	}
	return s
}

// CompletionGate only keeps the completed flag on the last step with every
// question answered. A completed session with gaps resumes at the first
// unanswered question.
func CompletionGate(s Session, c quiz.Catalog) Session {
	if !s.Completed {
		return s
	}
	if step, missing := FirstUnansweredStep(s.Answers, c); missing {
		s.Completed = false
		s.Step = step
		return s
	}
	if s.Step != c.LastStep() {
		s.Completed = false
	}
	return s
}
