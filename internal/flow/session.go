// Package flow implements the check-up navigation state machine.
//
// A Session moves through Welcome (step 0), LeadCollection (step 1), one
// Question step per catalog entry, and finally Completion. Completion is not
// a step of its own: it is the last question step with Completed set.
//
// Transitions are pure functions that take a Session and return the next
// one; Machine wraps them with persistence and a change callback.
package flow

import (
	"fmt"

	"github.com/abhisek/checkup/internal/quiz"
)

// Session is the single piece of mutable quiz state.
type Session struct {
	Step      int          `json:"step"`
	Lead      Lead         `json:"lead"`
	Answers   quiz.Answers `json:"answers"`
	Completed bool         `json:"completed"`
}

// NewSession returns a never-started session on the welcome screen.
func NewSession() Session {
	return Session{Step: quiz.StepWelcome, Answers: quiz.Answers{}}
}

// Clone returns a deep copy.
func (s Session) Clone() Session {
	out := s
	out.Answers = s.Answers.Clone()
	return out
}

// Phase names the screen a session is on.
type Phase int

const (
	PhaseWelcome Phase = iota
	PhaseLead
	PhaseQuestion
	PhaseCompletion
	PhaseInvalid // step with no corresponding question
)

func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhaseLead:
		return "lead"
	case PhaseQuestion:
		return "question"
	case PhaseCompletion:
		return "completion"
	default:
		return "invalid"
	}
}

// PhaseOf classifies the session against the catalog.
func PhaseOf(s Session, c quiz.Catalog) Phase {
	switch {
	case s.Step == quiz.StepWelcome:
		return PhaseWelcome
	case s.Step == quiz.StepLead:
		return PhaseLead
	case s.Step == c.LastStep() && s.Completed:
		return PhaseCompletion
	}
	if _, ok := c.QuestionByStep(s.Step); ok {
		return PhaseQuestion
	}
	return PhaseInvalid
}

// AdvanceFromWelcome moves from the welcome screen to the lead form.
func AdvanceFromWelcome(s Session) (Session, error) {
	if s.Step != quiz.StepWelcome {
		return s, ErrWrongStep
	}
	next := s.Clone()
	next.Step = quiz.StepLead
	next.Completed = false
	return next, nil
}

// SubmitLead validates and stores the lead, then opens the first question.
// A *ValidationError leaves the session untouched.
func SubmitLead(s Session, lead Lead) (Session, error) {
	if s.Step != quiz.StepLead {
		return s, ErrNotAtLead
	}
	if verr := ValidateLead(lead); verr != nil {
		return s, verr
	}
	next := s.Clone()
	next.Lead = normalizeLead(lead)
	next.Step = quiz.StepFirstQuestion
	next.Completed = false
	return next, nil
}

// AnswerQuestion records the answer for the question on screen, replacing
// any earlier answer, and advances. After the last question the session
// completes only if every question has an answer; otherwise it jumps to
// the first unanswered question.
func AnswerQuestion(s Session, c quiz.Catalog, questionID, points int) (Session, error) {
	if _, ok := c.QuestionByID(questionID); !ok {
		return s, fmt.Errorf("question %d: %w", questionID, ErrUnknownQuestion)
	}
	if points < quiz.PointsCritical || points > quiz.PointsStrategic {
		return s, fmt.Errorf("question %d, points %d: %w", questionID, points, ErrInvalidPoints)
	}
	if PhaseOf(s, c) != PhaseQuestion {
		return s, ErrWrongStep
	}
	onScreen, _ := c.QuestionByStep(s.Step)
	if onScreen.ID != questionID {
		return s, fmt.Errorf("question %d is not on step %d: %w", questionID, s.Step, ErrWrongStep)
	}

	next := s.Clone()
	next.Answers[questionID] = points

	if next.Step < c.LastStep() {
		next.Step++
		return next, nil
	}

	if step, ok := FirstUnansweredStep(next.Answers, c); ok {
		next.Step = step
		next.Completed = false
		return next, nil
	}
	next.Completed = true
	return next, nil
}

// GoBack moves one screen backwards. From Completion it reopens the last
// question with the completed flag cleared. On Welcome it does nothing.
func GoBack(s Session, c quiz.Catalog) Session {
	next := s.Clone()
	switch PhaseOf(s, c) {
	case PhaseWelcome:
		return next
	case PhaseLead:
		next.Step = quiz.StepWelcome
	case PhaseCompletion:
		next.Completed = false
	default:
		next.Step = clampStep(s.Step-1, c)
		next.Completed = false
	}
	return next
}

// Restart wipes lead, answers and completion and reopens the lead form.
func Restart(Session) Session {
	return Session{
		Step:    quiz.StepLead,
		Answers: quiz.Answers{},
	}
}

// FirstUnansweredStep returns the step of the first question in catalog
// order that has no answer.
func FirstUnansweredStep(answers quiz.Answers, c quiz.Catalog) (int, bool) {
	for _, q := range c.Questions() {
		if _, ok := answers[q.ID]; !ok {
			step, _ := c.StepOf(q.ID)
			return step, true
		}
	}
	return 0, false
}

// AllAnswered reports whether every catalog question has an answer.
func AllAnswered(answers quiz.Answers, c quiz.Catalog) bool {
	_, missing := FirstUnansweredStep(answers, c)
	return !missing
}

func clampStep(step int, c quiz.Catalog) int {
	if step < quiz.StepWelcome {
		return quiz.StepWelcome
	}
	if step > c.TotalSteps() {
		return c.TotalSteps()
	}
	return step
}
