// Package quiz holds the static check-up questionnaire and the step
// arithmetic shared by the navigation state machine and the screens.
//
// Step layout: 0 is the welcome screen, 1 the lead form, and steps
// 2..TotalSteps() show one question each (step 2 is the first question).
package quiz

import "fmt"

// Name is the default quiz title shown in the header and stored with results.
const Name = "Structure & Profit Check-up"

// Step indices with fixed meaning.
const (
	StepWelcome       = 0
	StepLead          = 1
	StepFirstQuestion = 2
)

// Catalog is an ordered, immutable question list.
type Catalog struct {
	questions []Question
	byID      map[int]int // question ID -> index
}

// Default returns the built-in 12-question catalog.
func Default() Catalog {
	c, err := NewCatalog(defaultQuestions)
	if err != nil {
		panic(fmt.Sprintf("quiz: invalid built-in catalog: %v", err))
	}
	return c
}

// NewCatalog builds a catalog, rejecting duplicate IDs, unknown categories
// and point values outside 0..2.
func NewCatalog(questions []Question) (Catalog, error) {
	if len(questions) == 0 {
		return Catalog{}, fmt.Errorf("catalog has no questions")
	}
	c := Catalog{
		questions: make([]Question, len(questions)),
		byID:      make(map[int]int, len(questions)),
	}
	for i, q := range questions {
		if _, dup := c.byID[q.ID]; dup {
			return Catalog{}, fmt.Errorf("duplicate question id %d", q.ID)
		}
		if !q.Category.Valid() {
			return Catalog{}, fmt.Errorf("question %d: unknown category %q", q.ID, q.Category)
		}
		if len(q.Options) == 0 {
			return Catalog{}, fmt.Errorf("question %d: no options", q.ID)
		}
		for _, o := range q.Options {
			if o.Points < PointsCritical || o.Points > PointsStrategic {
				return Catalog{}, fmt.Errorf("question %d: option %q has points %d", q.ID, o.Label, o.Points)
			}
		}
		c.questions[i] = q
		c.byID[q.ID] = i
	}
	return c, nil
}

// Questions returns a copy of the ordered question list.
func (c Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// QuestionCount returns the number of questions.
func (c Catalog) QuestionCount() int {
	return len(c.questions)
}

// TotalSteps is the lead step plus one step per question.
func (c Catalog) TotalSteps() int {
	return len(c.questions) + 1
}

// LastStep is the step of the final question; the completion screen
// reuses it with the completed flag set.
func (c Catalog) LastStep() int {
	return c.TotalSteps()
}

// QuestionByStep maps a question step to its question.
func (c Catalog) QuestionByStep(step int) (Question, bool) {
	idx := step - StepFirstQuestion
	if idx < 0 || idx >= len(c.questions) {
		return Question{}, false
	}
	return c.questions[idx], true
}

// QuestionByID looks up a question by its identifier.
func (c Catalog) QuestionByID(id int) (Question, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[idx], true
}

// StepOf returns the step that shows the given question.
func (c Catalog) StepOf(id int) (int, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return 0, false
	}
	return idx + StepFirstQuestion, true
}

// Number returns the 1-based question number shown as "Question n of N".
func (c Catalog) Number(step int) int {
	n := step - StepFirstQuestion + 1
	if n < 1 {
		return 1
	}
	return n
}

// Valid reports whether id is a known question and points is one of its
// allowed values (0, 1 or 2).
func (c Catalog) Valid(id, points int) bool {
	if _, ok := c.byID[id]; !ok {
		return false
	}
	return points >= PointsCritical && points <= PointsStrategic
}

// ByCategory returns the questions of one category in catalog order.
func (c Catalog) ByCategory(cat Category) []Question {
	var out []Question
	for _, q := range c.questions {
		if q.Category == cat {
			out = append(out, q)
		}
	}
	return out
}
