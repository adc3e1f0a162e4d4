package flow

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongStep is returned when an operation does not apply to the
	// state the session is in, e.g. answering a question that is not on screen.
	ErrWrongStep = errors.New("operation not valid at current step")

	// ErrNotAtLead is returned by SubmitLead outside the lead form. It
	// matches ErrWrongStep with errors.Is.
	ErrNotAtLead = fmt.Errorf("lead form is not on screen: %w", ErrWrongStep)

	// ErrUnknownQuestion is returned for a question id outside the catalog.
	ErrUnknownQuestion = errors.New("unknown question")

	// ErrInvalidPoints is returned for a point value outside 0..2.
	ErrInvalidPoints = errors.New("points must be 0, 1 or 2")
)

// ValidationError describes the first lead field that failed validation.
// It is shown inline and never mutates the session.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
