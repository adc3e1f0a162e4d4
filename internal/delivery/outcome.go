// Package delivery hands a completed check-up to the optional collaborators:
// an EmailJS template, a webhook and the local document store. Every
// collaborator is best-effort and never touches the quiz session.
package delivery

import (
	"context"

	"github.com/abhisek/checkup/internal/report"
)

// Status of one delivery attempt.
type Status string

const (
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusError   Status = "error"
)

// Reasons reported with StatusSkipped.
const (
	ReasonNotConfigured = "not_configured"
	ReasonCanceled      = "canceled"
)

// Outcome is what a Sender reports for one payload.
type Outcome struct {
	Channel string
	Status  Status
	Reason  string
	Mode    string
	Err     error
}

// OK reports whether the collaborator accepted the payload.
func (o Outcome) OK() bool { return o.Status == StatusOK }

func skipped(channel, reason string) Outcome {
	return Outcome{Channel: channel, Status: StatusSkipped, Reason: reason}
}

func failed(channel, mode string, err error) Outcome {
	return Outcome{Channel: channel, Status: StatusError, Mode: mode, Err: err}
}

// Sender delivers a payload to one collaborator. Send never panics on a
// missing configuration; it reports StatusSkipped instead.
type Sender interface {
	Name() string
	Send(ctx context.Context, p report.Payload) Outcome
}

// Hints shown after a submission.
const (
	HintRegistered = "Request registered."
	HintFailed     = "Could not send right now. Please try again."
)

// Summarize turns outcomes into a soft status hint. It is HintRegistered
// when any collaborator succeeded, HintFailed when every configured one
// failed, and empty when nothing was configured.
func Summarize(outcomes []Outcome) string {
	var anyErr bool
	for _, o := range outcomes {
		switch o.Status {
		case StatusOK:
			return HintRegistered
		case StatusError:
			anyErr = true
		}
	}
	if anyErr {
		return HintFailed
	}
	return ""
}
