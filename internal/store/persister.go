package store

import (
	"context"
	"time"

	"github.com/abhisek/checkup/internal/flow"
	"github.com/abhisek/checkup/internal/quiz"
	"github.com/abhisek/checkup/internal/report"
	"github.com/abhisek/checkup/internal/scoring"
)

// SessionPersister adapts a StateRepo to flow.Persister. Saves merge into
// the stored record, so report fields written on completion survive later
// saves until the next restart clears them.
type SessionPersister struct {
	repo    StateRepo
	catalog quiz.Catalog
	name    string
	now     func() time.Time
}

// NewSessionPersister returns a persister storing sessions for the given
// quiz name.
func NewSessionPersister(repo StateRepo, catalog quiz.Catalog, quizName string) *SessionPersister {
	if quizName == "" {
		quizName = quiz.Name
	}
	return &SessionPersister{repo: repo, catalog: catalog, name: quizName, now: time.Now}
}

// Load implements flow.Persister.
func (p *SessionPersister) Load(ctx context.Context) flow.Session {
	return SessionFromRecord(p.repo.Load(ctx))
}

// Save implements flow.Persister.
func (p *SessionPersister) Save(ctx context.Context, s flow.Session) error {
	rec := p.repo.Load(ctx)
	rec.QuizName = p.name
	rec.Step = s.Step
	rec.Lead = s.Lead
	rec.Answers = s.Answers.Clone()
	rec.Completed = s.Completed

	if s.Completed {
		res := scoring.Score(s.Answers, p.catalog.Questions())
		rec.Score = report.Snapshot(res)
		rec.TierKey = res.Tier.Key()
		rec.TierTitle = res.Tier.Title()
		if rec.CreatedAt == "" {
			rec.CreatedAt = p.now().UTC().Format(time.RFC3339)
		}
	}

	_, err := p.repo.Save(ctx, rec)
	return err
}

// Clear implements flow.Persister.
func (p *SessionPersister) Clear(ctx context.Context) error {
	return p.repo.Clear(ctx)
}

// SessionFromRecord extracts the navigation state from a stored record.
func SessionFromRecord(r Record) flow.Session {
	return flow.Session{
		Step:      r.Step,
		Lead:      r.Lead,
		Answers:   r.Answers.Clone(),
		Completed: r.Completed,
	}
}

// CreatedTime parses the record's completion timestamp. The zero time is
// returned when it is missing or malformed.
func (r Record) CreatedTime() time.Time {
	t, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
