package flow

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/checkup/internal/quiz"
	"github.com/abhisek/checkup/internal/scoring"
)

// Persister stores the session between runs. Load never fails: a missing or
// unreadable record yields a fresh session.
type Persister interface {
	Load(ctx context.Context) Session
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}

// Machine owns the current session, persists it after every mutation and
// notifies a listener of each change. It is not safe for concurrent use;
// the TUI drives it from its update loop.
type Machine struct {
	catalog   quiz.Catalog
	persister Persister
	logger    *zap.Logger
	session   Session

	// OnChange, when set, is called with a copy of the session after every
	// successful transition.
	OnChange func(Session)
}

// NewMachine loads the persisted session, reconciles it against the
// catalog and writes the repaired session back.
func NewMachine(ctx context.Context, catalog quiz.Catalog, p Persister, logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Machine{
		catalog:   catalog,
		persister: p,
		logger:    logger,
	}

	loaded := p.Load(ctx)
	m.session = Reconcile(loaded, catalog)
	if m.session.Step != loaded.Step || m.session.Completed != loaded.Completed {
		logger.Info("session reconciled",
			zap.Int("loaded_step", loaded.Step),
			zap.Int("step", m.session.Step),
			zap.Bool("completed", m.session.Completed))
	}
	if err := p.Save(ctx, m.session); err != nil {
		logger.Warn("save reconciled session", zap.Error(err))
	}
	return m
}

// Catalog returns the question catalog the machine runs.
func (m *Machine) Catalog() quiz.Catalog { return m.catalog }

// Session returns a copy of the current session.
func (m *Machine) Session() Session { return m.session.Clone() }

// Step returns the current step index.
func (m *Machine) Step() int { return m.session.Step }

// TotalSteps returns the number of steps shown in the progress header.
func (m *Machine) TotalSteps() int { return m.catalog.TotalSteps() }

// Phase returns the screen the session is on.
func (m *Machine) Phase() Phase { return PhaseOf(m.session, m.catalog) }

// Result scores the current answers.
func (m *Machine) Result() scoring.Result {
	return scoring.Score(m.session.Answers, m.catalog.Questions())
}

// AdvanceFromWelcome leaves the welcome screen.
func (m *Machine) AdvanceFromWelcome(ctx context.Context) error {
	next, err := AdvanceFromWelcome(m.session)
	if err != nil {
		return err
	}
	return m.commit(ctx, "advance", next)
}

// SubmitLead validates the lead and opens the first question. Validation
// failures are returned as *ValidationError and nothing is saved.
func (m *Machine) SubmitLead(ctx context.Context, lead Lead) error {
	next, err := SubmitLead(m.session, lead)
	if err != nil {
		return err
	}
	return m.commit(ctx, "submit_lead", next)
}

// AnswerQuestion records an answer for the question on screen.
func (m *Machine) AnswerQuestion(ctx context.Context, questionID, points int) error {
	next, err := AnswerQuestion(m.session, m.catalog, questionID, points)
	if err != nil {
		return err
	}
	return m.commit(ctx, "answer", next)
}

// GoBack moves one screen backwards.
func (m *Machine) GoBack(ctx context.Context) error {
	return m.commit(ctx, "back", GoBack(m.session, m.catalog))
}

// Restart clears the stored record and starts over at the lead form.
func (m *Machine) Restart(ctx context.Context) error {
	if err := m.persister.Clear(ctx); err != nil {
		m.logger.Warn("clear session", zap.Error(err))
	}
	return m.commit(ctx, "restart", Restart(m.session))
}

// commit installs next as the current session, saves it and fires
// OnChange. A failed save is returned but the in-memory session still
// advances so the respondent is never stuck on a screen.
func (m *Machine) commit(ctx context.Context, op string, next Session) error {
	m.session = next
	m.logger.Debug("transition",
		zap.String("op", op),
		zap.Int("step", next.Step),
		zap.Bool("completed", next.Completed),
		zap.Int("answered", len(next.Answers)))

	err := m.persister.Save(ctx, next)
	if err != nil {
		m.logger.Warn("save session", zap.String("op", op), zap.Error(err))
	}
	if m.OnChange != nil {
		m.OnChange(next.Clone())
	}
	return err
}
