// Package app is the root bubbletea model. It owns the flow machine,
// applies the intents screens emit and swaps in the screen for the new
// state after every transition.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/checkup/internal/advice"
	"github.com/abhisek/checkup/internal/delivery"
	"github.com/abhisek/checkup/internal/flow"
	"github.com/abhisek/checkup/internal/quiz"
	rep "github.com/abhisek/checkup/internal/report"
	"github.com/abhisek/checkup/internal/router"
	"github.com/abhisek/checkup/internal/screen"
	"github.com/abhisek/checkup/internal/screens/invalid"
	"github.com/abhisek/checkup/internal/screens/lead"
	"github.com/abhisek/checkup/internal/screens/question"
	"github.com/abhisek/checkup/internal/screens/report"
	"github.com/abhisek/checkup/internal/screens/welcome"
	"github.com/abhisek/checkup/internal/ui/layout"
)

// Options wires the model's collaborators. Only Machine is required.
type Options struct {
	Machine    *flow.Machine
	Dispatcher *delivery.Dispatcher
	Advice     *advice.Service

	QuizName      string
	CTAURL        string
	FeedbackDelay time.Duration

	// CreatedAt returns when the check-up was completed. Defaults to Now.
	CreatedAt func() time.Time
	OpenURL   func(url string) error
	Now       func() time.Time
	Logger    *zap.Logger
}

type deliveryDoneMsg struct{ result delivery.Result }

type adviceMsg struct {
	note *advice.Note
	err  error
}

type openedMsg struct{ err error }

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctx     context.Context
	opts    Options
	machine *flow.Machine
	router  *router.Router
	logger  *zap.Logger

	width  int
	height int

	note            *advice.Note
	adviceRequested bool
	status          string
	busy            bool
}

func newAppModel(ctx context.Context, opts Options) AppModel {
	if opts.QuizName == "" {
		opts.QuizName = quiz.Name
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.CreatedAt == nil {
		opts.CreatedAt = opts.Now
	}
	if opts.OpenURL == nil {
		opts.OpenURL = OpenBrowser
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.FeedbackDelay < 0 {
		opts.FeedbackDelay = 0
	}

	m := AppModel{
		ctx:     ctx,
		opts:    opts,
		machine: opts.Machine,
		logger:  opts.Logger,
	}
	m.router = router.New(m.screenFor())
	m.adviceRequested = m.machine.Phase() == flow.PhaseCompletion && opts.Advice.Enabled()
	return m
}

func (m AppModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if active := m.router.Active(); active != nil {
		cmds = append(cmds, active.Init())
	}
	if m.adviceRequested {
		cmds = append(cmds, m.adviceCmd())
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case screen.StartMsg:
		m.apply("start", m.machine.AdvanceFromWelcome(m.ctx))
		return m, m.refresh()

	case screen.SubmitLeadMsg:
		err := m.machine.SubmitLead(m.ctx, msg.Lead)
		var verr *flow.ValidationError
		if errors.As(err, &verr) {
			return m, m.router.Update(screen.ValidationMsg{Err: verr})
		}
		m.apply("submit lead", err)
		return m, m.refresh()

	case screen.AnswerMsg:
		m.apply("answer", m.machine.AnswerQuestion(m.ctx, msg.QuestionID, msg.Points))
		return m, m.refresh()

	case screen.BackMsg:
		m.apply("back", m.machine.GoBack(m.ctx))
		return m, m.refresh()

	case screen.RestartMsg:
		m.apply("restart", m.machine.Restart(m.ctx))
		m.status = ""
		m.busy = false
		return m, m.refresh()

	case screen.CTAMsg:
		return m, m.startCTA()

	case deliveryDoneMsg:
		m.busy = false
		m.status = msg.result.Hint
		m.updateReport()
		return m, nil

	case adviceMsg:
		// Failures are logged by the advice service.
		if msg.err != nil || m.machine.Phase() != flow.PhaseCompletion {
			return m, nil
		}
		m.note = msg.note
		m.updateReport()
		return m, nil

	case openedMsg:
		if msg.err != nil {
			m.logger.Warn("open cta url", zap.Error(msg.err))
		}
		return m, nil
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// apply logs a transition failure. A failed save still advances the
// session, so the screen is refreshed regardless.
func (m *AppModel) apply(op string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, flow.ErrWrongStep):
		m.logger.Debug("ignored intent", zap.String("op", op), zap.Error(err))
	default:
		m.logger.Warn("transition", zap.String("op", op), zap.Error(err))
	}
}

// refresh replaces the active screen with the one for the current state.
// Leaving the report drops the advice note; answers may change before the
// respondent comes back.
func (m *AppModel) refresh() tea.Cmd {
	var cmds []tea.Cmd
	switch {
	case m.machine.Phase() != flow.PhaseCompletion:
		m.note = nil
		m.adviceRequested = false
	case !m.adviceRequested && m.opts.Advice.Enabled():
		m.adviceRequested = true
		cmds = append(cmds, m.adviceCmd())
	}
	return tea.Batch(append(cmds, m.router.Replace(m.screenFor()))...)
}

func (m *AppModel) screenFor() screen.Screen {
	s := m.machine.Session()
	c := m.machine.Catalog()

	switch m.machine.Phase() {
	case flow.PhaseWelcome:
		return welcome.New(c.QuestionCount())
	case flow.PhaseLead:
		return lead.New(s.Lead)
	case flow.PhaseQuestion:
		q, _ := c.QuestionByStep(s.Step)
		previous := -1
		if p, ok := s.Answers[q.ID]; ok {
			previous = p
		}
		return question.New(q, c.Number(s.Step), c.QuestionCount(), previous, m.opts.FeedbackDelay)
	case flow.PhaseCompletion:
		return report.New(report.Params{
			Name:   s.Lead.Name,
			Result: m.machine.Result(),
			Note:   m.note,
			Status: m.status,
			Busy:   m.busy,
		})
	default:
		return invalid.New(s.Step)
	}
}

func (m *AppModel) updateReport() {
	if r, ok := m.router.Active().(*report.ReportScreen); ok {
		r.SetStatus(m.status, m.busy)
		r.SetNote(m.note)
	}
}

// startCTA hands the result to the delivery collaborators and opens the
// booking link. Neither blocks the update loop.
func (m *AppModel) startCTA() tea.Cmd {
	if m.busy || m.machine.Phase() != flow.PhaseCompletion {
		return nil
	}

	url := rep.CTAURL(m.opts.CTAURL)
	open := m.opts.OpenURL
	cmds := []tea.Cmd{func() tea.Msg { return openedMsg{err: open(url)} }}

	if m.opts.Dispatcher != nil {
		payload := rep.Build(m.opts.QuizName, m.machine.Session(), m.machine.Catalog(),
			m.opts.CreatedAt(), m.opts.Now(), url)
		ch := m.opts.Dispatcher.Submit(payload)
		m.busy = true
		m.status = report.StatusDirecting
		cmds = append(cmds, func() tea.Msg { return deliveryDoneMsg{result: <-ch} })
	}
	m.updateReport()
	return tea.Batch(cmds...)
}

func (m *AppModel) adviceCmd() tea.Cmd {
	svc := m.opts.Advice
	in := advice.InputFor(m.machine.Session(), m.machine.Catalog())
	ctx := m.ctx
	return func() tea.Msg {
		note, err := svc.Generate(ctx, in)
		return adviceMsg{note: note, err: err}
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(m.opts.QuizName, title, m.machine.Step(), m.machine.TotalSteps(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until the respondent quits.
func Run(ctx context.Context, opts Options) error {
	if opts.Machine == nil {
		return errors.New("app: machine is required")
	}
	p := tea.NewProgram(newAppModel(ctx, opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
