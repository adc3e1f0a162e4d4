// Package advice asks the configured LLM for a short next-step note tailored
// to a finished check-up.
package advice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/checkup/internal/flow"
	"github.com/abhisek/checkup/internal/llm"
	"github.com/abhisek/checkup/internal/quiz"
	"github.com/abhisek/checkup/internal/scoring"
)

// ErrDisabled is returned when no provider is configured.
var ErrDisabled = errors.New("advice: no LLM provider configured")

// Note is the generated advice.
type Note struct {
	Headline string
	Actions  []string
}

// WeakAnswer is a lowest-scoring answer quoted in the prompt.
type WeakAnswer struct {
	Question string
	Answer   string
}

// Input is everything the prompt is built from. Lead contact details other
// than the company name are never sent.
type Input struct {
	Company string
	Result  scoring.Result
	Weak    []WeakAnswer
}

// InputFor builds the prompt input from a completed session.
func InputFor(s flow.Session, c quiz.Catalog) Input {
	in := Input{
		Company: s.Lead.Company,
		Result:  scoring.Score(s.Answers, c.Questions()),
	}
	for _, q := range c.Questions() {
		p, ok := s.Answers[q.ID]
		if !ok || p != quiz.PointsCritical {
			continue
		}
		if opt, ok := q.OptionFor(p); ok {
			in.Weak = append(in.Weak, WeakAnswer{Question: q.Prompt, Answer: opt.Label})
		}
	}
	return in
}

// Config holds generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxTokens:   400,
		Temperature: 0.4,
		Timeout:     20 * time.Second,
	}
}

// Service generates notes. A nil provider disables it.
type Service struct {
	provider llm.Provider
	cfg      Config
	logger   *zap.Logger
}

func NewService(provider llm.Provider, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, logger: logger}
}

// Enabled reports whether a provider is configured.
func (s *Service) Enabled() bool {
	return s != nil && s.provider != nil
}

type noteOutput struct {
	Headline string   `json:"headline"`
	Actions  []string `json:"actions"`
}

// Generate requests a note. It blocks for at most the configured timeout.
func (s *Service) Generate(ctx context.Context, in Input) (*Note, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, NoteSchema.Name)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(in)}},
		Schema:      NoteSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		s.logger.Warn("advice generation failed", zap.String("tier", in.Result.Tier.Key()), zap.Error(err))
		return nil, fmt.Errorf("advice generation: %w", err)
	}

	var out noteOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse advice response: %w", err)
	}

	note := &Note{Headline: strings.TrimSpace(out.Headline)}
	for _, a := range out.Actions {
		if a = strings.TrimSpace(a); a != "" {
			note.Actions = append(note.Actions, a)
		}
		if len(note.Actions) == MaxActions {
			break
		}
	}
	if note.Headline == "" {
		return nil, fmt.Errorf("parse advice response: empty headline")
	}

	s.logger.Debug("advice generated", zap.String("tier", in.Result.Tier.Key()), zap.Int("actions", len(note.Actions)))
	return note, nil
}
