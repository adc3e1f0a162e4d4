package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/checkup/internal/advice"
	"github.com/abhisek/checkup/internal/app"
	"github.com/abhisek/checkup/internal/delivery"
	"github.com/abhisek/checkup/internal/flow"
	"github.com/abhisek/checkup/internal/httpclient"
	"github.com/abhisek/checkup/internal/llm"
	"github.com/abhisek/checkup/internal/quiz"
	"github.com/abhisek/checkup/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	cfg := e.cfg
	hc := httpclient.New(cfg.HTTP)
	events := e.store.EventRepo()
	states := e.store.StateRepo()

	catalog := quiz.Default()
	persister := store.NewSessionPersister(states, catalog, cfg.Quiz.Name)
	machine := flow.NewMachine(ctx, catalog, persister, e.logger.Named("flow"))

	dispatcher := delivery.NewDispatcher([]delivery.Sender{
		delivery.NewEmailJS(cfg.Email, hc),
		delivery.NewWebhook(cfg.Webhook, hc),
		delivery.NewDocStore(cfg.DocStore, e.store.SubmissionRepo()),
	}, events, e.logger.Named("delivery"))
	defer func() {
		// Give in-flight deliveries one request timeout to land.
		closeCtx, cancel := context.WithTimeout(context.Background(), hc.Timeout)
		defer cancel()
		if err := dispatcher.Close(closeCtx); err != nil {
			e.logger.Warn("deliveries canceled on exit", zap.Error(err))
		}
	}()

	opts := app.Options{
		Machine:       machine,
		Dispatcher:    dispatcher,
		QuizName:      cfg.Quiz.Name,
		CTAURL:        cfg.Quiz.CTAURL,
		FeedbackDelay: cfg.Quiz.FeedbackDelay,
		Logger:        e.logger.Named("app"),
		CreatedAt: func() time.Time {
			if t := states.Load(ctx).CreatedTime(); !t.IsZero() {
				return t
			}
			return time.Now()
		},
	}

	// LLM advice is optional; the app works without it.
	provider, err := llm.NewProvider(ctx, cfg.LLM, hc, events, e.logger.Named("llm"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI advice will be unavailable.")
	} else if provider != nil {
		acfg := advice.DefaultConfig()
		if cfg.LLM.Timeout > 0 {
			acfg.Timeout = cfg.LLM.Timeout
		}
		opts.Advice = advice.NewService(provider, acfg, e.logger.Named("advice"))
	}

	e.logger.Info("starting",
		zap.String("db", e.dbPath),
		zap.String("phase", machine.Phase().String()),
		zap.Bool("advice", opts.Advice.Enabled()))

	return app.Run(ctx, opts)
}
