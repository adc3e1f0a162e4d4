package llm

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/abhisek/checkup/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with event
// logging. It returns (nil, nil) when no provider is configured.
func NewProvider(ctx context.Context, cfg Config, hc *http.Client, events store.EventRepo, logger *zap.Logger) (Provider, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if hc == nil {
		hc = http.DefaultClient
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic, hc)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI, hc)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter, hc)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini, hc)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithLogging(base, cfg.Provider, events, logger), nil
}
