package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/minhtran/vocamaster/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and event logging middleware.
func NewProvider(ctx context.Context, cfg Config, events store.LLMEventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller, retry, logging, base. Logging sits
	// innermost so each attempt produces its own event.
	return WithRetry(WithLogging(base, events), cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from VOCAMASTER_ env config. When
// no explicit provider is selected it falls back to probing the standard
// API key variables.
func NewProviderFromEnv(ctx context.Context, events store.LLMEventRepo) (Provider, error) {
	cfg := ConfigFromEnv()

	if os.Getenv("VOCAMASTER_LLM_PROVIDER") != "" {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return NewProvider(ctx, cfg, events)
	}

	if err := cfg.Validate(); err == nil {
		return NewProvider(ctx, cfg, events)
	}

	disc, ok := DiscoverConfig()
	if !ok {
		return nil, errors.New("no LLM API key configured (set GEMINI_API_KEY, OPENAI_API_KEY or ANTHROPIC_API_KEY)")
	}
	return NewProvider(ctx, disc, events)
}
