package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/rsahni/topiq/internal/store"
)

// NewProvider builds the configured backend wrapped with deadline, retry,
// and event-logging middleware: caller -> deadline -> retry -> logging -> backend.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	wrapped := base
	if eventRepo != nil {
		wrapped = WithLogging(base, eventRepo)
	}
	wrapped = WithRetry(wrapped, cfg.Retry)
	if cfg.Timeout > 0 {
		wrapped = &deadlineProvider{inner: wrapped, timeout: cfg.Timeout}
	}
	return wrapped, nil
}

// deadlineProvider bounds each request, retries included, with one deadline.
type deadlineProvider struct {
	inner   Provider
	timeout time.Duration
}

func (d *deadlineProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	return d.inner.Generate(ctx, req)
}

func (d *deadlineProvider) ModelID() string {
	return d.inner.ModelID()
}

// NewProviderFromEnv resolves configuration from TOPIQ_* variables, falling
// back to DiscoverConfig when no explicit provider is set.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}
