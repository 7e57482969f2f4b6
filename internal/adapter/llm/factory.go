package llm

import (
	"context"
	"errors"
	"fmt"

	"study-helper/internal/config"
	"study-helper/internal/domain"
)

// ErrNotConfigured means no provider can be used; callers fall back to mock content.
var ErrNotConfigured = errors.New("no AI provider configured")

// NewCompleter builds the completer selected by cfg.Provider. It returns
// ErrNotConfigured for provider "none", an unknown provider, or when the
// selected provider has no key.
func NewCompleter(ctx context.Context, cfg config.AIConfig) (domain.TextCompleter, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY is not set", ErrNotConfigured)
		}
		completer, err := NewOpenAICompleter(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL)
		if err != nil {
			return nil, err
		}
		return completer, nil
	case config.ProviderGemini:
		if cfg.Gemini.APIKey == "" {
			return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", ErrNotConfigured)
		}
		completer, err := NewGeminiCompleter(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.BaseURL)
		if err != nil {
			return nil, err
		}
		return completer, nil
	case config.ProviderNone, "":
		return nil, ErrNotConfigured
	default:
		return nil, fmt.Errorf("%w: unsupported AI provider %q", ErrNotConfigured, cfg.Provider)
	}
}
