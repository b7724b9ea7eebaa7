package ai

import (
	"context"
	"errors"
)

// Provider is a chat-completion backend used as the translation model.
type Provider interface {
	// Name returns the provider name.
	Name() string
	// Test sends a short message to verify credentials and model.
	Test(ctx context.Context) (string, error)
	// Complete generates a response without streaming.
	Complete(ctx context.Context, systemPrompt, content string) (string, error)
}

// Config holds the configuration for an AI provider.
type Config struct {
	Provider  string // openai, anthropic, compatible
	APIKey    string
	BaseURL   string // optional for openai/anthropic, required for compatible
	Model     string
	MaxTokens int64 // upper bound on reply length; 0 uses the provider default
}

// ProviderType constants
const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

// defaultMaxTokens bounds replies when Config.MaxTokens is unset.
const defaultMaxTokens = 4096

var (
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrMissingBaseURL  = errors.New("base URL is required for compatible provider")
	ErrMissingModel    = errors.New("model is required")
)

// NewProvider creates a new AI provider based on the config.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return asProvider(NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.MaxTokens))
	case ProviderAnthropic:
		return asProvider(NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.MaxTokens))
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return asProvider(NewCompatibleProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.MaxTokens))
	default:
		return nil, ErrInvalidProvider
	}
}

// asProvider keeps a failed constructor from yielding a non-nil interface holding a nil pointer.
func asProvider[P Provider](p P, err error) (Provider, error) {
	if err != nil {
		return nil, err
	}
	return p, nil
}
