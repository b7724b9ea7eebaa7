package service

import (
	"context"
	"fmt"

	"kvtranslate/backend/internal/logger"
	"kvtranslate/backend/internal/repository"
	"kvtranslate/backend/internal/service/ai"
)

// AIStatus describes the configured translation backend.
type AIStatus struct {
	Provider   string `json:"provider"`
	Model      string `json:"model"`
	Configured bool   `json:"configured"`
	Error      string `json:"error,omitempty"`
}

// AIService exposes the translation backend and its cache.
type AIService interface {
	// Status reports whether a provider could be built from configuration.
	Status() AIStatus
	// Test sends a short message to verify credentials and model.
	Test(ctx context.Context) (string, error)
	// ClearCache deletes every cached translation.
	ClearCache(ctx context.Context) (int64, error)
}

type aiService struct {
	provider    ai.Provider
	providerErr error
	cfg         ai.Config
	cache       repository.TranslationCacheRepository
	rateLimiter *ai.RateLimiter
}

// NewAIService takes the outcome of ai.NewProvider; provider is nil when providerErr is set.
func NewAIService(
	cfg ai.Config,
	provider ai.Provider,
	providerErr error,
	cache repository.TranslationCacheRepository,
	rateLimiter *ai.RateLimiter,
) AIService {
	return &aiService{
		provider:    provider,
		providerErr: providerErr,
		cfg:         cfg,
		cache:       cache,
		rateLimiter: rateLimiter,
	}
}

func (s *aiService) Status() AIStatus {
	status := AIStatus{Provider: s.cfg.Provider, Model: s.cfg.Model, Configured: s.provider != nil}
	if s.providerErr != nil {
		status.Error = s.providerErr.Error()
	}
	return status
}

func (s *aiService) Test(ctx context.Context) (string, error) {
	if s.provider == nil {
		return "", fmt.Errorf("%w: %v", ErrInvalid, s.providerErr)
	}
	if s.rateLimiter != nil {
		if err := s.rateLimiter.Wait(ctx); err != nil {
			return "", err
		}
	}
	reply, err := s.provider.Test(ctx)
	if err != nil {
		logger.Warn("ai test failed", "module", "service", "action", "test", "resource", "ai", "result", "failed", "provider", s.provider.Name(), "error", err)
		return "", err
	}
	return reply, nil
}

func (s *aiService) ClearCache(ctx context.Context) (int64, error) {
	deleted, err := s.cache.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear translation cache: %w", err)
	}
	logger.Info("ai cache cleared", "module", "service", "action", "clear", "resource", "ai", "result", "ok", "translations", deleted)
	return deleted, nil
}
