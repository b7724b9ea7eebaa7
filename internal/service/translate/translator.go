// Package translate translates batches of extracted strings into English.
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"kvtranslate/backend/internal/logger"
	"kvtranslate/backend/internal/service/ai"
	"kvtranslate/backend/internal/service/langdetect"
)

var (
	// ErrEmptyBatch is returned for a batch with no texts.
	ErrEmptyBatch = errors.New("no texts to translate")
	// ErrCountMismatch is returned when the backend returns a different number of items.
	ErrCountMismatch = errors.New("translation count mismatch")
)

// Translator translates texts from sourceTag into English. The result has the
// same length and order as texts. A backend failure fails the whole batch.
type Translator interface {
	TranslateBatch(ctx context.Context, texts []string, sourceTag string) ([]string, error)
}

// Cache stores translations per source language, keyed by source text.
type Cache interface {
	GetBatch(ctx context.Context, sourceLang string, texts []string) (map[string]string, error)
	SaveBatch(ctx context.Context, sourceLang string, translations map[string]string) error
}

// Options tunes LLMTranslator.
type Options struct {
	// MaxTokens is the per-text length budget; longer texts are truncated.
	MaxTokens int
	// ChunkTokens bounds the estimated size of one backend request.
	ChunkTokens int
	// Timeout bounds one TranslateBatch call. Zero means no timeout.
	Timeout time.Duration
	// TargetTag defaults to langdetect.TargetTag.
	TargetTag string
}

// LLMTranslator uses a chat-completion provider as the translation model.
type LLMTranslator struct {
	provider ai.Provider
	limiter  *ai.RateLimiter
	cache    Cache
	opts     Options
}

// NewLLMTranslator builds a translator. cache may be nil.
func NewLLMTranslator(provider ai.Provider, limiter *ai.RateLimiter, cache Cache, opts Options) *LLMTranslator {
	if opts.TargetTag == "" {
		opts.TargetTag = langdetect.TargetTag
	}
	if limiter == nil {
		limiter = ai.NewRateLimiter(ai.DefaultRateLimit)
	}
	return &LLMTranslator{provider: provider, limiter: limiter, cache: cache, opts: opts}
}

func (t *LLMTranslator) TranslateBatch(ctx context.Context, texts []string, sourceTag string) ([]string, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyBatch
	}
	if t.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	out := make([]string, len(texts))
	prepared := make([]string, len(texts))

	// Distinct non-blank texts in first-appearance order.
	var unique []string
	seen := make(map[string]bool)
	for i, text := range texts {
		prepared[i] = Truncate(text, t.opts.MaxTokens)
		if strings.TrimSpace(prepared[i]) == "" || seen[prepared[i]] {
			continue
		}
		seen[prepared[i]] = true
		unique = append(unique, prepared[i])
	}

	translated := t.lookupCache(ctx, sourceTag, unique)
	var misses []string
	for _, text := range unique {
		if _, ok := translated[text]; !ok {
			misses = append(misses, text)
		}
	}

	fresh := make(map[string]string, len(misses))
	for _, chunk := range ChunkByTokens(misses, t.opts.ChunkTokens) {
		results, err := t.translateChunk(ctx, chunk, sourceTag)
		if err != nil {
			logger.Warn("translate batch failed", "module", "translate", "action", "translate", "resource", "ai", "result", "failed", "provider", t.provider.Name(), "source_lang", sourceTag, "items", len(chunk), "error", err)
			return nil, err
		}
		for i, text := range chunk {
			fresh[text] = results[i]
			translated[text] = results[i]
		}
	}

	for i, text := range prepared {
		if strings.TrimSpace(text) == "" {
			continue
		}
		out[i] = translated[text]
	}

	t.saveCache(ctx, sourceTag, fresh)
	logger.Info("translate batch completed", "module", "translate", "action", "translate", "resource", "ai", "result", "ok", "provider", t.provider.Name(), "source_lang", sourceTag, "items", len(texts), "cache_hits", len(unique)-len(misses), "duration_ms", time.Since(start).Milliseconds())
	return out, nil
}

func (t *LLMTranslator) translateChunk(ctx context.Context, chunk []string, sourceTag string) ([]string, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	payload, err := json.Marshal(chunk)
	if err != nil {
		return nil, fmt.Errorf("encode batch: %w", err)
	}

	prompt := ai.GetTranslateBatchPrompt(sourceTag, t.opts.TargetTag)
	reply, err := t.provider.Complete(ctx, prompt, ai.WrapInputSimple(string(payload)))
	if err != nil {
		return nil, fmt.Errorf("translate with %s: %w", t.provider.Name(), err)
	}

	results, err := ParseArray(reply)
	if err != nil {
		// Single-item batches are often answered with the bare translation.
		if len(chunk) == 1 && strings.TrimSpace(reply) != "" {
			return []string{strings.TrimSpace(reply)}, nil
		}
		return nil, err
	}
	if len(results) != len(chunk) {
		return nil, fmt.Errorf("%w: sent %d, received %d", ErrCountMismatch, len(chunk), len(results))
	}
	return results, nil
}

func (t *LLMTranslator) lookupCache(ctx context.Context, sourceTag string, texts []string) map[string]string {
	if t.cache == nil || len(texts) == 0 {
		return make(map[string]string)
	}
	hits, err := t.cache.GetBatch(ctx, sourceTag, texts)
	if err != nil {
		logger.Warn("translation cache lookup failed", "module", "translate", "action", "fetch", "resource", "cache", "result", "failed", "source_lang", sourceTag, "error", err)
		return make(map[string]string)
	}
	if hits == nil {
		hits = make(map[string]string)
	}
	return hits
}

func (t *LLMTranslator) saveCache(ctx context.Context, sourceTag string, fresh map[string]string) {
	if t.cache == nil || len(fresh) == 0 {
		return
	}
	if err := t.cache.SaveBatch(ctx, sourceTag, fresh); err != nil {
		logger.Warn("translation cache save failed", "module", "translate", "action", "save", "resource", "cache", "result", "failed", "source_lang", sourceTag, "error", err)
	}
}

// ParseArray decodes a JSON array of strings from a model reply, tolerating
// surrounding prose and markdown code fences. Decoding starts at the first
// "[" and stops after the first complete JSON value. Non-string elements are
// kept in their JSON text form.
func ParseArray(reply string) ([]string, error) {
	start := strings.Index(reply, "[")
	if start < 0 {
		return nil, fmt.Errorf("reply is not a JSON array")
	}

	var data json.RawMessage
	if err := json.NewDecoder(strings.NewReader(reply[start:])).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode reply: %w", err)
	}
	if err := validateReply(data); err != nil {
		return nil, err
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode reply: %w", err)
	}

	out := make([]string, len(raw))
	for i, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out[i] = s
			continue
		}
		if string(item) == "null" {
			continue
		}
		out[i] = string(item)
	}
	return out, nil
}

type unavailable struct {
	err error
}

// Unavailable returns a Translator that fails every batch with err. It keeps
// the service up when no translation backend is configured.
func Unavailable(err error) Translator {
	return unavailable{err: err}
}

func (u unavailable) TranslateBatch(context.Context, []string, string) ([]string, error) {
	return nil, fmt.Errorf("translation backend unavailable: %w", u.err)
}
