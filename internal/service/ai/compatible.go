package ai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// CompatibleProvider implements Provider for OpenAI-compatible APIs.
// This covers self-hosted model servers (vLLM, Ollama, LocalAI) as well as
// hosted gateways such as OpenRouter.
type CompatibleProvider struct {
	client    openai.Client
	model     string
	maxTokens int64
}

// NewCompatibleProvider creates a new OpenAI-compatible provider.
func NewCompatibleProvider(apiKey, baseURL, model string, maxTokens int64) (*CompatibleProvider, error) {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	)
	return &CompatibleProvider{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// Test sends a test message and returns the response.
func (p *CompatibleProvider) Test(ctx context.Context) (string, error) {
	return chatComplete(ctx, p.client, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage("Hello world"),
		},
		MaxTokens: openai.Int(50),
	}, disableReasoning())
}

// Name returns the provider name.
func (p *CompatibleProvider) Name() string {
	return ProviderCompatible
}

// Complete generates a response without streaming.
// Many compatible servers still only understand max_tokens, so it is used
// instead of max_completion_tokens.
func (p *CompatibleProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(p.model),
		Messages:    chatMessages(systemPrompt, content),
		Temperature: openai.Float(0),
	}
	if p.maxTokens > 0 {
		params.MaxTokens = openai.Int(p.maxTokens)
	}
	return chatComplete(ctx, p.client, params, disableReasoning())
}

// disableReasoning turns off reasoning on gateways that enable it by default.
func disableReasoning() option.RequestOption {
	return option.WithJSONSet("reasoning", map[string]interface{}{
		"enabled": false,
	})
}
