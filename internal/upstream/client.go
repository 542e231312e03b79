// Package upstream wraps the OpenAI-compatible chat-completion
// gateway: request construction, per-attempt timeout, and the retry
// policy the service applies to transient failures.
package upstream

import (
	"context"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/tantsahamarket/chatbot/internal/models"
)

// Gateway is the upstream surface the chat handler consumes. Both
// calls run under the client's per-attempt timeout and retry policy.
type Gateway interface {
	Complete(ctx context.Context, systemPrompt string, messages []models.Message) (openai.ChatCompletionResponse, error)
	Stream(ctx context.Context, systemPrompt string, messages []models.Message) (*openai.ChatCompletionStream, error)
}

// Client talks to the gateway through the OpenAI-compatible API.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
	policy  Policy
}

// NewClient builds a gateway client. baseURL points at the gateway's
// OpenAI-compatible root (".../v1").
func NewClient(baseURL, apiKey, model string, timeout time.Duration, policy Policy) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Client{
		api:     openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: timeout,
		policy:  policy,
	}
}

func (c *Client) request(systemPrompt string, messages []models.Message, stream bool) openai.ChatCompletionRequest {
	converted := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	converted = append(converted, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range messages {
		converted = append(converted, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	return openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    converted,
		Stream:      stream,
		Temperature: 0.7,
		MaxTokens:   1024,
		TopP:        0.95,
	}
}

// Complete performs a buffered chat completion.
func (c *Client) Complete(ctx context.Context, systemPrompt string, messages []models.Message) (openai.ChatCompletionResponse, error) {
	req := c.request(systemPrompt, messages, false)

	return Do(ctx, c.policy, func(ctx context.Context) (openai.ChatCompletionResponse, error) {
		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()
		return c.api.CreateChatCompletion(attemptCtx, req)
	})
}

// Stream opens a streaming chat completion. The per-attempt timeout
// only covers establishing the stream; reading it is bounded by the
// caller's context.
func (c *Client) Stream(ctx context.Context, systemPrompt string, messages []models.Message) (*openai.ChatCompletionStream, error) {
	req := c.request(systemPrompt, messages, true)

	return Do(ctx, c.policy, func(ctx context.Context) (*openai.ChatCompletionStream, error) {
		return c.api.CreateChatCompletionStream(ctx, req)
	})
}
