// Package llm wraps the OpenAI-compatible chat and embedding APIs with the
// retry discipline the extraction engine relies on: bounded reconnect
// attempts for transport failures and long back-off for rate limits.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/civiclens/civiclens/pkg/config"
)

// Client is one API-key-bound LLM client. Workers hold exactly one Client
// each; the per-key cooldown lives in the worker, not here.
type Client struct {
	api       *openai.Client
	model     string
	embedding string

	temperature float32
	maxRetries  int
	timeout     time.Duration
	keyLabel    string
}

// NewClient builds a client for one API key slot. keyLabel is a short
// non-secret identifier (such as "key-2") used in logs.
func NewClient(cfg config.LLMConfig, apiKey, keyLabel string) *Client {
	apiCfg := openai.DefaultConfig(apiKey)
	apiCfg.BaseURL = cfg.BaseURL

	return &Client{
		api:         openai.NewClientWithConfig(apiCfg),
		model:       cfg.Model,
		embedding:   cfg.EmbeddingModel,
		temperature: cfg.Temperature,
		maxRetries:  cfg.MaxRetries,
		timeout:     cfg.RequestTimeout,
		keyLabel:    keyLabel,
	}
}

// KeyLabel identifies the API key slot this client is bound to.
func (c *Client) KeyLabel() string {
	return c.keyLabel
}

// Model returns the configured chat model handle.
func (c *Client) Model() string {
	return c.model
}

// ChatOptions tune one chat completion call.
type ChatOptions struct {
	// Tools enables native function calling for this call.
	Tools []openai.Tool

	// ForceJSON requests a JSON-object response format.
	ForceJSON bool

	// MaxTokens caps the completion length; zero means provider default.
	MaxTokens int
}

// Chat runs one completion call with retries. The returned message may carry
// tool calls when Tools were offered and the model chose to use them.
func (c *Client) Chat(ctx context.Context, messages []openai.ChatCompletionMessage, opts ChatOptions) (*openai.ChatCompletionMessage, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		MaxTokens:   opts.MaxTokens,
	}
	if len(opts.Tools) > 0 {
		req.Tools = opts.Tools
	}
	if opts.ForceJSON {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	var msg *openai.ChatCompletionMessage
	err := c.withRetries(ctx, "chat", func(ctx context.Context) error {
		resp, callErr := c.api.CreateChatCompletion(ctx, req)
		if callErr != nil {
			return callErr
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("empty completion response")
		}
		msg = &resp.Choices[0].Message
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// Embed returns the embedding vector for one text. Failures are reported,
// not retried aggressively; callers treat embeddings as best-effort.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	var vector []float64
	err := c.withRetries(ctx, "embed", func(ctx context.Context) error {
		resp, callErr := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
			Input: []string{text},
			Model: openai.EmbeddingModel(c.embedding),
		})
		if callErr != nil {
			return callErr
		}
		if len(resp.Data) == 0 {
			return fmt.Errorf("empty embedding response")
		}
		emb := resp.Data[0].Embedding
		vector = make([]float64, len(emb))
		for i, v := range emb {
			vector[i] = float64(v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return vector, nil
}

// withRetries applies the call timeout and the retry taxonomy: rate limits
// back off geometrically up to two minutes, transport failures get a small
// number of quick reconnect attempts, everything else fails immediately.
func (c *Client) withRetries(ctx context.Context, op string, call func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err := call(callCtx)
		cancel()
		if err == nil {
			return nil
		}
		lastErr = err

		delay, retryable := RetryDelay(err, attempt)
		if !retryable || attempt == c.maxRetries-1 {
			break
		}
		slog.Warn("LLM call failed, retrying",
			"op", op, "key", c.keyLabel, "attempt", attempt+1,
			"delay", delay, "error", err)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return fmt.Errorf("llm %s failed: %w", op, lastErr)
}
