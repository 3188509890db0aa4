package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/civiclens/civiclens/pkg/llm"
)

// keyClient binds one API key's client to its cooldown. Every call waits out
// the remainder of the cooldown window before reaching the API, so a key is
// never hit more often than once per cooldown regardless of what the
// executor does.
type keyClient struct {
	inner    *llm.Client
	cooldown time.Duration

	mu           sync.Mutex
	lastRequest  time.Time
	requestsMade int
}

func newKeyClient(inner *llm.Client, cooldown time.Duration) *keyClient {
	return &keyClient{inner: inner, cooldown: cooldown}
}

// throttle sleeps until lastRequest + cooldown, honoring cancellation.
func (k *keyClient) throttle(ctx context.Context) error {
	k.mu.Lock()
	wait := time.Until(k.lastRequest.Add(k.cooldown))
	k.mu.Unlock()

	if wait > 0 {
		slog.Debug("Cooling down before LLM call",
			"key", k.inner.KeyLabel(), "wait", wait)
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (k *keyClient) markRequest() {
	k.mu.Lock()
	k.lastRequest = time.Now()
	k.requestsMade++
	k.mu.Unlock()
}

// Chat runs a throttled completion call.
func (k *keyClient) Chat(ctx context.Context, messages []openai.ChatCompletionMessage, opts llm.ChatOptions) (*openai.ChatCompletionMessage, error) {
	if err := k.throttle(ctx); err != nil {
		return nil, err
	}
	defer k.markRequest()
	return k.inner.Chat(ctx, messages, opts)
}

// Embed runs a throttled embedding call.
func (k *keyClient) Embed(ctx context.Context, text string) ([]float64, error) {
	if err := k.throttle(ctx); err != nil {
		return nil, err
	}
	defer k.markRequest()
	return k.inner.Embed(ctx, text)
}

// KeyLabel identifies the underlying API key slot.
func (k *keyClient) KeyLabel() string {
	return k.inner.KeyLabel()
}

// Model returns the chat model handle.
func (k *keyClient) Model() string {
	return k.inner.Model()
}

// RequestsMade returns the call count for stats reporting.
func (k *keyClient) RequestsMade() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.requestsMade
}
