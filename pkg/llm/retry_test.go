package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

func TestRetryDelay_RateLimit(t *testing.T) {
	err := &openai.APIError{HTTPStatusCode: 429}

	delay, retryable := RetryDelay(err, 0)
	assert.True(t, retryable)
	assert.Equal(t, 15*time.Second, delay)

	delay, retryable = RetryDelay(err, 2)
	assert.True(t, retryable)
	assert.Equal(t, 60*time.Second, delay)

	// Capped at two minutes regardless of attempt.
	delay, retryable = RetryDelay(err, 10)
	assert.True(t, retryable)
	assert.Equal(t, 2*time.Minute, delay)
}

func TestRetryDelay_ServerError(t *testing.T) {
	delay, retryable := RetryDelay(&openai.APIError{HTTPStatusCode: 503}, 0)
	assert.True(t, retryable)
	assert.Equal(t, 2*time.Second, delay)
}

func TestRetryDelay_RequestError(t *testing.T) {
	// Status 0 means the request never got a response.
	delay, retryable := RetryDelay(&openai.RequestError{HTTPStatusCode: 0, Err: errors.New("dial")}, 0)
	assert.True(t, retryable)
	assert.Equal(t, 2*time.Second, delay)

	_, retryable = RetryDelay(&openai.RequestError{HTTPStatusCode: 401, Err: errors.New("unauthorized")}, 0)
	assert.False(t, retryable)
}

func TestRetryDelay_NonRetryable(t *testing.T) {
	_, retryable := RetryDelay(&openai.APIError{HTTPStatusCode: 400}, 0)
	assert.False(t, retryable)

	_, retryable = RetryDelay(context.Canceled, 0)
	assert.False(t, retryable)

	_, retryable = RetryDelay(nil, 0)
	assert.False(t, retryable)
}

func TestRetryDelay_TransportError(t *testing.T) {
	delay, retryable := RetryDelay(errors.New("read tcp: connection reset by peer"), 0)
	assert.True(t, retryable)
	assert.Equal(t, 2*time.Second, delay)

	delay, retryable = RetryDelay(context.DeadlineExceeded, 0)
	assert.True(t, retryable)
	assert.Equal(t, 2*time.Second, delay)
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, IsRateLimited(&openai.APIError{HTTPStatusCode: 429}))
	assert.False(t, IsRateLimited(&openai.APIError{HTTPStatusCode: 500}))
	assert.False(t, IsRateLimited(errors.New("plain")))
}
