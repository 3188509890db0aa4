package llm

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// rateLimitBase seeds the rate-limit back-off (base * 2^attempt).
	rateLimitBase = 15 * time.Second
	// rateLimitCap is the longest single rate-limit wait.
	rateLimitCap = 2 * time.Minute
	// reconnectDelay is the fixed wait between transport-failure attempts.
	reconnectDelay = 2 * time.Second
)

// RetryDelay classifies an LLM call error and returns how long to wait
// before the next attempt, or retryable=false for errors that cannot heal
// (bad request, auth failure, content policy).
func RetryDelay(err error, attempt int) (delay time.Duration, retryable bool) {
	if err == nil {
		return 0, false
	}
	if errors.Is(err, context.Canceled) {
		return 0, false
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == 429:
			return rateLimitDelay(attempt), true
		case apiErr.HTTPStatusCode >= 500:
			return reconnectDelay, true
		default:
			return 0, false
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		switch {
		case reqErr.HTTPStatusCode == 429:
			return rateLimitDelay(attempt), true
		case reqErr.HTTPStatusCode >= 500, reqErr.HTTPStatusCode == 0:
			return reconnectDelay, true
		default:
			return 0, false
		}
	}

	if IsConnectionError(err) {
		return reconnectDelay, true
	}
	return 0, false
}

// IsConnectionError reports whether an error looks like a transport failure
// worth a quick reconnect rather than a long back-off.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"connection reset",
		"connection refused",
		"broken pipe",
		"unexpected eof",
		"eof",
		"timeout",
		"timed out",
		"no such host",
		"tls handshake",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// IsRateLimited reports whether the error is a quota or rate-limit rejection.
func IsRateLimited(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == 429
	}
	return false
}

func rateLimitDelay(attempt int) time.Duration {
	delay := rateLimitBase << attempt
	if delay > rateLimitCap {
		return rateLimitCap
	}
	return delay
}
