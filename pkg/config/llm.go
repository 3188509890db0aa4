package config

import (
	"fmt"
	"os"
	"time"
)

// MaxAPIKeys is the number of LLM_API_KEY_<n> slots scanned from the
// environment.
const MaxAPIKeys = 6

// LLMConfig configures the LLM client layer: API keys (one worker per key),
// model selection, timeouts, and retry bounds.
type LLMConfig struct {
	// APIKeys in slot order; worker N uses APIKeys[N].
	APIKeys []string `validate:"min=1"`

	// BaseURL of the OpenAI-compatible endpoint (Gemini's compatibility
	// endpoint by default).
	BaseURL string `validate:"required,url"`

	// Model is the chat model handle.
	Model string `validate:"required"`

	// EmbeddingModel produces the 768-dim event embeddings.
	EmbeddingModel string `validate:"required"`

	// RequestTimeout bounds a single LLM call (GEMINI_API_TIMEOUT seconds).
	RequestTimeout time.Duration `validate:"gt=0"`

	// MaxRetries bounds transient-error retries per call (2s * 2^attempt,
	// clamped at 30s; rate-limit errors back off up to 2 minutes).
	MaxRetries int `validate:"min=1"`

	// UseFunctionTools enables the native tool-calling round. When false the
	// engine goes straight to the JSON-only call.
	UseFunctionTools bool

	// Temperature for extraction calls.
	Temperature float32
}

// LoadLLMConfig returns LLM defaults overridden from the environment.
func LoadLLMConfig() LLMConfig {
	return LLMConfig{
		APIKeys:          loadAPIKeys(),
		BaseURL:          getEnv("LLM_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),
		Model:            getEnv("LLM_MODEL", "gemini-2.5-flash"),
		EmbeddingModel:   getEnv("LLM_EMBEDDING_MODEL", "text-embedding-004"),
		RequestTimeout:   getEnvSeconds("GEMINI_API_TIMEOUT", 600*time.Second),
		MaxRetries:       getEnvInt("LLM_MAX_RETRIES", 5),
		UseFunctionTools: getEnvBool("USE_FUNCTION_TOOLS", true),
		Temperature:      float32(getEnvFloat("LLM_TEMPERATURE", 0.2)),
	}
}

// loadAPIKeys scans LLM_API_KEY_1..LLM_API_KEY_6 preserving slot order and
// skipping empty slots.
func loadAPIKeys() []string {
	keys := make([]string, 0, MaxAPIKeys)
	for i := 1; i <= MaxAPIKeys; i++ {
		if key := os.Getenv(fmt.Sprintf("LLM_API_KEY_%d", i)); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
