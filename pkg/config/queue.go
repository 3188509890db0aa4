package config

import "time"

// QueueConfig contains worker pool configuration for the extraction engine.
// Each worker owns one API key with an independent cooldown.
type QueueConfig struct {
	// MaxWorkers caps the pool size; the effective count is
	// min(MaxWorkers, #API keys) and at least 1.
	MaxWorkers int `validate:"min=1"`

	// Cooldown is the minimum gap between two LLM calls on the same key
	// (API_WORKER_COOLDOWN_SECONDS). Intentionally conservative so key
	// quotas are not tripped.
	Cooldown time.Duration `validate:"gt=0"`

	// StaggerMin/StaggerMax bound the random startup delay for workers
	// after the first, so workers do not hit identical batches at once.
	StaggerMin time.Duration
	StaggerMax time.Duration

	// BatchResultTimeout bounds waiting for a single batch result.
	BatchResultTimeout time.Duration `validate:"gt=0"`

	// PoolTimeout bounds the whole pool run (EVENT_PROCESSOR_TIMEOUT).
	PoolTimeout time.Duration `validate:"gt=0"`

	// CancelPollInterval is how often the cancellation predicate is
	// refreshed from the pipeline-run record.
	CancelPollInterval time.Duration `validate:"gt=0"`
}

// LoadQueueConfig returns queue defaults overridden from the environment.
func LoadQueueConfig() QueueConfig {
	return QueueConfig{
		MaxWorkers:         getEnvInt("MAX_WORKERS", MaxAPIKeys),
		Cooldown:           getEnvSeconds("API_WORKER_COOLDOWN_SECONDS", 60*time.Second),
		StaggerMin:         30 * time.Second,
		StaggerMax:         90 * time.Second,
		BatchResultTimeout: 5 * time.Minute,
		PoolTimeout:        getEnvSeconds("EVENT_PROCESSOR_TIMEOUT", 12*time.Hour),
		CancelPollInterval: 15 * time.Second,
	}
}

// WorkerCount resolves the effective worker count for the given number of
// configured API keys and an optional explicit override (0 = no override).
func (c QueueConfig) WorkerCount(explicit, apiKeys int) int {
	count := c.MaxWorkers
	if explicit > 0 && explicit < count {
		count = explicit
	}
	if apiKeys > 0 && apiKeys < count {
		count = apiKeys
	}
	if count < 1 {
		count = 1
	}
	return count
}
