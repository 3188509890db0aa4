// Package config provides environment-driven configuration for every pipeline
// component. Each concern gets a typed config struct with built-in defaults;
// Load reads overrides from the environment and validates the result.
package config

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

// Config is the umbrella configuration object returned by Load and passed to
// the components that need it.
type Config struct {
	Storage  StorageConfig  `validate:"required"`
	Queue    QueueConfig    `validate:"required"`
	Batch    BatchConfig    `validate:"required"`
	LLM      LLMConfig      `validate:"required"`
	Media    MediaConfig    `validate:"required"`
	Pipeline PipelineConfig `validate:"required"`
}

// Load builds the full configuration from built-in defaults plus environment
// overrides and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Storage:  LoadStorageConfig(),
		Queue:    LoadQueueConfig(),
		Batch:    LoadBatchConfig(),
		LLM:      LoadLLMConfig(),
		Media:    LoadMediaConfig(),
		Pipeline: LoadPipelineConfig(),
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	slog.Info("Configuration loaded",
		"api_keys", len(cfg.LLM.APIKeys),
		"batch_strategy", cfg.Batch.Strategy,
		"db_rps", cfg.Storage.DBRPS)
	return cfg, nil
}

// Validate checks a configuration tree using struct tags.
func Validate(cfg *Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
