package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerCount(t *testing.T) {
	cfg := QueueConfig{MaxWorkers: 6}

	tests := []struct {
		name     string
		explicit int
		apiKeys  int
		expected int
	}{
		{name: "keys cap the pool", explicit: 0, apiKeys: 3, expected: 3},
		{name: "max workers cap when keys plentiful", explicit: 0, apiKeys: 10, expected: 6},
		{name: "explicit override wins when smaller", explicit: 2, apiKeys: 6, expected: 2},
		{name: "explicit larger than max is ignored", explicit: 20, apiKeys: 6, expected: 6},
		{name: "never below one", explicit: 0, apiKeys: 0, expected: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cfg.WorkerCount(tt.explicit, tt.apiKeys))
		})
	}
}

func TestWorkerCountFloor(t *testing.T) {
	cfg := QueueConfig{MaxWorkers: 0}
	assert.Equal(t, 1, cfg.WorkerCount(0, 4))
}
