package config

import "time"

// MediaConfig controls the media fetcher's bounded concurrency and pacing.
type MediaConfig struct {
	// DownloadConcurrency gates concurrent HTTP fetches.
	DownloadConcurrency int `validate:"min=1"`

	// UploadConcurrency gates concurrent object-store puts.
	UploadConcurrency int `validate:"min=1"`

	// SubBatchSize posts are processed between pacing pauses.
	SubBatchSize  int           `validate:"min=1"`
	SubBatchPause time.Duration `validate:"min=0"`

	// FlushEvery buffered DB updates trigger a bulk flush.
	FlushEvery int `validate:"min=1"`

	// HTTP client tuning: total and per-host connection caps.
	MaxConns        int `validate:"min=1"`
	MaxConnsPerHost int `validate:"min=1"`

	DownloadTimeout time.Duration `validate:"gt=0"`
}

// LoadMediaConfig returns media fetcher defaults overridden from the
// environment.
func LoadMediaConfig() MediaConfig {
	return MediaConfig{
		DownloadConcurrency: getEnvInt("MEDIA_DOWNLOAD_CONCURRENCY", 100),
		UploadConcurrency:   getEnvInt("MEDIA_UPLOAD_CONCURRENCY", 50),
		SubBatchSize:        getEnvInt("MEDIA_SUB_BATCH_SIZE", 50),
		SubBatchPause:       getEnvSeconds("MEDIA_SUB_BATCH_PAUSE_SECONDS", time.Second),
		FlushEvery:          getEnvInt("MEDIA_FLUSH_EVERY", 100),
		MaxConns:            getEnvInt("MEDIA_MAX_CONNS", 150),
		MaxConnsPerHost:     getEnvInt("MEDIA_MAX_CONNS_PER_HOST", 50),
		DownloadTimeout:     getEnvSeconds("MEDIA_DOWNLOAD_TIMEOUT", 30*time.Second),
	}
}
