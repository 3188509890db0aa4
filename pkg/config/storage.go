package config

// Bucket names follow the object-store layout contract: raw scrape buckets
// with a processed/YYYY-MM-DD archive convention and a media bucket whose
// keys are {external_post_id}[_{index}].{ext}.
const (
	DefaultTwitterBucket   = "raw-twitter-data"
	DefaultInstagramBucket = "raw-instagram-data"
	DefaultMediaBucket     = "instagram-media"
)

// StorageConfig configures the storage gateway: database rate limiting,
// retry policy, and the S3 object store.
type StorageConfig struct {
	// DBRPS is the per-process database requests-per-second ceiling enforced
	// by a token bucket shared across all gateway callers.
	DBRPS float64 `validate:"gt=0"`

	// MaxRetries bounds transient-error retries (1s * 2^attempt back-off).
	MaxRetries int `validate:"min=1"`

	// UpsertChunkSize caps rows per batch UPSERT call.
	UpsertChunkSize int `validate:"min=1,max=1000"`

	// S3 object store settings. Endpoint is optional (AWS default when empty,
	// custom endpoint for S3-compatible stores).
	S3Endpoint string
	S3Region   string

	TwitterBucket   string `validate:"required"`
	InstagramBucket string `validate:"required"`
	MediaBucket     string `validate:"required"`

	// MediaBaseURL is the public URL prefix for media-bucket keys.
	MediaBaseURL string `validate:"required"`
}

// LoadStorageConfig returns storage defaults overridden from the environment.
func LoadStorageConfig() StorageConfig {
	return StorageConfig{
		DBRPS:           getEnvFloat("DB_RPS", 40),
		MaxRetries:      getEnvInt("DB_MAX_RETRIES", 10),
		UpsertChunkSize: getEnvInt("DB_UPSERT_CHUNK", 1000),
		S3Endpoint:      getEnv("S3_ENDPOINT", ""),
		S3Region:        getEnv("S3_REGION", "us-east-1"),
		TwitterBucket:   getEnv("TWITTER_BUCKET", DefaultTwitterBucket),
		InstagramBucket: getEnv("INSTAGRAM_BUCKET", DefaultInstagramBucket),
		MediaBucket:     getEnv("MEDIA_BUCKET", DefaultMediaBucket),
		MediaBaseURL:    getEnv("MEDIA_BASE_URL", "https://media.civiclens.org"),
	}
}
