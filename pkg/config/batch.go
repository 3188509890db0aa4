package config

// Batch strategy names.
const (
	StrategyTokenBounded  = "token"
	StrategyDateClustered = "date"
	StrategyDayPacked     = "day"
)

// BatchConfig controls how unprocessed posts are packed into extractor
// batches. Token arithmetic:
//
//	batch_tokens = SystemPromptTokens + sum(post_tokens) + images*AvgTokensPerImage
//	post_tokens  = MetadataBaseTokens + len(content)/4 + supplemental overhead,
//	               clamped at AvgTokensPerPost
type BatchConfig struct {
	Strategy string `validate:"oneof=token date day"`

	MaxTokensPerBatch int `validate:"min=1000"`
	MaxPostsPerBatch  int `validate:"min=1"`

	// PostsPerBatch is the soft target used by the day-packed strategy when
	// sub-partitioning oversized days.
	PostsPerBatch int `validate:"min=1"`

	// MaxDateRangeDays bounds a date-clustered batch's span.
	MaxDateRangeDays int `validate:"min=1"`

	SystemPromptTokens int `validate:"min=0"`
	MetadataBaseTokens int `validate:"min=0"`
	AvgTokensPerPost   int `validate:"min=1"`
	AvgTokensPerImage  int `validate:"min=0"`

	// PageSize for the unprocessed-post selection query.
	PageSize int `validate:"min=1,max=500"`
}

// LoadBatchConfig returns batching defaults overridden from the environment.
func LoadBatchConfig() BatchConfig {
	return BatchConfig{
		Strategy:           getEnv("BATCH_STRATEGY", StrategyTokenBounded),
		MaxTokensPerBatch:  getEnvInt("MAX_TOKENS_PER_BATCH", 200_000),
		MaxPostsPerBatch:   getEnvInt("MAX_POSTS_PER_BATCH", 100),
		PostsPerBatch:      getEnvInt("POSTS_PER_BATCH", 50),
		MaxDateRangeDays:   getEnvInt("MAX_DATE_RANGE_DAYS", 14),
		SystemPromptTokens: getEnvInt("SYSTEM_PROMPT_TOKENS", 4000),
		MetadataBaseTokens: getEnvInt("POST_METADATA_TOKENS", 120),
		AvgTokensPerPost:   getEnvInt("AVERAGE_TOKENS_PER_POST", 800),
		AvgTokensPerImage:  getEnvInt("AVERAGE_TOKENS_PER_IMAGE", 258),
		PageSize:           getEnvInt("POST_QUERY_PAGE_SIZE", 500),
	}
}
