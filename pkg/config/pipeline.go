package config

import (
	"path/filepath"
	"time"
)

// Stage names in execution order. Scrape stages run external scraper
// executables; the rest are this module's stage binaries.
const (
	StageTwitterScrape          = "twitter_scrape"
	StageInstagramScrape        = "instagram_scrape"
	StagePostProcess            = "post_process"
	StageImageDownload          = "image_download"
	StageEventProcess           = "event_process"
	StageEventDedup             = "event_dedup"
	StageTwitterProfileScrape   = "twitter_profile_scrape"
	StageInstagramProfileScrape = "instagram_profile_scrape"
	StageCoordinateBackfill     = "coordinate_backfill"
)

// StageOrder is the fixed stage sequence executed per pipeline run.
var StageOrder = []string{
	StageTwitterScrape,
	StageInstagramScrape,
	StagePostProcess,
	StageImageDownload,
	StageEventProcess,
	StageEventDedup,
	StageTwitterProfileScrape,
	StageInstagramProfileScrape,
	StageCoordinateBackfill,
}

// InstagramStages require the run's include_instagram flag.
var InstagramStages = map[string]bool{
	StageInstagramScrape:        true,
	StageInstagramProfileScrape: true,
}

// PipelineConfig configures the orchestrator daemon.
type PipelineConfig struct {
	// PollInterval between queue checks when no eligible run exists.
	PollInterval time.Duration `validate:"gt=0"`

	// LogTailLines bounds the per-step stdout ring buffer.
	LogTailLines int `validate:"min=1"`

	// StageBinDir holds this module's stage binaries.
	StageBinDir string `validate:"required"`

	// Scraper commands are external collaborators; empty means the stage is
	// recorded as skipped.
	TwitterScrapeCmd          []string
	InstagramScrapeCmd        []string
	TwitterProfileScrapeCmd   []string
	InstagramProfileScrapeCmd []string
}

// LoadPipelineConfig returns orchestrator defaults overridden from the
// environment.
func LoadPipelineConfig() PipelineConfig {
	return PipelineConfig{
		PollInterval:              getEnvSeconds("POLL_SECONDS", 30*time.Second),
		LogTailLines:              getEnvInt("STEP_LOG_TAIL_LINES", 200),
		StageBinDir:               getEnv("STAGE_BIN_DIR", "."),
		TwitterScrapeCmd:          splitCmd(getEnv("TWITTER_SCRAPE_CMD", "")),
		InstagramScrapeCmd:        splitCmd(getEnv("INSTAGRAM_SCRAPE_CMD", "")),
		TwitterProfileScrapeCmd:   splitCmd(getEnv("TWITTER_PROFILE_SCRAPE_CMD", "")),
		InstagramProfileScrapeCmd: splitCmd(getEnv("INSTAGRAM_PROFILE_SCRAPE_CMD", "")),
	}
}

// StageCommand resolves the argv for a stage, or nil when the stage has no
// configured command (scraper stages without an external executable).
func (c PipelineConfig) StageCommand(stage string) []string {
	switch stage {
	case StageTwitterScrape:
		return c.TwitterScrapeCmd
	case StageInstagramScrape:
		return c.InstagramScrapeCmd
	case StageTwitterProfileScrape:
		return c.TwitterProfileScrapeCmd
	case StageInstagramProfileScrape:
		return c.InstagramProfileScrapeCmd
	case StagePostProcess:
		return []string{filepath.Join(c.StageBinDir, "ingest")}
	case StageImageDownload:
		return []string{filepath.Join(c.StageBinDir, "mediafetch")}
	case StageEventProcess:
		return []string{filepath.Join(c.StageBinDir, "eventextract")}
	case StageEventDedup:
		return []string{filepath.Join(c.StageBinDir, "eventdedup")}
	case StageCoordinateBackfill:
		return []string{filepath.Join(c.StageBinDir, "coordbackfill")}
	}
	return nil
}
