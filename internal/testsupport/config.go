package testsupport

import (
	"path/filepath"
	"testing"

	"cinelog/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Enrichment is disabled unless a collaborator option turns it on.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.SessionDir = filepath.Join(base, "sessions")
	cfgVal.Paths.CacheDB = filepath.Join(base, "data", "lookups.db")
	cfgVal.Enrichment.Enabled = false

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return builder.cfg
}

// WithTMDB enables enrichment against a TMDb endpoint (usually httptest).
func WithTMDB(baseURL, key string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Enrichment.Enabled = true
		b.cfg.TMDB.BaseURL = baseURL
		b.cfg.TMDB.ImageBaseURL = baseURL + "/images"
		b.cfg.TMDB.APIKey = key
	}
}

// WithOMDB enables enrichment against an OMDb endpoint.
func WithOMDB(baseURL, key string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Enrichment.Enabled = true
		b.cfg.OMDB.BaseURL = baseURL
		b.cfg.OMDB.APIKey = key
	}
}

// WithYouTube enables enrichment against a YouTube Data API endpoint.
func WithYouTube(baseURL, key string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Enrichment.Enabled = true
		b.cfg.YouTube.BaseURL = baseURL
		b.cfg.YouTube.APIKey = key
	}
}
