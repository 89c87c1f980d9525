package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	c.normalizeServices()
	c.normalizeEnrichment()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.SessionDir) == "" {
		c.Paths.SessionDir = defaultSessionDir
	}
	if c.Paths.SessionDir, err = expandPath(c.Paths.SessionDir); err != nil {
		return fmt.Errorf("paths.session_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.CacheDB) == "" {
		c.Paths.CacheDB = defaultCacheDB
	}
	if c.Paths.CacheDB, err = expandPath(c.Paths.CacheDB); err != nil {
		return fmt.Errorf("paths.cache_db: %w", err)
	}
	return nil
}

func (c *Config) normalizeCatalog() error {
	var err error
	if c.Catalog.Path, err = expandPath(strings.TrimSpace(c.Catalog.Path)); err != nil {
		return fmt.Errorf("catalog.path: %w", err)
	}
	if c.Catalog.AwardsPath, err = expandPath(strings.TrimSpace(c.Catalog.AwardsPath)); err != nil {
		return fmt.Errorf("catalog.awards_path: %w", err)
	}
	if c.Catalog.NominationsPath, err = expandPath(strings.TrimSpace(c.Catalog.NominationsPath)); err != nil {
		return fmt.Errorf("catalog.nominations_path: %w", err)
	}
	if c.Catalog.PageSize <= 0 {
		c.Catalog.PageSize = defaultPageSize
	}
	c.Catalog.Country = strings.ToUpper(strings.TrimSpace(c.Catalog.Country))
	if c.Catalog.Country == "" {
		c.Catalog.Country = defaultCountry
	}
	return nil
}

func (c *Config) normalizeServices() {
	c.TMDB.APIKey = envFallback(c.TMDB.APIKey, "TMDB_API_KEY")
	c.TMDB.BaseURL = strings.TrimSpace(c.TMDB.BaseURL)
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = defaultTMDBBaseURL
	}
	c.TMDB.ImageBaseURL = strings.TrimSpace(c.TMDB.ImageBaseURL)
	if c.TMDB.ImageBaseURL == "" {
		c.TMDB.ImageBaseURL = defaultTMDBImageBaseURL
	}
	c.TMDB.Language = strings.TrimSpace(c.TMDB.Language)

	c.OMDB.APIKey = envFallback(c.OMDB.APIKey, "OMDB_API_KEY")
	c.OMDB.BaseURL = strings.TrimSpace(c.OMDB.BaseURL)
	if c.OMDB.BaseURL == "" {
		c.OMDB.BaseURL = defaultOMDBBaseURL
	}

	c.YouTube.APIKey = envFallback(c.YouTube.APIKey, "YOUTUBE_API_KEY")
	c.YouTube.BaseURL = strings.TrimSpace(c.YouTube.BaseURL)
	if c.YouTube.BaseURL == "" {
		c.YouTube.BaseURL = defaultYouTubeBaseURL
	}
}

func (c *Config) normalizeEnrichment() {
	if c.Enrichment.TimeoutSeconds <= 0 {
		c.Enrichment.TimeoutSeconds = defaultEnrichmentTimeout
	}
	if c.Enrichment.RequestsPerSecond <= 0 {
		c.Enrichment.RequestsPerSecond = defaultRequestsPerSecond
	}
	if c.Enrichment.BreakerFailures <= 0 {
		c.Enrichment.BreakerFailures = defaultBreakerFailures
	}
	if c.Enrichment.BreakerCooldownSeconds <= 0 {
		c.Enrichment.BreakerCooldownSeconds = defaultBreakerCooldownSeconds
	}
	if c.Enrichment.CacheMaxAgeHours < 0 {
		c.Enrichment.CacheMaxAgeHours = 0
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "json":
	default:
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func envFallback(value, key string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	if env, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(env)
	}
	return ""
}
