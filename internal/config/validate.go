package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateEnrichment(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.PageSize > maxPageSize {
		return fmt.Errorf("catalog.page_size must be at most %d", maxPageSize)
	}
	if len(c.Catalog.Country) != 2 {
		return fmt.Errorf("catalog.country must be a two-letter country code, got %q", c.Catalog.Country)
	}
	return nil
}

func (c *Config) validateEnrichment() error {
	if err := ensurePositiveMap(map[string]int{
		"enrichment.timeout_seconds":          c.Enrichment.TimeoutSeconds,
		"enrichment.breaker_failures":         c.Enrichment.BreakerFailures,
		"enrichment.breaker_cooldown_seconds": c.Enrichment.BreakerCooldownSeconds,
	}); err != nil {
		return err
	}
	if c.Enrichment.RequestsPerSecond <= 0 {
		return errors.New("enrichment.requests_per_second must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
}

// HasTMDB reports whether TMDb lookups can be attempted.
func (c *Config) HasTMDB() bool {
	return strings.TrimSpace(c.TMDB.APIKey) != ""
}

// HasOMDB reports whether OMDb lookups can be attempted.
func (c *Config) HasOMDB() bool {
	return strings.TrimSpace(c.OMDB.APIKey) != ""
}

// HasYouTube reports whether trailer lookups can be attempted.
func (c *Config) HasYouTube() bool {
	return strings.TrimSpace(c.YouTube.APIKey) != ""
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
