package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"cinelog/internal/config"
	"cinelog/internal/dashboard"
	"cinelog/internal/enrich"
	"cinelog/internal/logging"
	"cinelog/internal/session"
	"cinelog/internal/store"
)

type commandContext struct {
	configFlag  *string
	sessionFlag *string
	jsonFlag    *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger

	loader *dashboard.Loader
}

func newCommandContext(configFlag, sessionFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		sessionFlag: sessionFlag,
		jsonFlag:    jsonFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

func (c *commandContext) baseLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		logger, err := logging.NewFromConfig(c.configValue())
		if err != nil {
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) componentLogger(component string) *slog.Logger {
	return logging.NewComponentLogger(c.baseLogger(), component)
}

func (c *commandContext) sessionName() string {
	if c.sessionFlag == nil || strings.TrimSpace(*c.sessionFlag) == "" {
		return session.DefaultName
	}
	return strings.TrimSpace(*c.sessionFlag)
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

func (c *commandContext) sessions() (*session.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return session.NewStore(cfg.Paths.SessionDir, c.componentLogger("session")), nil
}

func (c *commandContext) library(ctx context.Context) (*dashboard.Library, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if c.loader == nil {
		c.loader = dashboard.NewLoader(c.componentLogger("library"))
	}
	return c.loader.Load(ctx, dashboard.SourcesFromConfig(cfg))
}

// withSession loads the named session under its lock, lets fn mutate it and
// saves the result. The context passed to fn carries the session for logs.
func (c *commandContext) withSession(cmd *cobra.Command, fn func(context.Context, *session.State) error) (session.State, error) {
	sessions, err := c.sessions()
	if err != nil {
		return session.State{}, err
	}
	cfg := c.configValue()
	return sessions.Update(cmd.Context(), c.sessionName(), cfg.Catalog.PageSize, func(st *session.State) error {
		ctx := logging.WithSession(cmd.Context(), st.Name, st.ID.String())
		return fn(ctx, st)
	})
}

// withLookupCache opens the lookup cache for the duration of fn.
func (c *commandContext) withLookupCache(fn func(*store.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	cache, err := store.Open(cfg)
	if err != nil {
		return fmt.Errorf("open lookup cache: %w", err)
	}
	defer cache.Close()
	return fn(cache)
}

// withEnricher builds the enrichment service over the lookup cache. A cache
// that cannot be opened degrades to uncached lookups.
func (c *commandContext) withEnricher(ctx context.Context, fn func(*enrich.Service) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger := c.componentLogger("enrich")
	cache, err := store.Open(cfg)
	if err != nil {
		logging.WarnWithContext(logging.WithContext(ctx, logger), "lookup cache unavailable", "lookup_cache_unavailable",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check paths.cache_db permissions"),
			logging.String(logging.FieldImpact, "lookups are not cached this run"))
		cache = nil
	} else {
		defer cache.Close()
	}
	svc, err := enrich.NewFromConfig(cfg, cache, logger)
	if err != nil {
		return err
	}
	return fn(svc)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
