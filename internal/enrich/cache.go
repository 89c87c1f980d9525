package enrich

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"cinelog/internal/catalog"
	"cinelog/internal/logging"
	"cinelog/internal/store"
)

// remember serves kind for e from the lookup cache, or runs fetch and stores
// its answer. An answer that came with an error is returned but never stored,
// so a transient failure is not remembered as "nothing there".
func remember[T any](ctx context.Context, s *Service, kind store.Kind, e catalog.Entry, fetch func(context.Context) (T, bool, error)) (T, bool) {
	var zero T
	key := LookupKey(e)

	if s.cache != nil {
		lookup, ok, err := s.cache.Get(ctx, kind, key)
		switch {
		case err != nil:
			s.logger.Debug("lookup cache read failed",
				logging.Lookup(string(kind), key),
				logging.Error(err))
		case ok && !lookup.Found:
			return zero, false
		case ok:
			var value T
			if err := json.Unmarshal(lookup.Payload, &value); err == nil {
				return value, true
			}
			s.logger.Debug("lookup cache payload unreadable",
				logging.Lookup(string(kind), key))
		}
	}

	value, found, err := fetch(ctx)
	if err != nil {
		s.unavailable(ctx, kind, e, err)
		return value, found
	}
	if s.cache == nil {
		return value, found
	}

	lookup := store.Lookup{Kind: kind, Key: key, Title: e.Title, Year: e.Year, Found: found}
	if found {
		payload, err := json.Marshal(value)
		if err != nil {
			return value, found
		}
		lookup.Payload = payload
	}
	if err := s.cache.Put(ctx, lookup); err != nil {
		logging.WarnWithContext(s.logger, "lookup cache write failed", "lookup_cache_write_failed",
			logging.Lookup(string(kind), key),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check that the cache database is writable"),
			logging.String(logging.FieldImpact, "the lookup will be repeated next time"))
	}
	return value, found
}

// unavailable logs a degraded lookup. Missing credentials are routine and
// only logged at debug level.
func (s *Service) unavailable(ctx context.Context, kind store.Kind, e catalog.Entry, cause error) {
	err := fmt.Errorf("%w: %s for %q: %w", ErrUnavailable, kind, e.Title, cause)
	logger := logging.WithContext(ctx, s.logger)
	if errors.Is(cause, errNotConfigured) {
		logger.Debug("enrichment provider not configured", logging.Error(err))
		return
	}
	logging.WarnWithContext(logger, "enrichment lookup failed", "enrichment_unavailable",
		logging.Lookup(string(kind), LookupKey(e)),
		logging.String("title", e.Title),
		logging.Error(err),
		logging.String(logging.FieldErrorHint, "check API keys and connectivity, or run with enrichment disabled"),
		logging.String(logging.FieldImpact, "placeholder shown instead"))
}
