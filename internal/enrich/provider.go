package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"cinelog/internal/logging"
)

// Provider names used in logs and breaker names.
const (
	ProviderTMDB    = "tmdb"
	ProviderOMDB    = "omdb"
	ProviderYouTube = "youtube"
	ProviderPage    = "page"
)

// Limits bounds calls to one provider.
type Limits struct {
	Timeout           time.Duration
	RequestsPerSecond float64
	BreakerFailures   uint32
	BreakerCooldown   time.Duration
}

// guard wraps one provider with a limiter, a breaker and a timeout.
type guard struct {
	name    string
	timeout time.Duration
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[struct{}]
}

// newGuard builds the guard for one provider. Errors matching one of answers
// are ordinary replies from the provider and do not count as failures.
func newGuard(name string, limits Limits, logger *slog.Logger, answers ...error) *guard {
	failures := limits.BreakerFailures
	if failures == 0 {
		failures = 3
	}
	limit := rate.Inf
	burst := 1
	if limits.RequestsPerSecond > 0 {
		limit = rate.Limit(limits.RequestsPerSecond)
		burst = max(1, int(limits.RequestsPerSecond))
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     limits.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			for _, answer := range answers {
				if errors.Is(err, answer) {
					return true
				}
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if to == gobreaker.StateOpen {
				logging.WarnWithContext(logger, "provider circuit opened", "enrichment_breaker_open",
					logging.Provider(name),
					logging.String("from", from.String()),
					logging.String(logging.FieldErrorHint, "check the API key and network; calls resume after the cooldown"),
					logging.String(logging.FieldImpact, "lookups from this provider show placeholders"))
				return
			}
			logger.Info("provider circuit state changed",
				logging.Provider(name),
				logging.String("from", from.String()),
				logging.String("to", to.String()))
		},
	}

	return &guard{
		name:    name,
		timeout: limits.Timeout,
		limiter: rate.NewLimiter(limit, burst),
		breaker: gobreaker.NewCircuitBreaker[struct{}](settings),
	}
}

// do runs fn under the limiter, breaker and timeout. A nil guard means the
// provider has no credentials.
func (g *guard) do(ctx context.Context, fn func(ctx context.Context) error) error {
	if g == nil {
		return errNotConfigured
	}
	if err := g.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s rate limit: %w", g.name, err)
	}
	_, err := g.breaker.Execute(func() (struct{}, error) {
		callCtx := ctx
		if g.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, g.timeout)
			defer cancel()
		}
		return struct{}{}, fn(callCtx)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", g.name, err)
	}
	return nil
}

// state reports the breaker state, or "disabled" for a nil guard.
func (g *guard) state() string {
	if g == nil {
		return "disabled"
	}
	return g.breaker.State().String()
}
