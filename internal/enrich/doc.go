// Package enrich decorates catalog entries with posters, streaming
// availability, trailers and award summaries from external services.
//
// Every lookup is keyed by normalized title and year, served from the SQLite
// lookup cache when possible, and otherwise sent through a per-provider rate
// limiter and circuit breaker under a request timeout. A failed lookup is
// logged and degrades to a placeholder; callers never see an error. Failed
// lookups are not cached, and nothing is retried within a request.
package enrich
