package logging

import (
	"context"
	"log/slog"
	"strings"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldSession is the standardized key for the browsing session name.
	FieldSession = "session"
	// FieldSessionID is the standardized key for the browsing session identifier.
	FieldSessionID = "session_id"
	// FieldEventType classifies a log line for filtering (e.g. "enrichment_unavailable").
	FieldEventType = "event_type"
	// FieldErrorHint tells the reader what to do about a warning.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldProvider names the metadata collaborator involved in a lookup.
	FieldProvider = "provider"
	// FieldLookup groups the cache kind and key of an enrichment lookup.
	FieldLookup = "lookup"
)

type sessionKey struct{}

type sessionInfo struct {
	name string
	id   string
}

// WithSession returns a context carrying the active session name and ID.
func WithSession(ctx context.Context, name, id string) context.Context {
	name = strings.TrimSpace(name)
	id = strings.TrimSpace(id)
	if name == "" && id == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, sessionInfo{name: name, id: id})
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	info, ok := ctx.Value(sessionKey{}).(sessionInfo)
	if !ok {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if info.name != "" {
		fields = append(fields, slog.String(FieldSession, info.name))
	}
	if info.id != "" {
		fields = append(fields, slog.String(FieldSessionID, info.id))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(args(fields)...)
}
