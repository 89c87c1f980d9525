// Package logging assembles the slog loggers used across cinelog.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so view code can tag log lines
// with the active session. Console output goes to stderr so command output
// (tables, JSON) stays clean on stdout. The package also provides a no-op
// logger for tests and wiring code that cannot fail.
package logging
