package logging_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"cinelog/internal/config"
	"cinelog/internal/logging"
)

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("catalog loaded", logging.Int("entries", 3))

	content, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "cinelog.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "catalog loaded entries=3") {
		t.Fatalf("unexpected log content %q", content)
	}
}

func TestConsoleLoggerFormatsComponentAndQuotes(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console.log")
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "enrich").Info("lookup done", logging.String("title", "The Godfather"))
	logger.Debug("hidden")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(content)
	if !strings.Contains(line, "INFO  enrich: lookup done") {
		t.Fatalf("expected component prefix, got %q", line)
	}
	if !strings.Contains(line, `title="The Godfather"`) {
		t.Fatalf("expected quoted title, got %q", line)
	}
	if strings.Contains(line, "hidden") {
		t.Fatalf("debug line should be filtered at info level: %q", line)
	}
	if strings.Contains(line, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", line)
	}
}

func TestLookupAndProviderAttrs(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console.log")
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.WarnWithContext(logger, "enrichment lookup failed", "enrichment_unavailable",
		logging.Provider("tmdb"),
		logging.Lookup("poster", "heat:1995"))

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(content)
	for _, want := range []string{
		"provider=tmdb",
		"lookup.kind=poster",
		"lookup.key=heat:1995",
		"event_type=enrichment_unavailable",
		`impact="output shown with placeholders"`,
	} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in %q", want, line)
		}
	}
}

func TestJSONLoggerIncludesSessionFields(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "json.log")
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := logging.WithSession(context.Background(), "weekend", "abc-123")
	logging.WarnWithContext(logging.WithContext(ctx, logger), "poster unavailable", "enrichment_unavailable")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal(content, &record); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if record["level"] != "warn" {
		t.Fatalf("expected warn level, got %v", record["level"])
	}
	if record[logging.FieldSession] != "weekend" || record[logging.FieldSessionID] != "abc-123" {
		t.Fatalf("missing session fields: %v", record)
	}
	for _, key := range []string{logging.FieldEventType, logging.FieldErrorHint, logging.FieldImpact} {
		if _, ok := record[key]; !ok {
			t.Fatalf("expected %s in warn record: %v", key, record)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLoggerIsSafe(t *testing.T) {
	logger := logging.NewComponentLogger(nil, "test")
	logger.Error("ignored")
	logging.WarnWithContext(nil, "ignored", "noop")
	if fields := logging.ContextFields(context.Background()); fields != nil {
		t.Fatalf("expected no context fields, got %v", fields)
	}
}
