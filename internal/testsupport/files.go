package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CatalogHeader is the IMDb ratings export header.
const CatalogHeader = "Const,Your Rating,Date Rated,Title,Original Title,URL,Title Type,IMDb Rating,Runtime (mins),Year,Genres,Num Votes,Release Date,Directors"

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteLines writes header and rows as newline-terminated lines under dir.
func WriteLines(t testing.TB, dir, name, header string, rows ...string) string {
	t.Helper()

	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return WriteFile(t, filepath.Join(dir, name), b.String())
}
