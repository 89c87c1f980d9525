package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"cinelog/internal/catalog"
	"cinelog/internal/dashboard"
)

func TestBrowsePersistsPaging(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"browse", "--sort", "year"}, env.configPath)
	if err != nil {
		t.Fatalf("browse: %v", err)
	}
	requireContains(t, out, "Citizen Kane")
	requireContains(t, out, "Page 1 of 2")
	if strings.Contains(out, "The Godfather") {
		t.Fatalf("page 1 should not list The Godfather:\n%s", out)
	}

	out, _, err = runCLI(t, []string{"browse", "--next"}, env.configPath)
	if err != nil {
		t.Fatalf("browse --next: %v", err)
	}
	requireContains(t, out, "The Godfather")
	requireContains(t, out, "Page 2 of 2")

	out, _, err = runCLI(t, []string{"session", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("session show: %v", err)
	}
	requireContains(t, out, "Page:      2 (size 2)")
	requireContains(t, out, "Order:     year")

	if _, _, err := runCLI(t, []string{"session", "reset"}, env.configPath); err != nil {
		t.Fatalf("session reset: %v", err)
	}
	out, _, _ = runCLI(t, []string{"session", "show"}, env.configPath)
	requireContains(t, out, "Page:      1 (size 2)")
	requireContains(t, out, "Order:     title")
}

func TestBrowseJSONAndFilters(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--json", "browse", "--search", "coppola"}, env.configPath)
	if err != nil {
		t.Fatalf("browse: %v", err)
	}
	var view dashboard.BrowseView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if view.Total != 1 || view.Entries[0].Title != "The Godfather" {
		t.Fatalf("unexpected view %+v", view)
	}

	out, _, err = runCLI(t, []string{"browse", "--clear", "--year-min", "1990"}, env.configPath)
	if err != nil {
		t.Fatalf("browse: %v", err)
	}
	requireContains(t, out, "No titles match the current filters (3 in catalog)")

	if _, _, err := runCLI(t, []string{"browse", "--clear", "--rating-min", "9", "--rating-max", "2"}, env.configPath); err == nil {
		t.Fatal("expected an error for an inverted rating range")
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"--session", "alice", "browse", "--genre", "War"}, env.configPath); err != nil {
		t.Fatalf("browse: %v", err)
	}
	out, _, err := runCLI(t, []string{"--session", "bob", "browse"}, env.configPath)
	if err != nil {
		t.Fatalf("browse: %v", err)
	}
	requireContains(t, out, "3 of 3 titles")

	out, _, err = runCLI(t, []string{"session", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("session list: %v", err)
	}
	requireContains(t, out, "alice")
	requireContains(t, out, "bob")

	if _, _, err := runCLI(t, []string{"session", "delete", "alice"}, env.configPath); err != nil {
		t.Fatalf("session delete: %v", err)
	}
	if _, _, err := runCLI(t, []string{"session", "delete", "alice"}, env.configPath); err == nil {
		t.Fatal("expected deleting a missing session to fail")
	}
}

func TestStatsCanonAndAwards(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"stats", "--search", "kane"}, env.configPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	requireContains(t, out, "Titles:             3")
	requireContains(t, out, "Drama")

	out, _, err = runCLI(t, []string{"canon"}, env.configPath)
	if err != nil {
		t.Fatalf("canon: %v", err)
	}
	requireContains(t, out, "Seen 3 of 100 (3.0%)")

	out, _, err = runCLI(t, []string{"awards", "--ceremonies"}, env.configPath)
	if err != nil {
		t.Fatalf("awards: %v", err)
	}
	requireContains(t, out, "Ceremony 1944")
	requireContains(t, out, "Seen 3 of 6 films (50.0%)")

	out, _, err = runCLI(t, []string{"awards", "--dataset", "nominations"}, env.configPath)
	if err != nil {
		t.Fatalf("awards nominations: %v", err)
	}
	requireContains(t, out, "3 records in nominations")
}

func TestPick(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--json", "pick", "--mode", "favorites", "--seed", "3"}, env.configPath)
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	var picked catalog.Entry
	if err := json.Unmarshal([]byte(out), &picked); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if r, ok := picked.Rating(); !ok || r < 9 {
		t.Fatalf("favorites pick %s has rating %v", picked.Title, r)
	}

	out, _, err = runCLI(t, []string{"pick", "--year-min", "2000", "--year-max", "2010"}, env.configPath)
	if err != nil {
		t.Fatalf("empty pool should not fail: %v", err)
	}
	requireContains(t, out, "No titles match the current filters and mode")
}

func TestInfo(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"info", "--offline", "citizen", "kane"}, env.configPath)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	requireContains(t, out, "Citizen Kane (1941)")
	requireContains(t, out, "WRITING (Original Screenplay)")
	requireContains(t, out, "https://www.imdb.com/title/tt0033467/reviews")
	requireContains(t, out, "In view:   yes (session default)")

	if _, _, err := runCLI(t, []string{"browse", "--year-min", "1990"}, env.configPath); err != nil {
		t.Fatalf("browse: %v", err)
	}
	out, _, err = runCLI(t, []string{"info", "--offline", "citizen", "kane"}, env.configPath)
	if err != nil {
		t.Fatalf("info after filtering: %v", err)
	}
	requireContains(t, out, "In view:   no (session default)")

	out, _, err = runCLI(t, []string{"info", "--offline", "kane", "citizen"}, env.configPath)
	if err != nil {
		t.Fatalf("info suggestion: %v", err)
	}
	requireContains(t, out, "Did you mean")
	requireContains(t, out, "Citizen Kane (1941)")

	if _, _, err := runCLI(t, []string{"info", "--offline", "zzzz"}, env.configPath); err == nil {
		t.Fatal("expected an error when nothing resembles the title")
	}
}

func TestCacheCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"cache", "stats"}, env.configPath)
	if err != nil {
		t.Fatalf("cache stats: %v", err)
	}
	requireContains(t, out, "total")
	requireContains(t, out, "tmdb")
	requireContains(t, out, "disabled")

	out, _, err = runCLI(t, []string{"cache", "clear", "--kind", "poster"}, env.configPath)
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	requireContains(t, out, "Removed 0 cached lookups")

	if _, _, err := runCLI(t, []string{"cache", "clear", "--kind", "bogus"}, env.configPath); err == nil {
		t.Fatal("expected an error for an unknown kind")
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init to refuse overwriting")
	}

	t.Setenv("TMDB_API_KEY", "abcdef123456")
	out, _, err = runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if strings.Contains(out, "abcdef123456") {
		t.Fatal("config show must mask api keys")
	}
}
