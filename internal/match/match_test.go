package match_test

import (
	"path/filepath"
	"testing"

	"cinelog/internal/catalog"
	"cinelog/internal/match"
	"cinelog/internal/testsupport"
)

func intPtr(v int) *int { return &v }

func entry(title string, year int) catalog.Entry {
	e := catalog.Entry{Title: title}
	if year > 0 {
		e.Year = intPtr(year)
	}
	return e
}

func TestFindPrefersExactYearAndTitle(t *testing.T) {
	entries := []catalog.Entry{
		entry("The Godfather Part II", 1974),
		entry("The Godfather", 1972),
	}
	got, ok := match.Find("The Godfather", intPtr(1972), entries)
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Title != "The Godfather" {
		t.Fatalf("matched %q, want The Godfather", got.Title)
	}
}

func TestLookupTiers(t *testing.T) {
	entries := []catalog.Entry{
		entry("Alien", 1979),
		entry("Aliens", 1986),
		entry("Heat", 1995),
		entry("Heat", 1986),
		entry("Star Wars: Episode IV - A New Hope", 1977),
		entry("No Year Film", 0),
	}
	m := match.NewMatcher(entries)

	tests := []struct {
		name     string
		title    string
		year     *int
		wantIdx  int
		wantTier match.Tier
	}{
		{"year and exact", "Heat", intPtr(1986), 3, match.TierYearExact},
		{"year and contains", "Star Wars", intPtr(1977), 4, match.TierYearContains},
		{"exact any year", "Heat", intPtr(2001), 2, match.TierExact},
		{"exact without year", "no-year film!", nil, 5, match.TierExact},
		{"contains picks first in catalog order", "lien", nil, 0, match.TierContains},
		{"sequel false positive is accepted", "Alien", intPtr(1986), 1, match.TierYearContains},
		{"no tier matches", "Vertigo", intPtr(1958), -1, match.TierNone},
		{"punctuation only never matches", "?!", nil, -1, match.TierNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			idx, tier := m.Lookup(tc.title, tc.year)
			if idx != tc.wantIdx || tier != tc.wantTier {
				t.Fatalf("Lookup(%q) = %d, %s; want %d, %s", tc.title, idx, tier, tc.wantIdx, tc.wantTier)
			}
		})
	}
}

func TestFindNoMatch(t *testing.T) {
	entries := []catalog.Entry{entry("Heat", 1995), entry("Ran", 1985)}
	if _, ok := match.Find("Rashomon", intPtr(1950), entries); ok {
		t.Fatal("expected no match")
	}
	if _, ok := match.Find("", nil, entries); ok {
		t.Fatal("empty title must not match")
	}
}

func TestCanonList(t *testing.T) {
	refs := match.Canon()
	if len(refs) != 100 {
		t.Fatalf("canon has %d entries", len(refs))
	}
	for i, ref := range refs {
		if ref.Rank != i+1 {
			t.Fatalf("rank %d at position %d", ref.Rank, i)
		}
		if ref.Year == nil || *ref.Year < 1900 || ref.Title == "" {
			t.Fatalf("incomplete canon entry: %+v", ref)
		}
	}
	refs[0].Title = "mutated"
	if match.Canon()[0].Title != "Citizen Kane" {
		t.Fatal("Canon must return a fresh copy")
	}
}

func TestResolveCatalogAgainstCanonHead(t *testing.T) {
	cat, err := catalog.LoadFile(filepath.Join("..", "catalog", "testdata", "ratings.csv"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	results := match.Resolve(match.Canon()[:3], cat.Entries)
	report := match.Progress(results)
	if report.Seen != 3 || report.Total != 3 || report.Percent != 100.0 {
		t.Fatalf("unexpected progress: %+v", report)
	}
	for _, r := range results {
		if r.Tier != match.TierYearExact {
			t.Fatalf("%q matched via %s", r.Reference.Title, r.Tier)
		}
	}
	if len(match.Unseen(results)) != 0 {
		t.Fatal("expected nothing unseen")
	}
}

func TestProgressRounding(t *testing.T) {
	results := make([]match.Result, 3)
	results[0].Seen = true
	report := match.Progress(results)
	if report.Percent != 33.3 {
		t.Fatalf("percent = %v, want 33.3", report.Percent)
	}
	if got := match.Progress(nil); got.Percent != 0 || got.Total != 0 {
		t.Fatalf("empty progress: %+v", got)
	}
}

func TestResolveGeneratedCatalogNeverPanics(t *testing.T) {
	cat := testsupport.RandomCatalog(t, 99, 200)
	results := match.Resolve(match.Canon(), cat.Entries)
	if len(results) != 100 {
		t.Fatalf("got %d results", len(results))
	}
	for _, r := range results {
		if r.Seen != (r.Entry != nil) {
			t.Fatalf("seen flag disagrees with entry: %+v", r)
		}
	}
}
