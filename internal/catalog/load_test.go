package catalog_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"cinelog/internal/catalog"
)

func TestLoadFileIMDbExport(t *testing.T) {
	cat, err := catalog.LoadFile(filepath.Join("testdata", "ratings.csv"))
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if cat.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", cat.Len())
	}

	godfather := cat.Entries[1]
	if godfather.Title != "The Godfather" || godfather.NormalizedTitle != "thegodfather" {
		t.Fatalf("unexpected title fields: %+v", godfather)
	}
	if year, ok := godfather.YearValue(); !ok || year != 1972 {
		t.Fatalf("unexpected year: %v %v", year, ok)
	}
	if rating, ok := godfather.Rating(); !ok || rating != 9 {
		t.Fatalf("unexpected personal rating: %v %v", rating, ok)
	}
	if rating, ok := godfather.ExternalRating(); !ok || rating != 9.2 {
		t.Fatalf("unexpected imdb rating: %v %v", rating, ok)
	}
	if strings.Join(godfather.Genres, "|") != "Crime|Drama" {
		t.Fatalf("unexpected genres: %v", godfather.Genres)
	}
	if len(godfather.Directors) != 1 || godfather.Directors[0] != "Francis Ford Coppola" {
		t.Fatalf("unexpected directors: %v", godfather.Directors)
	}
	if godfather.DateRated == nil || godfather.DateRated.Format("2006-01-02") != "2023-05-02" {
		t.Fatalf("unexpected date rated: %v", godfather.DateRated)
	}
	if godfather.RuntimeMinutes == nil || *godfather.RuntimeMinutes != 175 {
		t.Fatalf("unexpected runtime: %v", godfather.RuntimeMinutes)
	}
	want := "the godfather the godfather francis ford coppola crime, drama 1972 9 9.2"
	if godfather.SearchBlob != want {
		t.Fatalf("unexpected search blob:\n got %q\nwant %q", godfather.SearchBlob, want)
	}
	if !cat.Columns.YourRating || !cat.Columns.URL {
		t.Fatalf("expected optional columns to be detected: %+v", cat.Columns)
	}
}

func TestLoadMissingOptionalColumnsDefaults(t *testing.T) {
	cat, err := catalog.Load(strings.NewReader("Title\nVertigo\nRear Window\n"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", cat.Len())
	}
	entry := cat.Entries[0]
	if entry.Year != nil || entry.YourRating != nil || entry.IMDbRating != nil || entry.DateRated != nil {
		t.Fatalf("expected absent optional values, got %+v", entry)
	}
	if entry.Genres == nil || len(entry.Genres) != 0 {
		t.Fatalf("expected empty genre list, got %#v", entry.Genres)
	}
	if cat.Columns.Year || cat.Columns.Genres {
		t.Fatalf("expected optional columns to be reported absent: %+v", cat.Columns)
	}
	if entry.SearchBlob != "vertigo" {
		t.Fatalf("unexpected search blob %q", entry.SearchBlob)
	}
}

func TestLoadUnparsableFieldsBecomeAbsent(t *testing.T) {
	input := "Title;Year;Your Rating;IMDb Rating\n" +
		"Heat;circa 1995.0;11;7,5\n" +
		";1999;5;5\n"
	cat, err := catalog.Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cat.Len() != 1 || cat.Skipped != 1 {
		t.Fatalf("expected 1 entry and 1 skipped row, got %d/%d", cat.Len(), cat.Skipped)
	}
	heat := cat.Entries[0]
	if year, ok := heat.YearValue(); !ok || year != 1995 {
		t.Fatalf("expected year 1995, got %v %v", year, ok)
	}
	if heat.YourRating != nil {
		t.Fatalf("expected out-of-range rating to be absent, got %v", *heat.YourRating)
	}
	if rating, ok := heat.ExternalRating(); !ok || rating != 7.5 {
		t.Fatalf("expected decimal comma rating 7.5, got %v %v", rating, ok)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target error
	}{
		{"empty", "", nil},
		{"no title column", "Year,Genres\n1999,Drama\n", catalog.ErrNoTitleColumn},
		{"unbalanced quotes", "Title,Year\n\"Broken,1999\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Load(strings.NewReader(tt.input))
			var loadErr *catalog.LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("expected *LoadError, got %v", err)
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Fatalf("expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := catalog.LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	var loadErr *catalog.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing.csv") {
		t.Fatalf("expected path in error, got %q", err)
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{"1994", 1994, true},
		{"1994.0", 1994, true},
		{"(2005)", 2005, true},
		{"12345 then 1999", 1999, true},
		{"99", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := catalog.ParseYear(tt.raw)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseYear(%q) = %d,%v want %d,%v", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSplitGenresUsesCommaSpace(t *testing.T) {
	got := catalog.SplitGenres("Drama, Sci-Fi,Thriller")
	if len(got) != 2 || got[0] != "Drama" || got[1] != "Sci-Fi,Thriller" {
		t.Fatalf("unexpected split: %#v", got)
	}
}
