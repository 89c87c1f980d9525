package recommend_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"cinelog/internal/catalog"
	"cinelog/internal/recommend"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func fixedNow() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }

func TestFavoritesEmptyPool(t *testing.T) {
	s := recommend.NewSampler(1)
	pool := []catalog.Entry{
		{Title: "A", YourRating: floatPtr(8.9)},
		{Title: "B"},
	}
	_, err := s.Sample(pool, recommend.ModeFavorites)
	if !errors.Is(err, recommend.ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
	if _, err := s.Sample(nil, recommend.ModeAll); !errors.Is(err, recommend.ErrEmptyPool) {
		t.Fatalf("empty pool in all mode: %v", err)
	}
}

func TestRestrictModes(t *testing.T) {
	s := &recommend.Sampler{Now: fixedNow}
	pool := []catalog.Entry{
		{Title: "old favorite", YourRating: floatPtr(9), Year: intPtr(1950)},
		{Title: "recent eight", YourRating: floatPtr(8), Year: intPtr(2006)},
		{Title: "too old eight", YourRating: floatPtr(8), Year: intPtr(2005)},
		{Title: "recent seven", YourRating: floatPtr(7), Year: intPtr(2020)},
		{Title: "unknown year", YourRating: floatPtr(10)},
		{Title: "unrated", Year: intPtr(2024)},
	}

	tests := []struct {
		mode recommend.Mode
		want []string
	}{
		{recommend.ModeAll, []string{"old favorite", "recent eight", "too old eight", "recent seven", "unknown year", "unrated"}},
		{recommend.ModeFavorites, []string{"old favorite", "unknown year"}},
		{recommend.ModeRecentHigh, []string{"recent eight"}},
	}
	for _, tc := range tests {
		got := s.Restrict(pool, tc.mode)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: got %d entries, want %d", tc.mode, len(got), len(tc.want))
		}
		for i := range got {
			if got[i].Title != tc.want[i] {
				t.Fatalf("%s: got %q at %d, want %q", tc.mode, got[i].Title, i, tc.want[i])
			}
		}
	}
}

func TestWeightedDrawFavorsHigherRating(t *testing.T) {
	s := recommend.NewSampler(20240601)
	pool := []catalog.Entry{
		{Title: "ten", YourRating: floatPtr(10)},
		{Title: "zero", YourRating: floatPtr(0)},
	}

	const draws = 20000
	hits := 0
	for i := 0; i < draws; i++ {
		e, err := s.Sample(pool, recommend.ModeAll)
		if err != nil {
			t.Fatalf("Sample: %v", err)
		}
		if e.Title == "ten" {
			hits++
		}
	}

	want := 11.0 / 12.0
	got := float64(hits) / draws
	// Five standard deviations of a binomial proportion.
	tolerance := 5 * math.Sqrt(want*(1-want)/draws)
	if math.Abs(got-want) > tolerance {
		t.Fatalf("selection rate %.4f, want %.4f ± %.4f", got, want, tolerance)
	}
}

func TestUnratedPoolIsUniform(t *testing.T) {
	s := recommend.NewSampler(7)
	pool := []catalog.Entry{{Title: "a"}, {Title: "b"}, {Title: "c"}, {Title: "d"}}
	counts := map[string]int{}
	const draws = 12000
	for i := 0; i < draws; i++ {
		e, err := s.Sample(pool, recommend.ModeAll)
		if err != nil {
			t.Fatalf("Sample: %v", err)
		}
		counts[e.Title]++
	}
	for title, n := range counts {
		if math.Abs(float64(n)/draws-0.25) > 0.03 {
			t.Fatalf("%s drawn %d times out of %d", title, n, draws)
		}
	}
	if len(counts) != 4 {
		t.Fatalf("not every entry was drawn: %v", counts)
	}
}

func TestSeededSamplersAgree(t *testing.T) {
	pool := []catalog.Entry{
		{Title: "a", YourRating: floatPtr(3)},
		{Title: "b", YourRating: floatPtr(6)},
		{Title: "c", YourRating: floatPtr(9)},
	}
	a, b := recommend.NewSampler(42), recommend.NewSampler(42)
	for i := 0; i < 50; i++ {
		x, _ := a.Sample(pool, recommend.ModeAll)
		y, _ := b.Sample(pool, recommend.ModeAll)
		if x.Title != y.Title {
			t.Fatalf("draw %d diverged: %s vs %s", i, x.Title, y.Title)
		}
	}
}

func TestParseMode(t *testing.T) {
	for input, want := range map[string]recommend.Mode{
		"":            recommend.ModeAll,
		"Favorites":   recommend.ModeFavorites,
		"recent-high": recommend.ModeRecentHigh,
	} {
		got, err := recommend.ParseMode(input)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %q, %v", input, got, err)
		}
	}
	if _, err := recommend.ParseMode("surprise"); err == nil {
		t.Fatal("expected error")
	}
}
