package filter_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"cinelog/internal/catalog"
	"cinelog/internal/filter"
	"cinelog/internal/testsupport"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func titles(es []catalog.Entry) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Title
	}
	return out
}

func sample() []catalog.Entry {
	return []catalog.Entry{
		{Title: "Heat", Year: intPtr(1995), YourRating: floatPtr(9), Genres: []string{"Crime", "Drama", "Thriller"}, Directors: []string{"Michael Mann"}, SearchBlob: "heat michael mann crime, drama, thriller 1995 9"},
		{Title: "Alien", Year: intPtr(1979), YourRating: floatPtr(8), Genres: []string{"Horror", "Sci-Fi"}, Directors: []string{"Ridley Scott"}, SearchBlob: "alien ridley scott horror, sci-fi 1979 8"},
		{Title: "Unrated", Year: intPtr(1990), Genres: []string{"Drama"}, Directors: []string{"Anon"}, SearchBlob: "unrated anon drama 1990"},
		{Title: "No Year", YourRating: floatPtr(7), Genres: []string{"Crime", "Drama"}, Directors: []string{"Michael Mann", "Anon"}, SearchBlob: "no year michael mann, anon crime, drama 7"},
		{Title: "Zodiac", Year: intPtr(2007), YourRating: floatPtr(10), Genres: []string{"Crime", "Drama", "Mystery"}, Directors: []string{"David Fincher"}, SearchBlob: "zodiac david fincher crime, drama, mystery 2007 10"},
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		criteria filter.Criteria
		want     []string
	}{
		{"zero criteria keeps everything", filter.Criteria{}, []string{"Heat", "Alien", "Unrated", "No Year", "Zodiac"}},
		{"year range inclusive", filter.Criteria{Years: &filter.IntRange{Min: 1979, Max: 1995}}, []string{"Heat", "Alien", "Unrated"}},
		{"rating range inclusive and absent excluded", filter.Criteria{Ratings: &filter.FloatRange{Min: 8, Max: 9}}, []string{"Heat", "Alien"}},
		{"full rating range still drops absent", filter.Criteria{Ratings: &filter.FloatRange{Min: 0, Max: 10}}, []string{"Heat", "Alien", "No Year", "Zodiac"}},
		{"genres are all-of", filter.Criteria{Genres: []string{"Drama", "Crime"}}, []string{"Heat", "No Year", "Zodiac"}},
		{"directors are any-of", filter.Criteria{Directors: []string{"Anon", "Ridley Scott"}}, []string{"Alien", "Unrated", "No Year"}},
		{"search is case-insensitive substring", filter.Criteria{Search: "MANN"}, []string{"Heat", "No Year"}},
		{"conjunction", filter.Criteria{Genres: []string{"Crime"}, Years: &filter.IntRange{Min: 2000, Max: 2010}, Search: "fincher"}, []string{"Zodiac"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := titles(filter.Apply(sample(), tc.criteria))
			if !slices.Equal(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestWithoutSearchKeepsOtherPredicates(t *testing.T) {
	c := filter.Criteria{Genres: []string{"Crime"}, Search: "fincher"}
	stripped := c.WithoutSearch()
	if stripped.Search != "" || len(stripped.Genres) != 1 {
		t.Fatalf("unexpected stripped criteria: %+v", stripped)
	}
	if c.Search != "fincher" {
		t.Fatal("WithoutSearch mutated the receiver")
	}
	got := titles(filter.Apply(sample(), stripped))
	if !slices.Equal(got, []string{"Heat", "No Year", "Zodiac"}) {
		t.Fatalf("unexpected pool: %v", got)
	}
}

func TestCriteriaValidate(t *testing.T) {
	valid := filter.Criteria{Years: &filter.IntRange{Min: 1990, Max: 1990}, Ratings: &filter.FloatRange{Min: 0, Max: 10}}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid criteria rejected: %v", err)
	}
	invalid := []filter.Criteria{
		{Years: &filter.IntRange{Min: 2000, Max: 1990}},
		{Ratings: &filter.FloatRange{Min: 9, Max: 3}},
		{Ratings: &filter.FloatRange{Min: 0, Max: 11}},
	}
	for i, c := range invalid {
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestSortAbsentLast(t *testing.T) {
	entries := sample()
	filter.Sort(entries, filter.Order{Field: filter.FieldYourRating, Descending: true})
	if got := titles(entries); !slices.Equal(got, []string{"Zodiac", "Heat", "Alien", "No Year", "Unrated"}) {
		t.Fatalf("descending rating: %v", got)
	}

	filter.Sort(entries, filter.Order{Field: filter.FieldYear})
	if got := titles(entries); !slices.Equal(got, []string{"Alien", "Unrated", "Heat", "Zodiac", "No Year"}) {
		t.Fatalf("ascending year: %v", got)
	}

	filter.Sort(entries, filter.Order{Field: filter.FieldTitle, Descending: true})
	if got := titles(entries); !slices.Equal(got, []string{"Zodiac", "Unrated", "No Year", "Heat", "Alien"}) {
		t.Fatalf("descending title: %v", got)
	}
}

func TestParseField(t *testing.T) {
	for input, want := range map[string]filter.Field{
		"":            filter.FieldTitle,
		"Your Rating": filter.FieldYourRating,
		"imdb-rating": filter.FieldIMDbRating,
		"date_rated":  filter.FieldDateRated,
		"YEAR":        filter.FieldYear,
	} {
		got, err := filter.ParseField(input)
		if err != nil || got != want {
			t.Errorf("ParseField(%q) = %q, %v; want %q", input, got, err, want)
		}
	}
	if _, err := filter.ParseField("budget"); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestShuffleSeededIsReproducible(t *testing.T) {
	a, b := sample(), sample()
	filter.Shuffle(a, rand.New(rand.NewPCG(7, 7)))
	filter.Shuffle(b, rand.New(rand.NewPCG(7, 7)))
	if !slices.Equal(titles(a), titles(b)) {
		t.Fatalf("same seed produced different orders: %v vs %v", titles(a), titles(b))
	}
	sorted := titles(a)
	slices.Sort(sorted)
	if !slices.Equal(sorted, []string{"Alien", "Heat", "No Year", "Unrated", "Zodiac"}) {
		t.Fatalf("shuffle lost entries: %v", sorted)
	}
}

func TestFacets(t *testing.T) {
	set := filter.Facets(sample())
	if !slices.Equal(set.Genres, []string{"Crime", "Drama", "Horror", "Mystery", "Sci-Fi", "Thriller"}) {
		t.Fatalf("genres: %v", set.Genres)
	}
	if set.Years == nil || set.Years.Min != 1979 || set.Years.Max != 2007 {
		t.Fatalf("years: %+v", set.Years)
	}
	if set.Ratings == nil || set.Ratings.Min != 7 || set.Ratings.Max != 10 {
		t.Fatalf("ratings: %+v", set.Ratings)
	}
	if len(set.Directors) != 4 {
		t.Fatalf("directors: %v", set.Directors)
	}
}

func TestApplyGeneratedCatalogProperties(t *testing.T) {
	cat := testsupport.RandomCatalog(t, 1138, 400)
	years := &filter.IntRange{Min: 1960, Max: 1999}
	ratings := &filter.FloatRange{Min: 5, Max: 8}
	genres := []string{"Drama", "Crime"}

	for _, e := range filter.Apply(cat.Entries, filter.Criteria{Years: years}) {
		y, ok := e.YearValue()
		if !ok || y < years.Min || y > years.Max {
			t.Fatalf("%q escaped the year range: %v %v", e.Title, y, ok)
		}
	}
	for _, e := range filter.Apply(cat.Entries, filter.Criteria{Ratings: ratings}) {
		r, ok := e.Rating()
		if !ok || r < ratings.Min || r > ratings.Max {
			t.Fatalf("%q escaped the rating range: %v %v", e.Title, r, ok)
		}
	}

	var wantGenres int
	for _, e := range cat.Entries {
		if e.HasGenre("Drama") && e.HasGenre("Crime") {
			wantGenres++
		}
	}
	got := filter.Apply(cat.Entries, filter.Criteria{Genres: genres})
	if len(got) != wantGenres {
		t.Fatalf("genre filter kept %d entries, want %d", len(got), wantGenres)
	}
	for _, e := range got {
		if !e.HasGenre("Drama") || !e.HasGenre("Crime") {
			t.Fatalf("%q lacks a required genre: %v", e.Title, e.Genres)
		}
	}

	combined := filter.Criteria{Years: years, Ratings: ratings, Genres: genres[:1]}
	kept := filter.Apply(cat.Entries, combined)
	var matched int
	for _, e := range cat.Entries {
		if filter.Matches(e, combined) {
			matched++
		}
	}
	if matched != len(kept) {
		t.Fatalf("Apply kept %d entries, Matches accepts %d", len(kept), matched)
	}

	boundary := filter.Apply(cat.Entries, filter.Criteria{Ratings: &filter.FloatRange{Min: 10, Max: 10}})
	for _, e := range boundary {
		if r, _ := e.Rating(); r != 10 {
			t.Fatalf("boundary filter kept rating %v", r)
		}
	}
}
