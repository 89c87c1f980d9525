package catalog

import "time"

// Entry is one watched film.
type Entry struct {
	Const           string     `json:"const,omitempty"`
	Title           string     `json:"title"`
	NormalizedTitle string     `json:"normalized_title"`
	OriginalTitle   string     `json:"original_title,omitempty"`
	TitleType       string     `json:"title_type,omitempty"`
	Year            *int       `json:"year,omitempty"`
	YourRating      *float64   `json:"your_rating,omitempty"`
	IMDbRating      *float64   `json:"imdb_rating,omitempty"`
	RuntimeMinutes  *int       `json:"runtime_minutes,omitempty"`
	NumVotes        *int       `json:"num_votes,omitempty"`
	Genres          []string   `json:"genres"`
	Directors       []string   `json:"directors"`
	DateRated       *time.Time `json:"date_rated,omitempty"`
	URL             string     `json:"url,omitempty"`
	SearchBlob      string     `json:"-"`
}

// YearValue returns the release year and whether it is known.
func (e Entry) YearValue() (int, bool) {
	if e.Year == nil {
		return 0, false
	}
	return *e.Year, true
}

// Rating returns the personal rating and whether it is known.
func (e Entry) Rating() (float64, bool) {
	if e.YourRating == nil {
		return 0, false
	}
	return *e.YourRating, true
}

// ExternalRating returns the IMDb rating and whether it is known.
func (e Entry) ExternalRating() (float64, bool) {
	if e.IMDbRating == nil {
		return 0, false
	}
	return *e.IMDbRating, true
}

// HasGenre reports whether genre appears in the entry's genre list.
func (e Entry) HasGenre(genre string) bool {
	for _, g := range e.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Label renders "Title (Year)" or just the title when the year is unknown.
func (e Entry) Label() string {
	if year, ok := e.YearValue(); ok {
		return e.Title + " (" + itoa(year) + ")"
	}
	return e.Title
}

// Columns records which optional columns were present in the source file.
type Columns struct {
	Year          bool `json:"year"`
	YourRating    bool `json:"your_rating"`
	IMDbRating    bool `json:"imdb_rating"`
	Genres        bool `json:"genres"`
	Directors     bool `json:"directors"`
	DateRated     bool `json:"date_rated"`
	OriginalTitle bool `json:"original_title"`
	URL           bool `json:"url"`
}

// Catalog is the loaded, immutable set of entries.
type Catalog struct {
	Entries []Entry `json:"entries"`
	Columns Columns `json:"columns"`
	// Skipped counts data rows without a title.
	Skipped int `json:"skipped"`
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Entries)
}
