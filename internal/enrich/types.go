package enrich

import (
	"errors"
	"strconv"

	"cinelog/internal/catalog"
)

// ErrUnavailable wraps every lookup failure: provider errors, timeouts, an
// open circuit breaker or a provider without credentials.
var ErrUnavailable = errors.New("enrichment unavailable")

// errNotConfigured marks a provider without credentials.
var errNotConfigured = errors.New("provider not configured")

// Placeholder is shown in place of a missing rating or text.
const Placeholder = "N/A"

// Poster sources.
const (
	SourceTMDB = "tmdb"
	SourceOMDB = "omdb"
	SourcePage = "page"
)

// Poster is the outcome of a poster lookup. The zero value is the placeholder.
type Poster struct {
	URL    string   `json:"url,omitempty"`
	Source string   `json:"source,omitempty"`
	Rating *float64 `json:"rating,omitempty"`
	TMDBID int64    `json:"tmdb_id,omitempty"`
}

// RatingText renders the provider rating or Placeholder.
func (p Poster) RatingText() string {
	return RatingText(p.Rating)
}

// Providers lists where a title can be streamed, rented or bought.
type Providers struct {
	Country   string   `json:"country"`
	Platforms []string `json:"platforms,omitempty"`
	Link      string   `json:"link,omitempty"`
}

// Card gathers every enrichment for one entry.
type Card struct {
	Entry      catalog.Entry `json:"entry"`
	Poster     Poster        `json:"poster"`
	Providers  Providers     `json:"providers"`
	TrailerURL string        `json:"trailer_url,omitempty"`
	AwardsText string        `json:"awards_text"`
	ReviewURL  string        `json:"review_url"`
}

// RatingText formats a rating with one decimal, or Placeholder when absent.
func RatingText(r *float64) string {
	if r == nil {
		return Placeholder
	}
	return strconv.FormatFloat(*r, 'f', 1, 64)
}

// LookupKey is the cache key for an entry: normalized title and year.
func LookupKey(e catalog.Entry) string {
	key := e.NormalizedTitle
	if key == "" {
		key = normalize(e.Title)
	}
	key += ":"
	if year, ok := e.YearValue(); ok {
		key += strconv.Itoa(year)
	}
	return key
}
