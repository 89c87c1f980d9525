package filter

import (
	"slices"
	"strings"

	"cinelog/internal/catalog"
)

// FacetSet is the selection space offered by a pool.
type FacetSet struct {
	Genres    []string    `json:"genres"`
	Directors []string    `json:"directors"`
	Years     *IntRange   `json:"years,omitempty"`
	Ratings   *FloatRange `json:"ratings,omitempty"`
}

// Facets collects the distinct genres and directors (sorted
// case-insensitively) and the year and personal-rating bounds of entries.
func Facets(entries []catalog.Entry) FacetSet {
	var set FacetSet
	genres := map[string]struct{}{}
	directors := map[string]struct{}{}
	for _, entry := range entries {
		for _, g := range entry.Genres {
			if _, ok := genres[g]; !ok {
				genres[g] = struct{}{}
				set.Genres = append(set.Genres, g)
			}
		}
		for _, d := range entry.Directors {
			if _, ok := directors[d]; !ok {
				directors[d] = struct{}{}
				set.Directors = append(set.Directors, d)
			}
		}
		if year, ok := entry.YearValue(); ok {
			if set.Years == nil {
				set.Years = &IntRange{Min: year, Max: year}
			}
			set.Years.Min = min(set.Years.Min, year)
			set.Years.Max = max(set.Years.Max, year)
		}
		if rating, ok := entry.Rating(); ok {
			if set.Ratings == nil {
				set.Ratings = &FloatRange{Min: rating, Max: rating}
			}
			set.Ratings.Min = min(set.Ratings.Min, rating)
			set.Ratings.Max = max(set.Ratings.Max, rating)
		}
	}
	byFold := func(a, b string) int { return strings.Compare(strings.ToLower(a), strings.ToLower(b)) }
	slices.SortStableFunc(set.Genres, byFold)
	slices.SortStableFunc(set.Directors, byFold)
	return set
}
