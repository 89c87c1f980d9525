package stats

import "cinelog/internal/catalog"

// Summary holds the headline metrics of a pool. Means are nil when no entry
// carries the corresponding value.
type Summary struct {
	Count             int      `json:"count"`
	MeanRating        *float64 `json:"mean_rating,omitempty"`
	MeanIMDbRating    *float64 `json:"mean_imdb_rating,omitempty"`
	DistinctDirectors int      `json:"distinct_directors"`
	EarliestYear      *int     `json:"earliest_year,omitempty"`
	LatestYear        *int     `json:"latest_year,omitempty"`
	TotalRuntime      int      `json:"total_runtime_minutes"`
}

// Summarize computes the headline metrics of entries.
func Summarize(entries []catalog.Entry) Summary {
	s := Summary{Count: len(entries)}
	var ratingSum, imdbSum float64
	var rated, imdbRated int
	directors := map[string]struct{}{}

	for _, e := range entries {
		if r, ok := e.Rating(); ok {
			ratingSum += r
			rated++
		}
		if r, ok := e.ExternalRating(); ok {
			imdbSum += r
			imdbRated++
		}
		for _, d := range e.Directors {
			directors[d] = struct{}{}
		}
		if y, ok := e.YearValue(); ok {
			if s.EarliestYear == nil || y < *s.EarliestYear {
				s.EarliestYear = &y
			}
			if s.LatestYear == nil || y > *s.LatestYear {
				latest := y
				s.LatestYear = &latest
			}
		}
		if e.RuntimeMinutes != nil {
			s.TotalRuntime += *e.RuntimeMinutes
		}
	}

	if rated > 0 {
		mean := ratingSum / float64(rated)
		s.MeanRating = &mean
	}
	if imdbRated > 0 {
		mean := imdbSum / float64(imdbRated)
		s.MeanIMDbRating = &mean
	}
	s.DistinctDirectors = len(directors)
	return s
}
