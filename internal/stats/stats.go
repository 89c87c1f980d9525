// Package stats computes read-only groupings over a catalog pool.
package stats

import (
	"cmp"
	"math"
	"slices"

	"cinelog/internal/catalog"
)

// YearCount is the number of entries released in Year.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// CountByYear groups entries with a known year, ascending by year.
func CountByYear(entries []catalog.Entry) []YearCount {
	counts := map[int]int{}
	for _, e := range entries {
		if y, ok := e.YearValue(); ok {
			counts[y]++
		}
	}
	out := make([]YearCount, 0, len(counts))
	for y, n := range counts {
		out = append(out, YearCount{Year: y, Count: n})
	}
	slices.SortFunc(out, func(a, b YearCount) int { return cmp.Compare(a.Year, b.Year) })
	return out
}

// Bucket is one bar of the personal rating histogram.
type Bucket struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// RatingHistogram counts personal ratings rounded to the nearest integer
// (halves round away from zero). Every bucket 0 through 10 is present.
func RatingHistogram(entries []catalog.Entry) []Bucket {
	out := make([]Bucket, 11)
	for i := range out {
		out[i].Rating = i
	}
	for _, e := range entries {
		r, ok := e.Rating()
		if !ok {
			continue
		}
		idx := int(math.Round(r))
		if idx < 0 || idx > 10 {
			continue
		}
		out[idx].Count++
	}
	return out
}

// GenreCount is the number of entries carrying Genre.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// TopGenres returns the n most frequent genres across the exploded genre
// lists. Ties keep the order in which genres were first encountered. n <= 0
// returns every genre.
func TopGenres(entries []catalog.Entry, n int) []GenreCount {
	index := map[string]int{}
	var out []GenreCount
	for _, e := range entries {
		for _, g := range e.Genres {
			if g == "" {
				continue
			}
			idx, ok := index[g]
			if !ok {
				idx = len(out)
				index[g] = idx
				out = append(out, GenreCount{Genre: g})
			}
			out[idx].Count++
		}
	}
	slices.SortStableFunc(out, func(a, b GenreCount) int { return cmp.Compare(b.Count, a.Count) })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// DecadeMean is the mean external rating of entries released in a decade.
type DecadeMean struct {
	Decade int     `json:"decade"`
	Mean   float64 `json:"mean"`
	Count  int     `json:"count"`
}

// Decade floors year to its decade: 1994 is 1990, 2005 is 2000.
func Decade(year int) int {
	return int(math.Floor(float64(year)/10)) * 10
}

// MeanIMDbByDecade averages the external rating per decade over entries with
// both a year and an external rating, ascending by decade.
func MeanIMDbByDecade(entries []catalog.Entry) []DecadeMean {
	type acc struct {
		sum float64
		n   int
	}
	buckets := map[int]*acc{}
	for _, e := range entries {
		y, ok := e.YearValue()
		if !ok {
			continue
		}
		r, ok := e.ExternalRating()
		if !ok {
			continue
		}
		d := Decade(y)
		if buckets[d] == nil {
			buckets[d] = &acc{}
		}
		buckets[d].sum += r
		buckets[d].n++
	}
	out := make([]DecadeMean, 0, len(buckets))
	for d, a := range buckets {
		out = append(out, DecadeMean{Decade: d, Mean: a.sum / float64(a.n), Count: a.n})
	}
	slices.SortFunc(out, func(a, b DecadeMean) int { return cmp.Compare(a.Decade, b.Decade) })
	return out
}
