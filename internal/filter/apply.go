package filter

import (
	"strings"

	"cinelog/internal/catalog"
	"cinelog/internal/textutil"
)

// Apply returns the entries satisfying every predicate in c, in their
// original order. The input slice is not modified.
func Apply(entries []catalog.Entry, c Criteria) []catalog.Entry {
	p := prepare(c)
	out := make([]catalog.Entry, 0, len(entries))
	for _, entry := range entries {
		if p.matches(entry) {
			out = append(out, entry)
		}
	}
	return out
}

// Matches evaluates c against a single entry.
func Matches(entry catalog.Entry, c Criteria) bool {
	return prepare(c).matches(entry)
}

type predicate struct {
	criteria  Criteria
	directors map[string]struct{}
	search    string
}

func prepare(c Criteria) predicate {
	p := predicate{criteria: c, search: strings.TrimSpace(c.Search)}
	for _, d := range c.Directors {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if p.directors == nil {
			p.directors = make(map[string]struct{}, len(c.Directors))
		}
		p.directors[d] = struct{}{}
	}
	return p
}

func (p predicate) matches(entry catalog.Entry) bool {
	c := p.criteria
	if c.Years != nil {
		year, ok := entry.YearValue()
		if !ok || !c.Years.Contains(year) {
			return false
		}
	}
	if c.Ratings != nil {
		rating, ok := entry.Rating()
		if !ok || !c.Ratings.Contains(rating) {
			return false
		}
	}
	for _, genre := range c.Genres {
		if !entry.HasGenre(genre) {
			return false
		}
	}
	if len(p.directors) > 0 && !anyDirector(entry.Directors, p.directors) {
		return false
	}
	if p.search != "" && !textutil.FoldContains(entry.SearchBlob, p.search) {
		return false
	}
	return true
}

func anyDirector(names []string, selected map[string]struct{}) bool {
	for _, name := range names {
		if _, ok := selected[name]; ok {
			return true
		}
	}
	return false
}
