package awards

import (
	"cinelog/internal/catalog"
	"cinelog/internal/match"
)

// FilmReport is one film of the dataset reconciled against the catalog.
type FilmReport struct {
	Film        string         `json:"film"`
	Year        *int           `json:"year,omitempty"`
	Categories  []string       `json:"categories"`
	Wins        int            `json:"wins"`
	Nominations int            `json:"nominations"`
	Entry       *catalog.Entry `json:"entry,omitempty"`
	Tier        match.Tier     `json:"tier"`
	Seen        bool           `json:"seen"`
}

// CrossReference groups the filtered records by film and matches each film
// against entries with the tiered title matcher. Reports keep the order in
// which films first appear.
func CrossReference(records []Record, f RollupFilter, entries []catalog.Entry) []FilmReport {
	type filmKey struct {
		film string
		year int
	}
	index := map[filmKey]int{}
	var reports []FilmReport
	for _, rec := range Filter(records, f) {
		if rec.Film == "" {
			continue
		}
		k := filmKey{film: rec.Film, year: -1}
		if rec.FilmYear != nil {
			k.year = *rec.FilmYear
		}
		idx, ok := index[k]
		if !ok {
			idx = len(reports)
			index[k] = idx
			reports = append(reports, FilmReport{Film: rec.Film, Year: rec.FilmYear})
		}
		r := &reports[idx]
		r.Nominations++
		if rec.Winner {
			r.Wins++
			r.Categories = appendUnique(r.Categories, rec.CanonicalCategory)
		}
	}

	refs := make([]match.Reference, len(reports))
	for i, r := range reports {
		refs[i] = match.Reference{Title: r.Film, Year: r.Year, Winner: r.Wins > 0}
		if len(r.Categories) > 0 {
			refs[i].CanonicalCategory = r.Categories[0]
		}
	}
	for i, res := range match.Resolve(refs, entries) {
		reports[i].Entry = res.Entry
		reports[i].Tier = res.Tier
		reports[i].Seen = res.Seen
	}
	return reports
}

// ForEntry returns the records whose film matches entry under the tiered
// title matcher, in dataset order.
func ForEntry(records []Record, entry catalog.Entry) []Record {
	m := match.NewMatcher([]catalog.Entry{entry})
	var out []Record
	for _, rec := range records {
		if rec.Film == "" {
			continue
		}
		if idx, _ := m.Lookup(rec.Film, rec.FilmYear); idx >= 0 {
			out = append(out, rec)
		}
	}
	return out
}

func appendUnique(list []string, v string) []string {
	if v == "" {
		return list
	}
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
