package awards

import (
	"cmp"
	"slices"
	"strings"

	"cinelog/internal/filter"
	"cinelog/internal/textutil"
)

// RollupFilter narrows records before a rollup. Zero values leave a
// dimension unconstrained. Categories match either the raw or canonical
// category, ignoring case.
type RollupFilter struct {
	CeremonyYears *filter.IntRange `json:"ceremony_years,omitempty"`
	Categories    []string         `json:"categories,omitempty"`
	Search        string           `json:"search,omitempty"`
	WinnersOnly   bool             `json:"winners_only,omitempty"`
}

// Filter returns the records satisfying f, in dataset order.
func Filter(records []Record, f RollupFilter) []Record {
	categories := make(map[string]struct{}, len(f.Categories))
	for _, c := range f.Categories {
		if c = strings.ToLower(strings.TrimSpace(c)); c != "" {
			categories[c] = struct{}{}
		}
	}

	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if f.WinnersOnly && !rec.Winner {
			continue
		}
		if f.CeremonyYears != nil {
			if rec.CeremonyYear == nil || !f.CeremonyYears.Contains(*rec.CeremonyYear) {
				continue
			}
		}
		if len(categories) > 0 {
			_, raw := categories[strings.ToLower(rec.Category)]
			_, canon := categories[strings.ToLower(rec.CanonicalCategory)]
			if !raw && !canon {
				continue
			}
		}
		if f.Search != "" && !textutil.FoldContains(rec.Category+" "+rec.Name+" "+rec.Film, f.Search) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// CeremonyWinners lists the winners of one ceremony year.
type CeremonyWinners struct {
	Year    int      `json:"year"`
	Winners []Record `json:"winners"`
}

// WinnersByCeremony groups winning records by ceremony year, ascending.
// Records without a ceremony year are left out.
func WinnersByCeremony(records []Record, f RollupFilter) []CeremonyWinners {
	f.WinnersOnly = true
	groups := map[int][]Record{}
	for _, rec := range Filter(records, f) {
		if rec.CeremonyYear == nil {
			continue
		}
		groups[*rec.CeremonyYear] = append(groups[*rec.CeremonyYear], rec)
	}
	out := make([]CeremonyWinners, 0, len(groups))
	for year, winners := range groups {
		out = append(out, CeremonyWinners{Year: year, Winners: winners})
	}
	slices.SortFunc(out, func(a, b CeremonyWinners) int { return cmp.Compare(a.Year, b.Year) })
	return out
}

// Tally is a win count for one key. Year is set only for film tallies.
type Tally struct {
	Key  string `json:"key"`
	Year *int   `json:"year,omitempty"`
	Wins int    `json:"wins"`
}

// Label renders the key with its year when known.
func (t Tally) Label() string {
	if t.Year == nil {
		return t.Key
	}
	return Record{Film: t.Key, FilmYear: t.Year}.Label()
}

// WinsByCategory counts wins per canonical category.
func WinsByCategory(records []Record, f RollupFilter) []Tally {
	return tally(records, f, func(r Record) (string, *int) { return r.CanonicalCategory, nil })
}

// WinsByFilm counts wins per film and film year.
func WinsByFilm(records []Record, f RollupFilter) []Tally {
	return tally(records, f, func(r Record) (string, *int) { return r.Film, r.FilmYear })
}

// WinsByPerson counts wins per nominee name.
func WinsByPerson(records []Record, f RollupFilter) []Tally {
	return tally(records, f, func(r Record) (string, *int) { return r.Name, nil })
}

// tally counts winners by key, highest first; ties keep first-encounter order.
func tally(records []Record, f RollupFilter, key func(Record) (string, *int)) []Tally {
	f.WinnersOnly = true
	type tallyKey struct {
		name string
		year int
	}
	index := map[tallyKey]int{}
	var out []Tally
	for _, rec := range Filter(records, f) {
		name, year := key(rec)
		if name == "" {
			continue
		}
		k := tallyKey{name: name, year: -1}
		if year != nil {
			k.year = *year
		}
		idx, ok := index[k]
		if !ok {
			idx = len(out)
			index[k] = idx
			out = append(out, Tally{Key: name, Year: year})
		}
		out[idx].Wins++
	}
	slices.SortStableFunc(out, func(a, b Tally) int { return cmp.Compare(b.Wins, a.Wins) })
	return out
}
