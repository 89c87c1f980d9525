package match

import (
	"strings"

	"cinelog/internal/catalog"
	"cinelog/internal/textutil"
)

// Tier identifies which rule produced a match.
type Tier int

// Match tiers in evaluation order.
const (
	TierNone Tier = iota
	TierYearExact
	TierYearContains
	TierExact
	TierContains
)

func (t Tier) String() string {
	switch t {
	case TierYearExact:
		return "year+title"
	case TierYearContains:
		return "year+contains"
	case TierExact:
		return "title"
	case TierContains:
		return "contains"
	default:
		return "none"
	}
}

// MarshalText renders the tier name in JSON output.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Matcher indexes a catalog for repeated lookups. It holds no reference to
// caller state beyond the entries slice, which must not change underneath it.
type Matcher struct {
	entries []catalog.Entry
	byYear  map[int][]int
	byTitle map[string][]int
}

// NewMatcher indexes entries by year and normalized title.
func NewMatcher(entries []catalog.Entry) *Matcher {
	m := &Matcher{
		entries: entries,
		byYear:  make(map[int][]int),
		byTitle: make(map[string][]int, len(entries)),
	}
	for i, e := range entries {
		if year, ok := e.YearValue(); ok {
			m.byYear[year] = append(m.byYear[year], i)
		}
		m.byTitle[normalized(e)] = append(m.byTitle[normalized(e)], i)
	}
	return m
}

// Lookup returns the index of the matching entry and the tier that matched,
// or -1 and TierNone.
func (m *Matcher) Lookup(title string, year *int) (int, Tier) {
	key := textutil.NormalizeTitle(title)
	if key == "" {
		return -1, TierNone
	}

	if year != nil {
		for _, idx := range m.byTitle[key] {
			if y, ok := m.entries[idx].YearValue(); ok && y == *year {
				return idx, TierYearExact
			}
		}
		for _, idx := range m.byYear[*year] {
			if strings.Contains(normalized(m.entries[idx]), key) {
				return idx, TierYearContains
			}
		}
	}
	if hits := m.byTitle[key]; len(hits) > 0 {
		return hits[0], TierExact
	}
	for idx := range m.entries {
		if strings.Contains(normalized(m.entries[idx]), key) {
			return idx, TierContains
		}
	}
	return -1, TierNone
}

// Find returns the first entry matching title and year under the tier rules.
func (m *Matcher) Find(title string, year *int) (catalog.Entry, bool) {
	idx, _ := m.Lookup(title, year)
	if idx < 0 {
		return catalog.Entry{}, false
	}
	return m.entries[idx], true
}

// Find matches a single reference against entries. Use a Matcher when
// resolving many references against the same catalog.
func Find(title string, year *int, entries []catalog.Entry) (catalog.Entry, bool) {
	return NewMatcher(entries).Find(title, year)
}

// normalized tolerates entries built outside the loader.
func normalized(e catalog.Entry) string {
	if e.NormalizedTitle != "" {
		return e.NormalizedTitle
	}
	return textutil.NormalizeTitle(e.Title)
}
