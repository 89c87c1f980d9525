package match

import (
	"math"

	"cinelog/internal/catalog"
)

// Reference is one entry of a reference list: a canon rank or an award
// record reduced to what matching needs.
type Reference struct {
	Rank              int    `json:"rank,omitempty"`
	Category          string `json:"category,omitempty"`
	Title             string `json:"title"`
	Year              *int   `json:"year,omitempty"`
	CanonicalCategory string `json:"canonical_category,omitempty"`
	Winner            bool   `json:"winner"`
}

// Result pairs a reference with at most one catalog entry.
type Result struct {
	Reference Reference      `json:"reference"`
	Entry     *catalog.Entry `json:"entry,omitempty"`
	Tier      Tier           `json:"tier"`
	Seen      bool           `json:"seen"`
}

// Resolve matches every reference against entries, preserving reference
// order. Results are recomputed per call and never cached.
func Resolve(refs []Reference, entries []catalog.Entry) []Result {
	m := NewMatcher(entries)
	out := make([]Result, len(refs))
	for i, ref := range refs {
		out[i] = Result{Reference: ref}
		idx, tier := m.Lookup(ref.Title, ref.Year)
		if idx < 0 {
			continue
		}
		entry := entries[idx]
		out[i].Entry = &entry
		out[i].Tier = tier
		out[i].Seen = true
	}
	return out
}

// ProgressReport summarizes how much of a reference list has been seen.
type ProgressReport struct {
	Seen    int     `json:"seen"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

// Progress counts seen results. Percent is rounded to one decimal place and
// is 0 for an empty list.
func Progress(results []Result) ProgressReport {
	seen := 0
	for _, r := range results {
		if r.Seen {
			seen++
		}
	}
	return ProgressOf(seen, len(results))
}

// ProgressOf builds a report from raw counts.
func ProgressOf(seen, total int) ProgressReport {
	report := ProgressReport{Seen: seen, Total: total}
	if total > 0 {
		report.Percent = math.Round(float64(seen)*1000/float64(total)) / 10
	}
	return report
}

// Unseen returns the references without a catalog match.
func Unseen(results []Result) []Reference {
	var out []Reference
	for _, r := range results {
		if !r.Seen {
			out = append(out, r.Reference)
		}
	}
	return out
}
