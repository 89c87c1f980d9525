package filter

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"cinelog/internal/catalog"
)

// Field names a sortable column.
type Field string

// Sortable fields.
const (
	FieldTitle      Field = "title"
	FieldYear       Field = "year"
	FieldYourRating Field = "your_rating"
	FieldIMDbRating Field = "imdb_rating"
	FieldDateRated  Field = "date_rated"
	FieldRuntime    Field = "runtime"
)

// Fields lists every sortable field in display order.
func Fields() []Field {
	return []Field{FieldTitle, FieldYear, FieldYourRating, FieldIMDbRating, FieldDateRated, FieldRuntime}
}

// ParseField maps a user-supplied name onto a Field.
func ParseField(name string) (Field, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	switch normalized {
	case "", "title":
		return FieldTitle, nil
	case "year":
		return FieldYear, nil
	case "your_rating", "rating":
		return FieldYourRating, nil
	case "imdb_rating", "imdb":
		return FieldIMDbRating, nil
	case "date_rated", "rated":
		return FieldDateRated, nil
	case "runtime", "runtime_mins":
		return FieldRuntime, nil
	default:
		return "", fmt.Errorf("unknown sort field %q", name)
	}
}

// Order is a column ordering.
type Order struct {
	Field      Field `json:"field" validate:"omitempty,oneof=title year your_rating imdb_rating date_rated runtime"`
	Descending bool  `json:"descending"`
}

// Sort orders entries in place by o. The sort is stable and entries with an
// absent value always come last regardless of direction.
func Sort(entries []catalog.Entry, o Order) {
	field := o.Field
	if field == "" {
		field = FieldTitle
	}
	slices.SortStableFunc(entries, func(a, b catalog.Entry) int {
		return compareBy(field, a, b, o.Descending)
	})
}

// Shuffle permutes entries uniformly using rng. A nil rng uses the global
// source, which is not reproducible.
func Shuffle(entries []catalog.Entry, rng *rand.Rand) {
	swap := func(i, j int) { entries[i], entries[j] = entries[j], entries[i] }
	if rng == nil {
		rand.Shuffle(len(entries), swap)
		return
	}
	rng.Shuffle(len(entries), swap)
}

func compareBy(field Field, a, b catalog.Entry, desc bool) int {
	switch field {
	case FieldYear:
		return compareOptional(a.Year, b.Year, desc)
	case FieldYourRating:
		return compareOptional(a.YourRating, b.YourRating, desc)
	case FieldIMDbRating:
		return compareOptional(a.IMDbRating, b.IMDbRating, desc)
	case FieldRuntime:
		return compareOptional(a.RuntimeMinutes, b.RuntimeMinutes, desc)
	case FieldDateRated:
		switch {
		case a.DateRated == nil && b.DateRated == nil:
			return 0
		case a.DateRated == nil:
			return 1
		case b.DateRated == nil:
			return -1
		}
		return direct(a.DateRated.Compare(*b.DateRated), desc)
	default:
		return direct(strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)), desc)
	}
}

func compareOptional[T cmp.Ordered](a, b *T, desc bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return direct(cmp.Compare(*a, *b), desc)
}

func direct(c int, desc bool) int {
	if desc {
		return -c
	}
	return c
}
