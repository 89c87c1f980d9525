package filter

import (
	"cinelog/internal/validation"
)

// IntRange is an inclusive integer window.
type IntRange struct {
	Min int `json:"min" toml:"min"`
	Max int `json:"max" toml:"max" validate:"gtefield=Min"`
}

// Contains reports whether v lies inside the window.
func (r IntRange) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// FloatRange is an inclusive rating window on the 0-10 scale.
type FloatRange struct {
	Min float64 `json:"min" toml:"min" validate:"gte=0,lte=10"`
	Max float64 `json:"max" toml:"max" validate:"gte=0,lte=10,gtefield=Min"`
}

// Contains reports whether v lies inside the window.
func (r FloatRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Criteria is the conjunction of active predicates. A nil range or empty set
// leaves that dimension unconstrained.
type Criteria struct {
	Years     *IntRange   `json:"years,omitempty"`
	Ratings   *FloatRange `json:"ratings,omitempty"`
	Genres    []string    `json:"genres,omitempty"`
	Directors []string    `json:"directors,omitempty"`
	Search    string      `json:"search,omitempty"`
}

// WithoutSearch returns a copy with the free-text term cleared. Analytics
// views aggregate over this form; browsing applies the full criteria.
func (c Criteria) WithoutSearch() Criteria {
	c.Search = ""
	return c
}

// IsZero reports whether no predicate is active.
func (c Criteria) IsZero() bool {
	return c.Years == nil && c.Ratings == nil && len(c.Genres) == 0 &&
		len(c.Directors) == 0 && c.Search == ""
}

// Validate rejects inverted or out-of-scale ranges.
func (c Criteria) Validate() error {
	return validation.Struct(c)
}
