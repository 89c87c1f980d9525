package awards

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format identifies an award dataset layout.
type Format string

// Recognized layouts.
const (
	FormatCeremony   Format = "ceremony"
	FormatNomination Format = "nomination"
)

// ErrUnknownFormat is wrapped by LoadError when the header matches neither layout.
var ErrUnknownFormat = errors.New("unrecognized award dataset header")

// LoadError reports an award file that could not be read.
type LoadError struct {
	Source string
	Line   int
	Err    error
}

func (e *LoadError) Error() string {
	source := e.Source
	if source == "" {
		source = "award dataset"
	}
	if e.Line > 0 {
		return fmt.Sprintf("load %s: line %d: %v", source, e.Line, e.Err)
	}
	return fmt.Sprintf("load %s: %v", source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Record is one nomination.
type Record struct {
	FilmYear          *int   `json:"film_year,omitempty"`
	CeremonyYear      *int   `json:"ceremony_year,omitempty"`
	Ceremony          int    `json:"ceremony,omitempty"`
	Category          string `json:"category"`
	CanonicalCategory string `json:"canonical_category"`
	Name              string `json:"name,omitempty"`
	Film              string `json:"film,omitempty"`
	Winner            bool   `json:"winner"`
}

// Dataset is a loaded award file.
type Dataset struct {
	Format  Format   `json:"format"`
	Records []Record `json:"records"`
	// Skipped counts rows with neither a category nor a film.
	Skipped int `json:"skipped"`
}

// CategoryMapper derives the canonical category from the raw category and
// the dataset's own canonical column (empty when the layout lacks one).
type CategoryMapper func(raw, canonical string) string

var (
	titleCaser   = cases.Title(language.English)
	titleCaserMu sync.Mutex
)

// DefaultCategoryMapper keeps a supplied canonical category, otherwise
// title-cases the raw one ("ACTOR IN A LEADING ROLE" becomes
// "Actor In A Leading Role").
func DefaultCategoryMapper(raw, canonical string) string {
	if canonical = strings.TrimSpace(canonical); canonical != "" {
		return canonical
	}
	raw = strings.Join(strings.Fields(raw), " ")
	if raw == "" {
		return ""
	}
	titleCaserMu.Lock()
	defer titleCaserMu.Unlock()
	return titleCaser.String(strings.ToLower(raw))
}

// Label renders "Film (Year)" or the nominee name when the film is blank.
func (r Record) Label() string {
	subject := r.Film
	if subject == "" {
		subject = r.Name
	}
	if r.FilmYear != nil {
		return fmt.Sprintf("%s (%d)", subject, *r.FilmYear)
	}
	return subject
}

// parseWinner accepts the spellings seen in published exports.
func parseWinner(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "y", "winner", "won", "x":
		return true
	default:
		return false
	}
}
