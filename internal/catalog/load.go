package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"cinelog/internal/tabular"
	"cinelog/internal/textutil"
)

// schema holds the column positions of a source file; -1 marks an absent column.
type schema struct {
	title, originalTitle, year, yourRating, imdbRating int
	genres, directors, dateRated, url                  int
	constID, titleType, runtime, numVotes              int
}

func newSchema(h tabular.Header) (schema, error) {
	title, ok := h.Index("Title", "Name")
	if !ok {
		return schema{}, ErrNoTitleColumn
	}
	return schema{
		title:         title,
		originalTitle: h.Column("Original Title"),
		year:          h.Column("Year", "Release Year"),
		yourRating:    h.Column("Your Rating"),
		imdbRating:    h.Column("IMDb Rating"),
		genres:        h.Column("Genres"),
		directors:     h.Column("Directors", "Director"),
		dateRated:     h.Column("Date Rated", "Watched Date"),
		url:           h.Column("URL"),
		constID:       h.Column("Const"),
		titleType:     h.Column("Title Type"),
		runtime:       h.Column("Runtime (mins)"),
		numVotes:      h.Column("Num Votes"),
	}, nil
}

func (s schema) columns() Columns {
	return Columns{
		Year:          s.year >= 0,
		YourRating:    s.yourRating >= 0,
		IMDbRating:    s.imdbRating >= 0,
		Genres:        s.genres >= 0,
		Directors:     s.directors >= 0,
		DateRated:     s.dateRated >= 0,
		OriginalTitle: s.originalTitle >= 0,
		URL:           s.url >= 0,
	}
}

// Load parses a catalog export from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return Parse(data, "")
}

// LoadFile reads and parses the catalog export at path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return Parse(data, path)
}

// Parse builds a catalog from raw file contents. source only labels errors.
func Parse(data []byte, source string) (*Catalog, error) {
	table, err := tabular.Read(bytes.NewReader(data))
	if err != nil {
		loadErr := &LoadError{Source: source, Err: err}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			loadErr.Line = parseErr.Line
		}
		return nil, loadErr
	}

	s, err := newSchema(table.Header)
	if err != nil {
		return nil, &LoadError{Source: source, Line: 1, Err: err}
	}

	cat := &Catalog{
		Entries: make([]Entry, 0, len(table.Rows)),
		Columns: s.columns(),
	}
	for _, row := range table.Rows {
		entry, ok := s.entry(row)
		if !ok {
			cat.Skipped++
			continue
		}
		cat.Entries = append(cat.Entries, entry)
	}
	return cat, nil
}

func (s schema) entry(row tabular.Row) (Entry, bool) {
	title := row.Get(s.title)
	if title == "" {
		return Entry{}, false
	}
	entry := Entry{
		Const:           row.Get(s.constID),
		Title:           title,
		NormalizedTitle: textutil.NormalizeTitle(title),
		OriginalTitle:   row.Get(s.originalTitle),
		TitleType:       row.Get(s.titleType),
		Genres:          SplitGenres(row.Get(s.genres)),
		Directors:       SplitDirectors(row.Get(s.directors)),
		URL:             row.Get(s.url),
	}
	if year, ok := ParseYear(row.Get(s.year)); ok {
		entry.Year = &year
	}
	if rating, ok := ParseRating(row.Get(s.yourRating)); ok {
		entry.YourRating = &rating
	}
	if rating, ok := ParseRating(row.Get(s.imdbRating)); ok {
		entry.IMDbRating = &rating
	}
	if runtime, ok := parseInt(row.Get(s.runtime)); ok {
		entry.RuntimeMinutes = &runtime
	}
	if votes, ok := parseInt(row.Get(s.numVotes)); ok {
		entry.NumVotes = &votes
	}
	if rated, ok := parseDate(row.Get(s.dateRated)); ok {
		entry.DateRated = &rated
	}
	entry.SearchBlob = searchBlob(entry, row.Get(s.directors), row.Get(s.genres))
	return entry, true
}

func searchBlob(e Entry, rawDirectors, rawGenres string) string {
	year := ""
	if y, ok := e.YearValue(); ok {
		year = itoa(y)
	}
	parts := []string{e.Title, e.OriginalTitle, rawDirectors, rawGenres, year, formatRating(e.YourRating), formatRating(e.IMDbRating)}
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.ToLower(strings.Join(kept, " "))
}
