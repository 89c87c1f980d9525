package awards

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"

	"cinelog/internal/catalog"
	"cinelog/internal/tabular"
)

// Option customizes loading.
type Option func(*loader)

type loader struct {
	mapper CategoryMapper
}

// WithCategoryMapper replaces DefaultCategoryMapper.
func WithCategoryMapper(mapper CategoryMapper) Option {
	return func(l *loader) {
		if mapper != nil {
			l.mapper = mapper
		}
	}
}

// Load parses an award dataset from r.
func Load(r io.Reader, opts ...Option) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return Parse(data, "", opts...)
}

// LoadFile reads and parses the award dataset at path.
func LoadFile(path string, opts ...Option) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return Parse(data, path, opts...)
}

// Parse builds a dataset from raw file contents. source only labels errors.
func Parse(data []byte, source string, opts ...Option) (*Dataset, error) {
	l := loader{mapper: DefaultCategoryMapper}
	for _, opt := range opts {
		opt(&l)
	}

	table, err := tabular.Read(bytes.NewReader(data))
	if err != nil {
		loadErr := &LoadError{Source: source, Err: err}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			loadErr.Line = parseErr.Line
		}
		return nil, loadErr
	}

	cols, format, ok := detect(table.Header)
	if !ok {
		return nil, &LoadError{Source: source, Line: 1, Err: ErrUnknownFormat}
	}

	ds := &Dataset{Format: format, Records: make([]Record, 0, len(table.Rows))}
	for _, row := range table.Rows {
		rec := Record{
			Category: row.Get(cols.category),
			Name:     row.Get(cols.name),
			Film:     row.Get(cols.film),
			Winner:   parseWinner(row.Get(cols.winner)),
		}
		if rec.Category == "" && rec.Film == "" {
			ds.Skipped++
			continue
		}
		if y, ok := catalog.ParseYear(row.Get(cols.filmYear)); ok {
			rec.FilmYear = &y
		}
		if y, ok := catalog.ParseYear(row.Get(cols.ceremonyYear)); ok {
			rec.CeremonyYear = &y
		} else if format == FormatNomination && rec.FilmYear != nil {
			next := *rec.FilmYear + 1
			rec.CeremonyYear = &next
		}
		if n, err := strconv.Atoi(row.Get(cols.ceremony)); err == nil {
			rec.Ceremony = n
		}
		rec.CanonicalCategory = l.mapper(rec.Category, row.Get(cols.canonCategory))
		ds.Records = append(ds.Records, rec)
	}
	return ds, nil
}

type columns struct {
	filmYear      int
	ceremonyYear  int
	ceremony      int
	category      int
	canonCategory int
	name          int
	film          int
	winner        int
}

func detect(h tabular.Header) (columns, Format, bool) {
	cols := columns{
		category:      h.Column("category"),
		canonCategory: h.Column("canon_category"),
		name:          h.Column("name"),
		film:          h.Column("film"),
		winner:        h.Column("winner"),
		ceremony:      h.Column("ceremony"),
	}
	if cols.category < 0 || cols.film < 0 {
		return cols, "", false
	}

	filmYear, hasFilmYear := h.Index("year_film")
	ceremonyYear, hasCeremonyYear := h.Index("year_ceremony")
	if hasFilmYear || hasCeremonyYear {
		cols.filmYear = filmYear
		cols.ceremonyYear = ceremonyYear
		return cols, FormatCeremony, true
	}

	year, ok := h.Index("year")
	if !ok {
		return cols, "", false
	}
	cols.filmYear = year
	cols.ceremonyYear = -1
	cols.canonCategory = -1
	cols.ceremony = -1
	return cols, FormatNomination, true
}
