// Package tabular reads delimited text exports into header-addressable rows.
//
// The delimiter is detected from the header line (comma, semicolon, tab, or
// pipe, whichever occurs most outside quotes) so catalog and award exports
// saved by spreadsheets in other locales load without configuration.
package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEmpty is returned when the input has no header row.
var ErrEmpty = errors.New("no header row")

var candidateDelimiters = []rune{',', ';', '\t', '|'}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table is a parsed delimited file.
type Table struct {
	Header    Header
	Delimiter rune
	Rows      []Row
}

// Row is one record plus the 1-based line it started on.
type Row struct {
	Line   int
	Fields []string
}

// Get returns the trimmed field at idx, or "" when idx is negative or past
// the end of a short row.
func (r Row) Get(idx int) string {
	if idx < 0 || idx >= len(r.Fields) {
		return ""
	}
	return strings.TrimSpace(r.Fields[idx])
}

// Header maps lower-cased, trimmed column names to their positions.
type Header struct {
	names   []string
	indexes map[string]int
}

// Names returns the column names as they appear in the file.
func (h Header) Names() []string {
	return append([]string(nil), h.names...)
}

// Index returns the position of the first of names present in the header.
// Lookups ignore case and surrounding whitespace.
func (h Header) Index(names ...string) (int, bool) {
	for _, name := range names {
		if idx, ok := h.indexes[strings.ToLower(strings.TrimSpace(name))]; ok {
			return idx, true
		}
	}
	return -1, false
}

// Column is Index without the presence flag; absent columns yield -1, which
// Row.Get treats as an empty field.
func (h Header) Column(names ...string) int {
	idx, _ := h.Index(names...)
	return idx
}

// Read parses r as a delimited table. Parse failures carry the offending
// line through *csv.ParseError.
func Read(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return Parse(data)
}

// Parse is Read over an in-memory buffer.
func Parse(data []byte) (*Table, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmpty
	}

	delimiter := DetectDelimiter(firstLine(data))
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = false

	headerFields, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, err
	}

	table := &Table{
		Header:    newHeader(headerFields),
		Delimiter: delimiter,
	}
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		if isBlank(fields) {
			continue
		}
		table.Rows = append(table.Rows, Row{Line: line, Fields: fields})
	}
	return table, nil
}

// DetectDelimiter picks the candidate delimiter occurring most often outside
// double quotes in line. Ties and lines without any candidate fall back to a comma.
func DetectDelimiter(line string) rune {
	counts := make(map[rune]int, len(candidateDelimiters))
	inQuotes := false
	for _, r := range line {
		if r == '"' {
			inQuotes = !inQuotes
			continue
		}
		if inQuotes {
			continue
		}
		for _, candidate := range candidateDelimiters {
			if r == candidate {
				counts[r]++
			}
		}
	}
	best, bestCount := ',', 0
	for _, candidate := range candidateDelimiters {
		if counts[candidate] > bestCount {
			best, bestCount = candidate, counts[candidate]
		}
	}
	return best
}

func newHeader(fields []string) Header {
	h := Header{
		names:   make([]string, len(fields)),
		indexes: make(map[string]int, len(fields)),
	}
	for i, name := range fields {
		name = strings.TrimSpace(name)
		h.names[i] = name
		key := strings.ToLower(name)
		if _, dup := h.indexes[key]; !dup {
			h.indexes[key] = i
		}
	}
	return h
}

func firstLine(data []byte) string {
	if idx := bytes.IndexAny(data, "\r\n"); idx >= 0 {
		return string(data[:idx])
	}
	return string(data)
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
