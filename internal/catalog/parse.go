package catalog

import (
	"strconv"
	"strings"
	"time"
)

const genreSeparator = ", "

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"2006/01/02",
}

// ParseYear extracts the first run of exactly four digits from raw.
// Longer digit runs are skipped rather than truncated.
func ParseYear(raw string) (int, bool) {
	start := -1
	for i := 0; i <= len(raw); i++ {
		isDigit := i < len(raw) && raw[i] >= '0' && raw[i] <= '9'
		switch {
		case isDigit && start < 0:
			start = i
		case !isDigit && start >= 0:
			if i-start == 4 {
				year, err := strconv.Atoi(raw[start:i])
				if err == nil {
					return year, true
				}
			}
			start = -1
		}
	}
	return 0, false
}

// ParseRating parses a 0-10 rating. Decimal commas are accepted; values
// outside the range are treated as absent.
func ParseRating(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if !strings.Contains(raw, ".") {
		raw = strings.Replace(raw, ",", ".", 1)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 || value > 10 {
		return 0, false
	}
	return value, true
}

// SplitGenres splits on the literal ", " separator, dropping empty items.
func SplitGenres(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, genreSeparator)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// SplitDirectors splits a comma separated list and trims each name.
func SplitDirectors(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseInt(raw string) (int, bool) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if raw == "" {
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}

func formatRating(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func itoa(v int) string { return strconv.Itoa(v) }
