package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"cinelog/internal/catalog"
	"cinelog/internal/enrich"
)

const (
	ansiBold  = "\033[1m"
	ansiBlue  = "\033[34m"
	ansiReset = "\033[0m"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// heading prints a title line, bold on a terminal.
func heading(out io.Writer, title string) {
	if shouldColorize(out) {
		fmt.Fprintln(out, ansiBold+ansiBlue+title+ansiReset)
		return
	}
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, strings.Repeat("-", len(title)))
}

func optionalInt(v *int) string {
	if v == nil {
		return enrich.Placeholder
	}
	return strconv.Itoa(*v)
}

func optionalDate(v *time.Time) string {
	if v == nil {
		return enrich.Placeholder
	}
	return v.Format(time.DateOnly)
}

func optionalFloat(v *float64) string {
	return enrich.RatingText(v)
}

func joinOrPlaceholder(values []string) string {
	if len(values) == 0 {
		return enrich.Placeholder
	}
	return strings.Join(values, ", ")
}

// entryRows renders entries as browse table rows numbered from offset+1.
func entryRows(entries []catalog.Entry, offset int) [][]string {
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(offset + i + 1),
			e.Title,
			optionalInt(e.Year),
			optionalFloat(e.YourRating),
			optionalFloat(e.IMDbRating),
			joinOrPlaceholder(e.Genres),
			joinOrPlaceholder(e.Directors),
		})
	}
	return rows
}

var entryColumns = []column{
	numberColumn("#"),
	textColumn("Title", titleWidth),
	numberColumn("Year"),
	numberColumn("Rating"),
	numberColumn("IMDb"),
	textColumn("Genres", listWidth),
	textColumn("Directors", listWidth),
}
