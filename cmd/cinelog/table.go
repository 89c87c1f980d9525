package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Column widths for catalog tables. Longer cells wrap on word boundaries.
const (
	titleWidth = 40
	listWidth  = 28
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// column describes one table column. A zero width leaves it unbounded.
type column struct {
	header string
	align  columnAlignment
	width  int
}

// textColumn is a left-aligned column capped at width.
func textColumn(header string, width int) column {
	return column{header: header, align: alignLeft, width: width}
}

// numberColumn is a right-aligned column for counts, years and ratings.
func numberColumn(header string) column {
	return column{header: header, align: alignRight}
}

// renderTable draws rows under cols. Short rows are padded with blanks. A
// non-nil footer is drawn below the rows, for totals.
func renderTable(cols []column, rows [][]string, footer []string) string {
	if len(cols) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Footer = text.FormatDefault

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.header
	}
	tw.AppendHeader(tableRow(headers, len(cols)))
	for _, row := range rows {
		tw.AppendRow(tableRow(row, len(cols)))
	}
	if footer != nil {
		tw.AppendFooter(tableRow(footer, len(cols)))
	}

	configs := make([]table.ColumnConfig, len(cols))
	for i, c := range cols {
		cfg := table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
			AlignFooter: text.AlignLeft,
		}
		if c.align == alignRight {
			cfg.Align = text.AlignRight
			cfg.AlignFooter = text.AlignRight
		}
		if c.width > 0 {
			cfg.WidthMax = c.width
			cfg.WidthMaxEnforcer = text.WrapSoft
		}
		configs[i] = cfg
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func tableRow(cells []string, columns int) table.Row {
	row := make(table.Row, columns)
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = ""
		}
	}
	return row
}
