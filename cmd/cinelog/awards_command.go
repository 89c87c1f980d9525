package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cinelog/internal/awards"
	"cinelog/internal/dashboard"
	"cinelog/internal/filter"
)

func newAwardsCommand(ctx *commandContext) *cobra.Command {
	var (
		dataset    string
		from       int
		to         int
		categories []string
		search     string
		top        int
		ceremonies bool
	)

	cmd := &cobra.Command{
		Use:   "awards",
		Short: "Roll up award winners and cross-reference them with the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := ctx.library(cmd.Context())
			if err != nil {
				return err
			}
			q := dashboard.AwardsQuery{
				Dataset: strings.ToLower(strings.TrimSpace(dataset)),
				TopN:    top,
				Filter: awards.RollupFilter{
					Categories: nonBlank(categories),
					Search:     strings.TrimSpace(search),
				},
			}
			if cmd.Flags().Changed("from") || cmd.Flags().Changed("to") {
				q.Filter.CeremonyYears = &filter.IntRange{Min: openYearMin, Max: openYearMax}
				if cmd.Flags().Changed("from") {
					q.Filter.CeremonyYears.Min = from
				}
				if cmd.Flags().Changed("to") {
					q.Filter.CeremonyYears.Max = to
				}
			}
			if len(lib.AwardRecords(q.Dataset)) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No award dataset loaded; set catalog.awards_path or catalog.nominations_path")
				return nil
			}
			view, err := dashboard.AwardsReport(lib, q)
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, view)
			}
			renderAwards(cmd.OutOrStdout(), view, ceremonies)
			return nil
		},
	}
	cmd.Flags().StringVar(&dataset, "dataset", dashboard.DatasetAwards, "Dataset: awards or nominations")
	cmd.Flags().IntVar(&from, "from", 0, "First ceremony year")
	cmd.Flags().IntVar(&to, "to", 0, "Last ceremony year")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "Category (repeatable)")
	cmd.Flags().StringVarP(&search, "search", "q", "", "Search category, name and film")
	cmd.Flags().IntVar(&top, "top", dashboard.DefaultTopN, "Rows per ranking")
	cmd.Flags().BoolVar(&ceremonies, "ceremonies", false, "List winners per ceremony")
	return cmd
}

func renderAwards(out io.Writer, view dashboard.AwardsView, ceremonies bool) {
	fmt.Fprintf(out, "%d records in %s\n\n", view.Records, view.Dataset)

	if ceremonies {
		for _, c := range view.Ceremonies {
			heading(out, fmt.Sprintf("Ceremony %d", c.Year))
			for _, w := range c.Winners {
				fmt.Fprintf(out, "  %s: %s\n", w.CanonicalCategory, w.Label())
			}
		}
		fmt.Fprintln(out)
	}

	for _, section := range []struct {
		title string
		rows  []awards.Tally
	}{
		{"Wins by category", view.ByCategory},
		{"Wins by film", view.ByFilm},
		{"Wins by person", view.ByPerson},
	} {
		heading(out, section.title)
		rows := make([][]string, 0, len(section.rows))
		for _, t := range section.rows {
			rows = append(rows, []string{t.Label(), strconv.Itoa(t.Wins)})
		}
		fmt.Fprintln(out, renderTable([]column{textColumn("", titleWidth), numberColumn("Wins")}, rows, nil))
	}

	heading(out, "Films in your catalog")
	rows := make([][]string, 0, len(view.Films))
	for _, f := range view.Films {
		if !f.Seen {
			continue
		}
		rows = append(rows, []string{
			awards.Record{Film: f.Film, FilmYear: f.Year}.Label(),
			strconv.Itoa(f.Wins),
			strconv.Itoa(f.Nominations),
			optionalFloat(f.Entry.YourRating),
			f.Tier.String(),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]column{
			textColumn("Film", titleWidth),
			numberColumn("Wins"),
			numberColumn("Nominations"),
			numberColumn("Your rating"),
			textColumn("Match", 0),
		},
		rows,
		nil,
	))
	p := view.Progress
	fmt.Fprintf(out, "Seen %d of %d films (%.1f%%)\n", p.Seen, p.Total, p.Percent)
}
