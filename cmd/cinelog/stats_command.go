package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cinelog/internal/dashboard"
	"cinelog/internal/session"
	"cinelog/internal/stats"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var flags criteriaFlags
	var top int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the filtered catalog",
		Long:  "Summarize the filtered catalog. Saved filters apply, except the text search, which only narrows browsing.",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := ctx.library(cmd.Context())
			if err != nil {
				return err
			}
			var view dashboard.StatsView
			_, err = ctx.withSession(cmd, func(_ context.Context, st *session.State) error {
				st.SetCriteria(flags.criteria(cmd, st.Criteria))
				v, err := dashboard.Stats(lib, st, top)
				view = v
				return err
			})
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, view)
			}
			renderStats(cmd.OutOrStdout(), view)
			return nil
		},
	}
	flags.bind(cmd)
	cmd.Flags().IntVar(&top, "top", dashboard.DefaultTopN, "Number of genres to list")
	return cmd
}

func renderStats(out io.Writer, view dashboard.StatsView) {
	s := view.Summary
	heading(out, "Summary")
	fmt.Fprintf(out, "Titles:             %d\n", s.Count)
	fmt.Fprintf(out, "Mean rating:        %s\n", optionalFloat(s.MeanRating))
	fmt.Fprintf(out, "Mean IMDb rating:   %s\n", optionalFloat(s.MeanIMDbRating))
	fmt.Fprintf(out, "Distinct directors: %d\n", s.DistinctDirectors)
	fmt.Fprintf(out, "Years:              %s to %s\n", optionalInt(s.EarliestYear), optionalInt(s.LatestYear))
	fmt.Fprintf(out, "Total runtime:      %dh %02dm\n", s.TotalRuntime/60, s.TotalRuntime%60)
	fmt.Fprintln(out)

	if s.Count == 0 {
		return
	}

	heading(out, "Ratings")
	rows := make([][]string, 0, len(view.Histogram))
	for _, b := range view.Histogram {
		rows = append(rows, []string{strconv.Itoa(b.Rating), strconv.Itoa(b.Count), bar(b.Count, maxBucket(view.Histogram))})
	}
	fmt.Fprintln(out, renderTable([]column{numberColumn("Rating"), numberColumn("Titles"), textColumn("", 0)}, rows, nil))

	heading(out, "Top genres")
	rows = rows[:0]
	for _, g := range view.TopGenres {
		rows = append(rows, []string{g.Genre, strconv.Itoa(g.Count)})
	}
	fmt.Fprintln(out, renderTable([]column{textColumn("Genre", 0), numberColumn("Titles")}, rows, nil))

	heading(out, "IMDb rating by decade")
	rows = rows[:0]
	for _, d := range view.DecadeMeans {
		rows = append(rows, []string{fmt.Sprintf("%ds", d.Decade), fmt.Sprintf("%.2f", d.Mean), strconv.Itoa(d.Count)})
	}
	fmt.Fprintln(out, renderTable([]column{textColumn("Decade", 0), numberColumn("Mean"), numberColumn("Titles")}, rows, nil))

	heading(out, "Titles by year")
	rows = rows[:0]
	for _, y := range view.ByYear {
		rows = append(rows, []string{strconv.Itoa(y.Year), strconv.Itoa(y.Count)})
	}
	fmt.Fprintln(out, renderTable([]column{numberColumn("Year"), numberColumn("Titles")}, rows, nil))
}

func maxBucket(buckets []stats.Bucket) int {
	m := 0
	for _, b := range buckets {
		m = max(m, b.Count)
	}
	return m
}

func bar(n, total int) string {
	const width = 30
	if total <= 0 || n <= 0 {
		return ""
	}
	return strings.Repeat("#", max(1, n*width/total))
}
