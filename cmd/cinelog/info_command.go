package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cinelog/internal/awards"
	"cinelog/internal/catalog"
	"cinelog/internal/dashboard"
	"cinelog/internal/enrich"
	"cinelog/internal/filter"
	"cinelog/internal/match"
	"cinelog/internal/textutil"
)

const suggestionThreshold = 0.3

type infoView struct {
	Card    enrich.Card     `json:"card"`
	Awards  []awards.Record `json:"awards"`
	Session string          `json:"session"`
	InView  bool            `json:"in_view"`
}

func newInfoCommand(ctx *commandContext) *cobra.Command {
	var year int
	var offline bool

	cmd := &cobra.Command{
		Use:   "info <title>",
		Short: "Show one catalog title with its metadata and awards",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := ctx.library(cmd.Context())
			if err != nil {
				return err
			}
			title := strings.Join(args, " ")
			var yearPtr *int
			if cmd.Flags().Changed("year") {
				yearPtr = &year
			}
			entry, ok := match.Find(title, yearPtr, lib.Entries())
			if !ok {
				return notFound(cmd.OutOrStdout(), title, lib.Entries())
			}

			sessions, err := ctx.sessions()
			if err != nil {
				return err
			}
			st, err := sessions.Open(cmd.Context(), ctx.sessionName(), ctx.configValue().Catalog.PageSize)
			if err != nil {
				return err
			}

			view := infoView{
				Card: enrich.Card{
					Entry:      entry,
					Providers:  enrich.Providers{Country: ctx.configValue().Catalog.Country},
					AwardsText: enrich.Placeholder,
					ReviewURL:  enrich.ReviewLink(entry),
				},
				Session: st.Name,
				InView:  filter.Matches(entry, st.Criteria),
			}
			view.Awards = append(view.Awards, awards.ForEntry(lib.AwardRecords(dashboard.DatasetAwards), entry)...)
			view.Awards = append(view.Awards, awards.ForEntry(lib.AwardRecords(dashboard.DatasetNominations), entry)...)

			if !offline {
				err := ctx.withEnricher(cmd.Context(), func(svc *enrich.Service) error {
					view.Card = svc.Card(cmd.Context(), entry)
					return nil
				})
				if err != nil {
					return err
				}
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, view)
			}
			out := cmd.OutOrStdout()
			heading(out, entry.Label())
			renderCard(out, view.Card)
			fmt.Fprintf(out, "  In view:   %s (session %s)\n", yesNo(view.InView), view.Session)
			if len(view.Awards) > 0 {
				fmt.Fprintln(out)
				heading(out, "Academy Awards")
				for _, rec := range view.Awards {
					result := "nominated"
					if rec.Winner {
						result = "won"
					}
					fmt.Fprintf(out, "  %s %s: %s (%s)\n", optionalInt(rec.CeremonyYear), rec.CanonicalCategory, rec.Name, result)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Release year to disambiguate")
	cmd.Flags().BoolVar(&offline, "offline", false, "Skip metadata lookups")
	return cmd
}

func notFound(out io.Writer, title string, entries []catalog.Entry) error {
	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = e.Title
	}
	suggestions := textutil.Suggest(title, titles, 5, suggestionThreshold)
	if len(suggestions) == 0 {
		return fmt.Errorf("no catalog title matches %q", title)
	}
	fmt.Fprintf(out, "No catalog title matches %q. Did you mean:\n", title)
	for _, s := range suggestions {
		fmt.Fprintf(out, "  %s\n", entries[s.Index].Label())
	}
	return nil
}
