package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cinelog/internal/dashboard"
	"cinelog/internal/enrich"
	"cinelog/internal/session"
)

func newGalleryCommand(ctx *commandContext) *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Show the current page with posters, trailers and availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := ctx.library(cmd.Context())
			if err != nil {
				return err
			}
			var view dashboard.GalleryView
			err = ctx.withEnricher(cmd.Context(), func(svc *enrich.Service) error {
				_, err := ctx.withSession(cmd, func(sctx context.Context, st *session.State) error {
					if err := flags.apply(cmd, lib, st); err != nil {
						return err
					}
					v, err := dashboard.Gallery(sctx, lib, st, svc)
					view = v
					return err
				})
				return err
			})
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, view)
			}
			renderGallery(cmd.OutOrStdout(), view, ctx.sessionName())
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}

func renderGallery(out io.Writer, view dashboard.GalleryView, sessionName string) {
	if view.Total == 0 {
		fmt.Fprintf(out, "No titles match the current filters (%d in catalog)\n", view.Catalog)
		return
	}
	for i, card := range view.Cards {
		heading(out, fmt.Sprintf("%d. %s", view.Page*view.PageSize+i+1, card.Entry.Label()))
		renderCard(out, card)
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "Page %d of %d, %d of %d titles, session %s\n",
		view.Page+1, view.Pages, view.Total, view.Catalog, sessionName)
}

func renderCard(out io.Writer, card enrich.Card) {
	poster := card.Poster.URL
	if poster == "" {
		poster = enrich.Placeholder
	}
	trailer := card.TrailerURL
	if trailer == "" {
		trailer = enrich.Placeholder
	}
	fmt.Fprintf(out, "  Rating:    %s (yours) / %s (IMDb) / %s (%s)\n",
		optionalFloat(card.Entry.YourRating), optionalFloat(card.Entry.IMDbRating),
		card.Poster.RatingText(), providerLabel(card.Poster.Source))
	fmt.Fprintf(out, "  Genres:    %s\n", joinOrPlaceholder(card.Entry.Genres))
	fmt.Fprintf(out, "  Directors: %s\n", joinOrPlaceholder(card.Entry.Directors))
	fmt.Fprintf(out, "  Rated on:  %s\n", optionalDate(card.Entry.DateRated))
	fmt.Fprintf(out, "  Poster:    %s\n", poster)
	fmt.Fprintf(out, "  Trailer:   %s\n", trailer)
	fmt.Fprintf(out, "  Streaming: %s (%s)\n", joinOrPlaceholder(card.Providers.Platforms), card.Providers.Country)
	fmt.Fprintf(out, "  Awards:    %s\n", card.AwardsText)
	fmt.Fprintf(out, "  Reviews:   %s\n", card.ReviewURL)
}

func providerLabel(source string) string {
	if source == "" {
		return "metadata"
	}
	return source
}
