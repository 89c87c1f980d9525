package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cinelog/internal/catalog"
	"cinelog/internal/dashboard"
	"cinelog/internal/enrich"
	"cinelog/internal/recommend"
	"cinelog/internal/session"
)

func newPickCommand(ctx *commandContext) *cobra.Command {
	var flags criteriaFlags
	var mode string
	var seed uint64
	var withCard bool

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Suggest something to watch from the filtered catalog",
		Long: "Suggest something to watch. Higher-rated titles are more likely; " +
			"--mode favorites keeps ratings of 9 and up, recent_high keeps 8 and up from the last 20 years.",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := ctx.library(cmd.Context())
			if err != nil {
				return err
			}
			var (
				picked catalog.Entry
				empty  bool
			)
			_, err = ctx.withSession(cmd, func(_ context.Context, st *session.State) error {
				st.SetCriteria(flags.criteria(cmd, st.Criteria))
				if cmd.Flags().Changed("mode") {
					m, err := recommend.ParseMode(mode)
					if err != nil {
						return err
					}
					st.Mode = m
				}
				e, err := dashboard.Pick(lib, st, seed)
				if errors.Is(err, recommend.ErrEmptyPool) {
					empty = true
					return nil
				}
				picked = e
				return err
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if empty {
				fmt.Fprintln(out, "No titles match the current filters and mode")
				return nil
			}
			if !withCard {
				if ctx.jsonOutput() {
					return writeJSON(cmd, picked)
				}
				heading(out, picked.Label())
				fmt.Fprintf(out, "  Rating:    %s\n", optionalFloat(picked.YourRating))
				fmt.Fprintf(out, "  Genres:    %s\n", joinOrPlaceholder(picked.Genres))
				fmt.Fprintf(out, "  Directors: %s\n", joinOrPlaceholder(picked.Directors))
				fmt.Fprintf(out, "  Reviews:   %s\n", enrich.ReviewLink(picked))
				return nil
			}
			return ctx.withEnricher(cmd.Context(), func(svc *enrich.Service) error {
				card := svc.Card(cmd.Context(), picked)
				if ctx.jsonOutput() {
					return writeJSON(cmd, card)
				}
				heading(out, picked.Label())
				renderCard(out, card)
				return nil
			})
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVarP(&mode, "mode", "m", string(recommend.ModeAll), fmt.Sprintf("Sampling mode %v", recommend.Modes()))
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a repeatable pick (0 is random)")
	cmd.Flags().BoolVar(&withCard, "card", false, "Look up poster, trailer and availability")
	return cmd
}
