package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"cinelog/internal/dashboard"
	"cinelog/internal/session"
)

func newBrowseCommand(ctx *commandContext) *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through the filtered catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := ctx.library(cmd.Context())
			if err != nil {
				return err
			}
			var view dashboard.BrowseView
			_, err = ctx.withSession(cmd, func(_ context.Context, st *session.State) error {
				if err := flags.apply(cmd, lib, st); err != nil {
					return err
				}
				v, err := dashboard.Browse(lib, st)
				view = v
				return err
			})
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, view)
			}
			renderBrowse(cmd, view, ctx.sessionName())
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}

func renderBrowse(cmd *cobra.Command, view dashboard.BrowseView, sessionName string) {
	out := cmd.OutOrStdout()
	if view.Total == 0 {
		fmt.Fprintf(out, "No titles match the current filters (%d in catalog)\n", view.Catalog)
		return
	}
	offset := view.Page * view.PageSize
	fmt.Fprintln(out, renderTable(entryColumns, entryRows(view.Entries, offset), nil))
	fmt.Fprintf(out, "Page %d of %d, %d of %d titles, session %s\n",
		view.Page+1, view.Pages, view.Total, view.Catalog, sessionName)
}
