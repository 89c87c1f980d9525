package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cinelog/internal/session"
)

func newSessionCommand(ctx *commandContext) *cobra.Command {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect and manage saved view state",
	}
	sessionCmd.AddCommand(newSessionShowCommand(ctx))
	sessionCmd.AddCommand(newSessionListCommand(ctx))
	sessionCmd.AddCommand(newSessionResetCommand(ctx))
	sessionCmd.AddCommand(newSessionDeleteCommand(ctx))
	return sessionCmd
}

func newSessionShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current session's filters, ordering and page",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := ctx.sessions()
			if err != nil {
				return err
			}
			st, err := sessions.Load(cmd.Context(), ctx.sessionName())
			if errors.Is(err, session.ErrNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "Session %s has no saved state\n", ctx.sessionName())
				return nil
			}
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, st)
			}
			renderSession(cmd.OutOrStdout(), st)
			return nil
		},
	}
}

func newSessionListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := ctx.sessions()
			if err != nil {
				return err
			}
			states, err := sessions.List(cmd.Context())
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, states)
			}
			out := cmd.OutOrStdout()
			if len(states) == 0 {
				fmt.Fprintln(out, "No saved sessions")
				return nil
			}
			rows := make([][]string, 0, len(states))
			for _, st := range states {
				rows = append(rows, []string{
					st.Name,
					strconv.Itoa(st.Page + 1),
					strconv.Itoa(st.PageSize),
					orderLabel(st),
					yesNo(!st.Criteria.IsZero()),
					st.UpdatedAt.Local().Format(time.DateTime),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]column{
					textColumn("Name", 0),
					numberColumn("Page"),
					numberColumn("Page size"),
					textColumn("Order", 0),
					textColumn("Filtered", 0),
					textColumn("Updated", 0),
				},
				rows,
				nil,
			))
			return nil
		},
	}
}

func newSessionResetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear filters, ordering and paging",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.withSession(cmd, func(_ context.Context, st *session.State) error {
				st.Reset()
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session %s reset\n", ctx.sessionName())
			return nil
		},
	}
}

func newSessionDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a saved session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := ctx.sessions()
			if err != nil {
				return err
			}
			name := ctx.sessionName()
			if len(args) == 1 {
				name = strings.TrimSpace(args[0])
			}
			if err := sessions.Delete(cmd.Context(), name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session %s deleted\n", name)
			return nil
		},
	}
}

func renderSession(out io.Writer, st session.State) {
	c := st.Criteria
	fmt.Fprintf(out, "Session:   %s (%s)\n", st.Name, st.ID)
	fmt.Fprintf(out, "Page:      %d (size %d)\n", st.Page+1, st.PageSize)
	fmt.Fprintf(out, "Order:     %s\n", orderLabel(st))
	fmt.Fprintf(out, "Mode:      %s\n", st.Mode)
	if c.Years != nil {
		fmt.Fprintf(out, "Years:     %d to %d\n", c.Years.Min, c.Years.Max)
	}
	if c.Ratings != nil {
		fmt.Fprintf(out, "Ratings:   %.1f to %.1f\n", c.Ratings.Min, c.Ratings.Max)
	}
	if len(c.Genres) > 0 {
		fmt.Fprintf(out, "Genres:    %s\n", strings.Join(c.Genres, ", "))
	}
	if len(c.Directors) > 0 {
		fmt.Fprintf(out, "Directors: %s\n", strings.Join(c.Directors, ", "))
	}
	if c.Search != "" {
		fmt.Fprintf(out, "Search:    %q\n", c.Search)
	}
	if !st.UpdatedAt.IsZero() {
		fmt.Fprintf(out, "Updated:   %s\n", st.UpdatedAt.Local().Format(time.DateTime))
	}
}

func orderLabel(st session.State) string {
	if st.Random {
		return fmt.Sprintf("random (seed %d)", st.Seed)
	}
	field := string(st.Order.Field)
	if field == "" {
		field = "title"
	}
	if st.Order.Descending {
		return field + " desc"
	}
	return field
}
