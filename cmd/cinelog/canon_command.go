package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"cinelog/internal/dashboard"
	"cinelog/internal/match"
)

func newCanonCommand(ctx *commandContext) *cobra.Command {
	var unseenOnly bool

	cmd := &cobra.Command{
		Use:   "canon",
		Short: "Show progress through the AFI 100 list",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := ctx.library(cmd.Context())
			if err != nil {
				return err
			}
			view := dashboard.CanonProgress(lib)
			if ctx.jsonOutput() {
				return writeJSON(cmd, view)
			}
			renderCanon(cmd.OutOrStdout(), view, unseenOnly)
			return nil
		},
	}
	cmd.Flags().BoolVar(&unseenOnly, "unseen", false, "List only titles not in the catalog")
	return cmd
}

func renderCanon(out io.Writer, view dashboard.CanonView, unseenOnly bool) {
	rows := make([][]string, 0, len(view.Results))
	for _, r := range view.Results {
		if unseenOnly && r.Seen {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(r.Reference.Rank),
			r.Reference.Title,
			optionalInt(r.Reference.Year),
			yesNo(r.Seen),
			matchDetail(r),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]column{
			numberColumn("Rank"),
			textColumn("Title", titleWidth),
			numberColumn("Year"),
			textColumn("Seen", 0),
			textColumn("Match", titleWidth),
		},
		rows,
		nil,
	))
	p := view.Progress
	fmt.Fprintf(out, "Seen %d of %d (%.1f%%)\n", p.Seen, p.Total, p.Percent)
}

func matchDetail(r match.Result) string {
	if r.Entry == nil {
		return ""
	}
	return fmt.Sprintf("%s [%s]", r.Entry.Label(), r.Tier)
}
