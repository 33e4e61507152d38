package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tempo/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newEntriesCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List recorded time entries, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := app.Reports.Entries(context.Background())
			if err != nil {
				return err
			}
			if limit > 0 && len(rows) > limit {
				rows = rows[:limit]
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.EntriesTable(rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many entries (0 = all)")

	return cmd
}
