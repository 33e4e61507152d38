package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tempo/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show daily and weekly totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			totals, err := app.Reports.Totals(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Today:     %s\nThis week: %s\n",
				formatter.FormatHMS(totals.TodaySeconds),
				formatter.FormatHMS(totals.WeekSeconds),
			)
			return nil
		},
	}
}
