package formatter

import (
	"fmt"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/repository"
)

const displayTimeLayout = "2006-01-02 15:04:05"

// EntriesTable renders entries (most recent first) as an aligned table.
func EntriesTable(rows []repository.EntryWithProject) string {
	if len(rows) == 0 {
		return StyleDim.Render("No entries yet.") + "\n"
	}

	headers := []string{"Project", "Start", "End", "Duration", "Note"}
	trows := make([][]string, 0, len(rows))
	for _, r := range rows {
		trows = append(trows, []string{
			StyleFg.Render(r.ProjectName),
			r.Entry.StartedAt.Format(displayTimeLayout),
			r.Entry.EndedAt.Format(displayTimeLayout),
			StyleGreen.Render(FormatHMS(r.Entry.DurationSec)),
			StyleDim.Render(Truncate(r.Entry.Note, 40)),
		})
	}
	return RenderTable(headers, trows)
}

// TotalsLine renders the daily/weekly rollups on one line.
func TotalsLine(t *domain.Totals) string {
	return fmt.Sprintf("%s %s   %s %s",
		StyleDim.Render("Today"),
		StyleBold.Render(FormatHMS(t.TodaySeconds)),
		StyleDim.Render("This week"),
		StyleBold.Render(FormatHMS(t.WeekSeconds)),
	)
}
