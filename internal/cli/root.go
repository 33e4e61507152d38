package cli

import (
	"github.com/alexanderramin/tempo/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands and
// the dashboard.
type App struct {
	Projects service.ProjectService
	Tracker  service.TrackerService
	Reports  service.ReportService
	Export   service.ExportService

	// DefaultExportPath is used by the export command when no destination
	// is given.
	DefaultExportPath string

	// IsInteractive reports whether stdin is a terminal. When it is, running
	// tempo with no subcommand opens the dashboard; start/stop live there,
	// since the session only exists for the life of the process.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tempo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tempo",
		Short: "Track time spent on projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runDashboard(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newProjectCmd(app),
		newEntriesCmd(app),
		newReportCmd(app),
		newExportCmd(app),
	)

	return root
}
