package service

import (
	"context"
	"io"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/repository"
)

type ProjectService interface {
	// Create adds a project with the given name. The name is trimmed of
	// surrounding whitespace; empty names and duplicates are rejected.
	Create(ctx context.Context, name string) (*domain.Project, error)
	GetByName(ctx context.Context, name string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
}

// TrackerService enforces the single-active-timer invariant. At most one
// session is running at any instant; Stop converts it into a persisted entry.
type TrackerService interface {
	// Start begins a session for the given project. Fails with
	// ErrTimerRunning if a session is active, or with
	// repository.ErrProjectNotFound if the project does not exist.
	Start(ctx context.Context, projectID int64) (*domain.Session, error)
	// Stop ends the running session, persists the resulting entry, clears
	// the session, and returns the entry. Fails with ErrTimerNotRunning when
	// idle. If persistence fails the session stays active so no elapsed time
	// is lost; the stop can simply be retried.
	Stop(ctx context.Context, note string) (*domain.Entry, error)
	// Elapsed returns whole seconds since the session started, 0 when idle.
	// Read-only; safe to poll every second for live display.
	Elapsed() int64
	// Active returns a copy of the running session, or nil when idle.
	Active() *domain.Session
}

// ReportService computes rollups over committed entries. A running,
// unstopped session never contributes.
type ReportService interface {
	// Totals returns today's and this ISO week's summed durations. Both are
	// 0, not an error, when no entries match.
	Totals(ctx context.Context) (*domain.Totals, error)
	// Entries returns all entries with project names, most recent first.
	Entries(ctx context.Context) ([]repository.EntryWithProject, error)
}

type ExportService interface {
	// Export writes all entries as CSV to w, in the same order Entries
	// returns them.
	Export(ctx context.Context, w io.Writer) error
	// ExportFile writes the CSV to the file at path, creating or truncating
	// it, and returns the number of entries written.
	ExportFile(ctx context.Context, path string) (int, error)
}
