package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
)

// EntryWithProject is a joined view of an entry with its project name, the
// shape the entry list and the CSV export render.
type EntryWithProject struct {
	Entry       domain.Entry
	ProjectName string
}

type ProjectRepo interface {
	// Create inserts a project and returns its store-assigned id.
	// Fails with ErrDuplicateProject if the name is already taken.
	Create(ctx context.Context, name string) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	GetByName(ctx context.Context, name string) (*domain.Project, error)
	// List returns all projects ordered by name ascending.
	List(ctx context.Context) ([]*domain.Project, error)
}

type EntryRepo interface {
	// Create appends an entry and returns its store-assigned id.
	// Fails with ErrProjectNotFound if the referenced project does not exist.
	// Entries are immutable afterwards; there is no update or delete.
	Create(ctx context.Context, e *domain.Entry) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Entry, error)
	// List returns all entries joined with their project name, most recent
	// start first. The display layer relies on this ordering.
	List(ctx context.Context) ([]EntryWithProject, error)
	// SumDurationOn sums durations of entries whose start date equals the
	// local calendar date of day. Returns 0 when nothing matches.
	SumDurationOn(ctx context.Context, day time.Time) (int64, error)
	// SumDurationSince sums durations of entries whose start date is on or
	// after the local calendar date of from. Returns 0 when nothing matches.
	SumDurationSince(ctx context.Context, from time.Time) (int64, error)
}
